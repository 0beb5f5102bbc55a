package main

import (
	"context"
	"log/slog"
	"os"

	"wander/config"
	"wander/internal/delivery"
	"wander/internal/delivery/http"
	"wander/internal/delivery/http/middleware"
	"wander/internal/delivery/http/router/handler"
	"wander/internal/domain/service"
	"wander/internal/infra/auth/firebase"
	"wander/internal/infra/itinerary"
	logs "wander/internal/infra/log"
	"wander/internal/infra/persistence"
	"wander/internal/infra/persistence/postgres"
	"wander/internal/infra/pubsub"
	"wander/internal/infra/session"
	"wander/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
		persistence.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newAuthenticator,
			newPrincipalSource,
			newItineraryPlanner,
		),
		pubsub.Module,
	)
}

// newAuthenticator creates the Firebase ID token verifier
func newAuthenticator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.Authenticator, error) {
	return firebase.NewAuthenticator(ctx, cfg.Firebase, logger)
}

// newPrincipalSource exposes the session registry as the principal source
func newPrincipalSource(logger *slog.Logger) service.PrincipalSource {
	return session.NewRegistry(logger)
}

// newItineraryPlanner creates the external itinerary service client
func newItineraryPlanner(cfg *config.Config, logger *slog.Logger) (service.ItineraryPlanner, error) {
	return itinerary.NewClient(cfg.Itinerary, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewOnboardingService,
			impl.NewDirectoryService,
			impl.NewTripService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIdentityHandler,
			handler.NewOnboardingHandler,
			handler.NewDirectoryHandler,
			handler.NewTripHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
