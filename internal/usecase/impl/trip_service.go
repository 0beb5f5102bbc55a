package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "wander/internal/delivery/context"
	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/domain/service"
	"wander/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// tripService implements the TripUsecase interface.
type tripService struct {
	txManager repository.TransactionManager
	planner   service.ItineraryPlanner
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewTripService is the constructor for tripService.
func NewTripService(
	txManager repository.TransactionManager,
	planner service.ItineraryPlanner,
	logger *slog.Logger,
) usecase.TripUsecase {
	return &tripService{
		txManager: txManager,
		planner:   planner,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tripService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlanTrip stores the plan and asks the external planner for an itinerary.
// The plan is persisted first: a planner outage must not lose the traveler's
// input, and the matcher reads stored plans.
func (srv *tripService) PlanTrip(ctx context.Context, principal *entity.Principal, input *usecase.PlanTripInput) (*usecase.PlanTripOutput, error) {
	plan, err := srv.buildPlan(principal, input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.TripRepo().Create(ctx, plan)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store trip plan",
			slog.String("principalID", principal.ID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store trip plan")
	}

	itinerary, err := srv.planner.GenerateItinerary(ctx, plan)
	if err != nil {
		srv.log(ctx).Error("Itinerary generation failed",
			slog.String("planID", plan.ID.String()),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrItineraryServiceUnavailable, "itinerary generation failed")
	}

	srv.log(ctx).Debug("Trip planned",
		slog.String("principalID", principal.ID),
		slog.String("planID", plan.ID.String()))

	return &usecase.PlanTripOutput{Plan: plan, Itinerary: itinerary}, nil
}

// FindCompanion asks the external matcher for the stored traveler whose plan
// best matches the given one. The probe plan itself is not persisted.
func (srv *tripService) FindCompanion(ctx context.Context, principal *entity.Principal, input *usecase.PlanTripInput) (*service.CompanionMatch, error) {
	plan, err := srv.buildPlan(principal, input)
	if err != nil {
		return nil, err
	}

	match, err := srv.planner.MatchTraveler(ctx, plan)
	if err != nil {
		srv.log(ctx).Error("Traveler matching failed",
			slog.String("principalID", principal.ID),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrItineraryServiceUnavailable, "traveler matching failed")
	}

	return match, nil
}

// ListTrips returns the principal's stored trip plans.
func (srv *tripService) ListTrips(ctx context.Context, principal *entity.Principal) ([]*entity.TripPlan, error) {
	if !principal.Valid() {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "principal has no provider-assigned ID")
	}

	var plans []*entity.TripPlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.TripRepo().ListByPrincipal(ctx, principal.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list trip plans")
		}
		plans = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load trip plans",
			slog.String("principalID", principal.ID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load trip plans")
	}

	return plans, nil
}

func (srv *tripService) buildPlan(principal *entity.Principal, input *usecase.PlanTripInput) (*entity.TripPlan, error) {
	if !principal.Valid() {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "principal has no provider-assigned ID")
	}
	if input == nil {
		return nil, domainerrors.NewFieldValidationError("plan")
	}

	if err := srv.validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			fields := make([]string, 0, len(validationErrs))
			for _, fieldErr := range validationErrs {
				fields = append(fields, wireFieldName(input, fieldErr.StructField()))
			}

			return nil, domainerrors.NewFieldValidationError(fields...)
		}

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	visitDate, err := input.VisitDate()
	if err != nil {
		return nil, domainerrors.NewFieldValidationError("date_of_visit")
	}

	return &entity.TripPlan{
		ID:            uuid.New(),
		PrincipalID:   principal.ID,
		Travelers:     input.Travelers,
		Origin:        input.Origin,
		VisitDate:     visitDate,
		DaysOfVisit:   input.DaysOfVisit,
		PlacesToVisit: input.PlacesToVisit,
		CurrentStay:   input.CurrentStay,
		Purpose:       input.Purpose,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
