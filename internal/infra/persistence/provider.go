// Package persistence selects the profile store backend.
package persistence

import (
	"context"
	"log/slog"

	"wander/config"
	"wander/internal/domain/repository"
	"wander/internal/infra/persistence/firestore"
	"wander/internal/infra/persistence/memory"
	"wander/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported profile store backends.
const (
	BackendMemory    = "memory"
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
)

// ProfileStoreParams holds dependencies for the profile store, injected by Fx
type ProfileStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// NewProfileRepository creates a ProfileRepository based on configuration.
// The directory and trip tables always live in Postgres; only the profile
// partitions are backend-selectable.
func NewProfileRepository(params ProfileStoreParams) (repository.ProfileRepository, error) {
	cfg := params.Config.ProfileStore
	logger := params.Logger

	backend := BackendPostgres
	if cfg != nil && cfg.Backend != "" {
		backend = cfg.Backend
	}

	switch backend {
	case BackendMemory:
		logger.Info("Using in-memory profile store")

		return memory.NewProfileStore(), nil

	case BackendPostgres:
		logger.Info("Using Postgres profile store")

		return postgres.NewProfileRepository(params.DB), nil

	case BackendFirestore:
		if cfg == nil || cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for firestore backend")
		}
		logger.Info("Using Firestore profile store",
			slog.String("project_id", cfg.ProjectID),
		)

		store, err := firestore.NewProfileStore(params.Ctx, cfg.ProjectID)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				logger.Info("Closing Firestore profile store")

				return store.Close()
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown profile store backend: %s", backend)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewProfileRepository),
)
