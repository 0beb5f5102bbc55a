// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "wander/internal/delivery/context"
	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/usecase"

	"github.com/pkg/errors"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve queries both profile partitions and classifies the outcome. The
// lookups run sequentially; with two partitions the latency cost is small and
// the failure handling stays obvious.
func (srv *identityService) Resolve(ctx context.Context, principal *entity.Principal) (*entity.Resolution, error) {
	if !principal.Valid() {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "principal has no provider-assigned ID")
	}

	srv.log(ctx).Debug("Resolving principal", slog.String("principalID", principal.ID))

	userProfile, err := srv.findInPartition(ctx, entity.KindUser, principal.ID)
	if err != nil {
		return nil, err
	}

	merchantProfile, err := srv.findInPartition(ctx, entity.KindMerchant, principal.ID)
	if err != nil {
		return nil, err
	}

	switch {
	case userProfile != nil && merchantProfile != nil:
		// Both partitions answered. This is corrupted data, not a preference
		// question: refuse to pick a side.
		srv.log(ctx).Error("Principal present in both profile partitions",
			slog.String("principalID", principal.ID))

		return nil, errors.Wrap(domainerrors.ErrDuplicateProfileConflict, "principal resolved in both partitions")
	case userProfile != nil:
		return entity.NewResolution(principal, userProfile), nil
	case merchantProfile != nil:
		return entity.NewResolution(principal, merchantProfile), nil
	default:
		return entity.NewEmptyResolution(principal), nil
	}
}

// findInPartition looks up one partition. "Not found" is a normal answer;
// every other error means the partition could not be consulted and resolution
// must not proceed as if the profile were absent.
func (srv *identityService) findInPartition(ctx context.Context, kind entity.Kind, principalID string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.Find(ctx, kind, principalID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil
		}

		srv.log(ctx).Error("Profile partition lookup failed",
			slog.String("kind", kind.String()),
			slog.String("principalID", principalID),
			slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrProfileStoreUnavailable, "failed to query %s partition", kind)
	}

	return profile, nil
}
