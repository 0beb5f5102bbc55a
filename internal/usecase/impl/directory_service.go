package impl

import (
	"context"
	"log/slog"

	deliverycontext "wander/internal/delivery/context"
	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	return &directoryService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMerchants returns all merchant listings, newest first.
func (srv *directoryService) ListMerchants(ctx context.Context) ([]*entity.MerchantListing, error) {
	var listings []*entity.MerchantListing

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ListingRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list merchant listings")
		}
		listings = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to load merchant directory", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load merchant directory")
	}

	return listings, nil
}

// Vote records a like or dislike and returns the listing with updated
// counters. The increment and the re-read share one transaction.
func (srv *directoryService) Vote(ctx context.Context, listingID uuid.UUID, vote entity.Vote) (*entity.MerchantListing, error) {
	if !vote.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidVote, "vote must be up or down")
	}

	var listing *entity.MerchantListing

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		if err := listingRepo.AddVote(ctx, listingID, vote); err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
			}

			return errors.Wrap(err, "failed to record vote")
		}

		updated, err := listingRepo.FindByID(ctx, listingID)
		if err != nil {
			return errors.Wrap(err, "failed to reload listing after vote")
		}
		listing = updated

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to record directory vote",
			slog.String("listingID", listingID.String()),
			slog.String("vote", string(vote)),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record directory vote")
	}

	srv.log(ctx).Debug("Directory vote recorded",
		slog.String("listingID", listingID.String()),
		slog.String("vote", string(vote)))

	return listing, nil
}
