package postgres

import (
	"context"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the domain's ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// List retrieves all merchant listings, newest first.
func (repo *listingRepository) List(ctx context.Context) ([]*entity.MerchantListing, error) {
	var listingModels []*model.MerchantListingModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&listingModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant listings")
	}

	listings := make([]*entity.MerchantListing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// FindByID retrieves a single listing by its identifier.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MerchantListing, error) {
	var listingM model.MerchantListingModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// Create persists a new listing for a freshly onboarded merchant.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.MerchantListing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("listing already exists for this merchant")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create merchant listing")
	}

	// Update the entity with generated values
	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// AddVote increments the like or dislike counter of a listing.
func (repo *listingRepository) AddVote(ctx context.Context, id uuid.UUID, vote entity.Vote) error {
	column := "likes"
	if vote == entity.VoteDown {
		column = "dislikes"
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MerchantListingModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record vote")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mappers ---

func fromListingDomain(listing *entity.MerchantListing) *model.MerchantListingModel {
	return &model.MerchantListingModel{
		ID:                  listing.ID,
		PrincipalID:         listing.PrincipalID,
		BusinessName:        listing.BusinessName,
		BusinessCategory:    listing.BusinessCategory,
		BusinessAddress:     listing.BusinessAddress,
		BusinessDescription: listing.BusinessDescription,
		BusinessWebsite:     listing.BusinessWebsite,
		BusinessLogoURL:     listing.BusinessLogoURL,
		Likes:               listing.Likes,
		Dislikes:            listing.Dislikes,
	}
}

func toListingDomain(listingM *model.MerchantListingModel) *entity.MerchantListing {
	return &entity.MerchantListing{
		ID:                  listingM.ID,
		PrincipalID:         listingM.PrincipalID,
		BusinessName:        listingM.BusinessName,
		BusinessCategory:    listingM.BusinessCategory,
		BusinessAddress:     listingM.BusinessAddress,
		BusinessDescription: listingM.BusinessDescription,
		BusinessWebsite:     listingM.BusinessWebsite,
		BusinessLogoURL:     listingM.BusinessLogoURL,
		Likes:               listingM.Likes,
		Dislikes:            listingM.Dislikes,
		CreatedAt:           listingM.CreatedAt,
		UpdatedAt:           listingM.UpdatedAt,
	}
}
