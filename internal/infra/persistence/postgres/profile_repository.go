package postgres

import (
	"context"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the domain's ProfileRepository interface over
// the two partition tables. The partitions share no rows: a principal in
// user_profiles never appears in merchant_profiles by this repository's doing.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Find retrieves the profile for a principal from the partition of the given kind.
func (repo *profileRepository) Find(ctx context.Context, kind entity.Kind, principalID string) (*entity.Profile, error) {
	switch kind {
	case entity.KindUser:
		var profileM model.UserProfileModel
		err := repo.db.WithContext(ctx).
			Where("principal_id = ?", principalID).
			First(&profileM).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repository.ErrProfileNotFound
			}

			return nil, errors.Wrap(err, "failed to find user profile")
		}

		return toUserProfileDomain(&profileM), nil
	case entity.KindMerchant:
		var profileM model.MerchantProfileModel
		err := repo.db.WithContext(ctx).
			Where("principal_id = ?", principalID).
			First(&profileM).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repository.ErrProfileNotFound
			}

			return nil, errors.Wrap(err, "failed to find merchant profile")
		}

		return toMerchantProfileDomain(&profileM), nil
	default:
		return nil, errors.Errorf("cannot query partition for kind %q", kind)
	}
}

// CreateIfAbsent persists the profile unless its partition already holds a
// record for the principal. INSERT ... ON CONFLICT DO NOTHING makes the
// first-writer-wins decision inside the database, so concurrent submits from
// different processes still resolve to a single record.
func (repo *profileRepository) CreateIfAbsent(ctx context.Context, profile *entity.Profile) (bool, *entity.Profile, error) {
	switch profile.Kind {
	case entity.KindUser:
		return repo.createUserIfAbsent(ctx, profile)
	case entity.KindMerchant:
		return repo.createMerchantIfAbsent(ctx, profile)
	default:
		return false, nil, errors.Errorf("cannot create profile for kind %q", profile.Kind)
	}
}

func (repo *profileRepository) createUserIfAbsent(ctx context.Context, profile *entity.Profile) (bool, *entity.Profile, error) {
	profileM := fromUserProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "principal_id"}},
			DoNothing: true,
		}).
		Create(profileM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return false, nil, domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return false, nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create user profile")
	}

	if result.RowsAffected == 0 {
		// A concurrent insert won. Return the record that actually exists.
		existing, err := repo.Find(ctx, entity.KindUser, profile.PrincipalID)
		if err != nil {
			return false, nil, errors.Wrap(err, "failed to load profile after losing create race")
		}

		return false, existing, nil
	}

	return true, toUserProfileDomain(profileM), nil
}

func (repo *profileRepository) createMerchantIfAbsent(ctx context.Context, profile *entity.Profile) (bool, *entity.Profile, error) {
	profileM := fromMerchantProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "principal_id"}},
			DoNothing: true,
		}).
		Create(profileM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return false, nil, domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return false, nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create merchant profile")
	}

	if result.RowsAffected == 0 {
		existing, err := repo.Find(ctx, entity.KindMerchant, profile.PrincipalID)
		if err != nil {
			return false, nil, errors.Wrap(err, "failed to load profile after losing create race")
		}

		return false, existing, nil
	}

	return true, toMerchantProfileDomain(profileM), nil
}

// --- Mappers ---

func fromUserProfileDomain(profile *entity.Profile) *model.UserProfileModel {
	return &model.UserProfileModel{
		PrincipalID: profile.PrincipalID,
		Email:       profile.Email,
		Name:        profile.User.Name,
		Phone:       profile.User.Phone,
		Age:         profile.User.Age,
		Gender:      profile.User.Gender,
		Disabled:    profile.User.Disabled,
		CreatedAt:   profile.CreatedAt,
	}
}

func toUserProfileDomain(profileM *model.UserProfileModel) *entity.Profile {
	return &entity.Profile{
		PrincipalID: profileM.PrincipalID,
		Kind:        entity.KindUser,
		Email:       profileM.Email,
		User: &entity.UserDetails{
			Name:     profileM.Name,
			Phone:    profileM.Phone,
			Age:      profileM.Age,
			Gender:   profileM.Gender,
			Disabled: profileM.Disabled,
		},
		CreatedAt: profileM.CreatedAt,
	}
}

func fromMerchantProfileDomain(profile *entity.Profile) *model.MerchantProfileModel {
	return &model.MerchantProfileModel{
		PrincipalID:         profile.PrincipalID,
		Email:               profile.Email,
		OwnerName:           profile.Merchant.OwnerName,
		Phone:               profile.Merchant.Phone,
		BusinessName:        profile.Merchant.BusinessName,
		BusinessAddress:     profile.Merchant.BusinessAddress,
		BusinessDescription: profile.Merchant.BusinessDescription,
		BusinessCategory:    profile.Merchant.BusinessCategory,
		BusinessWebsite:     profile.Merchant.BusinessWebsite,
		BusinessLogoURL:     profile.Merchant.BusinessLogoURL,
		CreatedAt:           profile.CreatedAt,
	}
}

func toMerchantProfileDomain(profileM *model.MerchantProfileModel) *entity.Profile {
	return &entity.Profile{
		PrincipalID: profileM.PrincipalID,
		Kind:        entity.KindMerchant,
		Email:       profileM.Email,
		Merchant: &entity.MerchantDetails{
			OwnerName:           profileM.OwnerName,
			Phone:               profileM.Phone,
			BusinessName:        profileM.BusinessName,
			BusinessAddress:     profileM.BusinessAddress,
			BusinessDescription: profileM.BusinessDescription,
			BusinessCategory:    profileM.BusinessCategory,
			BusinessWebsite:     profileM.BusinessWebsite,
			BusinessLogoURL:     profileM.BusinessLogoURL,
		},
		CreatedAt: profileM.CreatedAt,
	}
}
