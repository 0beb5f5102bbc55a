package postgres

import (
	"context"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tripRepository implements the domain's TripRepository interface.
type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository is the constructor for tripRepository.
func NewTripRepository(db *gorm.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

// Create persists a new trip plan.
func (repo *tripRepository) Create(ctx context.Context, plan *entity.TripPlan) error {
	planM := fromTripPlanDomain(plan)

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create trip plan")
	}

	plan.ID = planM.ID
	plan.CreatedAt = planM.CreatedAt

	return nil
}

// ListByPrincipal retrieves the trip plans submitted by a principal, newest first.
func (repo *tripRepository) ListByPrincipal(ctx context.Context, principalID string) ([]*entity.TripPlan, error) {
	var planModels []*model.TripPlanModel
	err := repo.db.WithContext(ctx).
		Where("principal_id = ?", principalID).
		Order("created_at DESC").
		Find(&planModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trip plans")
	}

	plans := make([]*entity.TripPlan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toTripPlanDomain(planM))
	}

	return plans, nil
}

// --- Mappers ---

func fromTripPlanDomain(plan *entity.TripPlan) *model.TripPlanModel {
	return &model.TripPlanModel{
		ID:            plan.ID,
		PrincipalID:   plan.PrincipalID,
		Travelers:     plan.Travelers,
		Origin:        plan.Origin,
		VisitDate:     plan.VisitDate,
		DaysOfVisit:   plan.DaysOfVisit,
		PlacesToVisit: plan.PlacesToVisit,
		CurrentStay:   plan.CurrentStay,
		Purpose:       plan.Purpose,
	}
}

func toTripPlanDomain(planM *model.TripPlanModel) *entity.TripPlan {
	return &entity.TripPlan{
		ID:            planM.ID,
		PrincipalID:   planM.PrincipalID,
		Travelers:     planM.Travelers,
		Origin:        planM.Origin,
		VisitDate:     planM.VisitDate,
		DaysOfVisit:   planM.DaysOfVisit,
		PlacesToVisit: planM.PlacesToVisit,
		CurrentStay:   planM.CurrentStay,
		Purpose:       planM.Purpose,
		CreatedAt:     planM.CreatedAt,
	}
}
