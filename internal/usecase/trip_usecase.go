// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"wander/internal/domain/entity"
	"wander/internal/domain/service"
)

// TripUsecase persists traveler trip plans and brokers calls to the external
// itinerary/matching service.
type TripUsecase interface {
	// PlanTrip validates and stores a trip plan, then asks the external
	// planner for an itinerary.
	PlanTrip(ctx context.Context, principal *entity.Principal, input *PlanTripInput) (*PlanTripOutput, error)

	// FindCompanion asks the external matcher for the traveler whose stored
	// plan best matches the given one.
	FindCompanion(ctx context.Context, principal *entity.Principal, input *PlanTripInput) (*service.CompanionMatch, error)

	// ListTrips returns the principal's stored trip plans, newest first.
	ListTrips(ctx context.Context, principal *entity.Principal) ([]*entity.TripPlan, error)
}

// PlanTripInput mirrors the travel form fields of the client.
type PlanTripInput struct {
	Travelers     int    `json:"number_of_people" validate:"required,min=1"`
	Origin        string `json:"current_location" validate:"required"`
	DateOfVisit   string `json:"date_of_visit" validate:"required"`
	DaysOfVisit   int    `json:"days_of_visit" validate:"required,min=1"`
	PlacesToVisit string `json:"places_to_visit" validate:"required"`
	CurrentStay   string `json:"current_stay" validate:"required"`
	Purpose       string `json:"purpose_of_visit,omitempty"`
}

// VisitDate parses the date-of-visit field. The travel form submits dates as
// YYYY-MM-DD.
func (in *PlanTripInput) VisitDate() (time.Time, error) {
	return time.Parse("2006-01-02", in.DateOfVisit)
}

// PlanTripOutput bundles the stored plan with the generated itinerary.
type PlanTripOutput struct {
	Plan      *entity.TripPlan   `json:"plan"`
	Itinerary *service.Itinerary `json:"itinerary"`
}
