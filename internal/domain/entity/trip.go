package entity

import (
	"time"

	"github.com/google/uuid"
)

// TripPlan records a traveler's intended trip. It is the input for itinerary
// generation and for matching travelers with similar plans; the generation
// and matching themselves happen in an external service.
type TripPlan struct {
	ID            uuid.UUID // Trip plan identifier.
	PrincipalID   string    // The traveler principal that submitted the plan.
	Travelers     int       // Number of people, including the submitter.
	Origin        string    // Current location at the start of the trip.
	VisitDate     time.Time // First day of the visit.
	DaysOfVisit   int       // Trip length in days.
	PlacesToVisit string    // Free-text destinations, as entered by the traveler.
	CurrentStay   string    // Hotel or area the traveler is staying in.
	Purpose       string    // Purpose of visit, used by the companion matcher.
	CreatedAt     time.Time
}
