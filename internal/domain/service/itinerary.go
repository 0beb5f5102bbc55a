package service

import (
	"context"
	"encoding/json"

	"wander/internal/domain/entity"
)

// Itinerary is the generated trip schedule returned by the external planner.
// Schedule is kept as raw JSON: its shape belongs to the external service and
// this core only relays it.
type Itinerary struct {
	Dates    string          `json:"dates"`
	Location string          `json:"location"`
	Stay     ItineraryStay   `json:"stay"`
	Schedule json.RawMessage `json:"schedule"`
}

// ItineraryStay describes the suggested accommodation of an itinerary.
type ItineraryStay struct {
	Hotel    string `json:"hotel"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// CompanionMatch is the outcome of matching a trip plan against other
// travelers' plans.
type CompanionMatch struct {
	Found bool    `json:"found"`
	Name  string  `json:"name,omitempty"`
	Score float64 `json:"similarity_score,omitempty"`
}

// ItineraryPlanner is the external itinerary-generation service, consumed as
// a black box over HTTP.
type ItineraryPlanner interface {
	// GenerateItinerary asks the external service for a day-by-day schedule
	// for the given trip plan.
	GenerateItinerary(ctx context.Context, plan *entity.TripPlan) (*Itinerary, error)

	// MatchTraveler asks the external service for the existing traveler whose
	// plan is most similar to the given one.
	MatchTraveler(ctx context.Context, plan *entity.TripPlan) (*CompanionMatch, error)
}
