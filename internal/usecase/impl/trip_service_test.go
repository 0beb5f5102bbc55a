package impl

import (
	"context"
	"encoding/json"
	"testing"

	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/service"
	"wander/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTripInput() *usecase.PlanTripInput {
	return &usecase.PlanTripInput{
		Travelers:     2,
		Origin:        "Kaohsiung",
		DateOfVisit:   "2026-10-01",
		DaysOfVisit:   3,
		PlacesToVisit: "Taipei 101, Jiufen",
		CurrentStay:   "Ximending",
		Purpose:       "sightseeing",
	}
}

func createTestTripService(planner service.ItineraryPlanner) (usecase.TripUsecase, *fakeTripRepo) {
	tripRepo := newFakeTripRepo()
	txManager := &stubTxManager{factory: &stubRepoFactory{
		listingRepo: newFakeListingRepo(),
		tripRepo:    tripRepo,
	}}

	return NewTripService(txManager, planner, newDiscardLogger()), tripRepo
}

func TestTripService_PlanTrip(t *testing.T) {
	planner := &stubPlanner{itinerary: &service.Itinerary{
		Dates:    "2026-10-01 to 2026-10-03",
		Location: "Taipei",
		Schedule: json.RawMessage(`{"day_1":[]}`),
	}}
	svc, tripRepo := createTestTripService(planner)
	principal := testPrincipal()

	output, err := svc.PlanTrip(context.Background(), principal, validTripInput())

	require.NoError(t, err)
	assert.Equal(t, "Taipei", output.Itinerary.Location)
	assert.Equal(t, principal.ID, output.Plan.PrincipalID)
	assert.Equal(t, 3, output.Plan.DaysOfVisit)

	stored, err := tripRepo.ListByPrincipal(context.Background(), principal.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestTripService_PlanTrip_ValidationNamesFields(t *testing.T) {
	svc, tripRepo := createTestTripService(&stubPlanner{})
	input := validTripInput()
	input.Origin = ""
	input.DaysOfVisit = 0

	_, err := svc.PlanTrip(context.Background(), testPrincipal(), input)

	require.Error(t, err)
	var fieldErr *domainerrors.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Contains(t, fieldErr.Fields(), "current_location")
	assert.Contains(t, fieldErr.Fields(), "days_of_visit")

	stored, listErr := tripRepo.ListByPrincipal(context.Background(), testPrincipal().ID)
	require.NoError(t, listErr)
	assert.Empty(t, stored)
}

func TestTripService_PlanTrip_BadDate(t *testing.T) {
	svc, _ := createTestTripService(&stubPlanner{})
	input := validTripInput()
	input.DateOfVisit = "next tuesday"

	_, err := svc.PlanTrip(context.Background(), testPrincipal(), input)

	require.Error(t, err)
	var fieldErr *domainerrors.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Contains(t, fieldErr.Fields(), "date_of_visit")
}

func TestTripService_PlanTrip_PlannerDown(t *testing.T) {
	svc, tripRepo := createTestTripService(&stubPlanner{itineraryErr: assert.AnError})
	principal := testPrincipal()

	_, err := svc.PlanTrip(context.Background(), principal, validTripInput())

	assert.ErrorIs(t, err, domainerrors.ErrItineraryServiceUnavailable)

	// The plan survives the planner outage.
	stored, listErr := tripRepo.ListByPrincipal(context.Background(), principal.ID)
	require.NoError(t, listErr)
	assert.Len(t, stored, 1)
}

func TestTripService_FindCompanion(t *testing.T) {
	planner := &stubPlanner{match: &service.CompanionMatch{
		Found: true,
		Name:  "Alex",
		Score: 0.87,
	}}
	svc, tripRepo := createTestTripService(planner)

	match, err := svc.FindCompanion(context.Background(), testPrincipal(), validTripInput())

	require.NoError(t, err)
	assert.True(t, match.Found)
	assert.Equal(t, "Alex", match.Name)

	// Matching probes are not persisted.
	stored, listErr := tripRepo.ListByPrincipal(context.Background(), testPrincipal().ID)
	require.NoError(t, listErr)
	assert.Empty(t, stored)
}

func TestTripService_ListTrips(t *testing.T) {
	svc, _ := createTestTripService(&stubPlanner{itinerary: &service.Itinerary{}})
	principal := testPrincipal()

	_, err := svc.PlanTrip(context.Background(), principal, validTripInput())
	require.NoError(t, err)

	plans, err := svc.ListTrips(context.Background(), principal)

	require.NoError(t, err)
	assert.Len(t, plans, 1)
}
