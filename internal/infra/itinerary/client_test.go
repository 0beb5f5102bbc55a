package itinerary

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wander/config"
	"wander/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan() *entity.TripPlan {
	return &entity.TripPlan{
		Travelers:     2,
		Origin:        "Kaohsiung",
		VisitDate:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		DaysOfVisit:   3,
		PlacesToVisit: "Taipei 101, Jiufen",
		CurrentStay:   "Ximending",
		Purpose:       "sightseeing",
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.ItineraryConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestClient_GenerateItinerary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate-itinerary", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Kaohsiung", payload["currentLocation"])
		assert.Equal(t, "2026-10-01", payload["dateOfVisit"])
		assert.EqualValues(t, 2, payload["numberOfPeople"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"dates": "2026-10-01 to 2026-10-03",
			"location": "Taipei",
			"stay": {"hotel": "Amba", "check_in": "2026-10-01", "check_out": "2026-10-03"},
			"schedule": {"day_1": ["Taipei 101"]}
		}`))
	})

	itinerary, err := client.GenerateItinerary(context.Background(), testPlan())

	require.NoError(t, err)
	assert.Equal(t, "Taipei", itinerary.Location)
	assert.Equal(t, "Amba", itinerary.Stay.Hotel)
	assert.JSONEq(t, `{"day_1": ["Taipei 101"]}`, string(itinerary.Schedule))
}

func TestClient_GenerateItinerary_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model unavailable", http.StatusInternalServerError)
	})

	_, err := client.GenerateItinerary(context.Background(), testPlan())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_MatchTraveler(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/match-travelers", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"match": {"name": "Alex", "similarity_score": 0.87}}`))
	})

	match, err := client.MatchTraveler(context.Background(), testPlan())

	require.NoError(t, err)
	assert.True(t, match.Found)
	assert.Equal(t, "Alex", match.Name)
	assert.InDelta(t, 0.87, match.Score, 1e-9)
}

func TestClient_MatchTraveler_NoMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"match": null}`))
	})

	match, err := client.MatchTraveler(context.Background(), testPlan())

	require.NoError(t, err)
	assert.False(t, match.Found)
	assert.Empty(t, match.Name)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)

	_, err = NewClient(&config.ItineraryConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
