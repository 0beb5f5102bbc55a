// Package itinerary is the HTTP client for the external trip planning
// service. The service owns itinerary generation and traveler matching; this
// client only relays requests and decodes answers.
package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"wander/config"
	"wander/internal/domain/entity"
	"wander/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	generatePath = "/generate-itinerary"
	matchPath    = "/match-travelers"

	defaultTimeout = 30 * time.Second
)

// Client implements service.ItineraryPlanner over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.ItineraryConfig, logger *slog.Logger) (*Client, error) {
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("itinerary base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// planRequest is the wire format the planning service expects. Field names
// match its form-style API.
type planRequest struct {
	NumberOfPeople int    `json:"numberOfPeople"`
	Location       string `json:"currentLocation"`
	DateOfVisit    string `json:"dateOfVisit"`
	DaysOfVisit    int    `json:"daysOfVisit"`
	PlacesToVisit  string `json:"placesToVisit"`
	CurrentStay    string `json:"currentStay"`
	Purpose        string `json:"purposeOfVisit,omitempty"`
}

type matchResponse struct {
	Match *struct {
		Name  string  `json:"name"`
		Score float64 `json:"similarity_score"`
	} `json:"match"`
}

func planRequestFrom(plan *entity.TripPlan) *planRequest {
	return &planRequest{
		NumberOfPeople: plan.Travelers,
		Location:       plan.Origin,
		DateOfVisit:    plan.VisitDate.Format("2006-01-02"),
		DaysOfVisit:    plan.DaysOfVisit,
		PlacesToVisit:  plan.PlacesToVisit,
		CurrentStay:    plan.CurrentStay,
		Purpose:        plan.Purpose,
	}
}

// GenerateItinerary asks the external service for a day-by-day schedule.
func (c *Client) GenerateItinerary(ctx context.Context, plan *entity.TripPlan) (*service.Itinerary, error) {
	var itinerary service.Itinerary
	if err := c.post(ctx, generatePath, planRequestFrom(plan), &itinerary); err != nil {
		return nil, err
	}

	c.logger.Debug("Itinerary generated",
		slog.String("planID", plan.ID.String()),
		slog.String("location", itinerary.Location),
	)

	return &itinerary, nil
}

// MatchTraveler asks the external service for the most similar stored plan.
func (c *Client) MatchTraveler(ctx context.Context, plan *entity.TripPlan) (*service.CompanionMatch, error) {
	var decoded matchResponse
	if err := c.post(ctx, matchPath, planRequestFrom(plan), &decoded); err != nil {
		return nil, err
	}

	if decoded.Match == nil {
		return &service.CompanionMatch{Found: false}, nil
	}

	return &service.CompanionMatch{
		Found: true,
		Name:  decoded.Match.Name,
		Score: decoded.Match.Score,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, payload, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "itinerary service request to %s failed", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little of the body for the error message.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("itinerary service returned status %d for %s: %s", resp.StatusCode, path, string(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return errors.Wrapf(err, "failed to decode itinerary service response from %s", path)
	}

	return nil
}

var _ service.ItineraryPlanner = (*Client)(nil)
