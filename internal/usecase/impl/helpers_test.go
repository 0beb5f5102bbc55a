package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"wander/internal/domain/entity"
	"wander/internal/domain/repository"
	"wander/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPrincipal() *entity.Principal {
	return &entity.Principal{
		ID:          "uid-123",
		DisplayName: "Test Traveler",
		Email:       "traveler@example.com",
	}
}

// fakeProfileRepo is an in-memory ProfileRepository with injectable failures.
// It honors the create-if-absent contract, so races behave like a real store.
type fakeProfileRepo struct {
	mu          sync.Mutex
	records     map[string]*entity.Profile
	findErr     error
	createErr   error
	createCalls int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{records: make(map[string]*entity.Profile)}
}

func profileKey(kind entity.Kind, principalID string) string {
	return kind.String() + "/" + principalID
}

func (r *fakeProfileRepo) Find(_ context.Context, kind entity.Kind, principalID string) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	profile, ok := r.records[profileKey(kind, principalID)]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return profile, nil
}

func (r *fakeProfileRepo) CreateIfAbsent(_ context.Context, profile *entity.Profile) (bool, *entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.createCalls++
	if r.createErr != nil {
		return false, nil, r.createErr
	}

	key := profileKey(profile.Kind, profile.PrincipalID)
	if existing, ok := r.records[key]; ok {
		return false, existing, nil
	}
	r.records[key] = profile

	return true, profile, nil
}

func (r *fakeProfileRepo) put(profile *entity.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[profileKey(profile.Kind, profile.PrincipalID)] = profile
}

func (r *fakeProfileRepo) creates() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.createCalls
}

// fakeListingRepo is an in-memory ListingRepository.
type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[uuid.UUID]*entity.MerchantListing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[uuid.UUID]*entity.MerchantListing)}
}

func (r *fakeListingRepo) List(_ context.Context) ([]*entity.MerchantListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*entity.MerchantListing, 0, len(r.listings))
	for _, listing := range r.listings {
		all = append(all, listing)
	}

	return all, nil
}

func (r *fakeListingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.MerchantListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[id]
	if !ok {
		return nil, repository.ErrListingNotFound
	}

	return listing, nil
}

func (r *fakeListingRepo) Create(_ context.Context, listing *entity.MerchantListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	r.listings[listing.ID] = listing

	return nil
}

func (r *fakeListingRepo) AddVote(_ context.Context, id uuid.UUID, vote entity.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[id]
	if !ok {
		return repository.ErrListingNotFound
	}

	if vote == entity.VoteUp {
		listing.Likes++
	} else {
		listing.Dislikes++
	}

	return nil
}

// fakeTripRepo is an in-memory TripRepository.
type fakeTripRepo struct {
	mu    sync.Mutex
	plans []*entity.TripPlan
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{}
}

func (r *fakeTripRepo) Create(_ context.Context, plan *entity.TripPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plans = append(r.plans, plan)

	return nil
}

func (r *fakeTripRepo) ListByPrincipal(_ context.Context, principalID string) ([]*entity.TripPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found []*entity.TripPlan
	for _, plan := range r.plans {
		if plan.PrincipalID == principalID {
			found = append(found, plan)
		}
	}

	return found, nil
}

// stubTxManager runs the transactional function directly against the given
// factory, with no real transaction underneath.
type stubTxManager struct {
	factory repository.RepositoryFactory
	err     error
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.err != nil {
		return m.err
	}

	return fn(m.factory)
}

type stubRepoFactory struct {
	listingRepo repository.ListingRepository
	tripRepo    repository.TripRepository
}

func (f *stubRepoFactory) ListingRepo() repository.ListingRepository { return f.listingRepo }
func (f *stubRepoFactory) TripRepo() repository.TripRepository       { return f.tripRepo }

// recordingPublisher captures published profile events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.ProfileEvent
	err    error
}

func (p *recordingPublisher) PublishProfileEvent(_ context.Context, event *service.ProfileEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []*service.ProfileEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.ProfileEvent(nil), p.events...)
}

// stubPlanner returns canned answers from the external itinerary service.
type stubPlanner struct {
	itinerary    *service.Itinerary
	itineraryErr error
	match        *service.CompanionMatch
	matchErr     error
}

func (p *stubPlanner) GenerateItinerary(_ context.Context, _ *entity.TripPlan) (*service.Itinerary, error) {
	if p.itineraryErr != nil {
		return nil, p.itineraryErr
	}

	return p.itinerary, nil
}

func (p *stubPlanner) MatchTraveler(_ context.Context, _ *entity.TripPlan) (*service.CompanionMatch, error) {
	if p.matchErr != nil {
		return nil, p.matchErr
	}

	return p.match, nil
}
