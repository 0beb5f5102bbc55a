package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	deliverycontext "wander/internal/delivery/context"
	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/domain/service"
	"wander/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// onboardingService implements the OnboardingUsecase interface. It keeps one
// in-memory session per principal; the durable outcome of onboarding is the
// profile record, so losing a session only means the client restarts the flow.
type onboardingService struct {
	identity    usecase.IdentityUsecase
	profileRepo repository.ProfileRepository
	txManager   repository.TransactionManager
	publisher   service.ProfileEventPublisher
	validate    *validator.Validate
	logger      *slog.Logger

	mu       sync.Mutex
	sessions map[string]*entity.OnboardingSession
}

// NewOnboardingService is the constructor for onboardingService.
func NewOnboardingService(
	identity usecase.IdentityUsecase,
	profileRepo repository.ProfileRepository,
	txManager repository.TransactionManager,
	publisher service.ProfileEventPublisher,
	logger *slog.Logger,
) usecase.OnboardingUsecase {
	return &onboardingService{
		identity:    identity,
		profileRepo: profileRepo,
		txManager:   txManager,
		publisher:   publisher,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
		sessions:    make(map[string]*entity.OnboardingSession),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *onboardingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Session returns the principal's current onboarding session, or nil.
func (srv *onboardingService) Session(principal *entity.Principal) *entity.OnboardingSession {
	if !principal.Valid() {
		return nil
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.sessions[principal.ID]
}

// SelectKind starts (or resumes) the principal's onboarding session and fixes
// the account kind. A principal that already owns a profile cannot onboard
// again.
func (srv *onboardingService) SelectKind(ctx context.Context, principal *entity.Principal, kind entity.Kind) (*entity.OnboardingSession, error) {
	if !principal.Valid() {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "principal has no provider-assigned ID")
	}
	if !kind.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown account kind: "+kind.String())
	}

	resolution, err := srv.identity.Resolve(ctx, principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve principal before kind selection")
	}
	if resolution.ProfileExists {
		return nil, errors.Wrap(domainerrors.ErrProfileAlreadyExists, "profile already exists for this principal")
	}

	session := srv.sessionFor(principal)

	if err := session.SelectKind(kind); err != nil {
		if errors.Is(err, entity.ErrKindAlreadySelected) {
			return nil, errors.Wrap(domainerrors.ErrKindImmutable, "session already bound to kind "+session.Kind().String())
		}

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	srv.log(ctx).Info("Onboarding kind selected",
		slog.String("principalID", principal.ID),
		slog.String("kind", kind.String()))

	return session, nil
}

// Submit validates the kind-specific details and performs the one allowed
// profile-creation write. A concurrent submit that loses the create race is
// reported as success; the existing record is canonical.
func (srv *onboardingService) Submit(ctx context.Context, principal *entity.Principal, input *usecase.SubmitDetailsInput) (*usecase.SubmitOutput, error) {
	if !principal.Valid() {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "principal has no provider-assigned ID")
	}

	session := srv.Session(principal)
	if session == nil || session.Kind() == entity.KindNone {
		// No live session. If the profile already exists the submit is a
		// duplicate and counts as success; otherwise the caller skipped kind
		// selection.
		resolution, err := srv.identity.Resolve(ctx, principal)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve principal before submit")
		}
		if resolution.ProfileExists {
			srv.log(ctx).Warn("Concurrent submission detected, existing profile kept",
				slog.String("principalID", principal.ID),
				slog.String("kind", resolution.Kind.String()))

			return &usecase.SubmitOutput{Profile: resolution.Profile, Created: false}, nil
		}

		return nil, errors.Wrap(domainerrors.ErrKindNotSelected, "no kind selected for this principal")
	}

	// Validate before touching the session state or the store. A rejected
	// submission performs zero writes.
	profile, err := srv.buildProfile(principal, session.Kind(), input)
	if err != nil {
		return nil, err
	}

	if err := session.BeginSubmit(); err != nil {
		switch {
		case errors.Is(err, entity.ErrKindNotSelected):
			return nil, errors.Wrap(domainerrors.ErrKindNotSelected, "no kind selected for this principal")
		case errors.Is(err, entity.ErrOnboardingComplete):
			return srv.alreadyOnboarded(ctx, principal, session.Kind())
		default:
			return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
		}
	}

	// Pre-check the opposite partition so a submit can never manufacture the
	// dual-profile state the resolver treats as fatal. The same-partition
	// race is left to the store's create-if-absent contract.
	if err := srv.checkOppositePartition(ctx, principal, session.Kind()); err != nil {
		session.FailSubmit()

		return nil, err
	}

	created, record, err := srv.profileRepo.CreateIfAbsent(ctx, profile)
	if err != nil {
		session.FailSubmit()
		srv.log(ctx).Error("Profile creation write failed",
			slog.String("principalID", principal.ID),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrProfileStoreUnavailable, "failed to persist profile")
	}

	if !created {
		// A parallel submit won the race. The caller still ends up onboarded,
		// but the log line must make the duplicate visible.
		srv.log(ctx).Warn("Concurrent submission detected, existing profile kept",
			slog.String("principalID", principal.ID),
			slog.String("kind", record.Kind.String()))
	} else {
		srv.afterProfileCreated(ctx, record)
	}

	session.CompleteSubmit()
	srv.dropSession(principal)

	return &usecase.SubmitOutput{Profile: record, Created: created}, nil
}

// sessionFor returns the principal's session, creating it on first use.
func (srv *onboardingService) sessionFor(principal *entity.Principal) *entity.OnboardingSession {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session, ok := srv.sessions[principal.ID]
	if !ok {
		session = entity.NewOnboardingSession(principal)
		srv.sessions[principal.ID] = session
	}

	return session
}

func (srv *onboardingService) dropSession(principal *entity.Principal) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	delete(srv.sessions, principal.ID)
}

// alreadyOnboarded answers a submit that arrives after the session completed.
// The profile exists, so the submit is reported as a non-creating success.
func (srv *onboardingService) alreadyOnboarded(ctx context.Context, principal *entity.Principal, kind entity.Kind) (*usecase.SubmitOutput, error) {
	record, err := srv.profileRepo.Find(ctx, kind, principal.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "completed session but profile is missing")
		}

		return nil, errors.Wrap(domainerrors.ErrProfileStoreUnavailable, "failed to load existing profile")
	}

	srv.log(ctx).Warn("Concurrent submission detected, existing profile kept",
		slog.String("principalID", principal.ID),
		slog.String("kind", kind.String()))

	return &usecase.SubmitOutput{Profile: record, Created: false}, nil
}

func (srv *onboardingService) checkOppositePartition(ctx context.Context, principal *entity.Principal, kind entity.Kind) error {
	opposite := entity.KindMerchant
	if kind == entity.KindMerchant {
		opposite = entity.KindUser
	}

	_, err := srv.profileRepo.Find(ctx, opposite, principal.ID)
	if err == nil {
		return errors.Wrap(domainerrors.ErrProfileAlreadyExists, "profile already exists in the "+opposite.String()+" partition")
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return errors.Wrap(domainerrors.ErrProfileStoreUnavailable, "failed to query "+opposite.String()+" partition")
	}

	return nil
}

// buildProfile validates the submitted details and assembles the profile
// entity. Validation failures name the offending fields.
func (srv *onboardingService) buildProfile(principal *entity.Principal, kind entity.Kind, input *usecase.SubmitDetailsInput) (*entity.Profile, error) {
	if input == nil {
		return nil, domainerrors.NewFieldValidationError("details")
	}

	profile := &entity.Profile{
		PrincipalID: principal.ID,
		Kind:        kind,
		Email:       principal.Email,
		CreatedAt:   time.Now().UTC(),
	}

	switch kind {
	case entity.KindUser:
		if input.User == nil {
			return nil, domainerrors.NewFieldValidationError("user")
		}

		details, err := srv.buildUserDetails(input.User)
		if err != nil {
			return nil, err
		}
		profile.User = details
	case entity.KindMerchant:
		if input.Merchant == nil {
			return nil, domainerrors.NewFieldValidationError("merchant")
		}

		details, err := srv.buildMerchantDetails(input.Merchant)
		if err != nil {
			return nil, err
		}
		profile.Merchant = details
	default:
		return nil, errors.Wrap(domainerrors.ErrKindNotSelected, "no kind selected for this principal")
	}

	return profile, nil
}

func (srv *onboardingService) buildUserDetails(input *usecase.UserDetailsInput) (*entity.UserDetails, error) {
	if fields := srv.invalidFields(input); len(fields) > 0 {
		return nil, domainerrors.NewFieldValidationError(fields...)
	}

	// Age arrives as a string from form clients. A non-numeric or negative
	// value names the field instead of collapsing to zero.
	age, err := strconv.ParseUint(input.Age, 10, 8)
	if err != nil {
		return nil, domainerrors.NewFieldValidationError("age")
	}

	return &entity.UserDetails{
		Name:     input.Name,
		Phone:    input.Phone,
		Age:      uint(age),
		Gender:   input.Gender,
		Disabled: input.Disabled,
	}, nil
}

func (srv *onboardingService) buildMerchantDetails(input *usecase.MerchantDetailsInput) (*entity.MerchantDetails, error) {
	if fields := srv.invalidFields(input); len(fields) > 0 {
		return nil, domainerrors.NewFieldValidationError(fields...)
	}

	return &entity.MerchantDetails{
		OwnerName:           input.OwnerName,
		Phone:               input.Phone,
		BusinessName:        input.BusinessName,
		BusinessAddress:     input.BusinessAddress,
		BusinessDescription: input.BusinessDescription,
		BusinessCategory:    input.BusinessCategory,
		BusinessWebsite:     input.BusinessWebsite,
		BusinessLogoURL:     input.BusinessLogoURL,
	}, nil
}

// invalidFields runs struct validation and maps the failures to the wire
// field names of the input struct.
func (srv *onboardingService) invalidFields(input any) []string {
	err := srv.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{"details"}
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, wireFieldName(input, fieldErr.StructField()))
	}

	return fields
}

// afterProfileCreated runs the side effects of a successful creation write:
// the directory listing for merchants and the profile.created event. Both are
// best-effort; the profile write is already durable.
func (srv *onboardingService) afterProfileCreated(ctx context.Context, profile *entity.Profile) {
	if listing := entity.ListingFromProfile(profile); listing != nil {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.ListingRepo().Create(ctx, listing)
		})
		if err != nil {
			srv.log(ctx).Error("Failed to create directory listing for merchant",
				slog.String("principalID", profile.PrincipalID),
				slog.Any("error", err))
		}
	}

	event := &service.ProfileEvent{
		Type:        service.ProfileEventTypeCreated,
		PrincipalID: profile.PrincipalID,
		Kind:        profile.Kind,
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt:  time.Now().UTC(),
	}
	if err := srv.publisher.PublishProfileEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish profile event",
			slog.String("principalID", profile.PrincipalID),
			slog.Any("error", err))
	}
}
