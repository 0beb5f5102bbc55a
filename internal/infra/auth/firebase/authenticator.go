// Package firebase verifies Firebase Auth ID tokens and maps them to
// principals. The token is the only identity input the rest of the system
// sees; profile data never rides along in it.
package firebase

import (
	"context"
	"log/slog"

	"wander/config"
	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type authenticator struct {
	client *firebaseauth.Client
	logger *slog.Logger
}

// NewAuthenticator creates a Firebase-backed Authenticator.
func NewAuthenticator(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.Authenticator, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &authenticator{
		client: client,
		logger: logger,
	}, nil
}

// VerifyIDToken checks the ID token's signature and expiry and extracts the
// principal. An unverifiable token yields no principal at all.
func (a *authenticator) VerifyIDToken(ctx context.Context, idToken string) (*entity.Principal, error) {
	if idToken == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidIDToken, "empty ID token")
	}

	token, err := a.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		a.logger.Debug("ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidIDToken, "token verification failed")
	}

	principal := &entity.Principal{
		ID:          token.UID,
		DisplayName: stringClaim(token, "name"),
		Email:       stringClaim(token, "email"),
	}
	if !principal.Valid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidIDToken, "token carries no subject")
	}

	return principal, nil
}

func stringClaim(token *firebaseauth.Token, key string) string {
	if value, ok := token.Claims[key].(string); ok {
		return value
	}

	return ""
}
