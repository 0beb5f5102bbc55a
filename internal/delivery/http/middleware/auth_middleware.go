package middleware

import (
	"net/http"
	"strings"

	deliverycontext "wander/internal/delivery/context"
	"wander/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware verifies the Firebase ID token on incoming requests and
// places the resulting principal on the request context. It also feeds the
// session registry so principal-change subscribers see logins as they happen.
type AuthMiddleware struct {
	authenticator service.Authenticator
	principals    service.PrincipalSource
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authenticator service.Authenticator, principals service.PrincipalSource) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
		principals:    principals,
	}
}

// Authenticate validates the Bearer ID token and attaches the principal.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		idToken := strings.TrimPrefix(authHeader, "Bearer ")
		if idToken == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		principal, err := m.authenticator.VerifyIDToken(c.Request().Context(), idToken)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired ID token"})
		}

		m.principals.Observe(principal)

		// Make the principal available both to handlers and to the usecase
		// layer through the request context.
		c.Set(string(deliverycontext.KeyPrincipal), principal)
		ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
