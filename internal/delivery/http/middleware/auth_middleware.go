package middleware

import (
	"strings"

	deliverycontext "parkplan/internal/delivery/context"
	"parkplan/internal/delivery/http/response"
	"parkplan/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware verifies Firebase ID tokens and attaches the caller
// identity to the request. The access policy downstream decides what the
// identity may do, so most routes accept anonymous callers and let the
// policy deny them.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Resolve verifies the bearer token when one is present and continues
// anonymously when it is not. A present but invalid token is rejected so a
// client never silently downgrades to anonymous.
func (m *AuthMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		ident, err := m.verifier.VerifyIDToken(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetIdentity(c, ident)
		ctx := deliverycontext.WithIdentity(c.Request().Context(), ident)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// Authenticate requires a valid bearer token. It must run after Resolve has
// had a chance to verify the header, so it only checks the outcome.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ident := deliverycontext.GetIdentity(c); ident.SignedIn() {
			return next(c)
		}

		return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", false
	}

	return token, true
}
