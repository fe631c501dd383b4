package context

import (
	"context"

	"github.com/labstack/echo/v4"

	"parkplan/internal/domain/authz"
)

// SetIdentity stores the verified caller identity in echo.Context.
func SetIdentity(c echo.Context, ident *authz.Identity) {
	c.Set(string(KeyIdentity), ident)
}

// GetIdentity extracts the verified caller identity from echo.Context.
// Returns nil for anonymous requests.
func GetIdentity(c echo.Context) *authz.Identity {
	if ident, ok := c.Get(string(KeyIdentity)).(*authz.Identity); ok {
		return ident
	}

	return nil
}

// WithIdentity returns a new context carrying the caller identity.
func WithIdentity(ctx context.Context, ident *authz.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, ident)
}

// GetIdentityFromContext extracts the caller identity from standard
// context.Context. Returns nil for anonymous requests.
func GetIdentityFromContext(ctx context.Context) *authz.Identity {
	if ident, ok := ctx.Value(KeyIdentity).(*authz.Identity); ok {
		return ident
	}

	return nil
}
