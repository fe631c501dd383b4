package handler

import (
	"net/http"

	"parkplan/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// DebugHandler exposes testing endpoints. Registered only when the
// testRoutes config block enables them, never in production.
type DebugHandler struct{}

// NewDebugHandler is the constructor for DebugHandler
func NewDebugHandler() *DebugHandler {
	return &DebugHandler{}
}

// WhoAmI echoes the identity the auth middleware resolved, so clients can
// verify their token and custom claims.
func (h *DebugHandler) WhoAmI(c echo.Context) error {
	ident := identity(c)
	if ident == nil {
		return response.Success(c, http.StatusOK, map[string]any{"anonymous": true}, "")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"uid":            ident.UID,
		"email":          ident.Email,
		"email_verified": ident.EmailVerified,
		"admin":          ident.Admin,
		"moderator":      ident.Moderator,
	}, "")
}
