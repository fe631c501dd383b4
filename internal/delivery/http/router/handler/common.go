// Package handler contains the echo handlers of the client-facing HTTP API.
package handler

import (
	"net/http"

	deliverycontext "parkplan/internal/delivery/context"
	"parkplan/internal/delivery/http/response"
	"parkplan/internal/domain/authz"
	domainerrors "parkplan/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports liveness for load balancers.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// identity extracts the verified caller identity set by the auth middleware.
// Nil means the request is anonymous.
func identity(c echo.Context) *authz.Identity {
	return deliverycontext.GetIdentity(c)
}

// handleAppError translates application errors into the response envelope.
// Anything that is not an AppError bubbles up to the error middleware.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
