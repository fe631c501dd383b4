package handler

import (
	"log/slog"
	"net/http"
	"time"

	"parkplan/internal/delivery/http/response"
	"parkplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReferenceHandlerParams holds dependencies for ReferenceHandler, injected by Fx.
type ReferenceHandlerParams struct {
	fx.In

	ReferenceUC usecase.ReferenceUsecase
	Logger      *slog.Logger
}

// ReferenceHandler holds dependencies for catalog-browsing handlers
type ReferenceHandler struct {
	referenceUC usecase.ReferenceUsecase
	logger      *slog.Logger
}

// NewReferenceHandler is the constructor for ReferenceHandler
func NewReferenceHandler(params ReferenceHandlerParams) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUC: params.ReferenceUC,
		logger:      params.Logger,
	}
}

// ListParks handles retrieving the park catalog
func (h *ReferenceHandler) ListParks(c echo.Context) error {
	parks, err := h.referenceUC.ListParks(c.Request().Context(), identity(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, parks, "Parks retrieved successfully")
}

// GetPark handles retrieving one park
func (h *ReferenceHandler) GetPark(c echo.Context) error {
	park, err := h.referenceUC.GetPark(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, park, "Park retrieved successfully")
}

// ListAttractions handles retrieving the attractions of a park
func (h *ReferenceHandler) ListAttractions(c echo.Context) error {
	attractions, err := h.referenceUC.ListAttractions(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, attractions, "Attractions retrieved successfully")
}

// ListRestaurants handles retrieving the restaurants of a park
func (h *ReferenceHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.referenceUC.ListRestaurants(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

// ListResorts handles retrieving the resort catalog
func (h *ReferenceHandler) ListResorts(c echo.Context) error {
	resorts, err := h.referenceUC.ListResorts(c.Request().Context(), identity(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resorts, "Resorts retrieved successfully")
}

// GetParkHours handles retrieving the operating schedule of a park for one day
func (h *ReferenceHandler) GetParkHours(c echo.Context) error {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Date must be formatted YYYY-MM-DD")
		}
		date = parsed
	}

	hours, err := h.referenceUC.GetParkHours(c.Request().Context(), identity(c), c.Param("id"), date)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hours, "Park hours retrieved successfully")
}

// GetWaitTimes handles retrieving the live wait-time board of a park
func (h *ReferenceHandler) GetWaitTimes(c echo.Context) error {
	waits, err := h.referenceUC.GetWaitTimes(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, waits, "Wait times retrieved successfully")
}
