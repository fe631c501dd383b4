package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"parkplan/internal/delivery/http/response"
	"parkplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for live-location and geofence handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// UpdateLocationRequest represents one position report from a member's device
type UpdateLocationRequest struct {
	Latitude       float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude      float64 `json:"longitude" validate:"min=-180,max=180"`
	SharingEnabled bool    `json:"sharing_enabled"`
}

// CreateGeofenceRequest represents the request body for creating a zone
type CreateGeofenceRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Latitude     float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0,max=10000"`
}

// UpdateGeofenceRequest represents the request body for patching a zone
type UpdateGeofenceRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	RadiusMeters *float64 `json:"radius_meters,omitempty" validate:"omitempty,gt=0,max=10000"`
}

// locationUpdateResult pairs the stored position with the zone alerts the
// write produced.
type locationUpdateResult struct {
	Location any `json:"location"`
	Alerts   any `json:"alerts,omitempty"`
}

// Update handles storing the caller's position
func (h *LocationHandler) Update(c echo.Context) error {
	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateLocationInput{
		VacationID:     c.Param("id"),
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		SharingEnabled: req.SharingEnabled,
	}

	location, alerts, err := h.locationUC.UpdateLocation(c.Request().Context(), identity(c), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locationUpdateResult{Location: location, Alerts: alerts}, "Location updated successfully")
}

// List handles retrieving every shared position in a vacation
func (h *LocationHandler) List(c echo.Context) error {
	locations, err := h.locationUC.ListLocations(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// Delete handles removing a stored position
func (h *LocationHandler) Delete(c echo.Context) error {
	if err := h.locationUC.DeleteLocation(c.Request().Context(), identity(c), c.Param("id"), c.Param("uid")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Location deleted successfully")
}

// CreateGeofence handles creating a zone within a vacation
func (h *LocationHandler) CreateGeofence(c echo.Context) error {
	var req CreateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateGeofenceInput{
		VacationID:   c.Param("id"),
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
	}

	geofence, err := h.locationUC.CreateGeofence(c.Request().Context(), identity(c), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, geofence, "Geofence created successfully")
}

// ListGeofences handles retrieving the zones of a vacation
func (h *LocationHandler) ListGeofences(c echo.Context) error {
	geofences, err := h.locationUC.ListGeofences(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, geofences, "Geofences retrieved successfully")
}

// UpdateGeofence handles patching a zone
func (h *LocationHandler) UpdateGeofence(c echo.Context) error {
	var req UpdateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateGeofenceInput{
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
	}

	geofence, err := h.locationUC.UpdateGeofence(c.Request().Context(), identity(c), c.Param("geofenceId"), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, geofence, "Geofence updated successfully")
}

// DeleteGeofence handles removing a zone
func (h *LocationHandler) DeleteGeofence(c echo.Context) error {
	if err := h.locationUC.DeleteGeofence(c.Request().Context(), identity(c), c.Param("geofenceId")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Geofence deleted successfully")
}

// ListAlerts handles retrieving the newest zone-entry alerts of a vacation
func (h *LocationHandler) ListAlerts(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Invalid limit parameter")
		}
		limit = parsed
	}

	alerts, err := h.locationUC.ListAlerts(c.Request().Context(), identity(c), c.Param("id"), limit)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts, "Alerts retrieved successfully")
}
