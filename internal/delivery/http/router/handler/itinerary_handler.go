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

// ItineraryHandlerParams holds dependencies for ItineraryHandler, injected by Fx.
type ItineraryHandlerParams struct {
	fx.In

	ItineraryUC usecase.ItineraryUsecase
	Logger      *slog.Logger
}

// ItineraryHandler holds dependencies for day-plan handlers
type ItineraryHandler struct {
	itineraryUC usecase.ItineraryUsecase
	logger      *slog.Logger
}

// NewItineraryHandler is the constructor for ItineraryHandler
func NewItineraryHandler(params ItineraryHandlerParams) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUC: params.ItineraryUC,
		logger:      params.Logger,
	}
}

// CreateItineraryRequest represents the request body for creating a day plan
type CreateItineraryRequest struct {
	VacationID string    `json:"vacation_id" validate:"required"`
	ParkID     string    `json:"park_id"`
	Date       time.Time `json:"date" validate:"required"`
	Notes      string    `json:"notes" validate:"max=2000"`
}

// UpdateItineraryRequest represents the request body for patching a day plan
type UpdateItineraryRequest struct {
	ParkID *string    `json:"park_id,omitempty"`
	Date   *time.Time `json:"date,omitempty"`
	Notes  *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// CreateItemRequest represents the request body for scheduling an activity
type CreateItemRequest struct {
	AttractionID string    `json:"attraction_id"`
	Name         string    `json:"name" validate:"required,max=200"`
	Kind         string    `json:"kind" validate:"required"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required"`
	Notes        string    `json:"notes" validate:"max=2000"`
}

// UpdateItemRequest represents the request body for patching an activity
type UpdateItemRequest struct {
	AttractionID *string    `json:"attraction_id,omitempty"`
	Name         *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	Kind         *string    `json:"kind,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Notes        *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// CreateCalendarEventRequest represents the request body for creating an event
type CreateCalendarEventRequest struct {
	VacationID string    `json:"vacation_id" validate:"required"`
	Title      string    `json:"title" validate:"required,max=200"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" validate:"required"`
}

// UpdateCalendarEventRequest represents the request body for patching an event
type UpdateCalendarEventRequest struct {
	Title     *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// Create handles creating a day plan
func (h *ItineraryHandler) Create(c echo.Context) error {
	var req CreateItineraryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid itinerary input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateItineraryInput{
		VacationID: req.VacationID,
		ParkID:     req.ParkID,
		Date:       req.Date,
		Notes:      req.Notes,
	}

	itinerary, err := h.itineraryUC.CreateItinerary(c.Request().Context(), identity(c), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, itinerary, "Itinerary created successfully")
}

// Get handles retrieving a day plan
func (h *ItineraryHandler) Get(c echo.Context) error {
	itinerary, err := h.itineraryUC.GetItinerary(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, itinerary, "Itinerary retrieved successfully")
}

// List handles retrieving the day plans of a vacation
func (h *ItineraryHandler) List(c echo.Context) error {
	itineraries, err := h.itineraryUC.ListItineraries(c.Request().Context(), identity(c), c.QueryParam("vacation_id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, itineraries, "Itineraries retrieved successfully")
}

// Update handles patching a day plan
func (h *ItineraryHandler) Update(c echo.Context) error {
	var req UpdateItineraryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid itinerary input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateItineraryInput{
		ParkID: req.ParkID,
		Date:   req.Date,
		Notes:  req.Notes,
	}

	itinerary, err := h.itineraryUC.UpdateItinerary(c.Request().Context(), identity(c), c.Param("id"), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, itinerary, "Itinerary updated successfully")
}

// Delete handles removing a day plan
func (h *ItineraryHandler) Delete(c echo.Context) error {
	if err := h.itineraryUC.DeleteItinerary(c.Request().Context(), identity(c), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Itinerary deleted successfully")
}

// AddItem handles scheduling an activity within a day plan
func (h *ItineraryHandler) AddItem(c echo.Context) error {
	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateItemInput{
		AttractionID: req.AttractionID,
		Name:         req.Name,
		Kind:         req.Kind,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Notes:        req.Notes,
	}

	item, err := h.itineraryUC.AddItem(c.Request().Context(), identity(c), c.Param("id"), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Activity scheduled successfully")
}

// ListItems handles retrieving the activities of a day plan
func (h *ItineraryHandler) ListItems(c echo.Context) error {
	items, err := h.itineraryUC.ListItems(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Activities retrieved successfully")
}

// UpdateItem handles patching an activity
func (h *ItineraryHandler) UpdateItem(c echo.Context) error {
	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateItemInput{
		AttractionID: req.AttractionID,
		Name:         req.Name,
		Kind:         req.Kind,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Notes:        req.Notes,
	}

	item, err := h.itineraryUC.UpdateItem(c.Request().Context(), identity(c), c.Param("id"), c.Param("itemId"), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Activity updated successfully")
}

// RemoveItem handles deleting an activity from a day plan
func (h *ItineraryHandler) RemoveItem(c echo.Context) error {
	if err := h.itineraryUC.RemoveItem(c.Request().Context(), identity(c), c.Param("id"), c.Param("itemId")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Activity removed successfully")
}

// CreateCalendarEvent handles creating a vacation-scoped event
func (h *ItineraryHandler) CreateCalendarEvent(c echo.Context) error {
	var req CreateCalendarEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateCalendarEventInput{
		VacationID: req.VacationID,
		Title:      req.Title,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	event, err := h.itineraryUC.CreateCalendarEvent(c.Request().Context(), identity(c), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created successfully")
}

// ListCalendarEvents handles retrieving the events of a vacation in a window
func (h *ItineraryHandler) ListCalendarEvents(c echo.Context) error {
	from, err := parseTimeParam(c.QueryParam("from"))
	if err != nil {
		return response.BadRequest(c, "INVALID_WINDOW", "Invalid from timestamp")
	}

	to, err := parseTimeParam(c.QueryParam("to"))
	if err != nil {
		return response.BadRequest(c, "INVALID_WINDOW", "Invalid to timestamp")
	}

	events, err := h.itineraryUC.ListCalendarEvents(c.Request().Context(), identity(c), c.QueryParam("vacation_id"), from, to)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events, "Events retrieved successfully")
}

// UpdateCalendarEvent handles patching an event
func (h *ItineraryHandler) UpdateCalendarEvent(c echo.Context) error {
	var req UpdateCalendarEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateCalendarEventInput{
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	event, err := h.itineraryUC.UpdateCalendarEvent(c.Request().Context(), identity(c), c.Param("id"), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event, "Event updated successfully")
}

// DeleteCalendarEvent handles removing an event
func (h *ItineraryHandler) DeleteCalendarEvent(c echo.Context) error {
	if err := h.itineraryUC.DeleteCalendarEvent(c.Request().Context(), identity(c), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Event deleted successfully")
}

// parseTimeParam parses an RFC 3339 query parameter. An empty value yields
// the zero time, which the usecase treats as an open bound.
func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339, raw)
}
