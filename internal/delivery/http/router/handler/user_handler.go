package handler

import (
	"log/slog"
	"net/http"

	"parkplan/internal/delivery/http/response"
	"parkplan/internal/domain/entity"
	"parkplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for profile-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// TravelPreferencesRequest mirrors the planning preferences stored on a profile.
type TravelPreferencesRequest struct {
	PartySize       int    `json:"party_size" validate:"omitempty,min=1"`
	ChildrenAges    []int  `json:"children_ages"`
	RidePreference  string `json:"ride_preference" validate:"omitempty,oneof=thrill family all"`
	MaxWaitMinutes  int    `json:"max_wait_minutes" validate:"omitempty,min=0"`
	UseGeniePlus    bool   `json:"use_genie_plus"`
	WalkingPace     string `json:"walking_pace" validate:"omitempty,oneof=relaxed moderate fast"`
	NotifyWaitDrops bool   `json:"notify_wait_drops"`
	NotifyMessages  bool   `json:"notify_messages"`
}

func (r *TravelPreferencesRequest) toEntity() *entity.TravelPreferences {
	if r == nil {
		return nil
	}

	return &entity.TravelPreferences{
		PartySize:       r.PartySize,
		ChildrenAges:    r.ChildrenAges,
		RidePreference:  r.RidePreference,
		MaxWaitMinutes:  r.MaxWaitMinutes,
		UseGeniePlus:    r.UseGeniePlus,
		WalkingPace:     r.WalkingPace,
		NotifyWaitDrops: r.NotifyWaitDrops,
		NotifyMessages:  r.NotifyMessages,
	}
}

// RegisterUserRequest represents the request body for creating a profile
type RegisterUserRequest struct {
	DisplayName string                    `json:"display_name" validate:"required,max=100"`
	PhotoURL    string                    `json:"photo_url" validate:"omitempty,url"`
	Phone       string                    `json:"phone"`
	Preferences *TravelPreferencesRequest `json:"preferences"`
}

// UpdateUserRequest represents the request body for patching a profile
type UpdateUserRequest struct {
	DisplayName *string                   `json:"display_name,omitempty" validate:"omitempty,max=100"`
	PhotoURL    *string                   `json:"photo_url,omitempty"`
	Phone       *string                   `json:"phone,omitempty"`
	Preferences *TravelPreferencesRequest `json:"preferences,omitempty"`
}

// DeviceTokenRequest represents the request body for device registration
type DeviceTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// Register handles creating the caller's profile
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RegisterUserInput{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Phone:       req.Phone,
		Preferences: req.Preferences.toEntity(),
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), identity(c), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user, "Profile created successfully")
}

// Get handles retrieving a profile
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userUC.GetUser(c.Request().Context(), identity(c), c.Param("uid"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// Update handles patching a profile
func (h *UserHandler) Update(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateUserInput{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Phone:       req.Phone,
		Preferences: req.Preferences.toEntity(),
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), identity(c), c.Param("uid"), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// Delete handles removing a profile
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userUC.DeleteUser(c.Request().Context(), identity(c), c.Param("uid")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile deleted successfully")
}

// RegisterDevice handles storing an FCM registration token on the caller's profile
func (h *UserHandler) RegisterDevice(c echo.Context) error {
	var req DeviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.userUC.RegisterDevice(c.Request().Context(), identity(c), req.Token); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Device registered successfully")
}

// UnregisterDevice handles removing an FCM registration token from the caller's profile
func (h *UserHandler) UnregisterDevice(c echo.Context) error {
	var req DeviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.userUC.UnregisterDevice(c.Request().Context(), identity(c), req.Token); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device unregistered successfully")
}
