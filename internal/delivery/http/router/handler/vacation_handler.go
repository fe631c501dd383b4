package handler

import (
	"log/slog"
	"net/http"
	"time"

	"parkplan/internal/delivery/http/response"
	"parkplan/internal/domain/entity"
	"parkplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VacationHandlerParams holds dependencies for VacationHandler, injected by Fx.
type VacationHandlerParams struct {
	fx.In

	VacationUC usecase.VacationUsecase
	Logger     *slog.Logger
}

// VacationHandler holds dependencies for vacation and membership handlers
type VacationHandler struct {
	vacationUC usecase.VacationUsecase
	logger     *slog.Logger
}

// NewVacationHandler is the constructor for VacationHandler
func NewVacationHandler(params VacationHandlerParams) *VacationHandler {
	return &VacationHandler{
		vacationUC: params.VacationUC,
		logger:     params.Logger,
	}
}

// AccommodationRequest mirrors the lodging block of a vacation.
type AccommodationRequest struct {
	ResortID     string    `json:"resort_id"`
	Name         string    `json:"name"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Confirmation string    `json:"confirmation"`
}

func (r *AccommodationRequest) toEntity() *entity.Accommodation {
	if r == nil {
		return nil
	}

	return &entity.Accommodation{
		ResortID:     r.ResortID,
		Name:         r.Name,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		Confirmation: r.Confirmation,
	}
}

// CreateVacationRequest represents the request body for creating a vacation
type CreateVacationRequest struct {
	Name          string                `json:"name" validate:"required,max=200"`
	Destination   string                `json:"destination" validate:"required"`
	StartDate     time.Time             `json:"start_date" validate:"required"`
	EndDate       time.Time             `json:"end_date" validate:"required"`
	Accommodation *AccommodationRequest `json:"accommodation"`
	Adults        int                   `json:"adults" validate:"min=0"`
	Children      int                   `json:"children" validate:"min=0"`
	JoinPIN       string                `json:"join_pin" validate:"omitempty,len=4,numeric"`
	IsPublic      bool                  `json:"is_public"`
	DisplayName   string                `json:"display_name"`
}

// UpdateVacationRequest represents the request body for patching a vacation
type UpdateVacationRequest struct {
	Name          *string               `json:"name,omitempty" validate:"omitempty,max=200"`
	Destination   *string               `json:"destination,omitempty"`
	StartDate     *time.Time            `json:"start_date,omitempty"`
	EndDate       *time.Time            `json:"end_date,omitempty"`
	Status        *string               `json:"status,omitempty" validate:"omitempty,oneof=planning confirmed active completed"`
	Accommodation *AccommodationRequest `json:"accommodation,omitempty"`
	Adults        *int                  `json:"adults,omitempty" validate:"omitempty,min=0"`
	Children      *int                  `json:"children,omitempty" validate:"omitempty,min=0"`
	JoinPIN       *string               `json:"join_pin,omitempty"`
	IsPublic      *bool                 `json:"is_public,omitempty"`
}

// MemberPermissionsRequest mirrors the capability flags of a membership.
type MemberPermissionsRequest struct {
	EditItinerary bool `json:"edit_itinerary"`
	ManageBudget  bool `json:"manage_budget"`
	InviteOthers  bool `json:"invite_others"`
}

// AddMemberRequest represents the request body for adding a member directly
type AddMemberRequest struct {
	UserID      string                   `json:"user_id" validate:"required"`
	DisplayName string                   `json:"display_name"`
	Role        string                   `json:"role" validate:"required,oneof=editor viewer"`
	Permissions MemberPermissionsRequest `json:"permissions"`
}

// UpdateMemberRequest represents the request body for patching a membership
type UpdateMemberRequest struct {
	DisplayName *string                   `json:"display_name,omitempty"`
	Role        *string                   `json:"role,omitempty" validate:"omitempty,oneof=owner editor viewer"`
	Permissions *MemberPermissionsRequest `json:"permissions,omitempty"`
}

// JoinRequest represents the request body for redeeming a share code
type JoinRequest struct {
	ShareCode   string `json:"share_code" validate:"required"`
	JoinPIN     string `json:"join_pin"`
	DisplayName string `json:"display_name"`
}

// InviteLinkRequest represents the request body for minting an invite link
type InviteLinkRequest struct {
	Role string `json:"role" validate:"required,oneof=editor viewer"`
}

// RedeemInviteRequest represents the request body for redeeming an invite token
type RedeemInviteRequest struct {
	Token       string `json:"token" validate:"required"`
	DisplayName string `json:"display_name"`
}

// Create handles creating a vacation
func (h *VacationHandler) Create(c echo.Context) error {
	var req CreateVacationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vacation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateVacationInput{
		Name:          req.Name,
		Destination:   req.Destination,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Accommodation: req.Accommodation.toEntity(),
		Adults:        req.Adults,
		Children:      req.Children,
		JoinPIN:       req.JoinPIN,
		IsPublic:      req.IsPublic,
		DisplayName:   req.DisplayName,
	}

	vacation, err := h.vacationUC.CreateVacation(c.Request().Context(), identity(c), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, vacation, "Vacation created successfully")
}

// Get handles retrieving a vacation
func (h *VacationHandler) Get(c echo.Context) error {
	vacation, err := h.vacationUC.GetVacation(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vacation, "Vacation retrieved successfully")
}

// List handles retrieving the caller's vacations
func (h *VacationHandler) List(c echo.Context) error {
	vacations, err := h.vacationUC.ListVacations(c.Request().Context(), identity(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vacations, "Vacations retrieved successfully")
}

// Update handles patching a vacation
func (h *VacationHandler) Update(c echo.Context) error {
	var req UpdateVacationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vacation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateVacationInput{
		Name:          req.Name,
		Destination:   req.Destination,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Accommodation: req.Accommodation.toEntity(),
		Adults:        req.Adults,
		Children:      req.Children,
		JoinPIN:       req.JoinPIN,
		IsPublic:      req.IsPublic,
	}
	if req.Status != nil {
		status := entity.VacationStatus(*req.Status)
		input.Status = &status
	}

	vacation, err := h.vacationUC.UpdateVacation(c.Request().Context(), identity(c), c.Param("id"), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vacation, "Vacation updated successfully")
}

// Delete handles removing a vacation
func (h *VacationHandler) Delete(c echo.Context) error {
	if err := h.vacationUC.DeleteVacation(c.Request().Context(), identity(c), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Vacation deleted successfully")
}

// RotateShareCode handles replacing a vacation's share code
func (h *VacationHandler) RotateShareCode(c echo.Context) error {
	vacation, err := h.vacationUC.RotateShareCode(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vacation, "Share code rotated successfully")
}

// ListMembers handles retrieving the member list of a vacation
func (h *VacationHandler) ListMembers(c echo.Context) error {
	members, err := h.vacationUC.ListMembers(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, members, "Members retrieved successfully")
}

// AddMember handles adding a member directly
func (h *VacationHandler) AddMember(c echo.Context) error {
	var req AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid member input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AddMemberInput{
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		Role:        entity.MemberRole(req.Role),
		Permissions: entity.PermissionSet{
			EditItinerary: req.Permissions.EditItinerary,
			ManageBudget:  req.Permissions.ManageBudget,
			InviteOthers:  req.Permissions.InviteOthers,
		},
	}

	member, err := h.vacationUC.AddMember(c.Request().Context(), identity(c), c.Param("id"), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, member, "Member added successfully")
}

// UpdateMember handles patching a membership
func (h *VacationHandler) UpdateMember(c echo.Context) error {
	var req UpdateMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid member input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateMemberInput{
		DisplayName: req.DisplayName,
	}
	if req.Role != nil {
		role := entity.MemberRole(*req.Role)
		input.Role = &role
	}
	if req.Permissions != nil {
		input.Permissions = &entity.PermissionSet{
			EditItinerary: req.Permissions.EditItinerary,
			ManageBudget:  req.Permissions.ManageBudget,
			InviteOthers:  req.Permissions.InviteOthers,
		}
	}

	member, err := h.vacationUC.UpdateMember(c.Request().Context(), identity(c), c.Param("id"), c.Param("uid"), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member, "Member updated successfully")
}

// RemoveMember handles deleting a membership
func (h *VacationHandler) RemoveMember(c echo.Context) error {
	if err := h.vacationUC.RemoveMember(c.Request().Context(), identity(c), c.Param("id"), c.Param("uid")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Member removed successfully")
}

// Join handles redeeming a share code
func (h *VacationHandler) Join(c echo.Context) error {
	var req JoinRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid join input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.JoinInput{
		ShareCode:   req.ShareCode,
		JoinPIN:     req.JoinPIN,
		DisplayName: req.DisplayName,
	}

	member, err := h.vacationUC.JoinByShareCode(c.Request().Context(), identity(c), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, member, "Joined vacation successfully")
}

// CreateInviteLink handles minting a signed invite token
func (h *VacationHandler) CreateInviteLink(c echo.Context) error {
	var req InviteLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	token, err := h.vacationUC.CreateInviteLink(c.Request().Context(), identity(c), c.Param("id"), entity.MemberRole(req.Role))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"token": token}, "Invite link created successfully")
}

// RedeemInvite handles redeeming a signed invite token
func (h *VacationHandler) RedeemInvite(c echo.Context) error {
	var req RedeemInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	member, err := h.vacationUC.JoinByInviteToken(c.Request().Context(), identity(c), req.Token, req.DisplayName)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, member, "Joined vacation successfully")
}

// JoinQR handles rendering the vacation's share code as a QR code PNG
func (h *VacationHandler) JoinQR(c echo.Context) error {
	png, err := h.vacationUC.GenerateJoinQR(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
