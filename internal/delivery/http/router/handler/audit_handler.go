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

// AuditHandlerParams holds dependencies for AuditHandler, injected by Fx.
type AuditHandlerParams struct {
	fx.In

	AuditUC usecase.AuditUsecase
	Logger  *slog.Logger
}

// AuditHandler holds dependencies for error-report and activity handlers
type AuditHandler struct {
	auditUC usecase.AuditUsecase
	logger  *slog.Logger
}

// NewAuditHandler is the constructor for AuditHandler
func NewAuditHandler(params AuditHandlerParams) *AuditHandler {
	return &AuditHandler{
		auditUC: params.AuditUC,
		logger:  params.Logger,
	}
}

// ReportErrorRequest represents one client-reported error
type ReportErrorRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
	Detail  string `json:"detail" validate:"max=10000"`
}

// ReportError handles recording an error reported by a client device
func (h *AuditHandler) ReportError(c echo.Context) error {
	var req ReportErrorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid error report input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ReportErrorInput{
		Message: req.Message,
		Detail:  req.Detail,
	}

	if err := h.auditUC.ReportClientError(c.Request().Context(), identity(c), input); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Error report recorded")
}

// ListActivity handles retrieving the newest activity records of a vacation
func (h *AuditHandler) ListActivity(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Invalid limit parameter")
		}
		limit = parsed
	}

	logs, err := h.auditUC.ListActivity(c.Request().Context(), identity(c), c.Param("id"), limit)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs, "Activity retrieved successfully")
}
