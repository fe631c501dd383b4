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

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// MessageHandler holds dependencies for group-chat handlers
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// SendMessageRequest represents the request body for posting a message
type SendMessageRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

// EditMessageRequest represents the request body for editing a message
type EditMessageRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

// ReactRequest represents the request body for setting a reaction. An empty
// emoji removes the caller's reaction.
type ReactRequest struct {
	Emoji string `json:"emoji" validate:"max=16"`
}

// Send handles posting a message to the vacation chat
func (h *MessageHandler) Send(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message, err := h.messageUC.SendMessage(c.Request().Context(), identity(c), c.Param("id"), req.Body)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// List handles retrieving the newest messages of a vacation
func (h *MessageHandler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Invalid limit parameter")
		}
		limit = parsed
	}

	messages, err := h.messageUC.ListMessages(c.Request().Context(), identity(c), c.Param("id"), limit)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// Edit handles replacing the body of the caller's own message
func (h *MessageHandler) Edit(c echo.Context) error {
	var req EditMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message, err := h.messageUC.EditMessage(c.Request().Context(), identity(c), c.Param("id"), c.Param("messageId"), req.Body)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message, "Message edited successfully")
}

// React handles setting or clearing the caller's reaction on a message
func (h *MessageHandler) React(c echo.Context) error {
	var req ReactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reaction input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message, err := h.messageUC.ReactToMessage(c.Request().Context(), identity(c), c.Param("id"), c.Param("messageId"), req.Emoji)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message, "Reaction updated successfully")
}

// Delete handles removing a message
func (h *MessageHandler) Delete(c echo.Context) error {
	if err := h.messageUC.DeleteMessage(c.Request().Context(), identity(c), c.Param("id"), c.Param("messageId")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Message deleted successfully")
}
