// Package handler processes Pub/Sub push deliveries for the async worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"parkplan/config"
	deliverycontext "parkplan/internal/delivery/context"
	"parkplan/internal/domain/constants"
	"parkplan/internal/domain/entity"
	"parkplan/internal/domain/repository"
	"parkplan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	eventTypeActivity = "activity"
	eventTypeGeofence = "geofence"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler drains the event queue: activity events become audit records,
// geofence events fan out as push notifications to the vacation party.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	auditRepo       repository.AuditRepository
	vacationRepo    repository.VacationRepository
	userRepo        repository.UserRepository
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	AuditRepo       repository.AuditRepository
	VacationRepo    repository.VacationRepository
	UserRepo        repository.UserRepository
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		auditRepo:       params.AuditRepo,
		vacationRepo:    params.VacationRepo,
		userRepo:        params.UserRepo,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	eventType := pushMsg.Message.Attributes["event_type"]

	if err := h.processEvent(ctx, reqLogger, eventType, data); err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes or the context
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 3. Generate new UUID as fallback
	return uuid.New().String()
}

// processEvent dispatches on the event type carried in the message attributes.
func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, eventType string, data []byte) error {
	switch eventType {
	case eventTypeActivity:
		var event service.ActivityEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return errors.WithStack(err)
		}

		return h.processActivity(ctx, logger, &event)

	case eventTypeGeofence:
		var event service.GeofenceEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return errors.WithStack(err)
		}

		return h.processGeofence(ctx, logger, &event)

	default:
		return errors.Errorf("unknown event type %q", eventType)
	}
}

// processActivity appends one audit record for a successful write.
func (h *PushHandler) processActivity(ctx context.Context, logger *slog.Logger, event *service.ActivityEvent) error {
	log := &entity.ActivityLog{
		ID:         uuid.New().String(),
		RequestID:  event.RequestID,
		ActorID:    event.ActorID,
		Collection: event.Collection,
		Action:     event.Action,
		ResourceID: event.ResourceID,
		VacationID: event.VacationID,
		CreatedAt:  time.Unix(event.OccurredAt, 0).UTC(),
	}

	if err := h.auditRepo.CreateActivityLog(ctx, log); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	logger.Info("[Worker] Activity recorded",
		slog.String("collection", event.Collection),
		slog.String("action", event.Action),
		slog.String("resource_id", event.ResourceID),
	)

	return nil
}

// processGeofence notifies the rest of the party that a member entered a zone.
func (h *PushHandler) processGeofence(ctx context.Context, logger *slog.Logger, event *service.GeofenceEvent) error {
	if h.notificationSvc == nil {
		logger.Warn("[Worker] Notification sender not configured, dropping zone entry",
			slog.String("geofence_id", event.GeofenceID),
		)

		return nil
	}

	members, err := h.vacationRepo.FindMembershipsByVacation(ctx, event.VacationID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	entering := displayNameOf(members, event.UserID)
	tokens, tokenOwners := h.collectTokens(ctx, logger, members, event.UserID)
	if len(tokens) == 0 {
		logger.Info("[Worker] No devices to notify for zone entry",
			slog.String("geofence_id", event.GeofenceID),
		)

		return nil
	}

	title := "Zone alert"
	body := fmt.Sprintf("%s arrived at %s", entering, event.ZoneName)
	data := map[string]string{
		"geofence_id": event.GeofenceID,
		"vacation_id": event.VacationID,
		"user_id":     event.UserID,
		"zone_name":   event.ZoneName,
		"latitude":    fmt.Sprintf("%f", event.Latitude),
		"longitude":   fmt.Sprintf("%f", event.Longitude),
	}

	sent, failed, invalidTokens, err := h.notificationSvc.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	// Drop tokens FCM reported as dead so they are not retried forever
	for _, token := range invalidTokens {
		owner, ok := tokenOwners[token]
		if !ok {
			continue
		}
		if err := h.userRepo.RemoveDeviceToken(ctx, owner, token); err != nil {
			logger.Warn("[Worker] Failed to remove invalid device token",
				slog.String("uid", owner),
				slog.Any("error", err),
			)
		}
	}

	logger.Info("[Worker] Zone entry fan-out completed",
		slog.String("geofence_id", event.GeofenceID),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// collectTokens gathers the device tokens of every member except the one who
// triggered the event. A missing profile is skipped, not fatal.
func (h *PushHandler) collectTokens(ctx context.Context, logger *slog.Logger, members []*entity.Membership, exceptUID string) ([]string, map[string]string) {
	tokens := make([]string, 0, len(members))
	owners := make(map[string]string)

	for _, member := range members {
		if member.UserID == exceptUID {
			continue
		}

		user, err := h.userRepo.FindUserByID(ctx, member.UserID)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				logger.Warn("[Worker] Failed to load member profile",
					slog.String("uid", member.UserID),
					slog.Any("error", err),
				)
			}

			continue
		}

		for _, token := range user.DeviceTokens {
			tokens = append(tokens, token)
			owners[token] = member.UserID
		}
	}

	return tokens, owners
}

func displayNameOf(members []*entity.Membership, uid string) string {
	for _, member := range members {
		if member.UserID == uid && member.DisplayName != "" {
			return member.DisplayName
		}
	}

	return "A member of your party"
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must be the URL of this push endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
