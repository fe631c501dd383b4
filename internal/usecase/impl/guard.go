// Package impl implements the application services. Every operation runs the
// same pipeline: admit the caller through the per-identity token bucket,
// evaluate the access policy against the before/after document states, touch
// storage, then fan the change out to live subscribers and the audit queue.
package impl

import (
	"context"
	"log/slog"
	"time"

	"parkplan/internal/domain/authz"
	domainerrors "parkplan/internal/domain/errors"
	"parkplan/internal/domain/service"

	deliverycontext "parkplan/internal/delivery/context"
)

// guard bundles the cross-cutting steps shared by every service operation.
type guard struct {
	authorizer  authz.Authorizer
	limiter     service.RateLimiter
	broadcaster service.StreamBroadcaster
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

func newGuard(
	authorizer authz.Authorizer,
	limiter service.RateLimiter,
	broadcaster service.StreamBroadcaster,
	publisher service.EventPublisher,
	logger *slog.Logger,
) guard {
	return guard{
		authorizer:  authorizer,
		limiter:     limiter,
		broadcaster: broadcaster,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// admit runs the per-identity token bucket. Anonymous callers share one
// bucket keyed by the empty string.
func (g *guard) admit(ident *authz.Identity) error {
	uid := ""
	if ident != nil {
		uid = ident.UID
	}
	if !g.limiter.Allow(uid) {
		return domainerrors.ErrTooManyRequests
	}

	return nil
}

// authorize evaluates the access policy for one request at the current time.
func (g *guard) authorize(ctx context.Context, req *authz.Request) error {
	req.Now = g.now()

	return g.authorizer.CanPerform(ctx, req)
}

// announce fans a successful write out to live subscribers and the audit
// queue. Both paths are best effort; a publish failure is logged, never
// surfaced to the caller whose write already landed.
func (g *guard) announce(ctx context.Context, ident *authz.Identity, collection string, action authz.Action, resourceID, vacationID string, doc authz.Document) {
	occurred := g.now()

	if vacationID != "" {
		g.broadcaster.BroadcastVacation(ctx, vacationID, &service.StreamEvent{
			Collection: collection,
			Action:     string(action),
			ResourceID: resourceID,
			VacationID: vacationID,
			Document:   doc,
			OccurredAt: occurred,
		})
	}

	event := &service.ActivityEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ActorID:    ident.UID,
		Collection: collection,
		Action:     string(action),
		ResourceID: resourceID,
		VacationID: vacationID,
		OccurredAt: occurred.Unix(),
	}
	if err := g.publisher.PublishActivityEvent(ctx, event); err != nil {
		g.logger.Warn("failed to publish activity event",
			slog.String("collection", collection),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
	}
}

// documentOf converts a persistence model for policy evaluation. Conversion
// can only fail on unmarshalable types, which would be a programming error,
// so it collapses into the opaque denial.
func documentOf(v any) (authz.Document, error) {
	doc, err := authz.DocumentOf(v)
	if err != nil {
		return nil, domainerrors.ErrPermissionDenied
	}

	return doc, nil
}
