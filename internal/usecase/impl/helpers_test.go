package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/service"
)

// stubAuthorizer records every policy request and returns a fixed result, so
// tests can assert what the services asked the policy without re-testing the
// policy itself.
type stubAuthorizer struct {
	mu       sync.Mutex
	err      error
	requests []*authz.Request
}

func (a *stubAuthorizer) CanPerform(_ context.Context, req *authz.Request) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = append(a.requests, req)

	return a.err
}

func (a *stubAuthorizer) last() *authz.Request {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.requests) == 0 {
		return nil
	}

	return a.requests[len(a.requests)-1]
}

type stubLimiter struct {
	denied bool
	seen   []string
}

func (l *stubLimiter) Allow(uid string) bool {
	l.seen = append(l.seen, uid)

	return !l.denied
}

type recordingBroadcaster struct {
	vacation []*service.StreamEvent
	park     []*service.StreamEvent
}

func (b *recordingBroadcaster) BroadcastVacation(_ context.Context, _ string, event *service.StreamEvent) {
	b.vacation = append(b.vacation, event)
}

func (b *recordingBroadcaster) BroadcastPark(_ context.Context, _ string, event *service.StreamEvent) {
	b.park = append(b.park, event)
}

type recordingPublisher struct {
	err      error
	activity []*service.ActivityEvent
	geofence []*service.GeofenceEvent
}

func (p *recordingPublisher) PublishActivityEvent(_ context.Context, event *service.ActivityEvent) error {
	p.activity = append(p.activity, event)

	return p.err
}

func (p *recordingPublisher) PublishGeofenceEvent(_ context.Context, event *service.GeofenceEvent) error {
	p.geofence = append(p.geofence, event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testIdentity(uid string) *authz.Identity {
	return &authz.Identity{UID: uid, Email: uid + "@example.com", EmailVerified: true}
}

func adminIdentity(uid string) *authz.Identity {
	return &authz.Identity{UID: uid, Email: uid + "@example.com", EmailVerified: true, Admin: true}
}
