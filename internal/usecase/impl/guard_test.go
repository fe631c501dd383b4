package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkplan/internal/domain/authz"
	domainerrors "parkplan/internal/domain/errors"
	"parkplan/internal/errors"

	deliverycontext "parkplan/internal/delivery/context"
)

func newTestGuard(authorizer *stubAuthorizer, limiter *stubLimiter, broadcaster *recordingBroadcaster, publisher *recordingPublisher) guard {
	return newGuard(authorizer, limiter, broadcaster, publisher, testLogger())
}

func TestGuard_Admit_AnonymousSharesOneBucket(t *testing.T) {
	limiter := &stubLimiter{}
	g := newTestGuard(&stubAuthorizer{}, limiter, &recordingBroadcaster{}, &recordingPublisher{})

	require.NoError(t, g.admit(nil))
	require.NoError(t, g.admit(testIdentity("alice")))
	assert.Equal(t, []string{"", "alice"}, limiter.seen)
}

func TestGuard_Admit_DeniedMapsToTooManyRequests(t *testing.T) {
	g := newTestGuard(&stubAuthorizer{}, &stubLimiter{denied: true}, &recordingBroadcaster{}, &recordingPublisher{})

	assert.ErrorIs(t, g.admit(testIdentity("alice")), domainerrors.ErrTooManyRequests)
}

func TestGuard_Authorize_StampsEvaluationTime(t *testing.T) {
	authorizer := &stubAuthorizer{}
	g := newTestGuard(authorizer, &stubLimiter{}, &recordingBroadcaster{}, &recordingPublisher{})
	fixed := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	req := &authz.Request{Collection: authz.CollectionUsers, Action: authz.ActionRead}
	require.NoError(t, g.authorize(context.Background(), req))
	assert.Equal(t, fixed, authorizer.last().Now)
}

func TestGuard_Announce_PublishFailureIsSwallowed(t *testing.T) {
	broadcaster := &recordingBroadcaster{}
	publisher := &recordingPublisher{err: errors.New("queue unavailable")}
	g := newTestGuard(&stubAuthorizer{}, &stubLimiter{}, broadcaster, publisher)

	g.announce(context.Background(), testIdentity("alice"), authz.CollectionMessages, authz.ActionCreate, "msg-1", "vac-1", authz.Document{"body": "hi"})

	require.Len(t, broadcaster.vacation, 1)
	require.Len(t, publisher.activity, 1)
}

func TestGuard_Announce_SkipsBroadcastWithoutVacationScope(t *testing.T) {
	broadcaster := &recordingBroadcaster{}
	publisher := &recordingPublisher{}
	g := newTestGuard(&stubAuthorizer{}, &stubLimiter{}, broadcaster, publisher)

	g.announce(context.Background(), testIdentity("alice"), authz.CollectionUsers, authz.ActionUpdate, "alice", "", nil)

	assert.Empty(t, broadcaster.vacation)
	require.Len(t, publisher.activity, 1)
}

func TestGuard_Announce_CarriesRequestID(t *testing.T) {
	publisher := &recordingPublisher{}
	g := newTestGuard(&stubAuthorizer{}, &stubLimiter{}, &recordingBroadcaster{}, publisher)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")
	g.announce(ctx, testIdentity("alice"), authz.CollectionUsers, authz.ActionCreate, "alice", "", nil)

	require.Len(t, publisher.activity, 1)
	assert.Equal(t, "req-7", publisher.activity[0].RequestID)
}
