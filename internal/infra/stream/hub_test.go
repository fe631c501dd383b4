package stream

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkplan/internal/domain/authz"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func allowAll(context.Context, *authz.Identity, *Event) bool {
	return true
}

func testEvent() *Event {
	return &Event{
		Collection: "messages",
		Action:     "create",
		ResourceID: "msg-1",
		VacationID: "vac-1",
		OccurredAt: time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestHub_BroadcastReachesTopicSubscribers(t *testing.T) {
	t.Parallel()

	hub := NewHub(allowAll, testLogger())

	member := hub.Register(VacationTopic("vac-1"), &authz.Identity{UID: "alice"})
	other := hub.Register(VacationTopic("vac-2"), &authz.Identity{UID: "bob"})
	defer hub.Unregister(member)
	defer hub.Unregister(other)

	hub.Broadcast(context.Background(), VacationTopic("vac-1"), testEvent())

	select {
	case got := <-member.Send:
		assert.Equal(t, "msg-1", got.ResourceID)
	default:
		t.Fatal("expected event for vac-1 subscriber")
	}

	select {
	case <-other.Send:
		t.Fatal("vac-2 subscriber must not receive vac-1 events")
	default:
	}
}

func TestHub_RevokedAccessSilentlyStopsDelivery(t *testing.T) {
	t.Parallel()

	// The gate consults mutable membership state, as the real authorizer does.
	var mu sync.Mutex
	members := map[string]bool{"bob": true}
	gate := func(_ context.Context, ident *authz.Identity, _ *Event) bool {
		mu.Lock()
		defer mu.Unlock()

		return members[ident.UID]
	}

	hub := NewHub(gate, testLogger())
	client := hub.Register(VacationTopic("vac-1"), &authz.Identity{UID: "bob"})
	defer hub.Unregister(client)

	hub.Broadcast(context.Background(), VacationTopic("vac-1"), testEvent())
	require.Len(t, client.Send, 1)
	<-client.Send

	// Revoking membership stops future deliveries without closing the stream.
	mu.Lock()
	delete(members, "bob")
	mu.Unlock()

	hub.Broadcast(context.Background(), VacationTopic("vac-1"), testEvent())
	assert.Empty(t, client.Send)
}

func TestHub_UnregisterSignalsDone(t *testing.T) {
	t.Parallel()

	hub := NewHub(allowAll, testLogger())
	client := hub.Register(ParkTopic("magic-kingdom"), &authz.Identity{UID: "alice"})

	hub.Unregister(client)
	select {
	case <-client.Done():
	default:
		t.Fatal("expected Done to be signalled after unregister")
	}
	assert.Zero(t, hub.SubscriberCount(ParkTopic("magic-kingdom")))

	// A second unregister is a no-op.
	hub.Unregister(client)
}

func TestHub_ConcurrentBroadcastAndUnregister(t *testing.T) {
	t.Parallel()

	hub := NewHub(allowAll, testLogger())
	topic := VacationTopic("vac-1")

	stop := make(chan struct{})
	var broadcasting sync.WaitGroup
	broadcasting.Add(1)
	go func() {
		defer broadcasting.Done()
		for {
			select {
			case <-stop:
				return
			default:
				hub.Broadcast(context.Background(), topic, testEvent())
			}
		}
	}()

	// Clients churning while broadcasts run must never observe a send on a
	// torn-down subscription.
	var churn sync.WaitGroup
	for i := 0; i < 8; i++ {
		churn.Add(1)
		go func(uid string) {
			defer churn.Done()
			for j := 0; j < 200; j++ {
				client := hub.Register(topic, &authz.Identity{UID: uid})
				hub.Unregister(client)
			}
		}(string(rune('a' + i)))
	}

	churn.Wait()
	close(stop)
	broadcasting.Wait()
	assert.Zero(t, hub.SubscriberCount(topic))
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	hub := NewHub(allowAll, testLogger())
	client := hub.Register(VacationTopic("vac-1"), &authz.Identity{UID: "alice"})
	defer hub.Unregister(client)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < sendBuffer+10; i++ {
			hub.Broadcast(context.Background(), VacationTopic("vac-1"), testEvent())
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on a slow subscriber")
	}
	assert.Len(t, client.Send, sendBuffer)
}
