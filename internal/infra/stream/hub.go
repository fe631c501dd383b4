// Package stream fans successful writes out to live subscribers. Delivery
// re-checks the read policy per subscriber, so access revoked mid-stream
// silently stops further events instead of surfacing an error.
package stream

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"parkplan/internal/domain/authz"
)

const sendBuffer = 64

// Event is one change notification flowing through the hub.
type Event struct {
	Collection string         `json:"collection"`
	Action     string         `json:"action"`
	ResourceID string         `json:"resourceId"`
	VacationID string         `json:"vacationId,omitempty"`
	Document   authz.Document `json:"document,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// AuthorizeFunc decides whether one subscriber may receive one event. It is
// evaluated on every delivery, not once at subscribe time.
type AuthorizeFunc func(ctx context.Context, ident *authz.Identity, event *Event) bool

// Client is one live subscription. Events arrive on Send until the client
// unsubscribes. Send is never closed; Done signals the end of the
// subscription, so a concurrent Broadcast can never hit a closed channel.
type Client struct {
	topic    string
	identity *authz.Identity
	Send     chan *Event
	done     chan struct{}
}

// Identity returns the identity the subscription was opened with.
func (c *Client) Identity() *authz.Identity {
	return c.identity
}

// Done is closed when the subscription ends.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Hub tracks subscribers per topic. Topics follow "vacation:<id>" for the
// vacation tree and "park:<id>" for wait-time boards.
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]map[*Client]struct{}
	authorize AuthorizeFunc
	logger    *slog.Logger
}

// NewHub creates a hub whose deliveries are gated by authorize.
func NewHub(authorize AuthorizeFunc, logger *slog.Logger) *Hub {
	return &Hub{
		clients:   map[string]map[*Client]struct{}{},
		authorize: authorize,
		logger:    logger,
	}
}

// VacationTopic is the topic carrying all changes under one vacation.
func VacationTopic(vacationID string) string {
	return "vacation:" + vacationID
}

// ParkTopic is the topic carrying wait-time changes for one park.
func ParkTopic(parkID string) string {
	return "park:" + parkID
}

// Register opens a subscription on a topic. The caller owns the returned
// client and must hand it back through Unregister.
func (h *Hub) Register(topic string, ident *authz.Identity) *Client {
	client := &Client{
		topic:    topic,
		identity: ident,
		Send:     make(chan *Event, sendBuffer),
		done:     make(chan struct{}),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[topic] == nil {
		h.clients[topic] = map[*Client]struct{}{}
	}
	h.clients[topic][client] = struct{}{}

	return client
}

// Unregister closes a subscription. Safe to call once per client.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if topicClients, ok := h.clients[client.topic]; ok {
		if _, registered := topicClients[client]; !registered {
			return
		}
		delete(topicClients, client)
		if len(topicClients) == 0 {
			delete(h.clients, client.topic)
		}
		close(client.done)
	}
}

// Broadcast delivers an event to every subscriber of the topic that still
// passes the read policy. Slow subscribers drop events rather than block
// the writer.
func (h *Hub) Broadcast(ctx context.Context, topic string, event *Event) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients[topic]))
	for client := range h.clients[topic] {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if h.authorize != nil && !h.authorize(ctx, client.identity, event) {
			continue
		}

		select {
		case <-client.done:
		case client.Send <- event:
		default:
			h.logger.Debug("dropping event for slow subscriber",
				slog.String("topic", topic),
				slog.String("collection", event.Collection),
			)
		}
	}
}

// SubscriberCount returns the number of open subscriptions on a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[topic])
}
