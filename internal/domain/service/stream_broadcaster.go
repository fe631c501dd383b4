package service

import (
	"context"
	"time"

	"parkplan/internal/domain/authz"
)

// StreamEvent is one change notification delivered to live subscribers.
type StreamEvent struct {
	Collection string         `json:"collection"`
	Action     string         `json:"action"`
	ResourceID string         `json:"resourceId"`
	VacationID string         `json:"vacationId,omitempty"`
	Document   authz.Document `json:"document,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// StreamBroadcaster fans successful writes out to live subscribers. Delivery
// is best effort; implementations must never block the writer.
type StreamBroadcaster interface {
	// BroadcastVacation notifies subscribers of one vacation's change feed.
	BroadcastVacation(ctx context.Context, vacationID string, event *StreamEvent)

	// BroadcastPark notifies subscribers of one park's wait-time board.
	BroadcastPark(ctx context.Context, parkID string, event *StreamEvent)
}
