package service

import (
	"context"
)

// ActivityEvent represents a successful write published for async processing
// by the audit worker.
type ActivityEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	ActorID    string `json:"actor_id"`
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ResourceID string `json:"resource_id"`
	VacationID string `json:"vacation_id,omitempty"`
	OccurredAt int64  `json:"occurred_at"` // Unix seconds
}

// GeofenceEvent represents a member entering a zone, published for async
// push-notification fan-out.
type GeofenceEvent struct {
	RequestID  string  `json:"request_id,omitempty"`
	GeofenceID string  `json:"geofence_id"`
	VacationID string  `json:"vacation_id"`
	UserID     string  `json:"user_id"`
	ZoneName   string  `json:"zone_name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishActivityEvent publishes an audit record for async processing
	PublishActivityEvent(ctx context.Context, event *ActivityEvent) error

	// PublishGeofenceEvent publishes a zone-entry event for async processing
	PublishGeofenceEvent(ctx context.Context, event *GeofenceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
