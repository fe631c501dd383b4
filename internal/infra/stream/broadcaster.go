package stream

import (
	"context"

	"parkplan/internal/domain/service"
)

// Broadcaster adapts the hub to the service.StreamBroadcaster interface the
// use cases publish through.
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster wraps a hub for use by the service layer.
func NewBroadcaster(hub *Hub) service.StreamBroadcaster {
	return &Broadcaster{hub: hub}
}

func (b *Broadcaster) BroadcastVacation(ctx context.Context, vacationID string, event *service.StreamEvent) {
	b.hub.Broadcast(ctx, VacationTopic(vacationID), toHubEvent(event))
}

func (b *Broadcaster) BroadcastPark(ctx context.Context, parkID string, event *service.StreamEvent) {
	b.hub.Broadcast(ctx, ParkTopic(parkID), toHubEvent(event))
}

func toHubEvent(event *service.StreamEvent) *Event {
	return &Event{
		Collection: event.Collection,
		Action:     event.Action,
		ResourceID: event.ResourceID,
		VacationID: event.VacationID,
		Document:   event.Document,
		OccurredAt: event.OccurredAt,
	}
}
