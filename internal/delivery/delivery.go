// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is one serving surface of the application, such as the client
// HTTP API or the Pub/Sub push worker. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
