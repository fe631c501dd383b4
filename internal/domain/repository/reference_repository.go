// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"parkplan/internal/domain/entity"
	"parkplan/internal/errors"
)

// Domain-specific errors for reference-data persistence.
var (
	// ErrParkNotFound is returned when a park is not found.
	ErrParkNotFound = errors.New("park not found")
	// ErrAttractionNotFound is returned when an attraction is not found.
	ErrAttractionNotFound = errors.New("attraction not found")
	// ErrResortNotFound is returned when a resort is not found.
	ErrResortNotFound = errors.New("resort not found")
)

// ReferenceRepository defines the interface for the read-only catalog of
// parks, attractions, restaurants and resorts. Write operations are only
// reachable from the importer, which runs under an admin identity.
type ReferenceRepository interface {
	// FindParks retrieves the full park list.
	FindParks(ctx context.Context) ([]*entity.Park, error)

	// FindParkByID retrieves one park.
	FindParkByID(ctx context.Context, id string) (*entity.Park, error)

	// FindAttractionsByPark retrieves all attractions of a park.
	FindAttractionsByPark(ctx context.Context, parkID string) ([]*entity.Attraction, error)

	// FindRestaurantsByPark retrieves all restaurants of a park.
	FindRestaurantsByPark(ctx context.Context, parkID string) ([]*entity.Restaurant, error)

	// FindResorts retrieves the full resort list.
	FindResorts(ctx context.Context) ([]*entity.Resort, error)

	// FindParkHours retrieves the operating schedule of a park for one day.
	FindParkHours(ctx context.Context, parkID string, date time.Time) (*entity.ParkHours, error)

	// UpsertParks replaces the stored park catalog in batches.
	UpsertParks(ctx context.Context, parks []*entity.Park) error

	// UpsertAttractions replaces the stored attractions of a park.
	UpsertAttractions(ctx context.Context, attractions []*entity.Attraction) error

	// UpsertRestaurants replaces the stored restaurants of a park.
	UpsertRestaurants(ctx context.Context, restaurants []*entity.Restaurant) error

	// UpsertResorts replaces the stored resort catalog.
	UpsertResorts(ctx context.Context, resorts []*entity.Resort) error

	// UpsertParkHours replaces the stored schedule entries.
	UpsertParkHours(ctx context.Context, hours []*entity.ParkHours) error
}

// WaitTimeRepository defines the interface for the live wait-time board in
// the Realtime Database.
type WaitTimeRepository interface {
	// UpsertWaitTimes writes the latest observations for a park.
	UpsertWaitTimes(ctx context.Context, parkID string, waits []*entity.WaitTime) error

	// FindWaitTimesByPark retrieves the current board of a park.
	FindWaitTimesByPark(ctx context.Context, parkID string) ([]*entity.WaitTime, error)
}
