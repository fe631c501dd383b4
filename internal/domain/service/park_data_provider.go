package service

import (
	"context"

	"parkplan/internal/domain/entity"
)

// ParkDataProvider fetches reference data from the upstream theme-park API.
// Only the importer talks to it.
type ParkDataProvider interface {
	// FetchParks retrieves the parks of the configured destinations.
	FetchParks(ctx context.Context) ([]*entity.Park, error)

	// FetchAttractions retrieves the attractions of one park.
	FetchAttractions(ctx context.Context, parkID string) ([]*entity.Attraction, error)

	// FetchRestaurants retrieves the restaurants of one park.
	FetchRestaurants(ctx context.Context, parkID string) ([]*entity.Restaurant, error)

	// FetchResorts retrieves the resorts of the configured destinations.
	FetchResorts(ctx context.Context) ([]*entity.Resort, error)

	// FetchParkHours retrieves the operating schedule of one park for the
	// next days.
	FetchParkHours(ctx context.Context, parkID string, days int) ([]*entity.ParkHours, error)

	// FetchWaitTimes retrieves the current wait-time board of one park.
	FetchWaitTimes(ctx context.Context, parkID string) ([]*entity.WaitTime, error)
}
