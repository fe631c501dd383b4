package usecase

import (
	"context"
	"time"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
)

// ReferenceUsecase defines the interface for browsing the read-only catalog
type ReferenceUsecase interface {
	// ListParks retrieves the park catalog.
	ListParks(ctx context.Context, ident *authz.Identity) ([]*entity.Park, error)

	// GetPark retrieves one park.
	GetPark(ctx context.Context, ident *authz.Identity, id string) (*entity.Park, error)

	// ListAttractions retrieves the attractions of a park.
	ListAttractions(ctx context.Context, ident *authz.Identity, parkID string) ([]*entity.Attraction, error)

	// ListRestaurants retrieves the restaurants of a park.
	ListRestaurants(ctx context.Context, ident *authz.Identity, parkID string) ([]*entity.Restaurant, error)

	// ListResorts retrieves the resort catalog.
	ListResorts(ctx context.Context, ident *authz.Identity) ([]*entity.Resort, error)

	// GetParkHours retrieves the operating schedule of a park for one day.
	GetParkHours(ctx context.Context, ident *authz.Identity, parkID string, date time.Time) (*entity.ParkHours, error)

	// GetWaitTimes retrieves the live wait-time board of a park.
	GetWaitTimes(ctx context.Context, ident *authz.Identity, parkID string) ([]*entity.WaitTime, error)
}

// SyncUsecase defines the interface for the reference-data importer. Every
// write still runs the policy, so the importer must hold an admin identity.
type SyncUsecase interface {
	// SyncCatalog refreshes parks, attractions, restaurants, resorts and
	// schedules from the upstream API.
	SyncCatalog(ctx context.Context, ident *authz.Identity) error

	// SyncWaitTimes refreshes the live wait-time boards of all known parks.
	SyncWaitTimes(ctx context.Context, ident *authz.Identity) error
}
