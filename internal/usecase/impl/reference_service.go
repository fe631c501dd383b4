package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
	domainerrors "parkplan/internal/domain/errors"
	"parkplan/internal/domain/repository"
	"parkplan/internal/domain/service"
	"parkplan/internal/errors"
	"parkplan/internal/usecase"
)

type referenceService struct {
	guard
	referenceRepo repository.ReferenceRepository
	waitTimeRepo  repository.WaitTimeRepository
}

// ReferenceServiceParams holds dependencies for ReferenceService, injected by Fx.
type ReferenceServiceParams struct {
	fx.In

	ReferenceRepo repository.ReferenceRepository
	WaitTimeRepo  repository.WaitTimeRepository
	Authorizer    authz.Authorizer
	Limiter       service.RateLimiter
	Broadcaster   service.StreamBroadcaster
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewReferenceService creates a new catalog browsing service instance
func NewReferenceService(params ReferenceServiceParams) usecase.ReferenceUsecase {
	return &referenceService{
		guard:         newGuard(params.Authorizer, params.Limiter, params.Broadcaster, params.Publisher, params.Logger),
		referenceRepo: params.ReferenceRepo,
		waitTimeRepo:  params.WaitTimeRepo,
	}
}

// authorizeCatalogRead runs the signed-in gate shared by every catalog
// collection.
func (s *referenceService) authorizeCatalogRead(ctx context.Context, ident *authz.Identity, collection string) error {
	if err := s.admit(ident); err != nil {
		return err
	}

	return s.authorize(ctx, &authz.Request{
		Collection: collection,
		Action:     authz.ActionRead,
		Identity:   ident,
	})
}

// ListParks retrieves the park catalog.
func (s *referenceService) ListParks(ctx context.Context, ident *authz.Identity) ([]*entity.Park, error) {
	if err := s.authorizeCatalogRead(ctx, ident, authz.CollectionParks); err != nil {
		return nil, err
	}

	parks, err := s.referenceRepo.FindParks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list parks")
	}

	return parks, nil
}

// GetPark retrieves one park.
func (s *referenceService) GetPark(ctx context.Context, ident *authz.Identity, id string) (*entity.Park, error) {
	if err := s.authorizeCatalogRead(ctx, ident, authz.CollectionParks); err != nil {
		return nil, err
	}

	park, err := s.referenceRepo.FindParkByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrParkNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "get park")
	}

	return park, nil
}

// ListAttractions retrieves the attractions of a park.
func (s *referenceService) ListAttractions(ctx context.Context, ident *authz.Identity, parkID string) ([]*entity.Attraction, error) {
	if err := s.authorizeCatalogRead(ctx, ident, authz.CollectionAttractions); err != nil {
		return nil, err
	}

	attractions, err := s.referenceRepo.FindAttractionsByPark(ctx, parkID)
	if err != nil {
		return nil, errors.Wrap(err, "list attractions")
	}

	return attractions, nil
}

// ListRestaurants retrieves the restaurants of a park.
func (s *referenceService) ListRestaurants(ctx context.Context, ident *authz.Identity, parkID string) ([]*entity.Restaurant, error) {
	if err := s.authorizeCatalogRead(ctx, ident, authz.CollectionRestaurants); err != nil {
		return nil, err
	}

	restaurants, err := s.referenceRepo.FindRestaurantsByPark(ctx, parkID)
	if err != nil {
		return nil, errors.Wrap(err, "list restaurants")
	}

	return restaurants, nil
}

// ListResorts retrieves the resort catalog.
func (s *referenceService) ListResorts(ctx context.Context, ident *authz.Identity) ([]*entity.Resort, error) {
	if err := s.authorizeCatalogRead(ctx, ident, authz.CollectionResorts); err != nil {
		return nil, err
	}

	resorts, err := s.referenceRepo.FindResorts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list resorts")
	}

	return resorts, nil
}

// GetParkHours retrieves the operating schedule of a park for one day.
func (s *referenceService) GetParkHours(ctx context.Context, ident *authz.Identity, parkID string, date time.Time) (*entity.ParkHours, error) {
	if err := s.authorizeCatalogRead(ctx, ident, authz.CollectionParkHours); err != nil {
		return nil, err
	}

	hours, err := s.referenceRepo.FindParkHours(ctx, parkID, date)
	if err != nil {
		if errors.Is(err, repository.ErrParkNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "get park hours")
	}

	return hours, nil
}

// GetWaitTimes retrieves the live wait-time board of a park.
func (s *referenceService) GetWaitTimes(ctx context.Context, ident *authz.Identity, parkID string) ([]*entity.WaitTime, error) {
	if err := s.authorizeCatalogRead(ctx, ident, authz.CollectionWaitTimes); err != nil {
		return nil, err
	}

	waits, err := s.waitTimeRepo.FindWaitTimesByPark(ctx, parkID)
	if err != nil {
		return nil, errors.Wrap(err, "get wait times")
	}

	return waits, nil
}
