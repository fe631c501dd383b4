package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
	"parkplan/internal/domain/repository"
	"parkplan/internal/domain/service"
	"parkplan/internal/errors"
	"parkplan/internal/infra/persistence/model"
	"parkplan/internal/usecase"
)

// scheduleHorizonDays is how far ahead the importer pulls park schedules.
const scheduleHorizonDays = 14

type syncService struct {
	guard
	provider      service.ParkDataProvider
	referenceRepo repository.ReferenceRepository
	waitTimeRepo  repository.WaitTimeRepository
}

// SyncServiceParams holds dependencies for SyncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	Provider      service.ParkDataProvider
	ReferenceRepo repository.ReferenceRepository
	WaitTimeRepo  repository.WaitTimeRepository
	Authorizer    authz.Authorizer
	Limiter       service.RateLimiter
	Broadcaster   service.StreamBroadcaster
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewSyncService creates a new reference-data importer instance
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	return &syncService{
		guard:         newGuard(params.Authorizer, params.Limiter, params.Broadcaster, params.Publisher, params.Logger),
		provider:      params.Provider,
		referenceRepo: params.ReferenceRepo,
		waitTimeRepo:  params.WaitTimeRepo,
	}
}

// SyncCatalog refreshes parks, attractions, restaurants, resorts and
// schedules from the upstream API. Each batch runs the catalog write gate,
// so the identity must be an admin.
func (s *syncService) SyncCatalog(ctx context.Context, ident *authz.Identity) error {
	if err := s.admit(ident); err != nil {
		return err
	}

	parks, err := s.provider.FetchParks(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch parks")
	}
	if len(parks) > 0 {
		doc, err := documentOf(model.NewParkFromEntity(parks[0]))
		if err != nil {
			return err
		}
		if err := s.authorizeCatalogWrite(ctx, ident, authz.CollectionParks, doc); err != nil {
			return err
		}
		if err := s.referenceRepo.UpsertParks(ctx, parks); err != nil {
			return errors.Wrap(err, "store parks")
		}
	}

	resorts, err := s.provider.FetchResorts(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch resorts")
	}
	if len(resorts) > 0 {
		doc, err := documentOf(model.NewResortFromEntity(resorts[0]))
		if err != nil {
			return err
		}
		if err := s.authorizeCatalogWrite(ctx, ident, authz.CollectionResorts, doc); err != nil {
			return err
		}
		if err := s.referenceRepo.UpsertResorts(ctx, resorts); err != nil {
			return errors.Wrap(err, "store resorts")
		}
	}

	for _, park := range parks {
		if err := s.syncPark(ctx, ident, park); err != nil {
			return err
		}
	}

	s.logger.Info("catalog sync complete",
		slog.Int("parks", len(parks)),
		slog.Int("resorts", len(resorts)),
	)

	return nil
}

// SyncWaitTimes refreshes the live wait-time boards of all known parks and
// pushes each refreshed board to live subscribers.
func (s *syncService) SyncWaitTimes(ctx context.Context, ident *authz.Identity) error {
	if err := s.admit(ident); err != nil {
		return err
	}

	parks, err := s.referenceRepo.FindParks(ctx)
	if err != nil {
		return errors.Wrap(err, "load park catalog")
	}

	for _, park := range parks {
		waits, err := s.provider.FetchWaitTimes(ctx, park.ID)
		if err != nil {
			return errors.Wrapf(err, "fetch wait times for park %s", park.ID)
		}
		if len(waits) == 0 {
			continue
		}

		board := make(map[string]*model.WaitTime, len(waits))
		for _, wait := range waits {
			board[wait.AttractionID] = model.NewWaitTimeFromEntity(wait)
		}
		doc, err := authz.DocumentOf(board)
		if err != nil {
			return errors.Wrap(err, "encode wait-time board")
		}
		if err := s.authorizeCatalogWrite(ctx, ident, authz.CollectionWaitTimes, doc); err != nil {
			return err
		}

		if err := s.waitTimeRepo.UpsertWaitTimes(ctx, park.ID, waits); err != nil {
			return errors.Wrapf(err, "store wait times for park %s", park.ID)
		}

		s.broadcaster.BroadcastPark(ctx, park.ID, &service.StreamEvent{
			Collection: authz.CollectionWaitTimes,
			Action:     string(authz.ActionUpdate),
			ResourceID: park.ID,
			Document:   doc,
			OccurredAt: s.now(),
		})
	}

	return nil
}

// syncPark refreshes the attractions, restaurants and schedule of one park.
func (s *syncService) syncPark(ctx context.Context, ident *authz.Identity, park *entity.Park) error {
	attractions, err := s.provider.FetchAttractions(ctx, park.ID)
	if err != nil {
		return errors.Wrapf(err, "fetch attractions for park %s", park.ID)
	}
	if len(attractions) > 0 {
		doc, err := documentOf(model.NewAttractionFromEntity(attractions[0]))
		if err != nil {
			return err
		}
		if err := s.authorizeCatalogWrite(ctx, ident, authz.CollectionAttractions, doc); err != nil {
			return err
		}
		if err := s.referenceRepo.UpsertAttractions(ctx, attractions); err != nil {
			return errors.Wrapf(err, "store attractions for park %s", park.ID)
		}
	}

	restaurants, err := s.provider.FetchRestaurants(ctx, park.ID)
	if err != nil {
		return errors.Wrapf(err, "fetch restaurants for park %s", park.ID)
	}
	if len(restaurants) > 0 {
		doc, err := documentOf(model.NewRestaurantFromEntity(restaurants[0]))
		if err != nil {
			return err
		}
		if err := s.authorizeCatalogWrite(ctx, ident, authz.CollectionRestaurants, doc); err != nil {
			return err
		}
		if err := s.referenceRepo.UpsertRestaurants(ctx, restaurants); err != nil {
			return errors.Wrapf(err, "store restaurants for park %s", park.ID)
		}
	}

	hours, err := s.provider.FetchParkHours(ctx, park.ID, scheduleHorizonDays)
	if err != nil {
		return errors.Wrapf(err, "fetch schedule for park %s", park.ID)
	}
	if len(hours) > 0 {
		doc, err := documentOf(model.NewParkHoursFromEntity(hours[0]))
		if err != nil {
			return err
		}
		if err := s.authorizeCatalogWrite(ctx, ident, authz.CollectionParkHours, doc); err != nil {
			return err
		}
		if err := s.referenceRepo.UpsertParkHours(ctx, hours); err != nil {
			return errors.Wrapf(err, "store schedule for park %s", park.ID)
		}
	}

	return nil
}

// authorizeCatalogWrite runs the admin write gate once per batch, with one
// representative document standing in for the batch.
func (s *syncService) authorizeCatalogWrite(ctx context.Context, ident *authz.Identity, collection string, doc authz.Document) error {
	return s.authorize(ctx, &authz.Request{
		Collection: collection,
		Action:     authz.ActionCreate,
		Identity:   ident,
		New:        doc,
	})
}
