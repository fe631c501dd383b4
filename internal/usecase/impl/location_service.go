package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
	domainerrors "parkplan/internal/domain/errors"
	"parkplan/internal/domain/repository"
	"parkplan/internal/domain/service"
	"parkplan/internal/errors"
	"parkplan/internal/infra/persistence/model"
	"parkplan/internal/usecase"

	deliverycontext "parkplan/internal/delivery/context"
)

type locationService struct {
	guard
	locationRepo repository.LocationRepository
	geofenceRepo repository.GeofenceRepository
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	GeofenceRepo repository.GeofenceRepository
	Authorizer   authz.Authorizer
	Limiter      service.RateLimiter
	Broadcaster  service.StreamBroadcaster
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewLocationService creates a new live-location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		guard:        newGuard(params.Authorizer, params.Limiter, params.Broadcaster, params.Publisher, params.Logger),
		locationRepo: params.LocationRepo,
		geofenceRepo: params.GeofenceRepo,
	}
}

// UpdateLocation stores the caller's position and evaluates it against the
// vacation's geofences. Zones the caller just entered produce alerts and a
// queued push-notification event.
func (s *locationService) UpdateLocation(ctx context.Context, ident *authz.Identity, input *usecase.UpdateLocationInput) (*entity.UserLocation, []*entity.GeofenceAlert, error) {
	if err := s.admit(ident); err != nil {
		return nil, nil, err
	}

	location := &entity.UserLocation{
		UserID:         ident.UID,
		VacationID:     input.VacationID,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		SharingEnabled: input.SharingEnabled,
		UpdatedAt:      s.now(),
	}

	old, err := s.locationRepo.FindLocation(ctx, input.VacationID, ident.UID)
	if err != nil && !errors.Is(err, repository.ErrLocationNotFound) {
		return nil, nil, errors.Wrap(err, "load location")
	}

	newDoc, err := documentOf(model.NewUserLocationFromEntity(location))
	if err != nil {
		return nil, nil, err
	}
	req := &authz.Request{
		Collection: authz.CollectionUserLocations,
		Identity:   ident,
		ResourceID: ident.UID,
		VacationID: input.VacationID,
		New:        newDoc,
	}
	if old == nil {
		req.Action = authz.ActionCreate
	} else {
		req.Action = authz.ActionUpdate
		oldDoc, err := documentOf(model.NewUserLocationFromEntity(old))
		if err != nil {
			return nil, nil, err
		}
		req.Old = oldDoc
	}
	if err := s.authorize(ctx, req); err != nil {
		return nil, nil, err
	}

	if err := s.locationRepo.UpsertLocation(ctx, location); err != nil {
		return nil, nil, errors.Wrap(err, "store location")
	}

	s.announce(ctx, ident, authz.CollectionUserLocations, req.Action, ident.UID, input.VacationID, newDoc)

	alerts, err := s.evaluateGeofences(ctx, ident, old, location)
	if err != nil {
		return nil, nil, err
	}

	return location, alerts, nil
}

// ListLocations retrieves every shared position in a vacation. The store
// already drops positions with sharing off; the policy gate is evaluated
// against a shared position.
func (s *locationService) ListLocations(ctx context.Context, ident *authz.Identity, vacationID string) ([]*entity.UserLocation, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionUserLocations,
		Action:     authz.ActionRead,
		Identity:   ident,
		VacationID: vacationID,
		Old:        authz.Document{"vacationId": vacationID, "sharingEnabled": true},
	}); err != nil {
		return nil, err
	}

	locations, err := s.locationRepo.FindLocationsByVacation(ctx, vacationID)
	if err != nil {
		return nil, errors.Wrap(err, "list locations")
	}

	return locations, nil
}

// DeleteLocation removes a stored position.
func (s *locationService) DeleteLocation(ctx context.Context, ident *authz.Identity, vacationID, uid string) error {
	if err := s.admit(ident); err != nil {
		return err
	}

	old, err := s.locationRepo.FindLocation(ctx, vacationID, uid)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrPermissionDenied
		}

		return errors.Wrap(err, "load location for delete")
	}

	oldDoc, err := documentOf(model.NewUserLocationFromEntity(old))
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionUserLocations,
		Action:     authz.ActionDelete,
		Identity:   ident,
		ResourceID: uid,
		VacationID: vacationID,
		Old:        oldDoc,
	}); err != nil {
		return err
	}

	if err := s.locationRepo.DeleteLocation(ctx, vacationID, uid); err != nil {
		return errors.Wrap(err, "delete location")
	}

	s.announce(ctx, ident, authz.CollectionUserLocations, authz.ActionDelete, uid, vacationID, nil)

	return nil
}

// CreateGeofence creates a zone within a vacation.
func (s *locationService) CreateGeofence(ctx context.Context, ident *authz.Identity, input *usecase.CreateGeofenceInput) (*entity.Geofence, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	now := s.now()
	geofence := &entity.Geofence{
		ID:           uuid.New().String(),
		VacationID:   input.VacationID,
		CreatedBy:    ident.UID,
		Name:         input.Name,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		RadiusMeters: input.RadiusMeters,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	doc, err := documentOf(model.NewGeofenceFromEntity(geofence))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionGeofences,
		Action:     authz.ActionCreate,
		Identity:   ident,
		ResourceID: geofence.ID,
		VacationID: input.VacationID,
		New:        doc,
	}); err != nil {
		return nil, err
	}

	if err := s.geofenceRepo.CreateGeofence(ctx, geofence); err != nil {
		return nil, errors.Wrap(err, "create geofence")
	}

	s.announce(ctx, ident, authz.CollectionGeofences, authz.ActionCreate, geofence.ID, input.VacationID, doc)

	return geofence, nil
}

// ListGeofences retrieves the zones of a vacation.
func (s *locationService) ListGeofences(ctx context.Context, ident *authz.Identity, vacationID string) ([]*entity.Geofence, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionGeofences,
		Action:     authz.ActionRead,
		Identity:   ident,
		VacationID: vacationID,
	}); err != nil {
		return nil, err
	}

	geofences, err := s.geofenceRepo.FindGeofencesByVacation(ctx, vacationID)
	if err != nil {
		return nil, errors.Wrap(err, "list geofences")
	}

	return geofences, nil
}

// UpdateGeofence applies a partial patch to a zone.
func (s *locationService) UpdateGeofence(ctx context.Context, ident *authz.Identity, id string, input *usecase.UpdateGeofenceInput) (*entity.Geofence, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	old, err := s.loadGeofence(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *old
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Latitude != nil {
		updated.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		updated.Longitude = *input.Longitude
	}
	if input.RadiusMeters != nil {
		updated.RadiusMeters = *input.RadiusMeters
	}
	updated.UpdatedAt = s.now()

	oldDoc, err := documentOf(model.NewGeofenceFromEntity(old))
	if err != nil {
		return nil, err
	}
	newDoc, err := documentOf(model.NewGeofenceFromEntity(&updated))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionGeofences,
		Action:     authz.ActionUpdate,
		Identity:   ident,
		ResourceID: id,
		VacationID: old.VacationID,
		Old:        oldDoc,
		New:        newDoc,
	}); err != nil {
		return nil, err
	}

	if err := s.geofenceRepo.UpdateGeofence(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "update geofence")
	}

	s.announce(ctx, ident, authz.CollectionGeofences, authz.ActionUpdate, id, old.VacationID, newDoc)

	return &updated, nil
}

// DeleteGeofence removes a zone.
func (s *locationService) DeleteGeofence(ctx context.Context, ident *authz.Identity, id string) error {
	if err := s.admit(ident); err != nil {
		return err
	}

	old, err := s.loadGeofence(ctx, id)
	if err != nil {
		return err
	}

	oldDoc, err := documentOf(model.NewGeofenceFromEntity(old))
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionGeofences,
		Action:     authz.ActionDelete,
		Identity:   ident,
		ResourceID: id,
		VacationID: old.VacationID,
		Old:        oldDoc,
	}); err != nil {
		return err
	}

	if err := s.geofenceRepo.DeleteGeofence(ctx, id); err != nil {
		return errors.Wrap(err, "delete geofence")
	}

	s.announce(ctx, ident, authz.CollectionGeofences, authz.ActionDelete, id, old.VacationID, nil)

	return nil
}

// ListAlerts retrieves the newest zone-entry alerts of a vacation.
func (s *locationService) ListAlerts(ctx context.Context, ident *authz.Identity, vacationID string, limit int) ([]*entity.GeofenceAlert, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionGeofenceAlerts,
		Action:     authz.ActionRead,
		Identity:   ident,
		VacationID: vacationID,
	}); err != nil {
		return nil, err
	}

	alerts, err := s.geofenceRepo.FindAlertsByVacation(ctx, vacationID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list geofence alerts")
	}

	return alerts, nil
}

func (s *locationService) loadGeofence(ctx context.Context, id string) (*entity.Geofence, error) {
	geofence, err := s.geofenceRepo.FindGeofenceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return nil, domainerrors.ErrPermissionDenied
		}

		return nil, errors.Wrap(err, "load geofence")
	}

	return geofence, nil
}

// evaluateGeofences compares the previous and new positions against every
// zone of the vacation and records an alert for each zone just entered.
func (s *locationService) evaluateGeofences(ctx context.Context, ident *authz.Identity, old, current *entity.UserLocation) ([]*entity.GeofenceAlert, error) {
	geofences, err := s.geofenceRepo.FindGeofencesByVacation(ctx, current.VacationID)
	if err != nil {
		return nil, errors.Wrap(err, "load geofences")
	}
	if len(geofences) == 0 {
		return nil, nil
	}

	var alerts []*entity.GeofenceAlert
	for _, zone := range geofences {
		if !insideZone(zone, current.Latitude, current.Longitude) {
			continue
		}
		if old != nil && insideZone(zone, old.Latitude, old.Longitude) {
			continue
		}

		alert := &entity.GeofenceAlert{
			ID:         uuid.New().String(),
			GeofenceID: zone.ID,
			VacationID: current.VacationID,
			UserID:     ident.UID,
			EnteredAt:  s.now(),
		}

		doc, err := documentOf(model.NewGeofenceAlertFromEntity(alert))
		if err != nil {
			return nil, err
		}
		if err := s.authorize(ctx, &authz.Request{
			Collection: authz.CollectionGeofenceAlerts,
			Action:     authz.ActionCreate,
			Identity:   ident,
			ResourceID: alert.ID,
			VacationID: current.VacationID,
			New:        doc,
		}); err != nil {
			return nil, err
		}

		if err := s.geofenceRepo.CreateAlert(ctx, alert); err != nil {
			return nil, errors.Wrap(err, "record geofence alert")
		}

		event := &service.GeofenceEvent{
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			GeofenceID: zone.ID,
			VacationID: current.VacationID,
			UserID:     ident.UID,
			ZoneName:   zone.Name,
			Latitude:   current.Latitude,
			Longitude:  current.Longitude,
		}
		if err := s.publisher.PublishGeofenceEvent(ctx, event); err != nil {
			s.logger.Warn("failed to publish geofence event",
				slog.String("geofence_id", zone.ID),
				slog.Any("error", err),
			)
		}

		alerts = append(alerts, alert)
	}

	return alerts, nil
}

// insideZone reports whether a position falls within a zone's radius,
// measured on the great circle.
func insideZone(zone *entity.Geofence, lat, lon float64) bool {
	center := orb.Point{zone.Longitude, zone.Latitude}
	position := orb.Point{lon, lat}

	return geo.Distance(center, position) <= zone.RadiusMeters
}
