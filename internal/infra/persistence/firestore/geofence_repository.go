package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"parkplan/internal/domain/entity"
	"parkplan/internal/domain/repository"
	"parkplan/internal/errors"
	"parkplan/internal/infra/persistence/model"
)

const (
	geofencesCollection      = "geofences"
	geofenceAlertsCollection = "geofenceAlerts"
)

// geofenceRepository implements repository.GeofenceRepository on Firestore.
// Alerts are insert-only; the repository exposes no way to mutate them.
type geofenceRepository struct {
	client *firestore.Client
}

// NewGeofenceRepository creates a Firestore-backed geofence repository.
func NewGeofenceRepository(client *firestore.Client) repository.GeofenceRepository {
	return &geofenceRepository{client: client}
}

func (r *geofenceRepository) CreateGeofence(ctx context.Context, geofence *entity.Geofence) error {
	_, err := r.client.Collection(geofencesCollection).
		Doc(geofence.ID).
		Create(ctx, model.NewGeofenceFromEntity(geofence))
	if err != nil {
		return errors.Wrap(err, "create geofence")
	}

	return nil
}

func (r *geofenceRepository) FindGeofenceByID(ctx context.Context, id string) (*entity.Geofence, error) {
	snap, err := r.client.Collection(geofencesCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "get geofence")
	}

	var doc model.Geofence
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode geofence")
	}
	doc.ID = snap.Ref.ID

	return doc.ToEntity(), nil
}

func (r *geofenceRepository) FindGeofencesByVacation(ctx context.Context, vacationID string) ([]*entity.Geofence, error) {
	iter := r.client.Collection(geofencesCollection).
		Where("vacationId", "==", vacationID).
		Documents(ctx)
	defer iter.Stop()

	var geofences []*entity.Geofence
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate geofences")
		}

		var doc model.Geofence
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode geofence")
		}
		doc.ID = snap.Ref.ID
		geofences = append(geofences, doc.ToEntity())
	}

	return geofences, nil
}

func (r *geofenceRepository) UpdateGeofence(ctx context.Context, geofence *entity.Geofence) error {
	_, err := r.client.Collection(geofencesCollection).
		Doc(geofence.ID).
		Set(ctx, model.NewGeofenceFromEntity(geofence))
	if err != nil {
		if isNotFound(err) {
			return repository.ErrGeofenceNotFound
		}

		return errors.Wrap(err, "update geofence")
	}

	return nil
}

func (r *geofenceRepository) DeleteGeofence(ctx context.Context, id string) error {
	_, err := r.client.Collection(geofencesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "delete geofence")
	}

	return nil
}

func (r *geofenceRepository) CreateAlert(ctx context.Context, alert *entity.GeofenceAlert) error {
	_, err := r.client.Collection(geofenceAlertsCollection).
		Doc(alert.ID).
		Create(ctx, model.NewGeofenceAlertFromEntity(alert))
	if err != nil {
		return errors.Wrap(err, "create geofence alert")
	}

	return nil
}

func (r *geofenceRepository) FindAlertsByVacation(ctx context.Context, vacationID string, limit int) ([]*entity.GeofenceAlert, error) {
	query := r.client.Collection(geofenceAlertsCollection).
		Where("vacationId", "==", vacationID).
		OrderBy("enteredAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var alerts []*entity.GeofenceAlert
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate geofence alerts")
		}

		var doc model.GeofenceAlert
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode geofence alert")
		}
		doc.ID = snap.Ref.ID
		alerts = append(alerts, doc.ToEntity())
	}

	return alerts, nil
}
