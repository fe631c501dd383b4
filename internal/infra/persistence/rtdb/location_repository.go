package rtdb

import (
	"context"
	"sort"

	"firebase.google.com/go/v4/db"

	"parkplan/internal/domain/entity"
	"parkplan/internal/domain/repository"
	"parkplan/internal/errors"
	"parkplan/internal/infra/persistence/model"
)

const locationsRoot = "locations"

// locationRepository implements repository.LocationRepository on the Realtime
// Database. Positions live under locations/{vacationId}/{userId} so a whole
// vacation can be read with one call.
type locationRepository struct {
	client *db.Client
}

// NewLocationRepository creates a Realtime Database backed location repository.
func NewLocationRepository(client *db.Client) repository.LocationRepository {
	return &locationRepository{client: client}
}

func (r *locationRepository) locationRef(vacationID, uid string) *db.Ref {
	return r.client.NewRef(locationsRoot).Child(vacationID).Child(uid)
}

func (r *locationRepository) UpsertLocation(ctx context.Context, location *entity.UserLocation) error {
	ref := r.locationRef(location.VacationID, location.UserID)
	if err := ref.Set(ctx, model.NewUserLocationFromEntity(location)); err != nil {
		return errors.Wrap(err, "set location")
	}

	return nil
}

func (r *locationRepository) FindLocation(ctx context.Context, vacationID, uid string) (*entity.UserLocation, error) {
	var doc model.UserLocation
	if err := r.locationRef(vacationID, uid).Get(ctx, &doc); err != nil {
		return nil, errors.Wrap(err, "get location")
	}
	// Missing refs decode to the zero value rather than erroring.
	if doc.UserID == "" {
		return nil, repository.ErrLocationNotFound
	}

	return doc.ToEntity(), nil
}

// FindLocationsByVacation reads the whole vacation node and drops positions
// whose owner has turned sharing off.
func (r *locationRepository) FindLocationsByVacation(ctx context.Context, vacationID string) ([]*entity.UserLocation, error) {
	var docs map[string]model.UserLocation
	if err := r.client.NewRef(locationsRoot).Child(vacationID).Get(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "get vacation locations")
	}

	locations := make([]*entity.UserLocation, 0, len(docs))
	for _, doc := range docs {
		if !doc.SharingEnabled {
			continue
		}
		locations = append(locations, doc.ToEntity())
	}
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].UserID < locations[j].UserID
	})

	return locations, nil
}

func (r *locationRepository) DeleteLocation(ctx context.Context, vacationID, uid string) error {
	if err := r.locationRef(vacationID, uid).Delete(ctx); err != nil {
		return errors.Wrap(err, "delete location")
	}

	return nil
}
