package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"parkplan/internal/domain/entity"
	"parkplan/internal/domain/repository"
	"parkplan/internal/errors"
	"parkplan/internal/infra/persistence/model"
)

const (
	parksCollection       = "parks"
	attractionsCollection = "attractions"
	restaurantsCollection = "restaurants"
	resortsCollection     = "resorts"
	parkHoursCollection   = "parkHours"

	parkHoursDateLayout = "2006-01-02"
)

// referenceRepository implements repository.ReferenceRepository on Firestore.
// The catalog is read-heavy; writes only happen from the importer.
type referenceRepository struct {
	client *firestore.Client
}

// NewReferenceRepository creates a Firestore-backed reference repository.
func NewReferenceRepository(client *firestore.Client) repository.ReferenceRepository {
	return &referenceRepository{client: client}
}

// parkHoursDoc keys schedule entries by park and calendar day so the importer
// overwrites the same document on every refresh.
func parkHoursDoc(parkID string, date time.Time) string {
	return parkID + "_" + date.UTC().Format(parkHoursDateLayout)
}

func (r *referenceRepository) FindParks(ctx context.Context) ([]*entity.Park, error) {
	iter := r.client.Collection(parksCollection).
		OrderBy("name", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var parks []*entity.Park
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate parks")
		}

		var doc model.Park
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode park")
		}
		doc.ID = snap.Ref.ID
		parks = append(parks, doc.ToEntity())
	}

	return parks, nil
}

func (r *referenceRepository) FindParkByID(ctx context.Context, id string) (*entity.Park, error) {
	snap, err := r.client.Collection(parksCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrParkNotFound
		}

		return nil, errors.Wrap(err, "get park")
	}

	var doc model.Park
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode park")
	}
	doc.ID = snap.Ref.ID

	return doc.ToEntity(), nil
}

func (r *referenceRepository) FindAttractionsByPark(ctx context.Context, parkID string) ([]*entity.Attraction, error) {
	iter := r.client.Collection(attractionsCollection).
		Where("parkId", "==", parkID).
		OrderBy("name", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var attractions []*entity.Attraction
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate attractions")
		}

		var doc model.Attraction
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode attraction")
		}
		doc.ID = snap.Ref.ID
		attractions = append(attractions, doc.ToEntity())
	}

	return attractions, nil
}

func (r *referenceRepository) FindRestaurantsByPark(ctx context.Context, parkID string) ([]*entity.Restaurant, error) {
	iter := r.client.Collection(restaurantsCollection).
		Where("parkId", "==", parkID).
		OrderBy("name", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var restaurants []*entity.Restaurant
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate restaurants")
		}

		var doc model.Restaurant
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode restaurant")
		}
		doc.ID = snap.Ref.ID
		restaurants = append(restaurants, doc.ToEntity())
	}

	return restaurants, nil
}

func (r *referenceRepository) FindResorts(ctx context.Context) ([]*entity.Resort, error) {
	iter := r.client.Collection(resortsCollection).
		OrderBy("name", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var resorts []*entity.Resort
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate resorts")
		}

		var doc model.Resort
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode resort")
		}
		doc.ID = snap.Ref.ID
		resorts = append(resorts, doc.ToEntity())
	}

	return resorts, nil
}

func (r *referenceRepository) FindParkHours(ctx context.Context, parkID string, date time.Time) (*entity.ParkHours, error) {
	snap, err := r.client.Collection(parkHoursCollection).
		Doc(parkHoursDoc(parkID, date)).
		Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrParkNotFound
		}

		return nil, errors.Wrap(err, "get park hours")
	}

	var doc model.ParkHours
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode park hours")
	}

	return doc.ToEntity(), nil
}

func (r *referenceRepository) UpsertParks(ctx context.Context, parks []*entity.Park) error {
	batch := r.client.BulkWriter(ctx)
	for _, park := range parks {
		ref := r.client.Collection(parksCollection).Doc(park.ID)
		if _, err := batch.Set(ref, model.NewParkFromEntity(park)); err != nil {
			return errors.Wrap(err, "enqueue park upsert")
		}
	}
	batch.End()

	return nil
}

func (r *referenceRepository) UpsertAttractions(ctx context.Context, attractions []*entity.Attraction) error {
	batch := r.client.BulkWriter(ctx)
	for _, attraction := range attractions {
		ref := r.client.Collection(attractionsCollection).Doc(attraction.ID)
		if _, err := batch.Set(ref, model.NewAttractionFromEntity(attraction)); err != nil {
			return errors.Wrap(err, "enqueue attraction upsert")
		}
	}
	batch.End()

	return nil
}

func (r *referenceRepository) UpsertRestaurants(ctx context.Context, restaurants []*entity.Restaurant) error {
	batch := r.client.BulkWriter(ctx)
	for _, restaurant := range restaurants {
		ref := r.client.Collection(restaurantsCollection).Doc(restaurant.ID)
		if _, err := batch.Set(ref, model.NewRestaurantFromEntity(restaurant)); err != nil {
			return errors.Wrap(err, "enqueue restaurant upsert")
		}
	}
	batch.End()

	return nil
}

func (r *referenceRepository) UpsertResorts(ctx context.Context, resorts []*entity.Resort) error {
	batch := r.client.BulkWriter(ctx)
	for _, resort := range resorts {
		ref := r.client.Collection(resortsCollection).Doc(resort.ID)
		if _, err := batch.Set(ref, model.NewResortFromEntity(resort)); err != nil {
			return errors.Wrap(err, "enqueue resort upsert")
		}
	}
	batch.End()

	return nil
}

func (r *referenceRepository) UpsertParkHours(ctx context.Context, hours []*entity.ParkHours) error {
	batch := r.client.BulkWriter(ctx)
	for _, entry := range hours {
		ref := r.client.Collection(parkHoursCollection).Doc(parkHoursDoc(entry.ParkID, entry.Date))
		if _, err := batch.Set(ref, model.NewParkHoursFromEntity(entry)); err != nil {
			return errors.Wrap(err, "enqueue park hours upsert")
		}
	}
	batch.End()

	return nil
}
