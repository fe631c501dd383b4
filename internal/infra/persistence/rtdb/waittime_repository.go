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

const waitTimesRoot = "waitTimes"

// waitTimeRepository implements repository.WaitTimeRepository on the Realtime
// Database. The board lives under waitTimes/{parkId}/{attractionId} and is
// replaced wholesale on every importer refresh.
type waitTimeRepository struct {
	client *db.Client
}

// NewWaitTimeRepository creates a Realtime Database backed wait-time repository.
func NewWaitTimeRepository(client *db.Client) repository.WaitTimeRepository {
	return &waitTimeRepository{client: client}
}

func (r *waitTimeRepository) UpsertWaitTimes(ctx context.Context, parkID string, waits []*entity.WaitTime) error {
	board := make(map[string]*model.WaitTime, len(waits))
	for _, wait := range waits {
		board[wait.AttractionID] = model.NewWaitTimeFromEntity(wait)
	}

	if err := r.client.NewRef(waitTimesRoot).Child(parkID).Set(ctx, board); err != nil {
		return errors.Wrap(err, "set wait times")
	}

	return nil
}

func (r *waitTimeRepository) FindWaitTimesByPark(ctx context.Context, parkID string) ([]*entity.WaitTime, error) {
	var board map[string]model.WaitTime
	if err := r.client.NewRef(waitTimesRoot).Child(parkID).Get(ctx, &board); err != nil {
		return nil, errors.Wrap(err, "get wait times")
	}

	waits := make([]*entity.WaitTime, 0, len(board))
	for _, doc := range board {
		waits = append(waits, doc.ToEntity())
	}
	sort.Slice(waits, func(i, j int) bool {
		return waits[i].AttractionID < waits[j].AttractionID
	})

	return waits, nil
}
