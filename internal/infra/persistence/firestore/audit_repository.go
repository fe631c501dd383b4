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
	analyticsCollection = "analytics"
	errorLogsCollection = "errorLogs"
)

// auditRepository implements repository.AuditRepository on Firestore.
// Both collections are append-only.
type auditRepository struct {
	client *firestore.Client
}

// NewAuditRepository creates a Firestore-backed audit repository.
func NewAuditRepository(client *firestore.Client) repository.AuditRepository {
	return &auditRepository{client: client}
}

func (r *auditRepository) CreateActivityLog(ctx context.Context, log *entity.ActivityLog) error {
	_, err := r.client.Collection(analyticsCollection).
		Doc(log.ID).
		Create(ctx, model.NewActivityLogFromEntity(log))
	if err != nil {
		return errors.Wrap(err, "create activity log")
	}

	return nil
}

func (r *auditRepository) CreateErrorLog(ctx context.Context, log *entity.ErrorLog) error {
	_, err := r.client.Collection(errorLogsCollection).
		Doc(log.ID).
		Create(ctx, model.NewErrorLogFromEntity(log))
	if err != nil {
		return errors.Wrap(err, "create error log")
	}

	return nil
}

func (r *auditRepository) FindActivityLogsByVacation(ctx context.Context, vacationID string, limit int) ([]*entity.ActivityLog, error) {
	query := r.client.Collection(analyticsCollection).
		Where("vacationId", "==", vacationID).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var logs []*entity.ActivityLog
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate activity logs")
		}

		var doc model.ActivityLog
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode activity log")
		}
		doc.ID = snap.Ref.ID
		logs = append(logs, doc.ToEntity())
	}

	return logs, nil
}
