// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"parkplan/internal/domain/entity"
)

// AuditRepository defines the interface for the insert-only audit trail.
// There are deliberately no update or delete operations.
type AuditRepository interface {
	// CreateActivityLog records one successful write.
	CreateActivityLog(ctx context.Context, log *entity.ActivityLog) error

	// CreateErrorLog records one client-reported or server error.
	CreateErrorLog(ctx context.Context, log *entity.ErrorLog) error

	// FindActivityLogsByVacation retrieves the newest activity of a vacation,
	// up to limit. Reachable only from admin surfaces.
	FindActivityLogsByVacation(ctx context.Context, vacationID string, limit int) ([]*entity.ActivityLog, error)
}
