package usecase

import (
	"context"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
)

// ReportErrorInput holds one client-reported error.
type ReportErrorInput struct {
	Message string
	Detail  string
}

// AuditUsecase defines the interface for the insert-only audit trail
type AuditUsecase interface {
	// ReportClientError records an error reported by a client device.
	ReportClientError(ctx context.Context, ident *authz.Identity, input *ReportErrorInput) error

	// ListActivity retrieves the newest activity records of a vacation.
	// Admin-only.
	ListActivity(ctx context.Context, ident *authz.Identity, vacationID string, limit int) ([]*entity.ActivityLog, error)
}
