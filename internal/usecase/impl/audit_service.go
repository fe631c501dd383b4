package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
	"parkplan/internal/domain/repository"
	"parkplan/internal/domain/service"
	"parkplan/internal/errors"
	"parkplan/internal/infra/persistence/model"
	"parkplan/internal/usecase"

	deliverycontext "parkplan/internal/delivery/context"
)

type auditService struct {
	guard
	auditRepo repository.AuditRepository
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	AuditRepo   repository.AuditRepository
	Authorizer  authz.Authorizer
	Limiter     service.RateLimiter
	Broadcaster service.StreamBroadcaster
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewAuditService creates a new audit trail service instance
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		guard:     newGuard(params.Authorizer, params.Limiter, params.Broadcaster, params.Publisher, params.Logger),
		auditRepo: params.AuditRepo,
	}
}

// ReportClientError records an error reported by a client device. The log
// collections are insert-only, so there is no way to revise or remove the
// record afterwards.
func (s *auditService) ReportClientError(ctx context.Context, ident *authz.Identity, input *usecase.ReportErrorInput) error {
	if err := s.admit(ident); err != nil {
		return err
	}

	actorID := ""
	if ident != nil {
		actorID = ident.UID
	}
	log := &entity.ErrorLog{
		ID:        uuid.New().String(),
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		ActorID:   actorID,
		Source:    "client",
		Message:   input.Message,
		Detail:    input.Detail,
		CreatedAt: s.now(),
	}

	doc, err := documentOf(model.NewErrorLogFromEntity(log))
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionErrorLogs,
		Action:     authz.ActionCreate,
		Identity:   ident,
		ResourceID: log.ID,
		New:        doc,
	}); err != nil {
		return err
	}

	if err := s.auditRepo.CreateErrorLog(ctx, log); err != nil {
		return errors.Wrap(err, "record error report")
	}

	return nil
}

// ListActivity retrieves the newest activity records of a vacation. The
// analytics read gate restricts this to admins.
func (s *auditService) ListActivity(ctx context.Context, ident *authz.Identity, vacationID string, limit int) ([]*entity.ActivityLog, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionAnalytics,
		Action:     authz.ActionRead,
		Identity:   ident,
		VacationID: vacationID,
	}); err != nil {
		return nil, err
	}

	logs, err := s.auditRepo.FindActivityLogsByVacation(ctx, vacationID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list activity")
	}

	return logs, nil
}
