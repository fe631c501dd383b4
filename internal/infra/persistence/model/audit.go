package model

import (
	"time"

	"parkplan/internal/domain/entity"
)

// ActivityLog is the insert-only Firestore document under analytics/{logId}.
type ActivityLog struct {
	ID         string    `firestore:"-" json:"-"`
	RequestID  string    `firestore:"requestId,omitempty" json:"requestId,omitempty"`
	ActorID    string    `firestore:"actorId" json:"actorId"`
	Collection string    `firestore:"collection" json:"collection"`
	Action     string    `firestore:"action" json:"action"`
	ResourceID string    `firestore:"resourceId" json:"resourceId"`
	VacationID string    `firestore:"vacationId,omitempty" json:"vacationId,omitempty"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
}

// ErrorLog is the insert-only Firestore document under errorLogs/{logId}.
type ErrorLog struct {
	ID        string    `firestore:"-" json:"-"`
	RequestID string    `firestore:"requestId,omitempty" json:"requestId,omitempty"`
	ActorID   string    `firestore:"actorId,omitempty" json:"actorId,omitempty"`
	Source    string    `firestore:"source" json:"source"`
	Message   string    `firestore:"message" json:"message"`
	Detail    string    `firestore:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

// NewActivityLogFromEntity converts a domain record into its storage form.
func NewActivityLogFromEntity(log *entity.ActivityLog) *ActivityLog {
	return &ActivityLog{
		ID:         log.ID,
		RequestID:  log.RequestID,
		ActorID:    log.ActorID,
		Collection: log.Collection,
		Action:     log.Action,
		ResourceID: log.ResourceID,
		VacationID: log.VacationID,
		CreatedAt:  log.CreatedAt,
	}
}

// ToEntity converts the storage form back into a domain record.
func (m *ActivityLog) ToEntity() *entity.ActivityLog {
	return &entity.ActivityLog{
		ID:         m.ID,
		RequestID:  m.RequestID,
		ActorID:    m.ActorID,
		Collection: m.Collection,
		Action:     m.Action,
		ResourceID: m.ResourceID,
		VacationID: m.VacationID,
		CreatedAt:  m.CreatedAt,
	}
}

// NewErrorLogFromEntity converts a domain record into its storage form.
func NewErrorLogFromEntity(log *entity.ErrorLog) *ErrorLog {
	return &ErrorLog{
		ID:        log.ID,
		RequestID: log.RequestID,
		ActorID:   log.ActorID,
		Source:    log.Source,
		Message:   log.Message,
		Detail:    log.Detail,
		CreatedAt: log.CreatedAt,
	}
}

// ToEntity converts the storage form back into a domain record.
func (m *ErrorLog) ToEntity() *entity.ErrorLog {
	return &entity.ErrorLog{
		ID:        m.ID,
		RequestID: m.RequestID,
		ActorID:   m.ActorID,
		Source:    m.Source,
		Message:   m.Message,
		Detail:    m.Detail,
		CreatedAt: m.CreatedAt,
	}
}
