// Package entity contains the core business objects of the project.
package entity

import "time"

// ActivityLog is one insert-only audit record of a successful write. Log
// collections are never updated or deleted, approximating an immutable
// audit trail.
type ActivityLog struct {
	ID         string    // Unique identifier of the log entry.
	RequestID  string    // Request ID for distributed tracing, if known.
	ActorID    string    // UID of the user who performed the write.
	Collection string    // The collection that was written.
	Action     string    // "create", "update" or "delete".
	ResourceID string    // Identifier of the written document.
	VacationID string    // The vacation scope of the write, if any.
	CreatedAt  time.Time // Timestamp of the write.
}

// ErrorLog is one insert-only record of a client-reported or server error.
type ErrorLog struct {
	ID        string    // Unique identifier of the log entry.
	RequestID string    // Request ID for distributed tracing, if known.
	ActorID   string    // UID of the affected user, if signed in.
	Source    string    // "client" or "server".
	Message   string    // Error message.
	Detail    string    // Optional stack trace or context.
	CreatedAt time.Time // Timestamp of the report.
}
