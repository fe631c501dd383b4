// Package entity contains the core business objects of the project.
package entity

import "time"

// Message is one group-chat message within a vacation. SenderID and
// VacationID are immutable; edits may only flip Edited to true alongside a
// body change by the original author.
type Message struct {
	ID         string            // Unique identifier of the message.
	VacationID string            // The vacation chat this message belongs to. Immutable.
	SenderID   string            // UID of the authoring member. Immutable.
	Body       string            // Message text.
	Edited     bool              // True once the author has edited the message.
	Reactions  map[string]string // Emoji reaction keyed by reacting member UID.
	CreatedAt  time.Time         // Timestamp of when the message was sent.
	UpdatedAt  time.Time         // Timestamp of the last modification.
}
