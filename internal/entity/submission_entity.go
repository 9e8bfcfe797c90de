package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusArchived  = "archived"
)

// IdeationSubmission is the lead captured when a user accepts the handoff
// offer inside the chat widget.
type IdeationSubmission struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Name          string
	Email         string
	Phone         string
	ChatSummary   string
	CreatedAt     time.Time
}

// ContactSubmission is one entry from the site contact form.
type ContactSubmission struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Company   string
	Message   string
	Status    string
	CreatedAt time.Time
}
