package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationContext accumulates monotonically across the turns of one
// session: scalar fields are first-write-wins, set fields only grow.
// Stakeholders is carried in the schema but no extraction rule fills it yet.
type ConversationContext struct {
	SessionId    uuid.UUID
	Industry     string
	CompanySize  string
	PainPoints   []string
	Goals        []string
	CurrentTools []string
	BudgetRange  string
	Timeline     string
	Stakeholders []string
	UpdatedAt    time.Time
}

// NewConversationContext returns the empty context created at session start.
func NewConversationContext(sessionId uuid.UUID) *ConversationContext {
	return &ConversationContext{
		SessionId:    sessionId,
		PainPoints:   []string{},
		Goals:        []string{},
		CurrentTools: []string{},
		Stakeholders: []string{},
	}
}
