package contract

import (
	"context"

	"daeda-site-be/internal/entity"

	"github.com/google/uuid"
)

type ConversationContextRepository interface {
	// FindBySession returns nil (no error) when no context is stored yet.
	FindBySession(ctx context.Context, sessionId uuid.UUID) (*entity.ConversationContext, error)
	// Upsert writes the full context record keyed by session id.
	Upsert(ctx context.Context, conversationContext *entity.ConversationContext) error
}
