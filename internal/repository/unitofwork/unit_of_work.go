package unitofwork

import (
	"context"

	"daeda-site-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	ConversationContextRepository() contract.ConversationContextRepository
	KnowledgeRepository() contract.KnowledgeRepository
	IdeationSubmissionRepository() contract.IdeationSubmissionRepository
	ContactSubmissionRepository() contract.ContactSubmissionRepository
}
