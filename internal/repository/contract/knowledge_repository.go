package contract

import (
	"context"

	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeRepository interface {
	Create(ctx context.Context, entry *entity.KnowledgeEntry) error
	// FindByHash returns nil (no error) when no entry matches the hash.
	FindByHash(ctx context.Context, queryHash string) (*entity.KnowledgeEntry, error)
	// SearchRelated does a case-insensitive containment search of query
	// against the stored query and summary columns, ordered by descending
	// use count.
	SearchRelated(ctx context.Context, query string, limit int) ([]*entity.KnowledgeEntry, error)
	// RecordAccess increments use_count and refreshes last_accessed_at.
	RecordAccess(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error)
}
