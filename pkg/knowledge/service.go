package knowledge

import (
	"context"
	"time"

	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/pkg/logger"
	"daeda-site-be/internal/repository/contract"
)

const relatedLimit = 3

// Service fronts the shared research knowledge base. Lookups try an
// exact hash match first and fall back to a fuzzy containment search
// over previously stored queries and summaries.
type Service struct {
	repo   contract.KnowledgeRepository
	logger logger.ILogger
}

func NewService(repo contract.KnowledgeRepository, log logger.ILogger) *Service {
	return &Service{
		repo:   repo,
		logger: log,
	}
}

// Lookup returns stored knowledge for a research query. When the exact
// normalized query was researched before, the single cached entry is
// returned with exact=true and its usage counters are bumped. Otherwise
// up to three related entries are returned with exact=false.
func (s *Service) Lookup(ctx context.Context, query string) ([]*entity.KnowledgeEntry, bool, error) {
	hash := HashQuery(query)

	entry, err := s.repo.FindByHash(ctx, hash)
	if err != nil {
		return nil, false, err
	}
	if entry != nil {
		// Usage counters are best-effort; a failed update must not turn
		// a cache hit into a fresh web search.
		if err := s.repo.RecordAccess(ctx, entry.Id); err != nil {
			s.logger.Warn("knowledge", "usage counter update failed", map[string]interface{}{
				"entry_id": entry.Id.String(),
				"error":    err.Error(),
			})
		}
		entry.UseCount++
		return []*entity.KnowledgeEntry{entry}, true, nil
	}

	related, err := s.repo.SearchRelated(ctx, query, relatedLimit)
	if err != nil {
		return nil, false, err
	}
	return related, false, nil
}

// Store persists freshly researched content under the query's hash so
// future sessions asking the same question skip the web search.
func (s *Service) Store(ctx context.Context, query, content, summary, aiOptimized string, metadata map[string]interface{}) (*entity.KnowledgeEntry, error) {
	now := time.Now()
	entry := &entity.KnowledgeEntry{
		Query:              query,
		QueryHash:          HashQuery(query),
		SourceType:         entity.KnowledgeSourceBraveSearch,
		Content:            content,
		Summary:            summary,
		AiOptimizedContent: aiOptimized,
		Metadata:           metadata,
		UseCount:           1,
		LastAccessedAt:     now,
		CreatedAt:          now,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
