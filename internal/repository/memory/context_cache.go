package memory

import (
	"time"

	"daeda-site-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ContextCache keeps the accumulated conversation context of active
// sessions in process memory so the chat pipeline does not have to hit
// Postgres on every message. The database row stays the source of truth.
type ContextCache struct {
	cache *cache.Cache
}

func NewContextCache() *ContextCache {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ContextCache{
		cache: c,
	}
}

func (r *ContextCache) Save(conversationContext *entity.ConversationContext) {
	r.cache.Set(conversationContext.SessionId.String(), conversationContext, cache.DefaultExpiration)
}

func (r *ContextCache) Get(sessionId uuid.UUID) (*entity.ConversationContext, bool) {
	if x, found := r.cache.Get(sessionId.String()); found {
		return x.(*entity.ConversationContext), true
	}
	return nil, false
}

func (r *ContextCache) Delete(sessionId uuid.UUID) {
	r.cache.Delete(sessionId.String())
}
