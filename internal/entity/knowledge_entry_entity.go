package entity

import (
	"time"

	"github.com/google/uuid"
)

const KnowledgeSourceBraveSearch = "brave_search"

// KnowledgeEntry is one cached research result, keyed by the hash of its
// normalized query text. Entries are never expired.
type KnowledgeEntry struct {
	Id                 uuid.UUID
	Query              string
	QueryHash          string
	SourceType         string
	Content            string
	Summary            string
	AiOptimizedContent string
	Metadata           map[string]interface{}
	UseCount           int
	LastAccessedAt     time.Time
	CreatedAt          time.Time
}
