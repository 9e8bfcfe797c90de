package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type KnowledgeEntry struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Query              string         `gorm:"type:text;not null"`
	QueryHash          string         `gorm:"type:varchar(20);not null;index"`
	SourceType         string         `gorm:"type:varchar(50);not null"`
	Content            string         `gorm:"type:text"`
	Summary            string         `gorm:"type:text"`
	AiOptimizedContent string         `gorm:"type:text"`
	Metadata           datatypes.JSON `gorm:"type:jsonb"`
	UseCount           int            `gorm:"not null;default:1"`
	LastAccessedAt     time.Time      `gorm:"autoCreateTime"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
}

func (KnowledgeEntry) TableName() string {
	return "ai_knowledgebase"
}
