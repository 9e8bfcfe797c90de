package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ConversationContext struct {
	SessionId    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Industry     *string        `gorm:"type:varchar(100)"`
	CompanySize  *string        `gorm:"type:varchar(20)"`
	PainPoints   datatypes.JSON `gorm:"type:jsonb"`
	Goals        datatypes.JSON `gorm:"type:jsonb"`
	CurrentTools datatypes.JSON `gorm:"type:jsonb"`
	BudgetRange  *string        `gorm:"type:varchar(100)"`
	Timeline     *string        `gorm:"type:varchar(100)"`
	Stakeholders datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

func (ConversationContext) TableName() string {
	return "conversation_contexts"
}
