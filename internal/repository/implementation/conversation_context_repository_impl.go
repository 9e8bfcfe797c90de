package implementation

import (
	"context"
	"errors"

	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/mapper"
	"daeda-site-be/internal/model"
	"daeda-site-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationContextRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContextMapper
}

func NewConversationContextRepository(db *gorm.DB) contract.ConversationContextRepository {
	return &ConversationContextRepositoryImpl{
		db:     db,
		mapper: mapper.NewContextMapper(),
	}
}

func (r *ConversationContextRepositoryImpl) FindBySession(ctx context.Context, sessionId uuid.UUID) (*entity.ConversationContext, error) {
	var m model.ConversationContext
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ConversationContextRepositoryImpl) Upsert(ctx context.Context, conversationContext *entity.ConversationContext) error {
	m := r.mapper.ToModel(conversationContext)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			UpdateAll: true,
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*conversationContext = *r.mapper.ToEntity(m)
	return nil
}
