package implementation

import (
	"context"
	"errors"
	"time"

	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/mapper"
	"daeda-site-be/internal/model"
	"daeda-site-be/internal/repository/contract"
	"daeda-site-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KnowledgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KnowledgeRepositoryImpl) Create(ctx context.Context, entry *entity.KnowledgeEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeRepositoryImpl) FindByHash(ctx context.Context, queryHash string) (*entity.KnowledgeEntry, error) {
	var m model.KnowledgeEntry
	if err := r.db.WithContext(ctx).Where("query_hash = ?", queryHash).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *KnowledgeRepositoryImpl) SearchRelated(ctx context.Context, query string, limit int) ([]*entity.KnowledgeEntry, error) {
	var models []*model.KnowledgeEntry
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("query ILIKE ? OR summary ILIKE ?", pattern, pattern).
		Order("use_count DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *KnowledgeRepositoryImpl) RecordAccess(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.KnowledgeEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"use_count":        gorm.Expr("use_count + 1"),
			"last_accessed_at": time.Now(),
		}).Error
}

func (r *KnowledgeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error) {
	var models []*model.KnowledgeEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
