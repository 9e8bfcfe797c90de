package mapper

import (
	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/model"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToEntity(e *model.KnowledgeEntry) *entity.KnowledgeEntry {
	if e == nil {
		return nil
	}

	return &entity.KnowledgeEntry{
		Id:                 e.Id,
		Query:              e.Query,
		QueryHash:          e.QueryHash,
		SourceType:         e.SourceType,
		Content:            e.Content,
		Summary:            e.Summary,
		AiOptimizedContent: e.AiOptimizedContent,
		Metadata:           jsonToMap(e.Metadata),
		UseCount:           e.UseCount,
		LastAccessedAt:     e.LastAccessedAt,
		CreatedAt:          e.CreatedAt,
	}
}

func (m *KnowledgeMapper) ToEntities(models []*model.KnowledgeEntry) []*entity.KnowledgeEntry {
	entities := make([]*entity.KnowledgeEntry, 0, len(models))
	for _, e := range models {
		entities = append(entities, m.ToEntity(e))
	}
	return entities
}

func (m *KnowledgeMapper) ToModel(e *entity.KnowledgeEntry) *model.KnowledgeEntry {
	if e == nil {
		return nil
	}

	return &model.KnowledgeEntry{
		Id:                 e.Id,
		Query:              e.Query,
		QueryHash:          e.QueryHash,
		SourceType:         e.SourceType,
		Content:            e.Content,
		Summary:            e.Summary,
		AiOptimizedContent: e.AiOptimizedContent,
		Metadata:           mapToJSON(e.Metadata),
		UseCount:           e.UseCount,
		LastAccessedAt:     e.LastAccessedAt,
		CreatedAt:          e.CreatedAt,
	}
}
