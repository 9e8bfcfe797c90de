package mapper

import (
	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/model"
)

type SubmissionMapper struct{}

func NewSubmissionMapper() *SubmissionMapper {
	return &SubmissionMapper{}
}

func (m *SubmissionMapper) IdeationToEntity(s *model.IdeationSubmission) *entity.IdeationSubmission {
	if s == nil {
		return nil
	}
	return &entity.IdeationSubmission{
		Id:            s.Id,
		ChatSessionId: s.ChatSessionId,
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		ChatSummary:   s.ChatSummary,
		CreatedAt:     s.CreatedAt,
	}
}

func (m *SubmissionMapper) IdeationToModel(s *entity.IdeationSubmission) *model.IdeationSubmission {
	if s == nil {
		return nil
	}
	return &model.IdeationSubmission{
		Id:            s.Id,
		ChatSessionId: s.ChatSessionId,
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		ChatSummary:   s.ChatSummary,
		CreatedAt:     s.CreatedAt,
	}
}

func (m *SubmissionMapper) IdeationToEntities(models []*model.IdeationSubmission) []*entity.IdeationSubmission {
	entities := make([]*entity.IdeationSubmission, 0, len(models))
	for _, s := range models {
		entities = append(entities, m.IdeationToEntity(s))
	}
	return entities
}

func (m *SubmissionMapper) ContactToEntity(s *model.ContactSubmission) *entity.ContactSubmission {
	if s == nil {
		return nil
	}
	return &entity.ContactSubmission{
		Id:        s.Id,
		Name:      s.Name,
		Email:     s.Email,
		Company:   s.Company,
		Message:   s.Message,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SubmissionMapper) ContactToEntities(models []*model.ContactSubmission) []*entity.ContactSubmission {
	entities := make([]*entity.ContactSubmission, 0, len(models))
	for _, s := range models {
		entities = append(entities, m.ContactToEntity(s))
	}
	return entities
}

func (m *SubmissionMapper) ContactToModel(s *entity.ContactSubmission) *model.ContactSubmission {
	if s == nil {
		return nil
	}
	return &model.ContactSubmission{
		Id:        s.Id,
		Name:      s.Name,
		Email:     s.Email,
		Company:   s.Company,
		Message:   s.Message,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
}
