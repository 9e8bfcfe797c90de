package service

import (
	"context"

	"daeda-site-be/internal/dto"
	"daeda-site-be/internal/pkg/logger"
	"daeda-site-be/internal/repository/specification"
	"daeda-site-be/internal/repository/unitofwork"
)

type IAdminService interface {
	ListSubmissions(ctx context.Context, limit, offset int) ([]*dto.IdeationSubmissionResponse, error)
	ListContacts(ctx context.Context, limit, offset int) ([]*dto.ContactSubmissionResponse, error)
	ListKnowledge(ctx context.Context, limit, offset int) ([]*dto.KnowledgeEntryResponse, error)
	GetLogs(level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *adminService) ListSubmissions(ctx context.Context, limit, offset int) ([]*dto.IdeationSubmissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	submissions, err := uow.IdeationSubmissionRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.IdeationSubmissionResponse, 0, len(submissions))
	for _, sub := range submissions {
		res = append(res, &dto.IdeationSubmissionResponse{
			Id:          sub.Id.String(),
			SessionId:   sub.ChatSessionId.String(),
			Name:        sub.Name,
			Email:       sub.Email,
			Phone:       sub.Phone,
			ChatSummary: sub.ChatSummary,
			CreatedAt:   sub.CreatedAt,
		})
	}
	return res, nil
}

func (s *adminService) ListContacts(ctx context.Context, limit, offset int) ([]*dto.ContactSubmissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	contacts, err := uow.ContactSubmissionRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ContactSubmissionResponse, 0, len(contacts))
	for _, c := range contacts {
		res = append(res, &dto.ContactSubmissionResponse{
			Id:        c.Id.String(),
			Name:      c.Name,
			Email:     c.Email,
			Company:   c.Company,
			Message:   c.Message,
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
		})
	}
	return res, nil
}

func (s *adminService) ListKnowledge(ctx context.Context, limit, offset int) ([]*dto.KnowledgeEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entries, err := uow.KnowledgeRepository().FindAll(ctx,
		specification.OrderBy{Field: "use_count", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.KnowledgeEntryResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, &dto.KnowledgeEntryResponse{
			Id:             e.Id.String(),
			Query:          e.Query,
			Summary:        e.Summary,
			SourceType:     e.SourceType,
			UseCount:       e.UseCount,
			LastAccessedAt: e.LastAccessedAt,
			CreatedAt:      e.CreatedAt,
		})
	}
	return res, nil
}

func (s *adminService) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return s.logger.GetLogs(level, limit, offset)
}
