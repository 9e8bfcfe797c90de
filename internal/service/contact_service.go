package service

import (
	"context"
	"encoding/json"
	"time"

	"daeda-site-be/internal/dto"
	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/pkg/logger"
	"daeda-site-be/internal/repository/unitofwork"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error)
}

type contactService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewContactService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
) IContactService {
	return &contactService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	submission := &entity.ContactSubmission{
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Message:   req.Message,
		Status:    entity.ContactStatusNew,
		CreatedAt: time.Now(),
	}

	// Best-effort: the form always shows its success state, so a storage
	// failure is logged and the notification still goes out.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ContactSubmissionRepository().Create(ctx, submission); err != nil {
		s.logger.Error("ContactService", "Failed to store contact submission", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
	}

	// The email notification rides the in-process bus. If publishing
	// fails the submission is still stored, so only log it.
	payload, _ := json.Marshal(ContactSubmittedMessage{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	})
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Error("ContactService", "Failed to publish contact notification", map[string]interface{}{
			"submission_id": submission.Id.String(),
			"error":         err.Error(),
		})
	}

	return &dto.ContactResponse{
		Id:     submission.Id.String(),
		Status: submission.Status,
	}, nil
}
