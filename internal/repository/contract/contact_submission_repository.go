package contract

import (
	"context"

	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/repository/specification"
)

type ContactSubmissionRepository interface {
	Create(ctx context.Context, submission *entity.ContactSubmission) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactSubmission, error)
}
