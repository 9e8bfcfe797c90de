package contract

import (
	"context"

	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/repository/specification"
)

type IdeationSubmissionRepository interface {
	Create(ctx context.Context, submission *entity.IdeationSubmission) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IdeationSubmission, error)
}
