package implementation

import (
	"context"

	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/mapper"
	"daeda-site-be/internal/model"
	"daeda-site-be/internal/repository/contract"
	"daeda-site-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ContactSubmissionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubmissionMapper
}

func NewContactSubmissionRepository(db *gorm.DB) contract.ContactSubmissionRepository {
	return &ContactSubmissionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubmissionMapper(),
	}
}

func (r *ContactSubmissionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContactSubmissionRepositoryImpl) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	m := r.mapper.ContactToModel(submission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*submission = *r.mapper.ContactToEntity(m)
	return nil
}

func (r *ContactSubmissionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactSubmission, error) {
	var models []*model.ContactSubmission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ContactToEntities(models), nil
}
