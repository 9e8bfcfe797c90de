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

type IdeationSubmissionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubmissionMapper
}

func NewIdeationSubmissionRepository(db *gorm.DB) contract.IdeationSubmissionRepository {
	return &IdeationSubmissionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubmissionMapper(),
	}
}

func (r *IdeationSubmissionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *IdeationSubmissionRepositoryImpl) Create(ctx context.Context, submission *entity.IdeationSubmission) error {
	m := r.mapper.IdeationToModel(submission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*submission = *r.mapper.IdeationToEntity(m)
	return nil
}

func (r *IdeationSubmissionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IdeationSubmission, error) {
	var models []*model.IdeationSubmission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.IdeationToEntities(models), nil
}
