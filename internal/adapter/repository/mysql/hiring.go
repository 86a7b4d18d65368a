package mysql

import (
	"context"

	hiringDomain "meewoo-banking/internal/domain/hiring"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobApplicationRepository struct{ db *gorm.DB }

func NewJobApplicationRepository(db *gorm.DB) *JobApplicationRepository {
	return &JobApplicationRepository{db: db}
}

func (r *JobApplicationRepository) Create(ctx context.Context, a *hiringDomain.JobApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *JobApplicationRepository) Save(ctx context.Context, a *hiringDomain.JobApplication) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *JobApplicationRepository) GetByID(ctx context.Context, id uint64) (*hiringDomain.JobApplication, error) {
	var out hiringDomain.JobApplication
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *JobApplicationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*hiringDomain.JobApplication, error) {
	var out hiringDomain.JobApplication
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *JobApplicationRepository) ListAll(ctx context.Context) ([]hiringDomain.JobApplication, error) {
	var out []hiringDomain.JobApplication
	res := r.db.WithContext(ctx).
		Order("application_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}
