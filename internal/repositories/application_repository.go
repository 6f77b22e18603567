package repositories

import (
	"context"
	"errors"

	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	FindByUserAndJob(ctx context.Context, userID, jobID string) (*models.UserEmployerJob, error)
	FindByUser(ctx context.Context, userID string) ([]models.UserEmployerJob, error)
	Create(ctx context.Context, application *models.UserEmployerJob) error
	DeleteByUserAndJob(ctx context.Context, userID, jobID string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) FindByUserAndJob(ctx context.Context, userID, jobID string) (*models.UserEmployerJob, error) {
	var application models.UserEmployerJob
	err := r.db.WithContext(ctx).
		First(&application, "user_id = ? AND employer_job_id = ?", userID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByUser(ctx context.Context, userID string) ([]models.UserEmployerJob, error) {
	var applications []models.UserEmployerJob
	err := r.db.WithContext(ctx).Preload("EmployerJob").
		Where("user_id = ?", userID).Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, application *models.UserEmployerJob) error {
	return r.db.WithContext(ctx).Create(application).Error
}

// DeleteByUserAndJob removes every row for the pair. A missing row is not
// an error; re-evaluation calls this unconditionally before inserting.
func (r *ApplicationRepositoryImpl) DeleteByUserAndJob(ctx context.Context, userID, jobID string) error {
	return r.db.WithContext(ctx).
		Delete(&models.UserEmployerJob{}, "user_id = ? AND employer_job_id = ?", userID, jobID).Error
}
