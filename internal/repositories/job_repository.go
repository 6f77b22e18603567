package repositories

import (
	"context"
	"errors"

	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter mirrors the search surface: a free-text term over
// name/description/summary plus exact scalar filters.
type JobFilter struct {
	SearchTerm string
	JobType    string
	WorkMode   string
	Level      string
	Location   string
}

type JobRepository interface {
	FindAll(ctx context.Context) ([]models.EmployerJob, error)
	FindByID(ctx context.Context, id string) (*models.EmployerJob, error)
	FindByEmployer(ctx context.Context, employerID string) ([]models.EmployerJob, error)
	Search(ctx context.Context, filter JobFilter) ([]models.EmployerJob, error)
	Create(ctx context.Context, job *models.EmployerJob) error
	UpdateFields(ctx context.Context, jobID string, fields map[string]interface{}) error
	Delete(ctx context.Context, jobID string) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindAll(ctx context.Context) ([]models.EmployerJob, error) {
	var jobs []models.EmployerJob
	err := r.db.WithContext(ctx).Preload("Employer").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*models.EmployerJob, error) {
	var job models.EmployerJob
	err := r.db.WithContext(ctx).Preload("Employer").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByEmployer(ctx context.Context, employerID string) ([]models.EmployerJob, error) {
	var jobs []models.EmployerJob
	err := r.db.WithContext(ctx).Where("employer_id = ?", employerID).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Search(ctx context.Context, filter JobFilter) ([]models.EmployerJob, error) {
	query := r.db.WithContext(ctx).Preload("Employer")

	if filter.SearchTerm != "" {
		search := "%" + filter.SearchTerm + "%"
		query = query.Where(
			"name ILIKE ? OR description ILIKE ? OR summary ILIKE ?",
			search, search, search,
		)
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.WorkMode != "" {
		query = query.Where("work_mode = ?", filter.WorkMode)
	}
	if filter.Level != "" {
		query = query.Where("level = ?", filter.Level)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}

	var jobs []models.EmployerJob
	err := query.Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.EmployerJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepositoryImpl) UpdateFields(ctx context.Context, jobID string, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.EmployerJob{}).Where("id = ?", jobID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(ctx context.Context, jobID string) error {
	result := r.db.WithContext(ctx).Delete(&models.EmployerJob{}, "id = ?", jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
