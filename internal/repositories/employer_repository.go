package repositories

import (
	"context"
	"errors"

	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEmployerNotFound = errors.New("employer not found")

type EmployerRepository interface {
	FindAll(ctx context.Context) ([]models.Employer, error)
	FindByID(ctx context.Context, id string) (*models.Employer, error)
	FindByName(ctx context.Context, name string) ([]models.Employer, error)
	Create(ctx context.Context, employer *models.Employer) error
}

type EmployerRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &EmployerRepositoryImpl{db: db}
}

func (r *EmployerRepositoryImpl) FindAll(ctx context.Context) ([]models.Employer, error) {
	var employers []models.Employer
	err := r.db.WithContext(ctx).Preload("Jobs").Find(&employers).Error
	return employers, err
}

func (r *EmployerRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Employer, error) {
	var employer models.Employer
	err := r.db.WithContext(ctx).First(&employer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerNotFound
		}
		return nil, err
	}
	return &employer, nil
}

func (r *EmployerRepositoryImpl) FindByName(ctx context.Context, name string) ([]models.Employer, error) {
	var employers []models.Employer
	err := r.db.WithContext(ctx).Preload("Jobs").
		Where("name ILIKE ?", "%"+name+"%").Find(&employers).Error
	return employers, err
}

func (r *EmployerRepositoryImpl) Create(ctx context.Context, employer *models.Employer) error {
	return r.db.WithContext(ctx).Create(employer).Error
}
