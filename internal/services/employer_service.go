package services

import (
	"context"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/pkg/apperrors"
)

type EmployerService interface {
	List(ctx context.Context) ([]models.Employer, error)
	GetByID(ctx context.Context, id string) (*models.Employer, error)
	SearchByName(ctx context.Context, name string) ([]models.Employer, error)
}

type employerService struct {
	employerRepo repositories.EmployerRepository
}

func NewEmployerService(employerRepo repositories.EmployerRepository) EmployerService {
	return &employerService{employerRepo: employerRepo}
}

func (s *employerService) List(ctx context.Context) ([]models.Employer, error) {
	return s.employerRepo.FindAll(ctx)
}

func (s *employerService) GetByID(ctx context.Context, id string) (*models.Employer, error) {
	employer, err := s.employerRepo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrEmployerNotFound {
			return nil, apperrors.NewNotFoundError("No employer with id " + id)
		}
		return nil, err
	}
	return employer, nil
}

func (s *employerService) SearchByName(ctx context.Context, name string) ([]models.Employer, error) {
	return s.employerRepo.FindByName(ctx, name)
}
