package services

import (
	"context"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"
)

type UserService interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	Update(ctx context.Context, email string, req *dto.UpdateUserRequest) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("No user with email " + email)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.FindAll(ctx, limit, offset)
}

// Update writes the allow-listed profile fields and upserts any skills.
// Fields absent from the request stay untouched.
func (s *userService) Update(ctx context.Context, email string, req *dto.UpdateUserRequest) error {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.About != nil {
		fields["about"] = *req.About
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}
	if req.Education != nil {
		fields["education"] = *req.Education
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(ctx, user.ID, fields); err != nil {
			return err
		}
	}

	for name, level := range req.Skills {
		skill := &models.UserSkill{UserID: user.ID, Name: name, Level: level}
		if err := s.userRepo.UpsertSkill(ctx, skill); err != nil {
			return err
		}
	}
	return nil
}
