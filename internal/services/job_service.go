package services

import (
	"context"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"
)

type JobService interface {
	// List returns all jobs. When email is non-empty, each job carries the
	// caller's stored application for it, if any.
	List(ctx context.Context, email string) ([]dto.JobView, error)
	GetByID(ctx context.Context, id string) (*models.EmployerJob, error)
	ByEmployer(ctx context.Context, employerID string) (*dto.EmployerJobsResponse, error)
	Search(ctx context.Context, req dto.SearchJobsRequest) ([]models.EmployerJob, error)
	Create(ctx context.Context, req dto.CreateJobRequest) (*models.EmployerJob, error)
	Update(ctx context.Context, id string, req dto.UpdateJobRequest) (*models.EmployerJob, error)
	Delete(ctx context.Context, id string) error
}

type jobService struct {
	jobRepo      repositories.JobRepository
	employerRepo repositories.EmployerRepository
	userRepo     repositories.UserRepository
	appRepo      repositories.ApplicationRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	employerRepo repositories.EmployerRepository,
	userRepo repositories.UserRepository,
	appRepo repositories.ApplicationRepository,
) JobService {
	return &jobService{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
		userRepo:     userRepo,
		appRepo:      appRepo,
	}
}

func (s *jobService) List(ctx context.Context, email string) ([]dto.JobView, error) {
	jobs, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]dto.JobView, 0, len(jobs))
	for i := range jobs {
		views = append(views, dto.JobView{EmployerJob: jobs[i]})
	}
	if email == "" {
		return views, nil
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("No user with email " + email)
		}
		return nil, err
	}
	applications, err := s.appRepo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	byJob := make(map[string]*models.UserEmployerJob, len(applications))
	for i := range applications {
		byJob[applications[i].EmployerJobID] = &applications[i]
	}
	for i := range views {
		if app, ok := byJob[views[i].ID]; ok {
			views[i].UserApplication = app
		}
	}
	return views, nil
}

func (s *jobService) GetByID(ctx context.Context, id string) (*models.EmployerJob, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.NewNotFoundError("No job with id " + id)
		}
		return nil, err
	}
	return job, nil
}

func (s *jobService) ByEmployer(ctx context.Context, employerID string) (*dto.EmployerJobsResponse, error) {
	employer, err := s.employerRepo.FindByID(ctx, employerID)
	if err != nil {
		if err == repositories.ErrEmployerNotFound {
			return nil, apperrors.NewNotFoundError("No employer with id " + employerID)
		}
		return nil, err
	}
	jobs, err := s.jobRepo.FindByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}
	return &dto.EmployerJobsResponse{Employer: employer, Jobs: jobs}, nil
}

func (s *jobService) Search(ctx context.Context, req dto.SearchJobsRequest) ([]models.EmployerJob, error) {
	return s.jobRepo.Search(ctx, repositories.JobFilter{
		SearchTerm: req.SearchTerm,
		JobType:    req.JobType,
		WorkMode:   req.WorkMode,
		Level:      req.Level,
		Location:   req.Location,
	})
}

func (s *jobService) Create(ctx context.Context, req dto.CreateJobRequest) (*models.EmployerJob, error) {
	if _, err := s.employerRepo.FindByID(ctx, req.EmployerID); err != nil {
		if err == repositories.ErrEmployerNotFound {
			return nil, apperrors.NewNotFoundError("No employer with id " + req.EmployerID)
		}
		return nil, err
	}

	job := &models.EmployerJob{
		EmployerID:       req.EmployerID,
		Name:             req.Name,
		Description:      req.Description,
		Summary:          req.Summary,
		Responsibilities: encodeJSONText(req.Responsibilities),
		Qualifications:   req.Qualifications,
		Skills:           encodeJSONText(req.Skills),
		Experience:       req.Experience,
		ExperienceYears:  req.ExperienceYears,
		PostedTime:       req.PostedTime,
		JobType:          req.JobType,
		WorkMode:         req.WorkMode,
		Level:            req.Level,
		Location:         req.Location,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) Update(ctx context.Context, id string, req dto.UpdateJobRequest) (*models.EmployerJob, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Summary != nil {
		fields["summary"] = *req.Summary
	}
	if req.Responsibilities != nil {
		fields["responsibilities"] = encodeJSONText(req.Responsibilities)
	}
	if req.Qualifications != nil {
		fields["qualifications"] = *req.Qualifications
	}
	if req.Skills != nil {
		fields["skills"] = encodeJSONText(req.Skills)
	}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}
	if req.ExperienceYears != nil {
		fields["experience_years"] = *req.ExperienceYears
	}
	if req.PostedTime != nil {
		fields["posted_time"] = *req.PostedTime
	}
	if req.JobType != nil {
		fields["job_type"] = *req.JobType
	}
	if req.WorkMode != nil {
		fields["work_mode"] = *req.WorkMode
	}
	if req.Level != nil {
		fields["level"] = *req.Level
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}

	if len(fields) > 0 {
		if err := s.jobRepo.UpdateFields(ctx, id, fields); err != nil {
			if err == repositories.ErrJobNotFound {
				return nil, apperrors.NewNotFoundError("No job with id " + id)
			}
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		if err == repositories.ErrJobNotFound {
			return apperrors.NewNotFoundError("No job with id " + id)
		}
		return err
	}
	return nil
}
