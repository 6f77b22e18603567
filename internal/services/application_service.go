package services

import (
	"context"
	"encoding/json"
	"fmt"

	"jobmatch_backend/internal/ai"
	"jobmatch_backend/internal/ai/extract"
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/pkg/apperrors"
)

type ApplicationService interface {
	// Apply evaluates the user's resume against the job and stores the
	// match report. A stored report is returned verbatim unless
	// forceEvaluate is set.
	Apply(ctx context.Context, email, jobID string, forceEvaluate bool) (json.RawMessage, error)
	ListByUser(ctx context.Context, email string) ([]models.UserEmployerJob, error)
}

type applicationService struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
	appRepo  repositories.ApplicationRepository
	model    ai.TextModel
}

func NewApplicationService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	model ai.TextModel,
) ApplicationService {
	return &applicationService{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		model:    model,
	}
}

func (s *applicationService) Apply(ctx context.Context, email, jobID string, forceEvaluate bool) (json.RawMessage, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("No user with email " + email)
		}
		return nil, err
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.NewNotFoundError("No job with id " + jobID)
		}
		return nil, err
	}

	// Idempotent read: an existing non-empty report short-circuits the
	// evaluation unless the caller forces a re-run.
	existing, err := s.appRepo.FindByUserAndJob(ctx, user.ID, jobID)
	if err == nil && existing.MatchJSON != "" && !forceEvaluate {
		return json.RawMessage(existing.MatchJSON), nil
	}
	if err != nil && err != repositories.ErrApplicationNotFound {
		return nil, err
	}

	report, err := s.evaluateMatch(ctx, job, user)
	if err != nil {
		return nil, err
	}
	matchJSON := encodeJSONText(report)

	// Last evaluation wins: drop any prior row for the pair, then insert.
	// There is deliberately no transaction around this; concurrent
	// evaluations race and the final writer's report is the one kept.
	if err := s.appRepo.DeleteByUserAndJob(ctx, user.ID, jobID); err != nil {
		return nil, err
	}
	application := &models.UserEmployerJob{
		UserID:        user.ID,
		EmployerJobID: jobID,
		MatchJSON:     matchJSON,
	}
	if err := s.appRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	return json.RawMessage(matchJSON), nil
}

func (s *applicationService) ListByUser(ctx context.Context, email string) ([]models.UserEmployerJob, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("No user with email " + email)
		}
		return nil, err
	}
	return s.appRepo.FindByUser(ctx, user.ID)
}

// evaluateMatch runs the weighted comparison of the job description
// against the user's extracted resume. Both sides go into the prompt as
// their stored JSON documents.
func (s *applicationService) evaluateMatch(ctx context.Context, job *models.EmployerJob, user *models.User) (map[string]interface{}, error) {
	jobDoc := job.DescJSON
	if jobDoc == "" {
		jobDoc = encodeJSONText(map[string]interface{}{
			"name":             job.Name,
			"description":      job.Description,
			"summary":          job.Summary,
			"responsibilities": job.Responsibilities,
			"qualifications":   job.Qualifications,
			"skills":           job.Skills,
			"experience":       job.Experience,
			"level":            job.Level,
		})
	}
	resumeDoc := user.ResumeJSON
	if resumeDoc == "" {
		return nil, apperrors.NewBadRequestError("User has no parsed resume on file; upload a resume first")
	}

	raw, err := s.model.Generate(ctx, fmt.Sprintf(jobMatchPrompt, jobDoc, resumeDoc))
	if err != nil {
		return nil, apperrors.ExternalServiceError("llm", err)
	}

	report, filled := extract.Decode(raw, jobMatchSchema)
	if len(filled) > 0 {
		logger.CtxWarn(ctx, "job match evaluation filled default fields",
			"job_id", job.ID, "fields", filled)
	}
	return report, nil
}
