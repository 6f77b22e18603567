package services

import (
	"context"
	"fmt"
	"strings"

	"jobmatch_backend/internal/ai"
	"jobmatch_backend/internal/ai/extract"
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"
)

// guidelineTopK is how many guideline passages are folded into the
// evaluation prompt as scoring criteria.
const guidelineTopK = 3

type EvaluationService interface {
	EvaluateResponse(ctx context.Context, question, response string) (dto.EvaluationReport, error)
	EvaluateBatch(ctx context.Context, req *dto.BatchRequest) (*dto.BatchEvaluationResponse, error)
}

type evaluationService struct {
	guidelineRepo repositories.GuidelineRepository
	model         ai.TextModel
}

func NewEvaluationService(guidelineRepo repositories.GuidelineRepository, model ai.TextModel) EvaluationService {
	return &evaluationService{guidelineRepo: guidelineRepo, model: model}
}

func (s *evaluationService) EvaluateResponse(ctx context.Context, question, response string) (dto.EvaluationReport, error) {
	// Input preconditions are the only errors this method reports as 4xx;
	// they are checked before any external call.
	if response == "string" || strings.TrimSpace(response) == "" {
		return nil, apperrors.NewBadRequestError(
			"Please provide an actual response, not the placeholder 'string' or an empty response")
	}

	criteria, err := s.retrieveCriteria(ctx, question+" "+response)
	if err != nil {
		return nil, apperrors.ExternalServiceError("vector-index", err)
	}

	prompt := fmt.Sprintf(behavioralEvaluationPrompt, question, response, criteria)
	raw, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return nil, apperrors.ExternalServiceError("llm", err)
	}

	report, filled := extract.Decode(raw, behavioralSchema)
	if len(filled) > 0 {
		logger.CtxWarn(ctx, "behavioral evaluation filled default fields", "fields", filled)
	}
	normalizeCitations(report)

	// Echo the inputs for audit.
	report["question"] = question
	report["answer"] = response
	return report, nil
}

func (s *evaluationService) EvaluateBatch(ctx context.Context, req *dto.BatchRequest) (*dto.BatchEvaluationResponse, error) {
	evaluations := make([]dto.EvaluationReport, 0, len(req.Responses))
	for _, pair := range req.Responses {
		report, err := s.EvaluateResponse(ctx, pair.Question, pair.Response)
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, report)
	}
	return &dto.BatchEvaluationResponse{Evaluations: evaluations}, nil
}

// retrieveCriteria embeds the query and joins the text of the nearest
// guideline passages. Passage text only; sources stay behind for the model
// to cite from the prompt itself.
func (s *evaluationService) retrieveCriteria(ctx context.Context, query string) (string, error) {
	embedding, err := s.model.Embed(ctx, query)
	if err != nil {
		return "", err
	}
	passages, err := s.guidelineRepo.Nearest(ctx, embedding, guidelineTopK)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(passages))
	for _, p := range passages {
		parts = append(parts, p.Content)
	}
	return strings.Join(parts, "\n"), nil
}

// normalizeCitations guarantees every citation has a page_number, default 1.
func normalizeCitations(report map[string]interface{}) {
	citations, ok := report["citations"].([]interface{})
	if !ok {
		return
	}
	for _, item := range citations {
		citation, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if v, present := citation["page_number"]; !present || v == nil {
			citation["page_number"] = float64(1)
		}
	}
}
