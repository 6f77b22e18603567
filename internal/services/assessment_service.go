package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"jobmatch_backend/internal/ai"
	"jobmatch_backend/internal/ai/extract"
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type AssessmentService interface {
	// TopUp tops the user up to MinAssessmentQuestions generated questions,
	// at difficulty levels adapted to the user's recorded skills.
	TopUp(ctx context.Context, email, version string) ([]models.UserSkillAssess, error)
	GetAttempt(ctx context.Context, email, version string) ([]models.UserSkillAssess, error)
	RecordAnswers(ctx context.Context, email string, answers []dto.RecordAnswerRequest) error
	QueryBank(ctx context.Context, queries []dto.QuestionBankQuery) ([]models.SkillQuestion, error)
}

type assessmentService struct {
	userRepo   repositories.UserRepository
	assessRepo repositories.AssessmentRepository
	model      ai.TextModel
}

func NewAssessmentService(
	userRepo repositories.UserRepository,
	assessRepo repositories.AssessmentRepository,
	model ai.TextModel,
) AssessmentService {
	return &assessmentService{
		userRepo:   userRepo,
		assessRepo: assessRepo,
		model:      model,
	}
}

func (s *assessmentService) TopUp(ctx context.Context, email, version string) ([]models.UserSkillAssess, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("No user with email " + email)
		}
		return nil, err
	}

	count, err := s.assessRepo.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if count >= models.MinAssessmentQuestions {
		return s.assessRepo.FindByUserAndVersion(ctx, user.ID, version)
	}
	needed := models.MinAssessmentQuestions - int(count)

	skills, err := s.userRepo.GetSkills(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		return nil, apperrors.NewBadRequestError("User has no recorded skills to generate questions for")
	}

	topics := topicLevels(skills)
	generated, err := s.generateQuestions(ctx, topics, needed)
	if err != nil {
		return nil, err
	}

	questions := make([]models.UserSkillAssess, 0, len(generated))
	for _, q := range generated {
		options, _ := json.Marshal(q.Options)
		questions = append(questions, models.UserSkillAssess{
			UserID:        user.ID,
			Version:       version,
			Topic:         q.Topic,
			Question:      q.Question,
			Options:       datatypes.JSON(options),
			AnswerReal:    q.Answer,
			QuestionLevel: q.Level,
			UserLevel:     skillLevel(skills, q.Topic),
		})
	}
	if err := s.assessRepo.CreateBatch(ctx, questions); err != nil {
		return nil, err
	}

	return s.assessRepo.FindByUserAndVersion(ctx, user.ID, version)
}

func (s *assessmentService) GetAttempt(ctx context.Context, email, version string) ([]models.UserSkillAssess, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("No user with email " + email)
		}
		return nil, err
	}
	return s.assessRepo.FindByUserAndVersion(ctx, user.ID, version)
}

func (s *assessmentService) RecordAnswers(ctx context.Context, email string, answers []dto.RecordAnswerRequest) error {
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.NewNotFoundError("No user with email " + email)
		}
		return err
	}
	for _, answer := range answers {
		if err := s.assessRepo.UpdateAnswer(ctx, answer.QuestionID, answer.AnswerGiven); err != nil {
			return err
		}
	}
	return nil
}

func (s *assessmentService) QueryBank(ctx context.Context, queries []dto.QuestionBankQuery) ([]models.SkillQuestion, error) {
	filters := make([]repositories.BankFilter, 0, len(queries))
	for _, q := range queries {
		filters = append(filters, repositories.BankFilter{Topic: q.Topic, Level: q.Level})
	}
	return s.assessRepo.FindBank(ctx, filters)
}

// generateQuestions asks the model for exactly `count` questions over the
// given topic/level pairs. Questions the
// decoder cannot shape are dropped; the model over- or under-delivering is
// clamped to count.
func (s *assessmentService) generateQuestions(ctx context.Context, topics []dto.TopicLevels, count int) ([]dto.GeneratedQuestion, error) {
	var pairs strings.Builder
	for _, t := range topics {
		for level := t.LevelMin; level <= t.LevelMax; level++ {
			fmt.Fprintf(&pairs, "Topic: %s, Level: %d\n", t.Topic, level)
		}
	}

	prompt := fmt.Sprintf(questionGenerationPrompt, pairs.String(), count)
	raw, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return nil, apperrors.ExternalServiceError("llm", err)
	}

	decoded, filled := extract.Decode(raw, questionListSchema)
	if len(filled) > 0 {
		logger.CtxWarn(ctx, "question generation filled default fields", "fields", filled)
	}

	items, _ := decoded["questions"].([]interface{})
	questions := make([]dto.GeneratedQuestion, 0, count)
	for _, item := range items {
		if len(questions) == count {
			break
		}
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		q := dto.GeneratedQuestion{
			Topic:       textField(obj, "topic"),
			Level:       int(extract.Number(obj, "level", 1)),
			Question:    textField(obj, "question"),
			Answer:      textField(obj, "answer"),
			Explanation: textField(obj, "explanation"),
		}
		if options, ok := obj["options"].([]interface{}); ok {
			for _, opt := range options {
				if str, ok := opt.(string); ok {
					q.Options = append(q.Options, str)
				}
			}
		}
		if q.Question == "" || q.Question == "-" || q.Answer == "" || q.Answer == "-" {
			continue
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// topicLevels derives the generator's topic/level pairs from the user's
// skills: each skill spans [level-1, level+1] clamped to the valid range.
func topicLevels(skills []models.UserSkill) []dto.TopicLevels {
	topics := make([]dto.TopicLevels, 0, len(skills))
	for _, skill := range skills {
		levelMin := skill.Level - 1
		if levelMin < models.SkillLevelMin {
			levelMin = models.SkillLevelMin
		}
		levelMax := skill.Level + 1
		if levelMax > models.SkillLevelMax {
			levelMax = models.SkillLevelMax
		}
		topics = append(topics, dto.TopicLevels{
			Topic:    skill.Name,
			LevelMin: levelMin,
			LevelMax: levelMax,
		})
	}
	return topics
}

func skillLevel(skills []models.UserSkill, topic string) int {
	for _, skill := range skills {
		if strings.EqualFold(skill.Name, topic) {
			return skill.Level
		}
	}
	return 0
}
