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
	"jobmatch_backend/internal/pdftext"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/pkg/apperrors"
)

type ResumeService interface {
	// UploadResume parses the PDF, extracts structured fields via the model
	// and writes them back onto the user's profile.
	UploadResume(ctx context.Context, email, filename string, contents []byte) (*models.User, error)
}

type resumeService struct {
	userRepo repositories.UserRepository
	model    ai.TextModel
}

func NewResumeService(userRepo repositories.UserRepository, model ai.TextModel) ResumeService {
	return &resumeService{userRepo: userRepo, model: model}
}

func (s *resumeService) UploadResume(ctx context.Context, email, filename string, contents []byte) (*models.User, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return nil, apperrors.NewBadRequestError("Only PDF files are allowed")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("No user with email " + email)
		}
		return nil, err
	}

	text, err := pdftext.FromBytes(contents)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Error reading PDF: " + err.Error())
	}

	raw, err := s.model.Generate(ctx, fmt.Sprintf(resumeExtractionPrompt, text))
	if err != nil {
		return nil, apperrors.ExternalServiceError("llm", err)
	}

	decoded, filled := extract.Decode(raw, resumeSchema)
	if len(filled) > 0 {
		logger.CtxWarn(ctx, "resume extraction filled default fields",
			"email", email, "fields", filled)
	}
	// Stored documents must never carry explicit nulls.
	cleaned := extract.ReplaceNulls(decoded).(map[string]interface{})

	fields := map[string]interface{}{
		"name":        textField(cleaned, "name"),
		"resume_file": filename,
		"resume_json": encodeJSONText(cleaned),
		"position":    textField(cleaned, "job_position"),
		"location":    textField(cleaned, "address"),
		"experience":  encodeJSONText(cleaned["experience"]),
		"education":   encodeJSONText(cleaned["education"]),
		"jobs":        encodeJSONText(cleaned["jobs"]),
	}
	if err := s.userRepo.UpdateFields(ctx, user.ID, fields); err != nil {
		return nil, err
	}

	// Skills found on the resume start at level 0 until the user
	// self-assesses them.
	if skills, ok := cleaned["skills"].([]interface{}); ok {
		for _, item := range skills {
			name, ok := item.(string)
			if !ok || name == "" {
				continue
			}
			skill := &models.UserSkill{UserID: user.ID, Name: name, Level: 0}
			if err := s.userRepo.UpsertSkill(ctx, skill); err != nil {
				return nil, err
			}
		}
	}

	return s.userRepo.FindByEmail(ctx, email)
}

// encodeJSONText serializes v into the text column format the existing
// data set uses. Encoding a map or list we built ourselves cannot fail, so
// the error path collapses to an empty document.
func encodeJSONText(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func textField(obj map[string]interface{}, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return "-"
}
