package services

import (
	"context"
	"strings"

	"jobmatch_backend/internal/ai"
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/pdftext"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/pkg/apperrors"

	"github.com/pgvector/pgvector-go"
)

// guidelineChunkSize bounds the passage length sent to the embedder.
const guidelineChunkSize = 2000

type GuidelineService interface {
	// IngestPDF splits a guideline document into per-page passages, embeds
	// each one and stores it for retrieval.
	IngestPDF(ctx context.Context, source string, data []byte) (int, error)
	IngestText(ctx context.Context, source string, page int, content string) error
	Count(ctx context.Context) (int64, error)
}

type guidelineService struct {
	guidelineRepo repositories.GuidelineRepository
	model         ai.TextModel
}

func NewGuidelineService(guidelineRepo repositories.GuidelineRepository, model ai.TextModel) GuidelineService {
	return &guidelineService{guidelineRepo: guidelineRepo, model: model}
}

func (s *guidelineService) IngestPDF(ctx context.Context, source string, data []byte) (int, error) {
	pages, err := pdftext.Pages(data)
	if err != nil {
		return 0, apperrors.NewBadRequestError("Could not read PDF: " + err.Error())
	}

	stored := 0
	for i, text := range pages {
		for _, chunk := range splitChunks(text, guidelineChunkSize) {
			if err := s.IngestText(ctx, source, i+1, chunk); err != nil {
				return stored, err
			}
			stored++
		}
	}
	return stored, nil
}

func (s *guidelineService) IngestText(ctx context.Context, source string, page int, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	embedding, err := s.model.Embed(ctx, content)
	if err != nil {
		return apperrors.ExternalServiceError("embedding", err)
	}
	if page < 1 {
		page = 1
	}
	return s.guidelineRepo.Create(ctx, &models.Guideline{
		Source:    source,
		Page:      page,
		Content:   content,
		Embedding: pgvector.NewVector(embedding),
	})
}

func (s *guidelineService) Count(ctx context.Context) (int64, error) {
	return s.guidelineRepo.Count(ctx)
}

// splitChunks breaks text on paragraph boundaries, packing paragraphs
// until the size cap. A single oversized paragraph becomes its own chunk.
func splitChunks(text string, size int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= size {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if current.Len() > 0 && current.Len()+len(para) > size {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
