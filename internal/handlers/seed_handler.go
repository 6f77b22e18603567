package handlers

import (
	"io"
	"net/http"
	"strings"

	"jobmatch_backend/internal/services"
	"jobmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// SeedHandler loads starter data into a fresh database: demo employers,
// the question bank, demo jobs and the interview guideline corpus.
type SeedHandler struct {
	*BaseHandler
	seedService      services.SeedService
	guidelineService services.GuidelineService
}

func NewSeedHandler(
	base *BaseHandler,
	seedService services.SeedService,
	guidelineService services.GuidelineService,
) *SeedHandler {
	return &SeedHandler{
		BaseHandler:      base,
		seedService:      seedService,
		guidelineService: guidelineService,
	}
}

func (h *SeedHandler) RegisterRoutes(rg *gin.RouterGroup) {
	seed := rg.Group("/seed")
	{
		seed.POST("/employers", h.SeedEmployers)
		seed.POST("/questions", h.SeedQuestions)
		seed.POST("/jobs", h.SeedJobs)
		seed.POST("/guidelines", h.SeedGuidelines)
	}
}

func (h *SeedHandler) SeedEmployers(c *gin.Context) {
	count, err := h.seedService.SeedEmployers(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted": count})
}

func (h *SeedHandler) SeedQuestions(c *gin.Context) {
	count, err := h.seedService.SeedQuestionBank(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted": count})
}

func (h *SeedHandler) SeedJobs(c *gin.Context) {
	count, err := h.seedService.SeedJobs(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted": count})
}

// SeedGuidelines ingests a guideline PDF uploaded as the multipart "file"
// field, embedding each passage for retrieval.
func (h *SeedHandler) SeedGuidelines(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing multipart field 'file'"))
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Only PDF guideline documents are accepted"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}

	count, err := h.guidelineService.IngestPDF(c.Request.Context(), fileHeader.Filename, contents)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted": count})
}
