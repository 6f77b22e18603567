package handlers

import (
	"net/http"

	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	*BaseHandler
	assessmentService services.AssessmentService
}

func NewAssessmentHandler(base *BaseHandler, assessmentService services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		BaseHandler:       base,
		assessmentService: assessmentService,
	}
}

func (h *AssessmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	assess := rg.Group("/skill-assess")
	{
		assess.POST("", h.QueryBank)
		assess.POST("/:email/topup", h.TopUp)
	}
}

// QueryBank returns question-bank entries for a list of (topic, level)
// selectors.
func (h *AssessmentHandler) QueryBank(c *gin.Context) {
	var queries []dto.QuestionBankQuery
	if err := c.ShouldBindJSON(&queries); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}
	if len(queries) == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("At least one topic selector is required"))
		return
	}
	for i := range queries {
		if !h.ValidateOnly(c, &queries[i]) {
			return
		}
	}

	questions, err := h.assessmentService.QueryBank(c.Request.Context(), queries)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// TopUp fills the user's assessment up to the minimum question count,
// generating the shortfall at levels adapted to their skills.
func (h *AssessmentHandler) TopUp(c *gin.Context) {
	email, ok := h.RequireParam(c, "email")
	if !ok {
		return
	}
	version := c.DefaultQuery("version", "0")

	questions, err := h.assessmentService.TopUp(c.Request.Context(), email, version)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}
