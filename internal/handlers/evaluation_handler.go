package handlers

import (
	"net/http"

	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EvaluationHandler struct {
	*BaseHandler
	evaluationService services.EvaluationService
}

func NewEvaluationHandler(base *BaseHandler, evaluationService services.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		BaseHandler:       base,
		evaluationService: evaluationService,
	}
}

func (h *EvaluationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	evaluate := rg.Group("/evaluate")
	{
		evaluate.POST("", h.Evaluate)
		evaluate.POST("/batch", h.EvaluateBatch)
	}
}

func (h *EvaluationHandler) Evaluate(c *gin.Context) {
	var req dto.CandidateResponse
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	report, err := h.evaluationService.EvaluateResponse(c.Request.Context(), req.Question, req.Response)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *EvaluationHandler) EvaluateBatch(c *gin.Context) {
	var req dto.BatchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.evaluationService.EvaluateBatch(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
