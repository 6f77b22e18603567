package handlers

import (
	"net/http"

	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/:jobId", h.Get)
		jobs.GET("/employer/:employerId", h.ByEmployer)
		jobs.POST("/search", h.Search)
		jobs.POST("", h.Create)
		jobs.PUT("/:jobId", h.Update)
		jobs.DELETE("/:jobId", h.Delete)
	}
}

// List returns all jobs; with ?email= each job carries that user's stored
// application.
func (h *JobHandler) List(c *gin.Context) {
	email := c.Query("email")

	jobs, err := h.jobService.List(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	jobID, ok := h.RequireParam(c, "jobId")
	if !ok {
		return
	}

	job, err := h.jobService.GetByID(c.Request.Context(), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) ByEmployer(c *gin.Context) {
	employerID, ok := h.RequireParam(c, "employerId")
	if !ok {
		return
	}

	response, err := h.jobService.ByEmployer(c.Request.Context(), employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) Search(c *gin.Context) {
	var req dto.SearchJobsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	jobs, err := h.jobService.Search(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	jobID, ok := h.RequireParam(c, "jobId")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), jobID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	jobID, ok := h.RequireParam(c, "jobId")
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": jobID})
}
