package handlers

import (
	"io"
	"net/http"
	"strings"

	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/middleware"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService        services.UserService
	resumeService      services.ResumeService
	applicationService services.ApplicationService
	assessmentService  services.AssessmentService
}

func NewUserHandler(
	base *BaseHandler,
	userService services.UserService,
	resumeService services.ResumeService,
	applicationService services.ApplicationService,
	assessmentService services.AssessmentService,
) *UserHandler {
	return &UserHandler{
		BaseHandler:        base,
		userService:        userService,
		resumeService:      resumeService,
		applicationService: applicationService,
		assessmentService:  assessmentService,
	}
}

// RegisterRoutes leaves reads open; writes require a Bearer token issued
// to the same email the path names.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:email", h.Get)
		users.GET("/:email/applications", h.ListApplications)
		users.GET("/:email/skill-assess/:version", h.GetAssessment)
	}

	authed := rg.Group("/users", authRequired)
	{
		authed.PUT("/:email", h.Update)
		authed.POST("/:email/resume", h.UploadResume)
		authed.POST("/:email/apply/:jobId", h.Apply)
		authed.POST("/:email/skill-assess/:version", h.RecordAnswers)
	}
}

// requireSelf rejects writes where the token was issued for another user.
func (h *UserHandler) requireSelf(c *gin.Context, email string) bool {
	if middleware.GetUserEmail(c) != email {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Token does not belong to this user"))
		return false
	}
	return true
}

func (h *UserHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	users, err := h.userService.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	email, ok := h.RequireParam(c, "email")
	if !ok {
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	email, ok := h.RequireParam(c, "email")
	if !ok {
		return
	}
	if !h.requireSelf(c, email) {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.userService.Update(c.Request.Context(), email, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UploadResume accepts a multipart "file" field holding a PDF resume.
func (h *UserHandler) UploadResume(c *gin.Context) {
	email, ok := h.RequireParam(c, "email")
	if !ok {
		return
	}
	if !h.requireSelf(c, email) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing multipart field 'file'"))
		return
	}
	if maxSize := config.GetConfig().Upload.MaxSize; maxSize > 0 && fileHeader.Size > maxSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File exceeds the upload size limit"))
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Only PDF resumes are accepted"))
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

	user, err := h.resumeService.UploadResume(c.Request.Context(), email, fileHeader.Filename, contents)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Apply returns the stored match report for the (user, job) pair, running
// a fresh evaluation only when none exists or force_evaluate=true.
func (h *UserHandler) Apply(c *gin.Context) {
	email, ok := h.RequireParam(c, "email")
	if !ok {
		return
	}
	if !h.requireSelf(c, email) {
		return
	}
	jobID, ok := h.RequireParam(c, "jobId")
	if !ok {
		return
	}
	force := ParseQueryBool(c, "force_evaluate")

	report, err := h.applicationService.Apply(c.Request.Context(), email, jobID, force)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", report)
}

func (h *UserHandler) ListApplications(c *gin.Context) {
	email, ok := h.RequireParam(c, "email")
	if !ok {
		return
	}

	applications, err := h.applicationService.ListByUser(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *UserHandler) GetAssessment(c *gin.Context) {
	email, ok := h.RequireParam(c, "email")
	if !ok {
		return
	}
	version, ok := h.RequireParam(c, "version")
	if !ok {
		return
	}

	questions, err := h.assessmentService.GetAttempt(c.Request.Context(), email, version)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *UserHandler) RecordAnswers(c *gin.Context) {
	email, ok := h.RequireParam(c, "email")
	if !ok {
		return
	}
	if !h.requireSelf(c, email) {
		return
	}

	var answers []dto.RecordAnswerRequest
	if err := c.ShouldBindJSON(&answers); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}
	for i := range answers {
		if !h.ValidateOnly(c, &answers[i]) {
			return
		}
	}

	if err := h.assessmentService.RecordAnswers(c.Request.Context(), email, answers); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recorded": len(answers)})
}
