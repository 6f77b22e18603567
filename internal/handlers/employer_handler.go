package handlers

import (
	"net/http"

	"jobmatch_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	*BaseHandler
	employerService services.EmployerService
}

func NewEmployerHandler(base *BaseHandler, employerService services.EmployerService) *EmployerHandler {
	return &EmployerHandler{
		BaseHandler:     base,
		employerService: employerService,
	}
}

func (h *EmployerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employer := rg.Group("/employer")
	{
		employer.GET("", h.List)
		employer.GET("/:name", h.SearchByName)
	}
}

func (h *EmployerHandler) List(c *gin.Context) {
	employers, err := h.employerService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employers)
}

func (h *EmployerHandler) SearchByName(c *gin.Context) {
	name, ok := h.RequireParam(c, "name")
	if !ok {
		return
	}

	employers, err := h.employerService.SearchByName(c.Request.Context(), name)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employers)
}
