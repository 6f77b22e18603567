package routes

import (
	"net/http"

	"jobmatch_backend/internal/handlers"
	"jobmatch_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, jwtSecret string) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthMiddleware(jwtSecret)

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api, authRequired)
		appHandlers.EmployerHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.AssessmentHandler.RegisterRoutes(api)
		appHandlers.EvaluationHandler.RegisterRoutes(api)
		appHandlers.SeedHandler.RegisterRoutes(api)
	}
}
