package app

import (
	"context"
	"fmt"

	"jobmatch_backend/internal/ai"
	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/database"
	"jobmatch_backend/internal/handlers"
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/middleware"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/routes"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Schema migrated")

	model, err := ai.NewGemini(context.Background(), ai.Config{
		APIKey:         cfg.AI.APIKey,
		Model:          cfg.AI.Model,
		EmbeddingModel: cfg.AI.EmbeddingModel,
		Temperature:    cfg.AI.Temperature,
	})
	if err != nil {
		logger.Fatal("Failed to initialize the model client", "error", err)
	}
	logger.Info("Model client initialized", "model", cfg.AI.Model)

	ginRouter := SetupRouter(cfg, gormDB, model)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, model ai.TextModel) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB, model)
	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, cfg.JWT.Secret)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, model ai.TextModel) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	employerRepo := repositories.NewEmployerRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	appRepo := repositories.NewApplicationRepository(gormDB)
	assessRepo := repositories.NewAssessmentRepository(gormDB)
	guidelineRepo := repositories.NewGuidelineRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.TTL),
		UserService:        services.NewUserService(userRepo),
		ResumeService:      services.NewResumeService(userRepo, model),
		EvaluationService:  services.NewEvaluationService(guidelineRepo, model),
		ApplicationService: services.NewApplicationService(userRepo, jobRepo, appRepo, model),
		JobService:         services.NewJobService(jobRepo, employerRepo, userRepo, appRepo),
		EmployerService:    services.NewEmployerService(employerRepo),
		AssessmentService:  services.NewAssessmentService(userRepo, assessRepo, model),
		GuidelineService:   services.NewGuidelineService(guidelineRepo, model),
		SeedService:        services.NewSeedService(employerRepo, assessRepo, jobRepo),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler: handlers.NewUserHandler(
			baseHandler,
			services.UserService,
			services.ResumeService,
			services.ApplicationService,
			services.AssessmentService,
		),
		EmployerHandler:   handlers.NewEmployerHandler(baseHandler, services.EmployerService),
		JobHandler:        handlers.NewJobHandler(baseHandler, services.JobService),
		AssessmentHandler: handlers.NewAssessmentHandler(baseHandler, services.AssessmentService),
		EvaluationHandler: handlers.NewEvaluationHandler(baseHandler, services.EvaluationService),
		SeedHandler:       handlers.NewSeedHandler(baseHandler, services.SeedService, services.GuidelineService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
