package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	UserHandler       *UserHandler
	EmployerHandler   *EmployerHandler
	JobHandler        *JobHandler
	AssessmentHandler *AssessmentHandler
	EvaluationHandler *EvaluationHandler
	SeedHandler       *SeedHandler
}
