package services

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	ResumeService      ResumeService
	EvaluationService  EvaluationService
	ApplicationService ApplicationService
	JobService         JobService
	EmployerService    EmployerService
	AssessmentService  AssessmentService
	GuidelineService   GuidelineService
	SeedService        SeedService
}
