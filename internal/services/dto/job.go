package dto

import "jobmatch_backend/internal/models"

type CreateJobRequest struct {
	EmployerID       string   `json:"employer_id" binding:"required" validate:"required"`
	Name             string   `json:"name" binding:"required" validate:"required"`
	Description      string   `json:"description" binding:"required" validate:"required"`
	Summary          string   `json:"summary"`
	Responsibilities []string `json:"responsibilities"`
	Qualifications   string   `json:"qualifications"`
	Skills           []string `json:"skills"`
	Experience       string   `json:"experience"`
	ExperienceYears  string   `json:"experienceyear"`
	PostedTime       string   `json:"postedtime"`
	JobType          string   `json:"jobtype"`
	WorkMode         string   `json:"workmode"`
	Level            string   `json:"level"`
	Location         string   `json:"location"`
}

type UpdateJobRequest struct {
	Name             *string  `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Summary          *string  `json:"summary,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Qualifications   *string  `json:"qualifications,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	Experience       *string  `json:"experience,omitempty"`
	ExperienceYears  *string  `json:"experienceyear,omitempty"`
	PostedTime       *string  `json:"postedtime,omitempty"`
	JobType          *string  `json:"jobtype,omitempty"`
	WorkMode         *string  `json:"workmode,omitempty"`
	Level            *string  `json:"level,omitempty"`
	Location         *string  `json:"location,omitempty"`
}

type SearchJobsRequest struct {
	SearchTerm string `json:"search_term"`
	JobType    string `json:"jobtype"`
	WorkMode   string `json:"workmode"`
	Level      string `json:"level"`
	Location   string `json:"location"`
}

// JobView is a job listing with the caller's own application attached when
// an email was supplied.
type JobView struct {
	models.EmployerJob
	UserApplication *models.UserEmployerJob `json:"user_application,omitempty"`
}

type EmployerJobsResponse struct {
	Employer *models.Employer     `json:"employer"`
	Jobs     []models.EmployerJob `json:"jobs"`
}
