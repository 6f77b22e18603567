package models

import "gorm.io/datatypes"

// User holds both the account and the resume-derived profile. Several
// profile columns store a JSON document as text; that is the storage
// contract inherited from the existing data set, so the encode/decode
// happens at the service edge, not here.
type User struct {
	BaseModel
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Status       UserStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	About        string     `json:"about"`

	// Resume-derived fields. ResumeJSON is the full extraction document,
	// Experience/Education/Jobs are serialized lists.
	ResumeFile string `json:"resume_file"`
	ResumeJSON string `gorm:"type:text" json:"resume_json"`
	Position   string `json:"position"`
	Location   string `json:"location"`
	Experience string `gorm:"type:text" json:"experience"`
	Education  string `gorm:"type:text" json:"education"`
	Jobs       string `gorm:"type:text" json:"jobs"`

	// Relations
	Skills       []UserSkill       `gorm:"foreignKey:UserID" json:"skills,omitempty"`
	Assessments  []UserSkillAssess `gorm:"foreignKey:UserID" json:"assessments,omitempty"`
	Applications []UserEmployerJob `gorm:"foreignKey:UserID" json:"applications,omitempty"`
}

// UserSkill is unique per (user, skill name); resume parsing and profile
// updates upsert rather than insert.
type UserSkill struct {
	BaseModel
	UserID string `gorm:"not null;index;uniqueIndex:idx_user_skill_name" json:"user_id"`
	Name   string `gorm:"not null;uniqueIndex:idx_user_skill_name" json:"name"`
	Level  int    `gorm:"not null;default:0" json:"level"`
}

// UserSkillAssess is one assessment question instance. Version partitions
// attempts so a retake does not overwrite history.
type UserSkillAssess struct {
	BaseModel
	UserID        string         `gorm:"not null;index" json:"user_id"`
	Version       string         `gorm:"default:'0'" json:"version"`
	Topic         string         `gorm:"default:''" json:"topic"`
	Question      string         `gorm:"not null;default:''" json:"question"`
	Options       datatypes.JSON `gorm:"type:jsonb" json:"options"`
	AnswerGiven   string         `gorm:"default:''" json:"answer_given"`
	AnswerReal    string         `gorm:"not null;default:''" json:"answer_real"`
	QuestionLevel int            `gorm:"default:0" json:"question_level"`
	UserLevel     int            `gorm:"default:0" json:"user_level"`
}

// UserEmployerJob records a user's application to a job together with the
// match report produced at evaluation time. MatchJSON is a serialized
// document; the service layer keeps at most one row per (user, job).
type UserEmployerJob struct {
	BaseModel
	UserID        string `gorm:"not null;index:idx_user_job" json:"user_id"`
	EmployerJobID string `gorm:"not null;index:idx_user_job" json:"employer_job_id"`
	MatchJSON     string `gorm:"type:text" json:"match_json"`

	EmployerJob *EmployerJob `gorm:"foreignKey:EmployerJobID" json:"employer_job,omitempty"`
}
