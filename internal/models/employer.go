package models

type Employer struct {
	BaseModel
	Name           string `gorm:"index" json:"name"`
	Info           string `gorm:"type:text" json:"info"`
	Logo           string `json:"logo"`
	Location       string `json:"location"`
	BusinessNature string `json:"businessnature"`

	// Relations
	Jobs []EmployerJob `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE" json:"jobs,omitempty"`
}

// EmployerJob is a posting. DescJSON, Responsibilities and Skills hold JSON
// documents as text for compatibility with the existing rows.
type EmployerJob struct {
	BaseModel
	EmployerID       string `gorm:"index" json:"employer_id"`
	Name             string `json:"name"`
	Description      string `gorm:"type:text" json:"description"`
	DescJSON         string `gorm:"type:text" json:"desc_json"`
	Summary          string `gorm:"type:text" json:"summary"`
	Responsibilities string `gorm:"type:text" json:"responsibilities"`
	Qualifications   string `gorm:"type:text" json:"qualifications"`
	Skills           string `gorm:"type:text" json:"skills"`
	Experience       string `json:"experience"`
	ExperienceYears  string `json:"experienceyear"`
	PostedTime       string `json:"postedtime"`
	JobType          string `json:"jobtype"`
	WorkMode         string `json:"workmode"`
	Level            string `json:"level"`
	Location         string `json:"location"`

	Employer *Employer `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
}
