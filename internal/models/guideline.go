package models

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// Guideline is one embedded passage of the company interview guidelines.
// The behavioral evaluator retrieves the nearest passages by cosine
// distance and folds their text into the scoring prompt.
type Guideline struct {
	BaseModel
	Source    string          `gorm:"not null" json:"source"`
	Page      int             `gorm:"default:1" json:"page"`
	Content   string          `gorm:"type:text;not null" json:"content"`
	Metadata  datatypes.JSON  `gorm:"type:jsonb" json:"metadata"`
	Embedding pgvector.Vector `gorm:"type:vector(768)" json:"-"`
}
