package models

import "gorm.io/datatypes"

// SkillQuestion is a question-bank entry, seeded per topic and level.
// Options holds the four multiple-choice options as a JSON object
// ("A" .. "D").
type SkillQuestion struct {
	BaseModel
	Topic    string         `gorm:"index:idx_bank_topic_level;not null" json:"type"`
	Level    int            `gorm:"index:idx_bank_topic_level;not null" json:"level"`
	Question string         `gorm:"type:text;not null" json:"question"`
	Options  datatypes.JSON `gorm:"type:jsonb" json:"options"`
	Answer   string         `gorm:"not null" json:"answer"`
}
