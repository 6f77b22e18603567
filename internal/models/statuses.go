package models

type UserStatus string

const (
	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
)

// Skill levels run 1 (beginner) to 5 (expert). Assessment question
// generation stays inside this range when adapting difficulty.
const (
	SkillLevelMin = 1
	SkillLevelMax = 5
)

// MinAssessmentQuestions is the number of questions a user is topped up to.
const MinAssessmentQuestions = 5
