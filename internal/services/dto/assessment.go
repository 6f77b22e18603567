package dto

// QuestionBankQuery selects bank questions by topic and level.
type QuestionBankQuery struct {
	Topic string `json:"type" binding:"required" validate:"required"`
	Level int    `json:"level" validate:"omitempty,min=1,max=5"`
}

// RecordAnswerRequest writes the candidate's chosen option back onto a
// generated question.
type RecordAnswerRequest struct {
	QuestionID  string `json:"question_id" binding:"required" validate:"required"`
	AnswerGiven string `json:"answer_given" binding:"required" validate:"required"`
}

// TopicLevels is one (skill, level range) pair handed to the question
// generator: levels span the user's self-reported level ±1, clamped to 1-5.
type TopicLevels struct {
	Topic    string
	LevelMin int
	LevelMax int
}

// GeneratedQuestion is one question decoded from the generator model.
type GeneratedQuestion struct {
	Topic       string   `json:"topic"`
	Level       int      `json:"level"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}
