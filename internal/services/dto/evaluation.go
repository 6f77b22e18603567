package dto

// CandidateResponse is one (question, response) pair for behavioral
// evaluation. The notplaceholder rule rejects the literal "string" and
// blank responses before any model call is made.
type CandidateResponse struct {
	Question string `json:"question" binding:"required" validate:"required"`
	Response string `json:"response" binding:"required" validate:"required,notplaceholder"`
}

type BatchRequest struct {
	Responses []CandidateResponse `json:"responses" binding:"required" validate:"required,min=1,dive"`
}

// EvaluationReport is the gap-filled object decoded from the model, with
// the original question and answer echoed back. It stays a generic map:
// the extraction decoder guarantees every required key is present, and a
// rigid struct would re-introduce the parse failures the decoder absorbs.
type EvaluationReport = map[string]interface{}

type BatchEvaluationResponse struct {
	Evaluations []EvaluationReport `json:"evaluations"`
}
