package services

import (
	"context"
	"testing"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateResponse_PlaceholderRejectedBeforeAnyModelCall(t *testing.T) {
	t.Parallel()

	model := &fakeModel{}
	svc := NewEvaluationService(&fakeGuidelineRepo{}, model)

	for _, response := range []string{"string", "", "   "} {
		_, err := svc.EvaluateResponse(context.Background(), "Tell me about a conflict.", response)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok, "response %q should be rejected", response)
		assert.Equal(t, 400, appErr.HTTPCode)
	}
	assert.Zero(t, model.generateCalls)
	assert.Zero(t, model.embedCalls)
}

func TestEvaluateResponse_HappyPathEchoesInputs(t *testing.T) {
	t.Parallel()

	model := &fakeModel{generations: []string{
		`{"score": 82, "score_breakdown": {"relevance": 25}, "feedback": "solid",
		  "citations": [{"text": "t", "source": "guide.pdf"}],
		  "strengths": ["clear"], "areas_for_improvement": [],
		  "personality_traits": ["calm"], "ai_analysis": {"ai_probability": 0.1}}`,
	}}
	repo := &fakeGuidelineRepo{guidelines: []models.Guideline{
		{Content: "Score relevance first."},
	}}
	svc := NewEvaluationService(repo, model)

	report, err := svc.EvaluateResponse(context.Background(), "Why us?", "Because of the mission.")
	require.NoError(t, err)

	assert.Equal(t, float64(82), report["score"])
	assert.Equal(t, "Why us?", report["question"])
	assert.Equal(t, "Because of the mission.", report["answer"])
	assert.Equal(t, 1, model.embedCalls)
	assert.Contains(t, model.prompts[0], "Score relevance first.")
}

func TestEvaluateResponse_CitationsGetDefaultPageNumber(t *testing.T) {
	t.Parallel()

	model := &fakeModel{generations: []string{
		`{"score": 60, "score_breakdown": {}, "feedback": "f",
		  "citations": [{"text": "t", "source": "s"}, {"text": "u", "source": "v", "page_number": 4}],
		  "strengths": [], "areas_for_improvement": [], "personality_traits": [],
		  "ai_analysis": {}}`,
	}}
	svc := NewEvaluationService(&fakeGuidelineRepo{}, model)

	report, err := svc.EvaluateResponse(context.Background(), "q", "a real answer")
	require.NoError(t, err)

	citations := report["citations"].([]interface{})
	first := citations[0].(map[string]interface{})
	second := citations[1].(map[string]interface{})
	assert.Equal(t, float64(1), first["page_number"])
	assert.Equal(t, float64(4), second["page_number"])
}

func TestEvaluateResponse_GarbageModelOutputYieldsDefaults(t *testing.T) {
	t.Parallel()

	model := &fakeModel{generations: []string{"no json at all, sorry"}}
	svc := NewEvaluationService(&fakeGuidelineRepo{}, model)

	report, err := svc.EvaluateResponse(context.Background(), "q", "a real answer")
	require.NoError(t, err, "malformed model output must not surface as an error")

	assert.Equal(t, float64(50), report["score"])
	assert.Contains(t, report["feedback"], "could not be parsed")
}

func TestEvaluateResponse_ModelUnreachableIs502(t *testing.T) {
	t.Parallel()

	model := &fakeModel{genErr: assert.AnError}
	svc := NewEvaluationService(&fakeGuidelineRepo{}, model)

	_, err := svc.EvaluateResponse(context.Background(), "q", "a real answer")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 502, appErr.HTTPCode)
}

func TestEvaluateBatch_AllPairsEvaluated(t *testing.T) {
	t.Parallel()

	model := &fakeModel{generations: []string{
		`{"score": 10, "score_breakdown": {}, "feedback": "a", "citations": [],
		  "strengths": [], "areas_for_improvement": [], "personality_traits": [], "ai_analysis": {}}`,
		`{"score": 20, "score_breakdown": {}, "feedback": "b", "citations": [],
		  "strengths": [], "areas_for_improvement": [], "personality_traits": [], "ai_analysis": {}}`,
	}}
	svc := NewEvaluationService(&fakeGuidelineRepo{}, model)

	resp, err := svc.EvaluateBatch(context.Background(), &dto.BatchRequest{
		Responses: []dto.CandidateResponse{
			{Question: "q1", Response: "first answer"},
			{Question: "q2", Response: "second answer"},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Evaluations, 2)
	assert.Equal(t, float64(10), resp.Evaluations[0]["score"])
	assert.Equal(t, float64(20), resp.Evaluations[1]["score"])
}
