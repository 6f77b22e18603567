package services

import "jobmatch_backend/internal/ai/extract"

// Decoder schemas for each extraction specialization. The defaults are the
// documented fallback table: what a caller observes when the model output
// could not be parsed at all.

var resumeSchema = extract.Schema{
	Fields: []extract.Field{
		{Name: "name", Kind: extract.KindText, Default: "-"},
		{Name: "job_position", Kind: extract.KindText, Default: "-"},
		{Name: "address", Kind: extract.KindText, Default: "-"},
		{Name: "email", Kind: extract.KindText, Default: "-"},
		{Name: "experience", Kind: extract.KindList, Default: []interface{}{}},
		{Name: "education", Kind: extract.KindList, Default: []interface{}{}},
		{Name: "skills", Kind: extract.KindList, Default: []interface{}{}},
		{Name: "jobs", Kind: extract.KindList, Default: []interface{}{}},
	},
}

var behavioralSchema = extract.Schema{
	Fields: []extract.Field{
		{Name: "score", Kind: extract.KindNumber, Default: float64(50)},
		{Name: "score_breakdown", Kind: extract.KindObject, Default: map[string]interface{}{
			"relevance":         float64(0),
			"clarity":           float64(0),
			"specificity":       float64(0),
			"professional_tone": float64(0),
			"completeness":      float64(0),
		}},
		{Name: "feedback", Kind: extract.KindText,
			Default: "We are sorry, the evaluation could not be parsed from the model response."},
		{Name: "citations", Kind: extract.KindList, Default: []interface{}{
			map[string]interface{}{
				"text":        "Unable to determine citations due to parsing error",
				"source":      "Error",
				"page_number": float64(1),
			},
		}},
		{Name: "strengths", Kind: extract.KindList,
			Default: []interface{}{"Unable to determine strengths due to parsing error"}},
		{Name: "areas_for_improvement", Kind: extract.KindList,
			Default: []interface{}{"Unable to determine areas for improvement due to parsing error"}},
		{Name: "personality_traits", Kind: extract.KindList,
			Default: []interface{}{"Unable to determine personality traits due to parsing error"}},
		{Name: "ai_analysis", Kind: extract.KindObject, Default: map[string]interface{}{
			"ai_probability":   0.5,
			"confidence_level": 0.5,
			"reasoning":        "Failed to parse response, unable to determine AI-generated probability.",
			"ai_indicators":    []interface{}{"Unable to determine due to parsing error"},
			"human_indicators": []interface{}{"Unable to determine due to parsing error"},
			"recommendation":   "Uncertain due to parsing error",
		}},
	},
}

var jobMatchSchema = extract.Schema{
	Fields: []extract.Field{
		{Name: "match_analysis", Kind: extract.KindObject, Default: map[string]interface{}{
			"overall_match_score": float64(50),
			"score_breakdown": map[string]interface{}{
				"education_weight":  0.25,
				"experience_weight": 0.40,
				"skills_weight":     0.35,
				"calculation":       "Defaults applied: model response could not be parsed.",
			},
			"education_match": map[string]interface{}{
				"score":                float64(0),
				"matched_requirements": []interface{}{},
				"gaps":                 []interface{}{},
			},
			"experience_match": map[string]interface{}{
				"score":               float64(0),
				"years_of_experience": float64(0),
				"relevant_experience": []interface{}{},
				"missing_experience":  []interface{}{},
			},
			"skills_match": map[string]interface{}{
				"score":          float64(0),
				"matched_skills": []interface{}{},
				"missing_skills": []interface{}{},
			},
		}},
		{Name: "detailed_feedback", Kind: extract.KindObject, Default: map[string]interface{}{
			"strengths":             []interface{}{},
			"areas_for_improvement": []interface{}{},
			"recommendation":        "Uncertain due to parsing error",
		}},
	},
}

var questionListSchema = extract.Schema{
	Fields: []extract.Field{
		{Name: "questions", Kind: extract.KindList, Default: []interface{}{}},
	},
}
