package grader

import "github.com/ngthanh/engmaster/internal/llm"

// AssessmentSchema defines the JSON schema for grading responses.
// The score range is enforced here so an out-of-range grade is rejected
// before it ever reaches the worksheet.
var AssessmentSchema = &llm.Schema{
	Name:        "answer-assessment",
	Description: "A grade for a learner's English answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     10,
				"description": "Grade from 0 to 10 based on communicative effectiveness and grammar",
			},
			"correction": map[string]any{
				"type":        "string",
				"description": "Corrected English version of the answer",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Helpful feedback in Vietnamese",
			},
			"praise": map[string]any{
				"type":        "string",
				"description": "Short English praise phrase, e.g. \"Good job!\"",
			},
		},
		"required":             []any{"score", "correction", "feedback", "praise"},
		"additionalProperties": false,
	},
}
