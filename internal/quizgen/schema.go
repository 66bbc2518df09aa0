package quizgen

import "github.com/ngthanh/engmaster/internal/llm"

// BatchSchema defines the JSON schema for question batch responses.
var BatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "A batch of beginner English communication questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "A short identifier for the question",
				},
				"text": map[string]any{
					"type":        "string",
					"description": "The English question text",
				},
				"context": map[string]any{
					"type":        "string",
					"description": "Optional Vietnamese hint or context",
				},
				"difficulty": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"maximum":     5,
					"description": "Self-assessed difficulty from 1 (easy) to 5 (hard)",
				},
			},
			"required":             []any{"id", "text", "difficulty"},
			"additionalProperties": false,
		},
	},
}
