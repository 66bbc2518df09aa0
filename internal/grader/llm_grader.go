package grader

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ngthanh/engmaster/internal/llm"
)

const systemPrompt = `You are an encouraging English teacher for Vietnamese students.

Task:
1. Correct the grammar/spelling if needed.
2. Give a score from 0 to 10 based on communicative effectiveness and grammar.
3. Provide helpful feedback in VIETNAMESE.
4. Give a short English praise phrase (e.g., "Good job!", "Excellent!").

If the answer is completely irrelevant or Vietnamese, score it low.`

// Config controls the behavior of the LLMGrader.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	// Grading wants consistency, so the default is low.
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// LLMGrader implements Grader using the LLM provider.
type LLMGrader struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGrader with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGrader {
	return &LLMGrader{provider: provider, config: cfg}
}

// Grade assesses the learner's answer to the given question.
func (g *LLMGrader) Grade(ctx context.Context, question, answer string) (*Assessment, error) {
	ctx = llm.WithPurpose(ctx, "grading")

	userMsg := fmt.Sprintf("Question: %q\nStudent Answer: %q", question, answer)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AssessmentSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM grading failed: %w", err)
	}

	var a Assessment
	if err := json.Unmarshal(resp.Content, &a); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	// The schema already bounds the score, but a misbehaving provider
	// without schema enforcement could still slip one through.
	if a.Score < 0 || a.Score > 10 {
		return nil, fmt.Errorf("score %d out of range", a.Score)
	}

	return &a, nil
}
