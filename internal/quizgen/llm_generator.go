package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ngthanh/engmaster/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config

	// now is the clock used for question ID stamping. Overridable in tests.
	now func() time.Time
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, now: time.Now}
}

// questionOutput is the raw LLM response item before re-keying.
type questionOutput struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Context    string `json:"context"`
	Difficulty int    `json:"difficulty"`
}

// GenerateBatch produces count questions for the given topic.
func (g *LLMGenerator) GenerateBatch(ctx context.Context, topic string, count int, prior []string) ([]Question, error) {
	if count <= 0 {
		count = DefaultBatchSize
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, count, prior, g.config.MaxPriorQuestions)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw []questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("LLM returned an empty batch")
	}

	questions := rekeyQuestions(topic, g.now(), raw)
	for _, q := range questions {
		if err := validateQuestion(q); err != nil {
			return nil, err
		}
	}
	return questions, nil
}

// rekeyQuestions replaces model-provided IDs with locally unique ones.
// Models tend to repeat simple ids like "q1" across batches, which would
// collide in the answer history.
func rekeyQuestions(topic string, now time.Time, raw []questionOutput) []Question {
	ms := now.UnixMilli()
	questions := make([]Question, 0, len(raw))
	for idx, r := range raw {
		questions = append(questions, Question{
			ID:         fmt.Sprintf("%s-%d-%d", topic, ms, idx),
			Topic:      topic,
			Text:       r.Text,
			Context:    r.Context,
			Difficulty: r.Difficulty,
		})
	}
	return questions
}

// validateQuestion checks structural constraints the schema can't express.
func validateQuestion(q Question) error {
	if q.Text == "" {
		return fmt.Errorf("question %s: text is empty", q.ID)
	}
	if len(q.Text) > 300 {
		return fmt.Errorf("question %s: text exceeds 300 characters", q.ID)
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return fmt.Errorf("question %s: difficulty %d out of range", q.ID, q.Difficulty)
	}
	return nil
}

// FallbackQuestions returns the fixed batch served when generation fails.
// The learner can always practice basic greetings offline.
func FallbackQuestions(topic string) []Question {
	return []Question{
		{ID: "err-1", Topic: topic, Text: "Hello! How are you today?", Difficulty: 1},
		{ID: "err-2", Topic: topic, Text: "What is your name?", Difficulty: 1},
		{ID: "err-3", Topic: topic, Text: "Nice to meet you. Where are you from?", Difficulty: 1},
	}
}
