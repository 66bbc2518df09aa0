package quizgen

import "context"

// Generator produces question batches using an LLM provider.
type Generator interface {
	// GenerateBatch produces count questions for the given topic.
	// Prior question texts are passed to the model for deduplication.
	GenerateBatch(ctx context.Context, topic string, count int, prior []string) ([]Question, error)
}
