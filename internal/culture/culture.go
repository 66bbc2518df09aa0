// Package culture fetches short cultural tips about a practice topic.
// Tips are free text rather than structured JSON, and a missing or
// failed fetch always degrades to a fixed line so the worksheet never
// shows an error in the tip slot.
package culture

import (
	"context"
	"fmt"
	"strings"

	"github.com/ngthanh/engmaster/internal/llm"
)

// Fallback tips, keyed by failure mode.
const (
	// EmptyTip is shown when the model returns nothing.
	EmptyTip = "Learn English to explore the world!"

	// ErrorTip is shown when the fetch fails outright.
	ErrorTip = "English is the global language of communication."
)

// Fetcher fetches cultural tips using an LLM provider.
type Fetcher interface {
	// FetchTip returns a short cultural tip about the topic.
	FetchTip(ctx context.Context, topic string) (string, error)
}

// Config controls the behavior of the LLMFetcher.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.7,
	}
}

// LLMFetcher implements Fetcher using the LLM provider.
type LLMFetcher struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMFetcher with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMFetcher {
	return &LLMFetcher{provider: provider, config: cfg}
}

// FetchTip returns a short cultural tip about the topic.
// The response is plain text; no schema is requested.
func (f *LLMFetcher) FetchTip(ctx context.Context, topic string) (string, error) {
	ctx = llm.WithPurpose(ctx, "cultural-note")

	prompt := fmt.Sprintf(
		"Tell me a fun fact or cultural tip about %q in English speaking countries. "+
			"Keep it short (max 2 sentences) and simple for beginners. Translate to Vietnamese.",
		topic,
	)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   f.config.MaxTokens,
		Temperature: f.config.Temperature,
	}

	resp, err := f.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM tip fetch failed: %w", err)
	}

	tip := strings.TrimSpace(string(resp.Content))
	if tip == "" {
		return EmptyTip, nil
	}
	return tip, nil
}
