package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ngthanh/engmaster/internal/llm"
)

func validBatchJSON() json.RawMessage {
	return json.RawMessage(`[
		{"id": "q1", "text": "Hello! How are you today?", "context": "Chào hỏi cơ bản", "difficulty": 1},
		{"id": "q2", "text": "What is your favorite food?", "context": "", "difficulty": 2},
		{"id": "q3", "text": "Where do you usually eat lunch?", "context": "Hỏi về thói quen", "difficulty": 2}
	]`)
}

func newTestGenerator(mock *llm.MockProvider) *LLMGenerator {
	gen := New(mock, DefaultConfig())
	gen.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return gen
}

func TestGenerateBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	gen := newTestGenerator(mock)

	questions, err := gen.GenerateBatch(context.Background(), "Greetings", 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	if questions[0].Text != "Hello! How are you today?" {
		t.Errorf("unexpected text: %q", questions[0].Text)
	}
	if questions[0].Context != "Chào hỏi cơ bản" {
		t.Errorf("unexpected context: %q", questions[0].Context)
	}
	for _, q := range questions {
		if q.Topic != "Greetings" {
			t.Errorf("question %s: topic = %q, want Greetings", q.ID, q.Topic)
		}
	}
}

func TestGenerateBatch_RekeysIDs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	gen := newTestGenerator(mock)

	questions, err := gen.GenerateBatch(context.Background(), "Greetings", 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Model-provided IDs like "q1" are replaced with locally unique keys.
	for idx, q := range questions {
		want := fmt.Sprintf("Greetings-1700000000000-%d", idx)
		if q.ID != want {
			t.Errorf("question %d: ID = %q, want %q", idx, q.ID, want)
		}
	}
}

func TestGenerateBatch_PromptIncludesTopicAndCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	gen := newTestGenerator(mock)

	_, err := gen.GenerateBatch(context.Background(), "Restaurants", 5, []string{"What do you like to eat?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, `"Restaurants"`) {
		t.Errorf("prompt missing topic: %s", msg)
	}
	if !strings.Contains(msg, "Generate 5 beginner") {
		t.Errorf("prompt missing count: %s", msg)
	}
	if !strings.Contains(msg, "What do you like to eat?") {
		t.Errorf("prompt missing prior question: %s", msg)
	}
	if mock.Calls[0].Schema != BatchSchema {
		t.Error("expected batch schema on request")
	}
}

func TestGenerateBatch_ZeroCountUsesDefault(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	gen := newTestGenerator(mock)

	_, err := gen.GenerateBatch(context.Background(), "Greetings", 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, fmt.Sprintf("Generate %d beginner", DefaultBatchSize)) {
		t.Errorf("prompt should request the default batch size: %s", msg)
	}
}

func TestGenerateBatch_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("boom")}})
	gen := newTestGenerator(mock)

	_, err := gen.GenerateBatch(context.Background(), "Greetings", 3, nil)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateBatch_EmptyBatchRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`[]`)})
	gen := newTestGenerator(mock)

	_, err := gen.GenerateBatch(context.Background(), "Greetings", 3, nil)
	if err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestGenerateBatch_BadDifficultyRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`[{"id": "q1", "text": "Hello!", "difficulty": 9}]`,
	)})
	gen := newTestGenerator(mock)

	_, err := gen.GenerateBatch(context.Background(), "Greetings", 1, nil)
	if err == nil {
		t.Fatal("expected error for out-of-range difficulty")
	}
}

func TestFallbackQuestions(t *testing.T) {
	questions := FallbackQuestions("Greetings")
	if len(questions) != 3 {
		t.Fatalf("expected 3 fallback questions, got %d", len(questions))
	}
	if questions[0].ID != "err-1" || questions[0].Text != "Hello! How are you today?" {
		t.Errorf("unexpected first fallback: %+v", questions[0])
	}
	for _, q := range questions {
		if q.Topic != "Greetings" {
			t.Errorf("fallback %s: topic = %q", q.ID, q.Topic)
		}
		if q.Difficulty != 1 {
			t.Errorf("fallback %s: difficulty = %d, want 1", q.ID, q.Difficulty)
		}
	}
}

func TestBuildDedup_Truncates(t *testing.T) {
	prior := []string{"a", "b", "c", "d"}
	got := buildDedup(prior, 2)
	if strings.Contains(got, "a") || strings.Contains(got, "b") {
		t.Errorf("expected only the most recent 2, got %q", got)
	}
	if !strings.Contains(got, "c") || !strings.Contains(got, "d") {
		t.Errorf("missing recent questions: %q", got)
	}
	if buildDedup(nil, 5) != "None" {
		t.Error("expected None for empty prior list")
	}
}
