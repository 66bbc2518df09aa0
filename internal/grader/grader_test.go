package grader

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ngthanh/engmaster/internal/llm"
)

func validAssessmentJSON() json.RawMessage {
	return json.RawMessage(`{
		"score": 9,
		"correction": "I am fine, thank you.",
		"feedback": "Câu trả lời tốt, chỉ thiếu dấu phẩy.",
		"praise": "Excellent!"
	}`)
}

func TestGrade(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAssessmentJSON()})
	g := New(mock, DefaultConfig())

	a, err := g.Grade(context.Background(), "Hello! How are you today?", "I am fine thank you")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Score != 9 {
		t.Errorf("score = %d, want 9", a.Score)
	}
	if a.Correction != "I am fine, thank you." {
		t.Errorf("unexpected correction: %q", a.Correction)
	}
	if a.Praise != "Excellent!" {
		t.Errorf("unexpected praise: %q", a.Praise)
	}
}

func TestGrade_PromptIncludesQuestionAndAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAssessmentJSON()})
	g := New(mock, DefaultConfig())

	_, err := g.Grade(context.Background(), "What is your name?", "My name is Minh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, `"What is your name?"`) {
		t.Errorf("prompt missing question: %s", msg)
	}
	if !strings.Contains(msg, `"My name is Minh"`) {
		t.Errorf("prompt missing answer: %s", msg)
	}
	if mock.Calls[0].Schema != AssessmentSchema {
		t.Error("expected assessment schema on request")
	}
}

func TestGrade_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}})
	g := New(mock, DefaultConfig())

	_, err := g.Grade(context.Background(), "q", "a")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGrade_OutOfRangeScoreRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`{"score": 11, "correction": "", "feedback": "", "praise": ""}`,
	)})
	g := New(mock, DefaultConfig())

	_, err := g.Grade(context.Background(), "q", "a")
	if err == nil {
		t.Fatal("expected error for score 11")
	}
}

func TestFallback(t *testing.T) {
	a := Fallback()
	if a.Score != 0 {
		t.Errorf("fallback score = %d, want 0", a.Score)
	}
	if a.Correction != "Error grading answer." {
		t.Errorf("unexpected correction: %q", a.Correction)
	}
	if a.Feedback != "Hệ thống đang bận, vui lòng thử lại sau." {
		t.Errorf("unexpected feedback: %q", a.Feedback)
	}
	if a.Praise != "Keep trying!" {
		t.Errorf("unexpected praise: %q", a.Praise)
	}
}
