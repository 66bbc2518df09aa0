package culture

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ngthanh/engmaster/internal/llm"
)

func TestFetchTip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("In the US, people often greet strangers with a smile. Ở Mỹ, mọi người thường mỉm cười chào người lạ."),
	})
	f := New(mock, DefaultConfig())

	tip, err := f.FetchTip(context.Background(), "Greetings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(tip, "smile") {
		t.Errorf("unexpected tip: %q", tip)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, `"Greetings"`) {
		t.Errorf("prompt missing topic: %s", msg)
	}
	if mock.Calls[0].Schema != nil {
		t.Error("tip requests should not carry a schema")
	}
}

func TestFetchTip_EmptyResponseUsesEmptyTip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("  \n")})
	f := New(mock, DefaultConfig())

	tip, err := f.FetchTip(context.Background(), "Greetings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tip != EmptyTip {
		t.Errorf("tip = %q, want %q", tip, EmptyTip)
	}
}

func TestFetchTip_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	f := New(mock, DefaultConfig())

	_, err := f.FetchTip(context.Background(), "Greetings")
	if err == nil {
		t.Fatal("expected error")
	}
}
