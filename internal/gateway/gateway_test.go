package gateway

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ngthanh/engmaster/internal/culture"
	"github.com/ngthanh/engmaster/internal/grader"
	"github.com/ngthanh/engmaster/internal/quizgen"
)

type fakeGenerator struct {
	questions []quizgen.Question
	err       error
}

func (f *fakeGenerator) GenerateBatch(_ context.Context, _ string, _ int, _ []string) ([]quizgen.Question, error) {
	return f.questions, f.err
}

type fakeGrader struct {
	assessment *grader.Assessment
	err        error
}

func (f *fakeGrader) Grade(_ context.Context, _, _ string) (*grader.Assessment, error) {
	return f.assessment, f.err
}

type fakeFetcher struct {
	tip string
	err error
}

func (f *fakeFetcher) FetchTip(_ context.Context, _ string) (string, error) {
	return f.tip, f.err
}

type fakeSpeaker struct {
	mu    sync.Mutex
	texts []string
}

func (f *fakeSpeaker) Speak(_ context.Context, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
}

func TestFetchQuestions_Success(t *testing.T) {
	want := []quizgen.Question{{ID: "a", Topic: "Greetings", Text: "Hello?", Difficulty: 1}}
	gw := New(&fakeGenerator{questions: want}, &fakeGrader{}, nil, nil)

	got := gw.FetchQuestions(context.Background(), "Greetings", 5, nil)
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("unexpected questions: %+v", got)
	}
}

func TestFetchQuestions_ErrorFallsBack(t *testing.T) {
	gw := New(&fakeGenerator{err: errors.New("down")}, &fakeGrader{}, nil, nil)

	got := gw.FetchQuestions(context.Background(), "Restaurants", 5, nil)
	if len(got) == 0 {
		t.Fatal("fallback batch must be non-empty")
	}
	for _, q := range got {
		if q.ID == "" || q.Text == "" || q.Difficulty < 1 || q.Difficulty > 5 {
			t.Errorf("malformed fallback question: %+v", q)
		}
		if q.Topic != "Restaurants" {
			t.Errorf("fallback question not tagged with topic: %+v", q)
		}
	}
}

func TestFetchQuestions_EmptyBatchFallsBack(t *testing.T) {
	gw := New(&fakeGenerator{questions: nil}, &fakeGrader{}, nil, nil)

	got := gw.FetchQuestions(context.Background(), "Greetings", 5, nil)
	if len(got) == 0 {
		t.Fatal("fallback batch must be non-empty")
	}
}

func TestGradeAnswer_Success(t *testing.T) {
	gw := New(&fakeGenerator{}, &fakeGrader{assessment: &grader.Assessment{Score: 9, Praise: "Excellent!"}}, nil, nil)

	a := gw.GradeAnswer(context.Background(), "q", "a")
	if a.Score != 9 {
		t.Errorf("score = %d, want 9", a.Score)
	}
}

func TestGradeAnswer_ErrorFallsBack(t *testing.T) {
	gw := New(&fakeGenerator{}, &fakeGrader{err: errors.New("busy")}, nil, nil)

	a := gw.GradeAnswer(context.Background(), "q", "a")
	if a != *grader.Fallback() {
		t.Errorf("assessment = %+v, want fallback", a)
	}
	if a.Score != 0 {
		t.Errorf("fallback score = %d, want 0", a.Score)
	}
}

func TestFetchCulturalNote(t *testing.T) {
	gw := New(&fakeGenerator{}, &fakeGrader{}, &fakeFetcher{tip: "a fun fact"}, nil)
	if tip := gw.FetchCulturalNote(context.Background(), "Greetings"); tip != "a fun fact" {
		t.Errorf("tip = %q", tip)
	}

	gw = New(&fakeGenerator{}, &fakeGrader{}, &fakeFetcher{err: errors.New("down")}, nil)
	if tip := gw.FetchCulturalNote(context.Background(), "Greetings"); tip != culture.ErrorTip {
		t.Errorf("tip = %q, want error fallback", tip)
	}

	gw = New(&fakeGenerator{}, &fakeGrader{}, nil, nil)
	if tip := gw.FetchCulturalNote(context.Background(), "Greetings"); tip != culture.ErrorTip {
		t.Errorf("tip = %q, want error fallback with nil fetcher", tip)
	}
}

func TestSpeak(t *testing.T) {
	sp := &fakeSpeaker{}
	gw := New(&fakeGenerator{}, &fakeGrader{}, nil, sp)

	gw.Speak(context.Background(), "Hello!")
	if len(sp.texts) != 1 || sp.texts[0] != "Hello!" {
		t.Errorf("spoken = %v", sp.texts)
	}

	// Nil speaker is a no-op.
	New(&fakeGenerator{}, &fakeGrader{}, nil, nil).Speak(context.Background(), "Hello!")
}
