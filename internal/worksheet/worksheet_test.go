package worksheet

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ngthanh/engmaster/internal/grader"
	"github.com/ngthanh/engmaster/internal/quizgen"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func testQuestions(n int) []quizgen.Question {
	qs := make([]quizgen.Question, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, quizgen.Question{
			ID:         fmt.Sprintf("q%d", i+1),
			Topic:      "Greetings",
			Text:       fmt.Sprintf("Question %d?", i+1),
			Difficulty: 1,
		})
	}
	return qs
}

// answering returns a session sitting on the first question of a batch.
func answering(t *testing.T, n int) Session {
	t.Helper()
	s, err := New().StartLoading("Greetings")
	if err != nil {
		t.Fatalf("start loading: %v", err)
	}
	s, err = s.BeginBatch("batch-1", testQuestions(n), "a tip")
	if err != nil {
		t.Fatalf("begin batch: %v", err)
	}
	return s
}

// graded submits and grades the current question with the given score.
func graded(t *testing.T, s Session, answer string, score int) Session {
	t.Helper()
	s, err := s.Submit(answer)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	s, err = s.ApplyAssessment(grader.Assessment{Score: score, Praise: "Good job!"}, testNow)
	if err != nil {
		t.Fatalf("apply assessment: %v", err)
	}
	return s
}

func TestNew_IsIdle(t *testing.T) {
	s := New()
	if s.Status != StatusIdle {
		t.Errorf("status = %s, want idle", s.Status)
	}
	if _, ok := s.Current(); ok {
		t.Error("idle session should have no current question")
	}
}

func TestStartLoading(t *testing.T) {
	s, err := New().StartLoading("Greetings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Status != StatusLoading {
		t.Errorf("status = %s, want loading", s.Status)
	}
	if s.Topic != "Greetings" {
		t.Errorf("topic = %q", s.Topic)
	}
}

func TestBeginBatch_EntersFirstQuestion(t *testing.T) {
	s := answering(t, 3)
	if s.Status != StatusAnswering {
		t.Errorf("status = %s, want answering", s.Status)
	}
	if s.Index != 0 {
		t.Errorf("index = %d, want 0", s.Index)
	}
	if len(s.Results) != 0 {
		t.Errorf("results = %d, want 0", len(s.Results))
	}
	q, ok := s.Current()
	if !ok || q.ID != "q1" {
		t.Errorf("current = %+v, want q1", q)
	}
	if s.Tip != "a tip" {
		t.Errorf("tip = %q", s.Tip)
	}
}

func TestBeginBatch_EmptyRejected(t *testing.T) {
	s, err := New().StartLoading("Greetings")
	if err != nil {
		t.Fatalf("start loading: %v", err)
	}
	if _, err := s.BeginBatch("b", nil, ""); err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestSubmit_EmptyAnswerIsNoOp(t *testing.T) {
	s := answering(t, 2)

	for _, in := range []string{"", "   ", "\t\n"} {
		next, err := s.Submit(in)
		if !errors.Is(err, ErrEmptyAnswer) {
			t.Errorf("Submit(%q) err = %v, want ErrEmptyAnswer", in, err)
		}
		if next.Status != StatusAnswering {
			t.Errorf("Submit(%q) changed status to %s", in, next.Status)
		}
		if len(next.Results) != 0 {
			t.Errorf("Submit(%q) appended a result", in)
		}
	}
}

func TestSubmit_TrimsAnswer(t *testing.T) {
	s := answering(t, 1)
	s, err := s.Submit("  I am fine  ")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Status != StatusGrading {
		t.Errorf("status = %s, want grading", s.Status)
	}
	if s.PendingAnswer != "I am fine" {
		t.Errorf("pending answer = %q", s.PendingAnswer)
	}
}

func TestApplyAssessment_AppendsExactlyOneResult(t *testing.T) {
	s := answering(t, 2)
	s = graded(t, s, "I am fine", 8)

	if s.Status != StatusReview {
		t.Errorf("status = %s, want review", s.Status)
	}
	if len(s.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(s.Results))
	}
	r := s.Results[0]
	if r.QuestionID != "q1" || r.Answer != "I am fine" || r.Assessment.Score != 8 {
		t.Errorf("unexpected result: %+v", r)
	}
	if !r.Timestamp.Equal(testNow) {
		t.Errorf("timestamp = %v", r.Timestamp)
	}
}

func TestNext_AdvancesOrCompletes(t *testing.T) {
	s := answering(t, 2)
	s = graded(t, s, "first answer", 7)

	s, err := s.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if s.Status != StatusAnswering || s.Index != 1 {
		t.Errorf("after next: status %s index %d, want answering 1", s.Status, s.Index)
	}
	if s.PendingAnswer != "" {
		t.Errorf("pending answer not cleared: %q", s.PendingAnswer)
	}

	// Next on the last question completes instead of advancing.
	s = graded(t, s, "second answer", 9)
	s, err = s.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if s.Status != StatusComplete {
		t.Errorf("status = %s, want complete", s.Status)
	}
}

func TestResultsTrackQuestionOrder(t *testing.T) {
	s := answering(t, 3)
	for i := 0; i < 3; i++ {
		s = graded(t, s, "answer", 5)
		if len(s.Results) > len(s.Questions) {
			t.Fatalf("results %d exceed questions %d", len(s.Results), len(s.Questions))
		}
		for j, r := range s.Results {
			if r.QuestionID != s.Questions[j].ID {
				t.Errorf("results[%d].QuestionID = %q, want %q", j, r.QuestionID, s.Questions[j].ID)
			}
		}
		var err error
		s, err = s.Next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
	}
	if s.Status != StatusComplete {
		t.Errorf("status = %s, want complete", s.Status)
	}
}

func TestAverageScore(t *testing.T) {
	s := answering(t, 3)
	for _, score := range []int{8, 6, 9} {
		s = graded(t, s, "answer", score)
		var err error
		s, err = s.Next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
	}

	avg := s.AverageScore()
	want := float64(8+6+9) / 3
	if avg != want {
		t.Errorf("average = %v, want %v", avg, want)
	}
	if got := fmt.Sprintf("%.1f", avg); got != "7.7" {
		t.Errorf("displayed average = %s, want 7.7", got)
	}
}

func TestRestart_ResetsBatchPreservesTopic(t *testing.T) {
	s := answering(t, 1)
	s = graded(t, s, "answer", 10)
	s, err := s.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}

	s, err = s.Restart()
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if s.Status != StatusLoading {
		t.Errorf("status = %s, want loading", s.Status)
	}
	if s.Topic != "Greetings" {
		t.Errorf("topic = %q, want Greetings", s.Topic)
	}
	if len(s.Results) != 0 || s.Index != 0 {
		t.Errorf("batch state not reset: %d results, index %d", len(s.Results), s.Index)
	}
}

func TestInvalidTransitions(t *testing.T) {
	idle := New()

	if _, err := idle.Submit("hi"); err == nil {
		t.Error("submit from idle should fail")
	}
	if _, err := idle.Next(); err == nil {
		t.Error("next from idle should fail")
	}
	if _, err := idle.ApplyAssessment(grader.Assessment{}, testNow); err == nil {
		t.Error("apply assessment from idle should fail")
	}
	if _, err := idle.Restart(); err == nil {
		t.Error("restart from idle should fail")
	}

	s := answering(t, 1)
	if _, err := s.StartLoading("Other"); err == nil {
		t.Error("start loading while answering should fail")
	}

	var invalid *InvalidTransitionError
	_, err := s.Next()
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidTransitionError, got %v", err)
	}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	s := answering(t, 2)
	before := s

	mid, err := s.Submit("answer")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	after, err := mid.ApplyAssessment(grader.Assessment{Score: 7}, testNow)
	if err != nil {
		t.Fatalf("apply assessment: %v", err)
	}

	if before.Status != StatusAnswering || len(before.Results) != 0 || before.PendingAnswer != "" {
		t.Errorf("earlier session value mutated: %+v", before)
	}
	if len(mid.Results) != 0 {
		t.Errorf("grading session saw the appended result")
	}
	if len(after.Results) != 1 {
		t.Errorf("results = %d, want 1", len(after.Results))
	}
}

func TestSpokenFeedback(t *testing.T) {
	low := grader.Assessment{Score: 7, Correction: "I am fine, thank you.", Praise: "Good try!"}
	if got := SpokenFeedback(low); got != "Correct answer is: I am fine, thank you." {
		t.Errorf("low score spoken = %q, want correction", got)
	}
	high := grader.Assessment{Score: 8, Correction: "unchanged", Praise: "Excellent!"}
	if got := SpokenFeedback(high); got != "Excellent!" {
		t.Errorf("high score spoken = %q, want praise", got)
	}
}

// Full scripted play-through: two greetings questions, one empty
// submission rejected in the middle.
func TestGreetingsPlayThrough(t *testing.T) {
	s, err := New().StartLoading("Greetings")
	if err != nil {
		t.Fatalf("start loading: %v", err)
	}
	s, err = s.BeginBatch("b1", []quizgen.Question{
		{ID: "q1", Topic: "Greetings", Text: "Hello! How are you?", Difficulty: 1},
		{ID: "q2", Topic: "Greetings", Text: "What is your name?", Difficulty: 1},
	}, "")
	if err != nil {
		t.Fatalf("begin batch: %v", err)
	}

	s, err = s.Submit("I am fine thank you")
	if err != nil {
		t.Fatalf("submit q1: %v", err)
	}
	s, err = s.ApplyAssessment(grader.Assessment{
		Score:      9,
		Correction: "I am fine, thank you!",
		Praise:     "Excellent!",
		Feedback:   "Câu trả lời rất tốt.",
	}, testNow)
	if err != nil {
		t.Fatalf("grade q1: %v", err)
	}
	if s.Status != StatusReview {
		t.Fatalf("status = %s, want review", s.Status)
	}
	if r, _ := s.LastResult(); r.Assessment.Score != 9 {
		t.Errorf("review shows score %d, want 9", r.Assessment.Score)
	}

	s, err = s.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if q, _ := s.Current(); q.ID != "q2" {
		t.Errorf("current = %q, want q2", q.ID)
	}

	// Empty submission is rejected without a transition.
	if _, err := s.Submit(""); !errors.Is(err, ErrEmptyAnswer) {
		t.Fatalf("empty submit err = %v", err)
	}

	s, err = s.Submit("My name is An")
	if err != nil {
		t.Fatalf("submit q2: %v", err)
	}
	s, err = s.ApplyAssessment(grader.Assessment{Score: 7, Correction: "My name is An."}, testNow)
	if err != nil {
		t.Fatalf("grade q2: %v", err)
	}
	s, err = s.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if s.Status != StatusComplete {
		t.Fatalf("status = %s, want complete", s.Status)
	}
	if want := float64(9+7) / 2; s.AverageScore() != want {
		t.Errorf("average = %v, want %v", s.AverageScore(), want)
	}
}
