package worksheet

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ngthanh/engmaster/internal/gateway"
	"github.com/ngthanh/engmaster/internal/grader"
	"github.com/ngthanh/engmaster/internal/identity"
	"github.com/ngthanh/engmaster/internal/quizgen"
	"github.com/ngthanh/engmaster/internal/screen"
	"github.com/ngthanh/engmaster/internal/store"
	wk "github.com/ngthanh/engmaster/internal/worksheet"
)

// stubGenerator implements quizgen.Generator for testing.
type stubGenerator struct {
	questions []quizgen.Question
}

func (s *stubGenerator) GenerateBatch(_ context.Context, _ string, _ int, _ []string) ([]quizgen.Question, error) {
	return s.questions, nil
}

// stubGrader implements grader.Grader for testing.
type stubGrader struct {
	assessment grader.Assessment
}

func (s *stubGrader) Grade(_ context.Context, _, _ string) (*grader.Assessment, error) {
	a := s.assessment
	return &a, nil
}

// stubCulture implements culture.Fetcher for testing.
type stubCulture struct{}

func (stubCulture) FetchTip(_ context.Context, _ string) (string, error) {
	return "In English-speaking countries, a handshake is common.", nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	store.EventRepo

	answerEvents []store.AnswerEventData
	batchEvents  []store.BatchEventData
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}

func (m *mockEventRepo) AppendBatch(_ context.Context, data store.BatchEventData) error {
	m.batchEvents = append(m.batchEvents, data)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []quizgen.Question {
	return []quizgen.Question{
		{ID: "greetings-1-0", Topic: "Greetings", Text: "How are you today?", Difficulty: 1},
		{ID: "greetings-1-1", Topic: "Greetings", Text: "What is your name?", Difficulty: 1},
	}
}

func testWorksheetScreen(score int) (*WorksheetScreen, *mockEventRepo) {
	gen := &stubGenerator{questions: testQuestions()}
	gr := &stubGrader{assessment: grader.Assessment{
		Score:      score,
		Correction: "I am fine, thank you.",
		Feedback:   "Bạn làm tốt lắm.",
		Praise:     "Great job!",
	}}
	gw := gateway.New(gen, gr, stubCulture{}, nil)

	events := &mockEventRepo{}
	user := identity.MockLogin(identity.RoleStudent)
	return New(gw, events, nil, user, "Greetings"), events
}

// deliverBatch drives the screen through loading into the first question.
func deliverBatch(t *testing.T, w *WorksheetScreen) *WorksheetScreen {
	t.Helper()

	var scr screen.Screen = w
	scr, _ = scr.Update(batchReadyMsg{Questions: testQuestions()})
	ws := scr.(*WorksheetScreen)
	if ws.sess.Status != wk.StatusLoading {
		t.Fatalf("status after batch only = %v, want %v", ws.sess.Status, wk.StatusLoading)
	}

	scr, _ = ws.Update(tipReadyMsg{Tip: "tip"})
	ws = scr.(*WorksheetScreen)
	if ws.sess.Status != wk.StatusAnswering {
		t.Fatalf("status after batch and tip = %v, want %v", ws.sess.Status, wk.StatusAnswering)
	}
	return ws
}

func TestWorksheetScreen_Title(t *testing.T) {
	w, _ := testWorksheetScreen(9)
	if w.Title() != "Worksheet" {
		t.Errorf("Title = %q, want %q", w.Title(), "Worksheet")
	}
}

func TestWorksheetScreen_WaitsForBatchAndTip(t *testing.T) {
	w, events := testWorksheetScreen(9)
	ws := deliverBatch(t, w)

	if len(events.batchEvents) != 1 || events.batchEvents[0].Action != "started" {
		t.Fatalf("batch events = %+v, want one started event", events.batchEvents)
	}
	if _, ok := ws.sess.Current(); !ok {
		t.Error("expected a current question after batch install")
	}
}

func TestWorksheetScreen_EmptySubmitIsNoOp(t *testing.T) {
	w, events := testWorksheetScreen(9)
	ws := deliverBatch(t, w)

	scr, cmd := ws.Update(specialKey(tea.KeyEnter))
	ws = scr.(*WorksheetScreen)

	if cmd != nil {
		t.Error("expected no grading command for empty answer")
	}
	if ws.sess.Status != wk.StatusAnswering {
		t.Errorf("status = %v, want %v", ws.sess.Status, wk.StatusAnswering)
	}
	if len(events.answerEvents) != 0 {
		t.Errorf("answer events = %d, want 0", len(events.answerEvents))
	}
}

func TestWorksheetScreen_SubmitAndReview(t *testing.T) {
	w, events := testWorksheetScreen(9)
	ws := deliverBatch(t, w)

	ws.input.Model.SetValue("I am fine thank you")
	scr, cmd := ws.Update(specialKey(tea.KeyEnter))
	ws = scr.(*WorksheetScreen)

	if ws.sess.Status != wk.StatusGrading {
		t.Fatalf("status = %v, want %v", ws.sess.Status, wk.StatusGrading)
	}
	if cmd == nil {
		t.Fatal("expected a grading command")
	}

	msg := cmd()
	graded, ok := msg.(gradedMsg)
	if !ok {
		t.Fatalf("command produced %T, want gradedMsg", msg)
	}

	scr, _ = ws.Update(graded)
	ws = scr.(*WorksheetScreen)

	if ws.sess.Status != wk.StatusReview {
		t.Errorf("status = %v, want %v", ws.sess.Status, wk.StatusReview)
	}
	if len(events.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(events.answerEvents))
	}
	if events.answerEvents[0].Score != 9 {
		t.Errorf("recorded score = %d, want 9", events.answerEvents[0].Score)
	}
	if events.answerEvents[0].Topic != "Greetings" {
		t.Errorf("recorded topic = %q, want %q", events.answerEvents[0].Topic, "Greetings")
	}
}

func TestWorksheetScreen_CompleteBatch(t *testing.T) {
	w, events := testWorksheetScreen(8)
	ws := deliverBatch(t, w)

	for i := 0; i < 2; i++ {
		ws.input.Model.SetValue("an answer")
		scr, cmd := ws.Update(specialKey(tea.KeyEnter))
		ws = scr.(*WorksheetScreen)
		scr, _ = ws.Update(cmd())
		ws = scr.(*WorksheetScreen)

		scr, _ = ws.Update(specialKey(tea.KeyEnter))
		ws = scr.(*WorksheetScreen)
	}

	if ws.sess.Status != wk.StatusComplete {
		t.Fatalf("status = %v, want %v", ws.sess.Status, wk.StatusComplete)
	}

	var completed *store.BatchEventData
	for i := range events.batchEvents {
		if events.batchEvents[i].Action == "completed" {
			completed = &events.batchEvents[i]
		}
	}
	if completed == nil {
		t.Fatal("expected a completed batch event")
	}
	if completed.AverageScore != 8.0 {
		t.Errorf("average score = %v, want 8.0", completed.AverageScore)
	}

	view := ws.View(80, 24)
	if view == "" {
		t.Error("expected non-empty completion view")
	}
}

func TestWorksheetScreen_RestartAfterComplete(t *testing.T) {
	w, _ := testWorksheetScreen(8)
	ws := deliverBatch(t, w)

	for i := 0; i < 2; i++ {
		ws.input.Model.SetValue("an answer")
		scr, cmd := ws.Update(specialKey(tea.KeyEnter))
		ws = scr.(*WorksheetScreen)
		scr, _ = ws.Update(cmd())
		ws = scr.(*WorksheetScreen)
		scr, _ = ws.Update(specialKey(tea.KeyEnter))
		ws = scr.(*WorksheetScreen)
	}

	scr, cmd := ws.Update(specialKey(tea.KeyEnter))
	ws = scr.(*WorksheetScreen)

	if ws.sess.Status != wk.StatusLoading {
		t.Errorf("status = %v, want %v", ws.sess.Status, wk.StatusLoading)
	}
	if ws.sess.Topic != "Greetings" {
		t.Errorf("topic = %q, want preserved topic", ws.sess.Topic)
	}
	if cmd == nil {
		t.Error("expected fetch commands on restart")
	}
}

func TestWorksheetScreen_ViewStates(t *testing.T) {
	w, _ := testWorksheetScreen(9)

	if w.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}

	ws := deliverBatch(t, w)
	if ws.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
}
