package worksheet

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/ngthanh/engmaster/internal/gateway"
	"github.com/ngthanh/engmaster/internal/identity"
	"github.com/ngthanh/engmaster/internal/progress"
	"github.com/ngthanh/engmaster/internal/quizgen"
	"github.com/ngthanh/engmaster/internal/screen"
	"github.com/ngthanh/engmaster/internal/store"
	"github.com/ngthanh/engmaster/internal/ui/components"
	"github.com/ngthanh/engmaster/internal/ui/layout"
	wk "github.com/ngthanh/engmaster/internal/worksheet"
)

// WorksheetScreen drives one practice batch for the signed-in learner.
type WorksheetScreen struct {
	sess   wk.Session
	gw     *gateway.Gateway
	events store.EventRepo
	syncer *progress.Syncer
	user   identity.User

	input components.AnswerInput

	// Pending batch parts. Both must settle before the first question
	// is shown.
	pendingQuestions []quizgen.Question
	pendingTip       string
	batchReady       bool
	tipReady         bool

	// asked carries question texts across batches so the generator can
	// avoid repeats within one sitting.
	asked []string

	spinnerFrame int
}

var _ screen.Screen = (*WorksheetScreen)(nil)
var _ screen.KeyHintProvider = (*WorksheetScreen)(nil)

// New creates a worksheet screen for the given topic.
func New(gw *gateway.Gateway, events store.EventRepo, syncer *progress.Syncer, user identity.User, topic string) *WorksheetScreen {
	sess := wk.New()
	sess, _ = sess.StartLoading(topic)

	return &WorksheetScreen{
		sess:   sess,
		gw:     gw,
		events: events,
		syncer: syncer,
		user:   user,
		input:  components.NewAnswerInput("Type your answer here...", 200),
	}
}

func (w *WorksheetScreen) Init() tea.Cmd {
	return tea.Batch(
		w.fetchBatch(),
		w.fetchTip(),
		spinnerTick(),
		w.input.Init(),
	)
}

func (w *WorksheetScreen) Title() string {
	return "Worksheet"
}

func (w *WorksheetScreen) KeyHints() []layout.KeyHint {
	switch w.sess.Status {
	case wk.StatusAnswering:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+S", Description: "Hear question"},
		}
	case wk.StatusGrading:
		return []layout.KeyHint{
			{Key: "", Description: "Đang chấm điểm..."},
		}
	case wk.StatusReview:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "S", Description: "Hear correction"},
		}
	case wk.StatusComplete:
		return []layout.KeyHint{
			{Key: "Enter", Description: "New batch"},
		}
	}
	return nil
}

func (w *WorksheetScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchReadyMsg:
		return w.handleBatchReady(msg)

	case tipReadyMsg:
		w.pendingTip = msg.Tip
		w.tipReady = true
		return w.maybeBeginBatch()

	case gradedMsg:
		return w.handleGraded(msg)

	case spinnerTickMsg:
		if w.sess.Status != wk.StatusLoading {
			return w, nil
		}
		w.spinnerFrame++
		return w, spinnerTick()

	case tea.KeyMsg:
		return w.handleKey(msg)
	}

	// Forward everything else to the input while answering.
	if w.sess.Status == wk.StatusAnswering {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}

	return w, nil
}

func (w *WorksheetScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch w.sess.Status {
	case wk.StatusAnswering:
		switch key {
		case "enter":
			return w.submitAnswer()
		case "ctrl+s":
			if q, ok := w.sess.Current(); ok {
				return w, w.speakCmd(q.Text)
			}
			return w, nil
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd

	case wk.StatusReview:
		switch key {
		case "enter", "n":
			return w.advance()
		case "s":
			if r, ok := w.sess.LastResult(); ok {
				return w, w.speakCmd(r.Assessment.Correction)
			}
		}

	case wk.StatusComplete:
		if key == "enter" {
			return w.restart()
		}
	}

	return w, nil
}

func (w *WorksheetScreen) handleBatchReady(msg batchReadyMsg) (screen.Screen, tea.Cmd) {
	w.pendingQuestions = msg.Questions
	w.batchReady = true
	return w.maybeBeginBatch()
}

// maybeBeginBatch installs the batch once both the questions and the
// cultural note have settled.
func (w *WorksheetScreen) maybeBeginBatch() (screen.Screen, tea.Cmd) {
	if !w.batchReady || !w.tipReady || w.sess.Status != wk.StatusLoading {
		return w, nil
	}

	batchID := uuid.New().String()
	sess, err := w.sess.BeginBatch(batchID, w.pendingQuestions, w.pendingTip)
	if err != nil {
		return w, nil
	}
	w.sess = sess

	for _, q := range w.pendingQuestions {
		w.asked = append(w.asked, q.Text)
	}

	if w.events != nil {
		_ = w.events.AppendBatch(context.Background(), store.BatchEventData{
			BatchID:         batchID,
			Action:          "started",
			Topic:           w.sess.Topic,
			QuestionsServed: len(w.sess.Questions),
		})
	}

	w.input.Reset()
	return w, w.input.Init()
}

// submitAnswer sends the current answer off for grading.
func (w *WorksheetScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	sess, err := w.sess.Submit(w.input.Value())
	if err != nil {
		// Empty answers are a silent no-op.
		return w, nil
	}
	w.sess = sess
	w.input.SetDisabled(true)

	q, ok := w.sess.Current()
	if !ok {
		return w, nil
	}
	answer := w.sess.PendingAnswer

	return w, func() tea.Msg {
		a := w.gw.GradeAnswer(context.Background(), q.Text, answer)
		return gradedMsg{Assessment: a}
	}
}

func (w *WorksheetScreen) handleGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	sess, err := w.sess.ApplyAssessment(msg.Assessment, time.Now())
	if err != nil {
		return w, nil
	}
	w.sess = sess
	w.input.Submit(msg.Assessment.Score >= 8)

	result, ok := w.sess.LastResult()
	if !ok {
		return w, nil
	}

	if w.events != nil {
		_ = w.events.AppendAnswer(context.Background(), store.AnswerEventData{
			BatchID:      w.sess.BatchID,
			Topic:        w.sess.Topic,
			QuestionID:   result.QuestionID,
			QuestionText: result.QuestionText,
			Answer:       result.Answer,
			Score:        result.Assessment.Score,
			Correction:   result.Assessment.Correction,
			Feedback:     result.Assessment.Feedback,
			Praise:       result.Assessment.Praise,
		})
	}

	if w.syncer != nil {
		w.syncer.Sync(w.user, w.sess.Topic, result)
	}

	return w, w.speakCmd(wk.SpokenFeedback(result.Assessment))
}

// advance moves past the review, into the next question or completion.
func (w *WorksheetScreen) advance() (screen.Screen, tea.Cmd) {
	sess, err := w.sess.Next()
	if err != nil {
		return w, nil
	}
	w.sess = sess

	if w.sess.Status == wk.StatusComplete {
		if w.events != nil {
			_ = w.events.AppendBatch(context.Background(), store.BatchEventData{
				BatchID:         w.sess.BatchID,
				Action:          "completed",
				Topic:           w.sess.Topic,
				QuestionsServed: len(w.sess.Questions),
				AverageScore:    w.sess.AverageScore(),
			})
		}
		return w, nil
	}

	w.input.Reset()
	return w, w.input.Init()
}

// restart starts a fresh batch on the same topic.
func (w *WorksheetScreen) restart() (screen.Screen, tea.Cmd) {
	sess, err := w.sess.Restart()
	if err != nil {
		return w, nil
	}
	w.sess = sess
	w.batchReady = false
	w.tipReady = false
	w.pendingQuestions = nil

	return w, tea.Batch(w.fetchBatch(), w.fetchTip(), spinnerTick())
}

// fetchBatch fetches a question batch asynchronously. The gateway
// resolves every failure into the fallback batch, so this always
// delivers questions.
func (w *WorksheetScreen) fetchBatch() tea.Cmd {
	topic := w.sess.Topic
	prior := w.asked
	return func() tea.Msg {
		qs := w.gw.FetchQuestions(context.Background(), topic, quizgen.DefaultBatchSize, prior)
		return batchReadyMsg{Questions: qs}
	}
}

// fetchTip fetches the cultural note asynchronously.
func (w *WorksheetScreen) fetchTip() tea.Cmd {
	topic := w.sess.Topic
	return func() tea.Msg {
		return tipReadyMsg{Tip: w.gw.FetchCulturalNote(context.Background(), topic)}
	}
}

// speakCmd plays text best-effort without blocking the UI.
func (w *WorksheetScreen) speakCmd(text string) tea.Cmd {
	return func() tea.Msg {
		w.gw.Speak(context.Background(), text)
		return nil
	}
}

// spinnerTick returns the loading animation tick command.
func spinnerTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
