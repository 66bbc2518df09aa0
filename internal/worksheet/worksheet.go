// Package worksheet holds the practice session state machine.
//
// The machine is pure: transitions take the current session value and
// return a new one, with no I/O and no clock access. Fetching questions,
// grading, speech, and progress sync all happen outside and feed their
// results in through transitions, which makes every path testable
// without a UI harness.
package worksheet

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ngthanh/engmaster/internal/grader"
	"github.com/ngthanh/engmaster/internal/quizgen"
)

// DefaultTopic is the starter topic for new learners.
const DefaultTopic = "Greetings"

// Status is the lifecycle state of a practice session.
type Status int

const (
	// StatusIdle is the initial state, before any topic is chosen.
	StatusIdle Status = iota

	// StatusLoading means a question batch (and cultural tip) is in flight.
	StatusLoading

	// StatusAnswering means the learner is composing an answer.
	StatusAnswering

	// StatusGrading means a grade request is in flight for the current answer.
	StatusGrading

	// StatusReview shows the grade for the question just answered.
	StatusReview

	// StatusComplete shows the batch average after the last question.
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusAnswering:
		return "answering"
	case StatusGrading:
		return "grading"
	case StatusReview:
		return "review"
	case StatusComplete:
		return "complete"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ErrEmptyAnswer is returned when a blank answer is submitted.
// Callers treat it as a silent no-op; the session is unchanged.
var ErrEmptyAnswer = errors.New("answer is empty")

// InvalidTransitionError reports a transition attempted from the wrong state.
type InvalidTransitionError struct {
	From  Status
	Event string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s from %s", e.Event, e.From)
}

// Result records one graded answer. Results are append-only within a batch.
type Result struct {
	QuestionID   string
	QuestionText string
	Answer       string
	Assessment   grader.Assessment
	Timestamp    time.Time
}

// Session is the full state of one practice batch.
// The zero value is not usable; construct with New.
type Session struct {
	Status  Status
	Topic   string
	BatchID string

	// Questions is the ordered batch. Immutable once loaded.
	Questions []quizgen.Question

	// Tip is the cultural note fetched alongside the batch.
	Tip string

	// Index points at the active question while answering/grading/reviewing.
	Index int

	// PendingAnswer is the trimmed answer awaiting a grade.
	PendingAnswer string

	// Results holds one entry per graded question, in question order.
	Results []Result
}

// New returns an idle session.
func New() Session {
	return Session{Status: StatusIdle}
}

// StartLoading begins fetching a batch for the topic. Valid from the
// initial state and from a completed batch (restart with the same or a
// new topic). All per-batch data is reset.
func (s Session) StartLoading(topic string) (Session, error) {
	if s.Status != StatusIdle && s.Status != StatusComplete {
		return s, &InvalidTransitionError{From: s.Status, Event: "start loading"}
	}
	return Session{
		Status: StatusLoading,
		Topic:  topic,
	}, nil
}

// Restart begins a new batch for the current topic after completion.
func (s Session) Restart() (Session, error) {
	if s.Status != StatusComplete {
		return s, &InvalidTransitionError{From: s.Status, Event: "restart"}
	}
	return s.StartLoading(s.Topic)
}

// BeginBatch installs the fetched questions and tip, entering the first
// question. The batch must be non-empty; the gateway's fallback contract
// guarantees this even when generation fails.
func (s Session) BeginBatch(batchID string, questions []quizgen.Question, tip string) (Session, error) {
	if s.Status != StatusLoading {
		return s, &InvalidTransitionError{From: s.Status, Event: "begin batch"}
	}
	if len(questions) == 0 {
		return s, errors.New("batch is empty")
	}
	next := s
	next.Status = StatusAnswering
	next.BatchID = batchID
	next.Questions = questions
	next.Tip = tip
	next.Index = 0
	next.PendingAnswer = ""
	next.Results = nil
	return next, nil
}

// Submit accepts the learner's answer for the current question and moves
// to grading. Whitespace-only answers return ErrEmptyAnswer with the
// session unchanged.
func (s Session) Submit(answer string) (Session, error) {
	if s.Status != StatusAnswering {
		return s, &InvalidTransitionError{From: s.Status, Event: "submit"}
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return s, ErrEmptyAnswer
	}
	next := s
	next.Status = StatusGrading
	next.PendingAnswer = trimmed
	return next, nil
}

// ApplyAssessment records the grade for the pending answer and moves to
// review. Exactly one result is appended per graded question.
func (s Session) ApplyAssessment(a grader.Assessment, now time.Time) (Session, error) {
	if s.Status != StatusGrading {
		return s, &InvalidTransitionError{From: s.Status, Event: "apply assessment"}
	}
	q := s.Questions[s.Index]

	// Copy so earlier session values never see the new result.
	results := make([]Result, len(s.Results), len(s.Results)+1)
	copy(results, s.Results)
	results = append(results, Result{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		Answer:       s.PendingAnswer,
		Assessment:   a,
		Timestamp:    now,
	})

	next := s
	next.Status = StatusReview
	next.Results = results
	return next, nil
}

// Next advances past the reviewed question: to the next question, or to
// completion after the last one.
func (s Session) Next() (Session, error) {
	if s.Status != StatusReview {
		return s, &InvalidTransitionError{From: s.Status, Event: "advance"}
	}
	next := s
	next.PendingAnswer = ""
	if s.Index < len(s.Questions)-1 {
		next.Status = StatusAnswering
		next.Index = s.Index + 1
	} else {
		next.Status = StatusComplete
	}
	return next, nil
}

// Current returns the active question. ok is false outside of the
// answering/grading/review states.
func (s Session) Current() (quizgen.Question, bool) {
	switch s.Status {
	case StatusAnswering, StatusGrading, StatusReview:
		return s.Questions[s.Index], true
	default:
		return quizgen.Question{}, false
	}
}

// LastResult returns the most recently appended result.
// ok is false when no answer has been graded yet.
func (s Session) LastResult() (Result, bool) {
	if len(s.Results) == 0 {
		return Result{}, false
	}
	return s.Results[len(s.Results)-1], true
}

// AverageScore is the arithmetic mean of all graded scores in the batch.
// Returns 0 when nothing has been graded, which cannot happen in the
// complete state since review always appends a result first.
func (s Session) AverageScore() float64 {
	if len(s.Results) == 0 {
		return 0
	}
	sum := 0
	for _, r := range s.Results {
		sum += r.Assessment.Score
	}
	return float64(sum) / float64(len(s.Results))
}

// Progress reports how many questions have been graded out of the batch.
func (s Session) Progress() (answered, total int) {
	return len(s.Results), len(s.Questions)
}

// SpokenFeedback picks what the voice reads after grading: the
// correction when the score is low, the praise otherwise.
func SpokenFeedback(a grader.Assessment) string {
	if a.Score < 8 {
		return "Correct answer is: " + a.Correction
	}
	return a.Praise
}
