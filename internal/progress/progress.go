// Package progress pushes graded answers to the teacher's progress
// sheet, an Apps Script style endpoint that appends one row per POST.
// Pushes are fire-and-forget: the worksheet never waits on them and
// never sees their failures. Every attempt, including failures and the
// simulated mode used when no endpoint is configured, is recorded in
// the local event log.
package progress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ngthanh/engmaster/internal/identity"
	"github.com/ngthanh/engmaster/internal/store"
	"github.com/ngthanh/engmaster/internal/worksheet"
)

// Row is the sheet payload for one graded answer.
type Row struct {
	Timestamp    string `json:"timestamp"`
	StudentID    string `json:"studentId"`
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	Topic        string `json:"topic"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Score        int    `json:"score"`
	Correction   string `json:"correction"`
	Feedback     string `json:"feedback"`
}

// Syncer queues result pushes and processes them on a single worker.
type Syncer struct {
	url     string
	client  *http.Client
	events  store.EventRepo
	pending chan syncJob
	done    chan struct{}
}

type syncJob struct {
	row        Row
	questionID string
}

// NewSyncer creates a syncer and starts its worker. An empty url puts
// the syncer in simulation mode: rows are logged locally but nothing
// is sent. events may be nil to skip local recording.
func NewSyncer(url string, events store.EventRepo) *Syncer {
	s := &Syncer{
		url:     url,
		client:  &http.Client{Timeout: 10 * time.Second},
		events:  events,
		pending: make(chan syncJob, 32),
		done:    make(chan struct{}),
	}
	go s.processLoop()
	return s
}

// Close blocks until queued rows are pushed and their sync events
// written, so answers graded just before quitting still reach the
// sheet. Sync must not be called after Close.
func (s *Syncer) Close() {
	close(s.pending)
	<-s.done
}

// Sync queues one graded answer for pushing and returns immediately.
func (s *Syncer) Sync(user identity.User, topic string, result worksheet.Result) {
	row := Row{
		Timestamp:    result.Timestamp.UTC().Format(time.RFC3339),
		StudentID:    user.ID,
		StudentName:  user.Name,
		StudentEmail: user.Email,
		Topic:        topic,
		Question:     result.QuestionText,
		Answer:       result.Answer,
		Score:        result.Assessment.Score,
		Correction:   result.Assessment.Correction,
		Feedback:     result.Assessment.Feedback,
	}

	select {
	case s.pending <- syncJob{row: row, questionID: result.QuestionID}:
	default:
		// Queue full. The sheet is best-effort, drop silently.
	}
}

func (s *Syncer) processLoop() {
	defer close(s.done)
	for job := range s.pending {
		s.process(job)
	}
}

func (s *Syncer) process(job syncJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	data := store.SyncEventData{
		QuestionID: job.questionID,
		StudentID:  job.row.StudentID,
	}

	if s.url == "" {
		data.Success = true
		data.Simulated = true
	} else if err := s.push(ctx, job.row); err != nil {
		data.ErrorMessage = err.Error()
	} else {
		data.Success = true
	}

	if s.events != nil {
		_ = s.events.AppendSync(ctx, data)
	}
}

func (s *Syncer) push(ctx context.Context, row Row) error {
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post row: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sheet endpoint returned %d", resp.StatusCode)
	}
	return nil
}
