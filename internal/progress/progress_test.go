package progress

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ngthanh/engmaster/internal/grader"
	"github.com/ngthanh/engmaster/internal/identity"
	"github.com/ngthanh/engmaster/internal/store"
	"github.com/ngthanh/engmaster/internal/worksheet"
)

// recordingRepo captures sync events in memory.
type recordingRepo struct {
	store.EventRepo
	mu     sync.Mutex
	events []store.SyncEventData
	done   chan struct{}
}

func (r *recordingRepo) AppendSync(_ context.Context, data store.SyncEventData) error {
	r.mu.Lock()
	r.events = append(r.events, data)
	r.mu.Unlock()
	select {
	case r.done <- struct{}{}:
	default:
	}
	return nil
}

func (r *recordingRepo) last(t *testing.T) store.SyncEventData {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for sync event")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func testUser() identity.User {
	return identity.User{
		ID:    "user-1",
		Name:  "Nguyễn Văn A (Student)",
		Email: "student@school.edu.vn",
		Role:  identity.RoleStudent,
	}
}

func testResult() worksheet.Result {
	return worksheet.Result{
		QuestionID:   "Greetings-1-0",
		QuestionText: "Hello! How are you today?",
		Answer:       "I am fine thank you",
		Assessment: grader.Assessment{
			Score:      9,
			Correction: "I am fine, thank you.",
			Feedback:   "Tốt lắm!",
		},
		Timestamp: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestSync_PostsRow(t *testing.T) {
	var (
		mu   sync.Mutex
		rows []Row
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var row Row
		if err := json.Unmarshal(body, &row); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		mu.Lock()
		rows = append(rows, row)
		mu.Unlock()
	}))
	defer srv.Close()

	repo := &recordingRepo{done: make(chan struct{}, 1)}
	s := NewSyncer(srv.URL, repo)

	s.Sync(testUser(), "Greetings", testResult())

	ev := repo.last(t)
	if !ev.Success || ev.Simulated {
		t.Errorf("sync event = %+v, want real success", ev)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.StudentEmail != "student@school.edu.vn" {
		t.Errorf("email = %q", row.StudentEmail)
	}
	if row.Topic != "Greetings" || row.Score != 9 {
		t.Errorf("row = %+v", row)
	}
	if row.Timestamp != "2025-06-01T09:00:00Z" {
		t.Errorf("timestamp = %q", row.Timestamp)
	}
}

func TestSync_FailureRecordedNotRaised(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	repo := &recordingRepo{done: make(chan struct{}, 1)}
	s := NewSyncer(srv.URL, repo)

	// Sync never returns an error to the caller.
	s.Sync(testUser(), "Greetings", testResult())

	ev := repo.last(t)
	if ev.Success {
		t.Error("expected failure to be recorded")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected an error message")
	}
}

func TestSync_SimulationModeWithoutURL(t *testing.T) {
	repo := &recordingRepo{done: make(chan struct{}, 1)}
	s := NewSyncer("", repo)

	s.Sync(testUser(), "Greetings", testResult())

	ev := repo.last(t)
	if !ev.Simulated || !ev.Success {
		t.Errorf("sync event = %+v, want simulated success", ev)
	}
}

func TestClose_DrainsQueuedRows(t *testing.T) {
	repo := &recordingRepo{done: make(chan struct{}, 1)}
	s := NewSyncer("", repo)

	for i := 0; i < 5; i++ {
		s.Sync(testUser(), "Greetings", testResult())
	}
	s.Close()

	// Close returns only after the worker drains, so every queued row
	// has its sync event by now.
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.events) != 5 {
		t.Fatalf("recorded events = %d, want 5", len(repo.events))
	}
}
