package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// No profile yet.
	p, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile before any save")
	}

	first := &Profile{
		UpdatedAt: time.Now().Add(-time.Hour),
		Data:      ProfileData{UserID: "user-1", Name: "Nguyễn Văn A", Role: "student"},
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := &Profile{
		UpdatedAt: time.Now(),
		Data:      ProfileData{UserID: "user-1", Name: "Nguyễn Văn A", Role: "student", LastTopic: "Greetings"},
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil {
		t.Fatal("expected a profile")
	}
	if latest.Data.LastTopic != "Greetings" {
		t.Errorf("latest.Data.LastTopic = %q, want Greetings", latest.Data.LastTopic)
	}
}

func TestSequenceMonotonicAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendBatch(ctx, BatchEventData{BatchID: "b1", Action: "started", Topic: "Greetings", QuestionsServed: 5}); err != nil {
		t.Fatalf("append batch: %v", err)
	}
	if err := repo.AppendAnswer(ctx, AnswerEventData{
		BatchID: "b1", Topic: "Greetings", QuestionID: "greetings-1-0",
		QuestionText: "Hello! How are you today?", Answer: "I am fine", Score: 8,
	}); err != nil {
		t.Fatalf("append answer: %v", err)
	}
	if err := repo.AppendSync(ctx, SyncEventData{QuestionID: "greetings-1-0", StudentID: "user-1", Success: true}); err != nil {
		t.Fatalf("append sync: %v", err)
	}

	answers, err := repo.RecentAnswers(ctx, 0)
	if err != nil {
		t.Fatalf("recent answers: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(answers))
	}
	// Batch took sequence 1, so the answer must be strictly after it.
	if answers[0].Sequence <= 1 {
		t.Errorf("answer sequence = %d, want > 1", answers[0].Sequence)
	}
}

func TestRecentAnswersNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, q := range []string{"q1", "q2", "q3"} {
		err := repo.AppendAnswer(ctx, AnswerEventData{
			BatchID: "b1", Topic: "Greetings", QuestionID: q,
			QuestionText: "text", Answer: "ans", Score: i + 5,
		})
		if err != nil {
			t.Fatalf("append answer %s: %v", q, err)
		}
	}

	answers, err := repo.RecentAnswers(ctx, 2)
	if err != nil {
		t.Fatalf("recent answers: %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}
	if answers[0].QuestionID != "q3" || answers[1].QuestionID != "q2" {
		t.Errorf("expected q3,q2 newest first, got %s,%s", answers[0].QuestionID, answers[1].QuestionID)
	}
}

func TestUsageByTopicAndTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	scores := map[string][]int{
		"Greetings":   {8, 6},
		"Restaurants": {10},
	}
	for topic, ss := range scores {
		for i, sc := range ss {
			err := repo.AppendAnswer(ctx, AnswerEventData{
				BatchID: "b-" + topic, Topic: topic,
				QuestionID: "q", QuestionText: "text", Answer: "ans", Score: sc,
			})
			if err != nil {
				t.Fatalf("append answer %s/%d: %v", topic, i, err)
			}
		}
	}
	if err := repo.AppendBatch(ctx, BatchEventData{BatchID: "b-Greetings", Action: "completed", Topic: "Greetings", QuestionsServed: 2, AverageScore: 7}); err != nil {
		t.Fatalf("append batch: %v", err)
	}

	usage, err := repo.UsageByTopic(ctx)
	if err != nil {
		t.Fatalf("usage by topic: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(usage))
	}
	for _, u := range usage {
		switch u.Topic {
		case "Greetings":
			if u.Answers != 2 || u.AverageScore != 7 {
				t.Errorf("Greetings usage = %+v, want 2 answers avg 7", u)
			}
		case "Restaurants":
			if u.Answers != 1 || u.AverageScore != 10 {
				t.Errorf("Restaurants usage = %+v, want 1 answer avg 10", u)
			}
		default:
			t.Errorf("unexpected topic %q", u.Topic)
		}
	}

	totals, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Answers != 3 {
		t.Errorf("totals.Answers = %d, want 3", totals.Answers)
	}
	if totals.Batches != 1 {
		t.Errorf("totals.Batches = %d, want 1", totals.Batches)
	}
	want := float64(8+6+10) / 3
	if totals.AverageScore != want {
		t.Errorf("totals.AverageScore = %f, want %f", totals.AverageScore, want)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "grading",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    850,
		Success:      true,
		RequestBody:  `{"messages":[]}`,
		ResponseBody: `{"score":9}`,
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Purpose != "grading" || events[0].ResponseBody != `{"score":9}` {
		t.Errorf("unexpected event: %+v", events[0])
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get LLM event: %v", err)
	}
	if got == nil || got.Model != "gemini-2.5-flash" {
		t.Errorf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 600, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "grading", InputTokens: 80, OutputTokens: 20, LatencyMs: 300, Success: true},
	}
	for i, c := range calls {
		if err := repo.AppendLLMRequest(ctx, c); err != nil {
			t.Fatalf("append call %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose == "question-gen" {
			if u.Calls != 2 || u.InputTokens != 200 || u.OutputTokens != 100 {
				t.Errorf("question-gen usage = %+v", u)
			}
			if u.AvgLatencyMs != 500 {
				t.Errorf("question-gen avg latency = %d, want 500", u.AvgLatencyMs)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 {
		t.Fatalf("expected 1 model, got %d", len(byModel))
	}
	if byModel[0].Calls != 3 || byModel[0].InputTokens != 280 {
		t.Errorf("model usage = %+v", byModel[0])
	}
}

func TestQueryLLMEventsPurposeFilterWithLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Interleave purposes so the newest events are not the ones the
	// filter wants. The limit must apply to matching rows, not to the
	// unfiltered tail.
	for i := 0; i < 3; i++ {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "grading", Success: true}); err != nil {
			t.Fatalf("append grading event: %v", err)
		}
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "question-gen", Success: true}); err != nil {
			t.Fatalf("append question-gen event: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2, Purpose: "grading"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	for _, e := range events {
		if e.Purpose != "grading" {
			t.Errorf("purpose = %q, want grading", e.Purpose)
		}
	}
}
