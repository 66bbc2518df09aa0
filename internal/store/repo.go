package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose label ("" = all)
}

// ProfileData is the learner identity and preferences saved between runs.
type ProfileData struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	Role      string `json:"role"`
	LastTopic string `json:"lastTopic"`
}

// Profile is a saved learner profile.
type Profile struct {
	ID        int
	UpdatedAt time.Time
	Data      ProfileData
}

// ProfileRepo manages saved learner profiles.
type ProfileRepo interface {
	// Save stores a new profile revision.
	Save(ctx context.Context, p *Profile) error

	// Latest returns the most recently saved profile, or nil if none exist.
	Latest(ctx context.Context) (*Profile, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event as returned by queries.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// AnswerEventData captures one graded answer.
type AnswerEventData struct {
	BatchID      string
	Topic        string
	QuestionID   string
	QuestionText string
	Answer       string
	Score        int
	Correction   string
	Feedback     string
	Praise       string
}

// AnswerRecord is a stored answer event as returned by queries.
type AnswerRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// BatchEventData captures a worksheet batch lifecycle event.
type BatchEventData struct {
	BatchID         string
	Action          string // "started" or "completed"
	Topic           string
	QuestionsServed int
	AverageScore    float64
}

// SyncEventData captures one progress-sheet push attempt.
type SyncEventData struct {
	QuestionID   string
	StudentID    string
	Success      bool
	Simulated    bool
	ErrorMessage string
}

// TopicUsage aggregates graded answers for one topic.
type TopicUsage struct {
	Topic        string
	Answers      int
	AverageScore float64
}

// AnswerTotals aggregates all graded answers for the local learner.
type AnswerTotals struct {
	Answers      int
	Batches      int
	AverageScore float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendAnswer records one graded answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendBatch records a worksheet batch lifecycle event.
	AppendBatch(ctx context.Context, data BatchEventData) error

	// AppendSync records a progress-sheet push attempt.
	AppendSync(ctx context.Context, data SyncEventData) error

	// RecentAnswers returns graded answers, newest first.
	RecentAnswers(ctx context.Context, limit int) ([]AnswerRecord, error)

	// UsageByTopic aggregates graded answers grouped by topic.
	UsageByTopic(ctx context.Context) ([]TopicUsage, error)

	// Totals aggregates all graded answers and completed batches.
	Totals(ctx context.Context) (AnswerTotals, error)
}
