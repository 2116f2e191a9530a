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
	Purpose string    // LLM events only; empty matches all
}

// StateRepo stores opaque state documents under named buckets.
type StateRepo interface {
	// Load returns the document stored under bucket, or nil if none exists.
	Load(ctx context.Context, bucket string) ([]byte, error)

	// Save creates or replaces the document stored under bucket.
	Save(ctx context.Context, bucket string, data []byte) error

	// Delete removes bucket. Deleting a missing bucket is not an error.
	Delete(ctx context.Context, bucket string) error
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

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates LLM calls sharing a purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls served by one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ResultEventData captures one completed assessment.
type ResultEventData struct {
	SessionID         string
	FirstName         string
	ADHDType          string
	InattentiveScore  int
	HyperactiveScore  int
	CombinedScore     int
	FocusScore        int
	OrganizationScore int
	PrimaryChallenges []string
	AnswerCount       int
	BankVersion       string
}

// ResultEvent is a stored completed assessment.
type ResultEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ResultEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns the event with the given ID, or nil if none exists.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendResult records a completed assessment.
	AppendResult(ctx context.Context, data ResultEventData) error

	// QueryResults returns completed assessments, newest first.
	QueryResults(ctx context.Context, opts QueryOpts) ([]ResultEvent, error)
}

// utc normalizes the time bounds; timestamps are stored in UTC.
func (o QueryOpts) utc() QueryOpts {
	if !o.From.IsZero() {
		o.From = o.From.UTC()
	}
	if !o.To.IsZero() {
		o.To = o.To.UTC()
	}
	return o
}
