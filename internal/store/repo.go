package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match
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

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// UsageStat aggregates LLM calls for one purpose.
type UsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records and reads LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one event or ErrNotFound.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// WorksheetRecord is a saved worksheet. Content holds the serialized
// request and worksheet; the other fields are denormalized for listing.
type WorksheetRecord struct {
	ID            string
	UserID        string
	Title         string
	Grade         string
	Subject       string
	Difficulty    string
	Topics        []string
	QuestionCount int
	Fallback      bool
	Content       json.RawMessage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WorksheetFilter narrows ListWorksheets. Empty fields match everything.
type WorksheetFilter struct {
	Grade      string
	Subject    string
	Difficulty string
	Limit      int
}

// WorksheetRepo stores worksheets per user.
type WorksheetRepo interface {
	// SaveWorksheet inserts rec, assigning ID and timestamps when unset.
	SaveWorksheet(ctx context.Context, rec *WorksheetRecord) error

	// GetWorksheet returns the user's worksheet or ErrNotFound.
	GetWorksheet(ctx context.Context, userID, id string) (*WorksheetRecord, error)

	// ListWorksheets returns the user's worksheets, newest first.
	ListWorksheets(ctx context.Context, userID string, f WorksheetFilter) ([]WorksheetRecord, error)

	// DeleteWorksheet removes the worksheet and its attempts, or returns ErrNotFound.
	DeleteWorksheet(ctx context.Context, userID, id string) error
}

// AttemptRecord is one graded practice attempt of a worksheet.
type AttemptRecord struct {
	ID             string
	UserID         string
	WorksheetID    string
	Score          float64 // 0-100
	EarnedPoints   float64
	TotalPoints    float64
	Answered       int
	TotalQuestions int
	TimeSpent      time.Duration
	Completed      bool
	Answers        map[string]string
	Result         json.RawMessage
	CreatedAt      time.Time
}

// AttemptRepo stores practice attempts per user.
type AttemptRepo interface {
	// SaveAttempt inserts rec, assigning ID and CreatedAt when unset.
	SaveAttempt(ctx context.Context, rec *AttemptRecord) error

	// ListAttempts returns the user's attempts, newest first. limit 0 = all.
	ListAttempts(ctx context.Context, userID string, limit int) ([]AttemptRecord, error)

	// WorksheetAttempts returns attempts for one worksheet, newest first.
	WorksheetAttempts(ctx context.Context, userID, worksheetID string) ([]AttemptRecord, error)
}
