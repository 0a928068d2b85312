package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "earned_points", Type: field.TypeFloat64, Default: 0},
		{Name: "total_points", Type: field.TypeFloat64, Default: 0},
		{Name: "answered", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "time_spent_secs", Type: field.TypeInt64, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "result", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "worksheet_id", Type: field.TypeString},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempts_worksheets_attempts",
				Columns:    []*schema.Column{AttemptsColumns[12]},
				RefColumns: []*schema.Column{WorksheetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[11]},
			},
			{
				Name:    "attempt_worksheet_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[12]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// WorksheetsColumns holds the columns for the "worksheets" table.
	WorksheetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "topics", Type: field.TypeJSON},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "fallback", Type: field.TypeBool, Default: false},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorksheetsTable holds the schema information for the "worksheets" table.
	WorksheetsTable = &schema.Table{
		Name:       "worksheets",
		Columns:    WorksheetsColumns,
		PrimaryKey: []*schema.Column{WorksheetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "worksheet_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorksheetsColumns[1], WorksheetsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		LlmRequestEventsTable,
		WorksheetsTable,
	}
)

func init() {
	AttemptsTable.ForeignKeys[0].RefTable = WorksheetsTable
}
