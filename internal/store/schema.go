package store

import (
	"github.com/abhisek/wordiz/ent/migrate"
)

var (
	tableWorksheets = migrate.WorksheetsTable.Name
	tableAttempts   = migrate.AttemptsTable.Name
	tableLLMEvents  = migrate.LlmRequestEventsTable.Name
)
