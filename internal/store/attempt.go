package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var attemptColumns = []string{
	"id", "user_id", "worksheet_id", "score", "earned_points", "total_points",
	"answered", "total_questions", "time_spent_secs", "completed",
	"answers", "result", "created_at",
}

type attemptRepo struct {
	drv *entsql.Driver
}

func (r *attemptRepo) SaveAttempt(ctx context.Context, rec *AttemptRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	answers := rec.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	result := rec.Result
	if len(result) == 0 {
		result = json.RawMessage(`{}`)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableAttempts).
		Columns(attemptColumns...).
		Values(
			rec.ID, rec.UserID, rec.WorksheetID, rec.Score, rec.EarnedPoints, rec.TotalPoints,
			rec.Answered, rec.TotalQuestions, int64(rec.TimeSpent/time.Second), rec.Completed,
			string(answersJSON), string(result), rec.CreatedAt,
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) ListAttempts(ctx context.Context, userID string, limit int) ([]AttemptRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(attemptColumns...).
		From(b.Table(tableAttempts)).
		Where(entsql.EQ("user_id", userID)).
		OrderBy(entsql.Desc("created_at"), entsql.Desc("id"))
	if limit > 0 {
		sel.Limit(limit)
	}
	return r.scan(ctx, sel)
}

func (r *attemptRepo) WorksheetAttempts(ctx context.Context, userID, worksheetID string) ([]AttemptRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(attemptColumns...).
		From(b.Table(tableAttempts)).
		Where(entsql.And(entsql.EQ("user_id", userID), entsql.EQ("worksheet_id", worksheetID))).
		OrderBy(entsql.Desc("created_at"), entsql.Desc("id"))
	return r.scan(ctx, sel)
}

func (r *attemptRepo) scan(ctx context.Context, sel *entsql.Selector) ([]AttemptRecord, error) {
	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var (
			rec             AttemptRecord
			spent           int64
			answers, result string
		)
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.WorksheetID, &rec.Score, &rec.EarnedPoints, &rec.TotalPoints,
			&rec.Answered, &rec.TotalQuestions, &spent, &rec.Completed,
			&answers, &result, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
			return nil, fmt.Errorf("decode answers for %s: %w", rec.ID, err)
		}
		rec.Result = json.RawMessage(result)
		rec.TimeSpent = time.Duration(spent) * time.Second
		rec.CreatedAt = rec.CreatedAt.UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}
