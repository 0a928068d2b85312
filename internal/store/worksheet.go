package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var worksheetColumns = []string{
	"id", "user_id", "title", "grade", "subject", "difficulty", "topics",
	"question_count", "fallback", "content", "created_at", "updated_at",
}

type worksheetRepo struct {
	drv *entsql.Driver
}

func (r *worksheetRepo) SaveWorksheet(ctx context.Context, rec *WorksheetRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = now

	topics, err := json.Marshal(nonNilStrings(rec.Topics))
	if err != nil {
		return fmt.Errorf("marshal topics: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableWorksheets).
		Columns(worksheetColumns...).
		Values(
			rec.ID, rec.UserID, rec.Title, rec.Grade, rec.Subject, rec.Difficulty, string(topics),
			rec.QuestionCount, rec.Fallback, string(rec.Content),
			rec.CreatedAt, rec.UpdatedAt,
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save worksheet: %w", err)
	}
	return nil
}

func (r *worksheetRepo) GetWorksheet(ctx context.Context, userID, id string) (*WorksheetRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(worksheetColumns...).
		From(b.Table(tableWorksheets)).
		Where(entsql.And(entsql.EQ("id", id), entsql.EQ("user_id", userID)))

	recs, err := r.scan(ctx, sel)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNotFound
	}
	return &recs[0], nil
}

func (r *worksheetRepo) ListWorksheets(ctx context.Context, userID string, f WorksheetFilter) ([]WorksheetRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(worksheetColumns...).
		From(b.Table(tableWorksheets)).
		Where(entsql.EQ("user_id", userID)).
		OrderBy(entsql.Desc("created_at"), entsql.Desc("id"))

	if f.Grade != "" {
		sel.Where(entsql.EQ("grade", f.Grade))
	}
	if f.Subject != "" {
		sel.Where(entsql.EQ("subject", f.Subject))
	}
	if f.Difficulty != "" {
		sel.Where(entsql.EQ("difficulty", f.Difficulty))
	}
	if f.Limit > 0 {
		sel.Limit(f.Limit)
	}

	return r.scan(ctx, sel)
}

func (r *worksheetRepo) DeleteWorksheet(ctx context.Context, userID, id string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(tableWorksheets).
		Where(entsql.And(entsql.EQ("id", id), entsql.EQ("user_id", userID))).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("delete worksheet: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete worksheet: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *worksheetRepo) scan(ctx context.Context, sel *entsql.Selector) ([]WorksheetRecord, error) {
	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query worksheets: %w", err)
	}
	defer rows.Close()

	var out []WorksheetRecord
	for rows.Next() {
		var (
			rec             WorksheetRecord
			topics, content string
		)
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Title, &rec.Grade, &rec.Subject, &rec.Difficulty, &topics,
			&rec.QuestionCount, &rec.Fallback, &content, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan worksheet: %w", err)
		}
		if err := json.Unmarshal([]byte(topics), &rec.Topics); err != nil {
			return nil, fmt.Errorf("decode topics for %s: %w", rec.ID, err)
		}
		rec.Content = json.RawMessage(content)
		rec.CreatedAt = rec.CreatedAt.UTC()
		rec.UpdatedAt = rec.UpdatedAt.UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
