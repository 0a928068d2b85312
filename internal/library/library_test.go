package library

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordiz/internal/grading"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/worksheet"
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func newTestLibrary(t *testing.T) (*Library, *testClock) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:lib_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clock := &testClock{now: time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)}
	return New(s.WorksheetRepo(), s.AttemptRepo(), WithClock(clock.Now)), clock
}

func testRequest(subject worksheet.Subject, grade worksheet.Grade, topics ...string) worksheet.Request {
	req := worksheet.Request{
		Grade:            grade,
		Subject:          subject,
		Difficulty:       worksheet.DifficultyMedium,
		QuestionTypes:    []worksheet.QuestionType{worksheet.TypeMultipleChoice},
		QuestionCount:    5,
		IncludeAnswerKey: true,
		ForceRefresh:     true,
	}
	for _, name := range topics {
		req.Topics = append(req.Topics, worksheet.Topic{ID: strings.ToLower(name), Name: name})
	}
	return req
}

func testSheet(title string) *worksheet.Worksheet {
	return &worksheet.Worksheet{
		Title:        title,
		Instructions: "Choose.",
		Questions: []worksheet.Question{
			{ID: "1", Type: worksheet.TypeMultipleChoice, Prompt: "Pick", Options: []string{"a", "b"}, CorrectAnswer: "a", Points: 2},
		},
		AnswerKey: map[string]string{"1": "a"},
	}
}

func result(score int) *grading.Result {
	return &grading.Result{
		Questions:    []grading.QuestionResult{{QuestionID: "1", Response: "a", Correct: score == 100, Points: 2}},
		EarnedPoints: float64(score) / 50,
		TotalPoints:  2,
		Score:        score,
		Answered:     1,
	}
}

func TestSaveGetListDelete(t *testing.T) {
	lib, _ := newTestLibrary(t)
	ctx := context.Background()

	req := testRequest(worksheet.SubjectGrammar, "5", "Nouns", "Verbs")
	entry, err := lib.Save(ctx, "kid", req, testSheet("Nouns and Verbs"))
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)
	assert.False(t, entry.Request.ForceRefresh, "force refresh is not persisted")

	got, err := lib.Get(ctx, "kid", entry.ID)
	require.NoError(t, err)
	assert.Equal(t, testSheet("Nouns and Verbs"), got.Worksheet)
	assert.Equal(t, req.Topics, got.Request.Topics)

	_, err = lib.Get(ctx, "someone-else", entry.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = lib.Save(ctx, "kid", testRequest(worksheet.SubjectVocabulary, "5", "Synonyms"), testSheet("Synonyms"))
	require.NoError(t, err)

	all, err := lib.List(ctx, "kid", store.WorksheetFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	grammar, err := lib.List(ctx, "kid", store.WorksheetFilter{Subject: "grammar"})
	require.NoError(t, err)
	require.Len(t, grammar, 1)
	assert.Equal(t, []string{"Nouns", "Verbs"}, grammar[0].Topics)
	assert.Equal(t, 1, grammar[0].QuestionCount)

	require.NoError(t, lib.Delete(ctx, "kid", entry.ID))
	_, err = lib.Get(ctx, "kid", entry.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecordAttempt(t *testing.T) {
	lib, _ := newTestLibrary(t)
	ctx := context.Background()

	entry, err := lib.Save(ctx, "kid", testRequest(worksheet.SubjectGrammar, "3", "Nouns"), testSheet("Nouns"))
	require.NoError(t, err)

	at, err := lib.RecordAttempt(ctx, "kid", entry.ID, result(100), map[string]string{"1": "a"}, 90*time.Second, true)
	require.NoError(t, err)
	assert.Equal(t, 100.0, at.Score)

	list, err := lib.Attempts(ctx, "kid", entry.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 90*time.Second, list[0].TimeSpent)
	require.NotNil(t, list[0].Result)
	assert.Equal(t, 100, list[0].Result.Score)
	assert.Equal(t, "a", list[0].Answers["1"])

	_, err = lib.RecordAttempt(ctx, "kid", "missing", result(50), nil, time.Minute, true)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = lib.RecordAttempt(ctx, "kid", entry.ID, nil, nil, time.Minute, true)
	assert.Error(t, err)
}

func TestAnalytics(t *testing.T) {
	lib, clock := newTestLibrary(t)
	ctx := context.Background()
	today := clock.now

	grammar, err := lib.Save(ctx, "kid", testRequest(worksheet.SubjectGrammar, "4", "Nouns", "Verbs"), testSheet("Grammar"))
	require.NoError(t, err)
	vocab, err := lib.Save(ctx, "kid", testRequest(worksheet.SubjectVocabulary, "5", "Synonyms"), testSheet("Vocab"))
	require.NoError(t, err)

	record := func(id string, score int, at time.Time) {
		t.Helper()
		clock.now = at
		_, err := lib.RecordAttempt(ctx, "kid", id, result(score), nil, time.Minute, true)
		require.NoError(t, err)
	}
	record(grammar.ID, 60, today.AddDate(0, 0, -3))
	record(grammar.ID, 80, today.AddDate(0, 0, -1))
	record(vocab.ID, 100, today.Add(-time.Hour))
	clock.now = today

	a, err := lib.Analytics(ctx, "kid")
	require.NoError(t, err)

	assert.Equal(t, 2, a.TotalWorksheets)
	assert.Equal(t, 3, a.TotalAttempts)
	assert.Equal(t, 3, a.CompletedAttempts)
	assert.InDelta(t, 80, a.AverageScore, 0.001)
	assert.Equal(t, 100.0, a.BestScore)
	assert.Equal(t, 3*time.Minute, a.TotalTimeSpent)
	assert.Equal(t, 2, a.StreakDays, "today and yesterday; the gap breaks it")

	require.Len(t, a.Subjects, 2)
	assert.Equal(t, Performance{Name: "grammar", Attempts: 2, AverageScore: 70, BestScore: 80}, a.Subjects[0])
	assert.Equal(t, "vocabulary", a.Subjects[1].Name)

	require.Len(t, a.Topics, 3)
	assert.Equal(t, "Nouns", a.Topics[0].Name)
	assert.Equal(t, "Verbs", a.Topics[1].Name)
	assert.Equal(t, "Synonyms", a.Topics[2].Name)

	require.Len(t, a.Grades, 2)
	assert.Equal(t, "4", a.Grades[0].Name)

	require.Len(t, a.Recent, 3)
	assert.Equal(t, "Vocab", a.Recent[0].Title, "newest first")
}

func TestAnalytics_Empty(t *testing.T) {
	lib, _ := newTestLibrary(t)
	a, err := lib.Analytics(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Zero(t, a.TotalAttempts)
	assert.Zero(t, a.StreakDays)
	assert.Empty(t, a.Recent)
	assert.NotNil(t, a.Topics)
}

func TestStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	at := func(daysAgo int) store.AttemptRecord {
		return store.AttemptRecord{CreatedAt: now.AddDate(0, 0, -daysAgo)}
	}

	assert.Equal(t, 0, streak(nil, now))
	assert.Equal(t, 3, streak([]store.AttemptRecord{at(0), at(1), at(2), at(4)}, now))
	assert.Equal(t, 2, streak([]store.AttemptRecord{at(1), at(2)}, now), "a streak ending yesterday still counts")
	assert.Equal(t, 0, streak([]store.AttemptRecord{at(2), at(3)}, now))
}
