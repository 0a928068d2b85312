package library

import (
	"context"
	"sort"
	"time"

	"github.com/abhisek/wordiz/internal/store"
)

// RecentLimit is the number of attempts reported as recent activity.
const RecentLimit = 10

// Performance aggregates attempt scores for one topic, subject or grade.
type Performance struct {
	Name         string  `json:"name"`
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"averageScore"`
	BestScore    float64 `json:"bestScore"`
}

// Activity is one entry of the recent activity list.
type Activity struct {
	AttemptID   string        `json:"attemptId"`
	WorksheetID string        `json:"worksheetId"`
	Title       string        `json:"title"`
	Subject     string        `json:"subjectType"`
	Score       float64       `json:"score"`
	TimeSpent   time.Duration `json:"timeSpent"`
	CompletedAt time.Time     `json:"completedAt"`
}

// Analytics summarizes a user's practice history.
type Analytics struct {
	TotalWorksheets   int           `json:"totalWorksheets"`
	TotalAttempts     int           `json:"totalAttempts"`
	CompletedAttempts int           `json:"completedAttempts"`
	AverageScore      float64       `json:"averageScore"`
	BestScore         float64       `json:"bestScore"`
	TotalTimeSpent    time.Duration `json:"totalTimeSpent"`

	// StreakDays counts consecutive days with an attempt, ending today or
	// yesterday.
	StreakDays int `json:"streakDays"`

	Topics   []Performance `json:"topics"`
	Subjects []Performance `json:"subjects"`
	Grades   []Performance `json:"grades"`
	Recent   []Activity    `json:"recent"`
}

type tally struct {
	count int
	sum   float64
	best  float64
}

func (t *tally) add(score float64) {
	t.count++
	t.sum += score
	if score > t.best {
		t.best = score
	}
}

func (t tally) performance(name string) Performance {
	p := Performance{Name: name, Attempts: t.count, BestScore: t.best}
	if t.count > 0 {
		p.AverageScore = t.sum / float64(t.count)
	}
	return p
}

// Analytics computes progress statistics for userID.
func (l *Library) Analytics(ctx context.Context, userID string) (*Analytics, error) {
	sheets, err := l.worksheets.ListWorksheets(ctx, userID, store.WorksheetFilter{})
	if err != nil {
		return nil, err
	}
	attempts, err := l.attempts.ListAttempts(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]store.WorksheetRecord, len(sheets))
	for _, s := range sheets {
		byID[s.ID] = s
	}

	a := &Analytics{
		TotalWorksheets: len(sheets),
		TotalAttempts:   len(attempts),
		Topics:          []Performance{},
		Subjects:        []Performance{},
		Grades:          []Performance{},
		Recent:          []Activity{},
	}

	var overall tally
	topics := map[string]*tally{}
	subjects := map[string]*tally{}
	grades := map[string]*tally{}
	bump := func(m map[string]*tally, key string, score float64) {
		if key == "" {
			return
		}
		t, ok := m[key]
		if !ok {
			t = &tally{}
			m[key] = t
		}
		t.add(score)
	}

	// Attempts arrive newest first.
	for _, at := range attempts {
		overall.add(at.Score)
		a.TotalTimeSpent += at.TimeSpent
		if at.Completed {
			a.CompletedAttempts++
		}

		ws := byID[at.WorksheetID]
		for _, topic := range ws.Topics {
			bump(topics, topic, at.Score)
		}
		bump(subjects, ws.Subject, at.Score)
		bump(grades, ws.Grade, at.Score)

		if len(a.Recent) < RecentLimit {
			a.Recent = append(a.Recent, Activity{
				AttemptID:   at.ID,
				WorksheetID: at.WorksheetID,
				Title:       ws.Title,
				Subject:     ws.Subject,
				Score:       at.Score,
				TimeSpent:   at.TimeSpent,
				CompletedAt: at.CreatedAt,
			})
		}
	}

	p := overall.performance("")
	a.AverageScore, a.BestScore = p.AverageScore, p.BestScore
	a.Topics = sortedPerformance(topics)
	a.Subjects = sortedPerformance(subjects)
	a.Grades = sortedPerformance(grades)
	a.StreakDays = streak(attempts, l.now())
	return a, nil
}

// sortedPerformance orders by attempts, then name.
func sortedPerformance(m map[string]*tally) []Performance {
	out := make([]Performance, 0, len(m))
	for name, t := range m {
		out = append(out, t.performance(name))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Attempts != out[j].Attempts {
			return out[i].Attempts > out[j].Attempts
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// streak counts consecutive calendar days with at least one attempt,
// ending today or yesterday.
func streak(attempts []store.AttemptRecord, now time.Time) int {
	const layout = "2006-01-02"
	loc := now.Location()
	days := map[string]bool{}
	for _, at := range attempts {
		days[at.CreatedAt.In(loc).Format(layout)] = true
	}

	cur := now
	if !days[cur.Format(layout)] {
		cur = cur.AddDate(0, 0, -1)
		if !days[cur.Format(layout)] {
			return 0
		}
	}
	n := 0
	for days[cur.Format(layout)] {
		n++
		cur = cur.AddDate(0, 0, -1)
	}
	return n
}
