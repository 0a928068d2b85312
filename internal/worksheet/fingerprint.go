package worksheet

import (
	"encoding/json"
	"sort"
)

type fingerprintTopic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type fingerprintFields struct {
	Grade            Grade              `json:"grade"`
	Subject          Subject            `json:"subjectType"`
	Topics           []fingerprintTopic `json:"topics"`
	Difficulty       Difficulty         `json:"difficulty"`
	QuestionTypes    []string           `json:"questionTypes"`
	QuestionCount    int                `json:"questionCount"`
	IncludeAnswerKey bool               `json:"includeAnswerKey"`
	TimeLimitMinutes int                `json:"timeLimit"`
	ShowHints        bool               `json:"showHints"`
	AllowRetries     bool               `json:"allowRetries"`
}

// Fingerprint is the cache key for req: every field except ForceRefresh.
// Topics are sorted and question types canonicalized, so selection order
// and type aliases do not matter.
func Fingerprint(req Request) string {
	topics := make([]fingerprintTopic, len(req.Topics))
	for i, t := range req.Topics {
		topics[i] = fingerprintTopic{ID: t.ID, Name: t.Name}
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].ID != topics[j].ID {
			return topics[i].ID < topics[j].ID
		}
		return topics[i].Name < topics[j].Name
	})

	allowed := req.AllowedTypes()
	types := make([]string, len(allowed))
	for i, t := range allowed {
		types[i] = string(t)
	}

	out, err := json.Marshal(fingerprintFields{
		Grade:            req.Grade,
		Subject:          req.Subject,
		Topics:           topics,
		Difficulty:       req.Difficulty,
		QuestionTypes:    types,
		QuestionCount:    req.QuestionCount,
		IncludeAnswerKey: req.IncludeAnswerKey,
		TimeLimitMinutes: req.TimeLimitMinutes,
		ShowHints:        req.ShowHints,
		AllowRetries:     req.AllowRetries,
	})
	if err != nil {
		// Only plain strings, ints and bools; cannot fail.
		panic(err)
	}
	return string(out)
}
