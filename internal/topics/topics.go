// Package topics is the K-12 English topic catalog used to build
// worksheet requests.
package topics

import (
	"fmt"
	"strings"

	"github.com/abhisek/wordiz/internal/worksheet"
)

// Topic is a catalog entry.
type Topic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Ref converts the entry to the form carried by a worksheet request.
func (t Topic) Ref() worksheet.Topic {
	return worksheet.Topic{ID: t.ID, Name: t.Name}
}

// GradeTopics holds every subject's topics for one grade.
type GradeTopics struct {
	Grade      worksheet.Grade `json:"grade"`
	Grammar    []Topic         `json:"grammar"`
	Vocabulary []Topic         `json:"vocabulary"`
	Reading    []Topic         `json:"readingComprehension"`
}

// Subject returns the topics for s.
func (g GradeTopics) Subject(s worksheet.Subject) []Topic {
	switch s {
	case worksheet.SubjectGrammar:
		return g.Grammar
	case worksheet.SubjectVocabulary:
		return g.Vocabulary
	case worksheet.SubjectReading:
		return g.Reading
	}
	return nil
}

var byGrade map[worksheet.Grade]int

func init() {
	if err := validateCatalog(catalog); err != nil {
		panic(fmt.Sprintf("topics: invalid catalog: %v", err))
	}
	byGrade = make(map[worksheet.Grade]int, len(catalog))
	for i, g := range catalog {
		byGrade[g.Grade] = i
	}
}

// Grades returns every grade in order, K first.
func Grades() []worksheet.Grade {
	out := make([]worksheet.Grade, len(catalog))
	for i, g := range catalog {
		out[i] = g.Grade
	}
	return out
}

// All returns the whole catalog.
func All() []GradeTopics {
	return append([]GradeTopics(nil), catalog...)
}

// ForGrade returns the topics for grade.
func ForGrade(grade worksheet.Grade) (GradeTopics, bool) {
	i, ok := byGrade[grade]
	if !ok {
		return GradeTopics{}, false
	}
	return catalog[i], true
}

// ForSubject returns the topics for one grade and subject, or nil.
func ForSubject(grade worksheet.Grade, subject worksheet.Subject) []Topic {
	g, ok := ForGrade(grade)
	if !ok {
		return nil
	}
	return g.Subject(subject)
}

// Lookup resolves topic ids for a grade and subject, keeping the given
// order. Every id must exist.
func Lookup(grade worksheet.Grade, subject worksheet.Subject, ids []string) ([]worksheet.Topic, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("no topics selected")
	}
	available := ForSubject(grade, subject)
	if available == nil {
		return nil, fmt.Errorf("no %s topics for grade %s", subject, grade)
	}

	out := make([]worksheet.Topic, 0, len(ids))
	var unknown []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		found := false
		for _, t := range available {
			if t.ID == id {
				out = append(out, t.Ref())
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown %s topic(s) for grade %s: %s", subject, grade, strings.Join(unknown, ", "))
	}
	return out, nil
}

// validateCatalog checks grades, ids and names. Returns a combined error
// describing all problems found, or nil if valid.
func validateCatalog(c []GradeTopics) error {
	var errs []string
	seenGrade := map[worksheet.Grade]bool{}

	for _, g := range c {
		if _, err := worksheet.ParseGrade(string(g.Grade)); err != nil {
			errs = append(errs, err.Error())
		}
		if seenGrade[g.Grade] {
			errs = append(errs, fmt.Sprintf("duplicate grade %q", g.Grade))
		}
		seenGrade[g.Grade] = true

		for _, s := range worksheet.Subjects {
			list := g.Subject(s)
			if len(list) == 0 {
				errs = append(errs, fmt.Sprintf("grade %s has no %s topics", g.Grade, s))
			}
			ids := map[string]bool{}
			for _, t := range list {
				if t.ID == "" || t.Name == "" {
					errs = append(errs, fmt.Sprintf("grade %s %s: topic with empty id or name", g.Grade, s))
				}
				if ids[t.ID] {
					errs = append(errs, fmt.Sprintf("grade %s %s: duplicate topic id %q", g.Grade, s, t.ID))
				}
				ids[t.ID] = true
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
