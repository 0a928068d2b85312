package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordiz/internal/worksheet"
)

func TestCatalogIsValid(t *testing.T) {
	require.NoError(t, validateCatalog(catalog))
}

func TestGrades(t *testing.T) {
	grades := Grades()
	require.Len(t, grades, 13)
	assert.Equal(t, worksheet.Grade("K"), grades[0])
	assert.Equal(t, worksheet.Grade("12"), grades[12])
}

func TestForGrade(t *testing.T) {
	g, ok := ForGrade("1")
	require.True(t, ok)
	assert.NotEmpty(t, g.Grammar)
	assert.NotEmpty(t, g.Vocabulary)
	assert.NotEmpty(t, g.Reading)

	_, ok = ForGrade("13")
	assert.False(t, ok)
}

func TestForSubject(t *testing.T) {
	list := ForSubject("1", worksheet.SubjectGrammar)
	require.NotEmpty(t, list)
	assert.Equal(t, "nouns", list[0].ID)
	assert.Equal(t, "Nouns", list[0].Name)

	assert.Nil(t, ForSubject("1", "math"))
	assert.Nil(t, ForSubject("0", worksheet.SubjectGrammar))
}

func TestLookup(t *testing.T) {
	got, err := Lookup("1", worksheet.SubjectGrammar, []string{"verbs", "nouns"})
	require.NoError(t, err)
	assert.Equal(t, []worksheet.Topic{
		{ID: "verbs", Name: "Action Verbs"},
		{ID: "nouns", Name: "Nouns"},
	}, got)

	_, err = Lookup("1", worksheet.SubjectGrammar, []string{"nouns", "calculus"})
	assert.ErrorContains(t, err, "calculus")

	_, err = Lookup("1", worksheet.SubjectGrammar, nil)
	assert.Error(t, err)

	_, err = Lookup("42", worksheet.SubjectGrammar, []string{"nouns"})
	assert.Error(t, err)
}

func TestValidateCatalog_ReportsProblems(t *testing.T) {
	bad := []GradeTopics{
		{
			Grade:      "1",
			Grammar:    []Topic{{ID: "a", Name: "A"}, {ID: "a", Name: "Again"}},
			Vocabulary: []Topic{{ID: "", Name: "Nameless"}},
		},
		{Grade: "1"},
	}
	err := validateCatalog(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate topic id "a"`)
	assert.Contains(t, err.Error(), "empty id or name")
	assert.Contains(t, err.Error(), "no readingComprehension topics")
	assert.Contains(t, err.Error(), `duplicate grade "1"`)
}
