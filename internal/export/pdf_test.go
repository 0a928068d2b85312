package export

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordiz/internal/worksheet"
)

func testDocument(questions int) Document {
	ws := &worksheet.Worksheet{
		Title:        "Nouns Practice",
		Instructions: "Read each question carefully and choose the best answer.",
		AnswerKey:    map[string]string{},
	}
	types := worksheet.QuestionTypes
	for i := 0; i < questions; i++ {
		q := worksheet.Question{
			ID:            fmt.Sprint(i + 1),
			Type:          types[i%len(types)],
			Prompt:        fmt.Sprintf("Question %d about nouns and naming words?", i+1),
			CorrectAnswer: "table",
			Explanation:   "A table is a thing.",
		}
		if q.Type == worksheet.TypeMultipleChoice {
			q.Options = []string{"run", "table", "quickly", "blue"}
		}
		ws.Questions = append(ws.Questions, q)
		ws.AnswerKey[q.ID] = q.CorrectAnswer
	}
	return Document{
		Worksheet:        ws,
		Grade:            "5",
		Subject:          worksheet.SubjectGrammar,
		Difficulty:       worksheet.DifficultyEasy,
		Topics:           []string{"Nouns"},
		TimeLimitMinutes: 15,
	}
}

func pageCount(t *testing.T, b []byte) int {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	require.NoError(t, err)
	return r.NumPage()
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, testDocument(2), Options{}))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, 1, pageCount(t, buf.Bytes()))
}

func TestRenderPDF_AnswerKeyOnNewPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, testDocument(2), Options{AnswerKey: true}))
	assert.Equal(t, 2, pageCount(t, buf.Bytes()))
}

func TestRenderPDF_PageBreaks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, testDocument(20), Options{PageSize: "Letter"}))
	assert.Greater(t, pageCount(t, buf.Bytes()), 1)
}

func TestRenderPDF_NilWorksheet(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, RenderPDF(&buf, Document{}, Options{}))
}

func TestParsePageSize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "A4"},
		{"a4", "A4"},
		{"LETTER", "Letter"},
		{" Letter ", "Letter"},
	}
	for _, tt := range tests {
		got, err := ParsePageSize(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParsePageSize("Tabloid")
	assert.ErrorIs(t, err, ErrPageSize)

	var buf bytes.Buffer
	assert.ErrorIs(t, RenderPDF(&buf, testDocument(1), Options{PageSize: "B5"}), ErrPageSize)
	assert.Zero(t, buf.Len())
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "nouns_practice_grade_5.pdf", Filename("Nouns Practice: Grade 5!"))
	assert.Equal(t, "worksheet.pdf", Filename("???"))
}
