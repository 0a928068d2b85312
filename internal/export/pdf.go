// Package export renders worksheets as printable PDF files.
package export

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/abhisek/wordiz/internal/worksheet"
)

// Document is a worksheet with the metadata printed in its header.
type Document struct {
	Worksheet  *worksheet.Worksheet
	Grade      worksheet.Grade
	Subject    worksheet.Subject
	Difficulty worksheet.Difficulty
	Topics     []string

	// TimeLimitMinutes is printed when positive.
	TimeLimitMinutes int
}

// Options controls rendering.
type Options struct {
	// AnswerKey appends the answers on a separate page.
	AnswerKey bool

	// PageSize is "A4" (default) or "Letter".
	PageSize string
}

// ErrPageSize is returned for page sizes other than A4 and Letter.
var ErrPageSize = errors.New("page size must be A4 or Letter")

// ParsePageSize normalizes a page size name. Empty means A4.
func ParsePageSize(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "a4":
		return "A4", nil
	case "letter":
		return "Letter", nil
	}
	return "", fmt.Errorf("%w: %q", ErrPageSize, s)
}

const (
	margin     = 20.0
	lineHeight = 6.0
)

// answerLines is the number of writing lines printed per open question.
var answerLines = map[worksheet.QuestionType]int{
	worksheet.TypeShortAnswer: 3,
	worksheet.TypeEssay:       8,
}

type renderer struct {
	pdf  *fpdf.Fpdf
	tr   func(string) string
	left float64
	wide float64
}

// RenderPDF writes doc as a PDF to w.
func RenderPDF(w io.Writer, doc Document, opts Options) error {
	if doc.Worksheet == nil {
		return fmt.Errorf("render pdf: nil worksheet")
	}
	size, err := ParsePageSize(opts.PageSize)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", size, "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(doc.Worksheet.Title, true)
	pdf.SetCreator("wordiz", false)

	pageW, _ := pdf.GetPageSize()
	r := &renderer{
		pdf:  pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		left: margin,
		wide: pageW - 2*margin,
	}

	pdf.AddPage()
	r.header(doc)
	r.studentInfo()
	r.instructions(doc.Worksheet.Instructions)
	r.questions(doc.Worksheet.Questions)

	if opts.AnswerKey {
		pdf.AddPage()
		r.answerKey(doc.Worksheet)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func (r *renderer) header(doc Document) {
	p := r.pdf
	p.SetFont("Helvetica", "B", 18)
	p.MultiCell(r.wide, 9, r.tr(doc.Worksheet.Title), "", "C", false)
	p.Ln(3)

	p.SetFont("Helvetica", "", 11)
	third := r.wide / 3
	p.CellFormat(third, lineHeight, r.tr("Grade: "+doc.Grade.Label()), "", 0, "L", false, 0, "")
	p.CellFormat(third, lineHeight, r.tr(doc.Subject.DisplayName()), "", 0, "C", false, 0, "")
	p.CellFormat(third, lineHeight, r.tr("Difficulty: "+titleCase(string(doc.Difficulty))), "", 1, "R", false, 0, "")

	if len(doc.Topics) > 0 {
		p.SetFont("Helvetica", "", 10)
		p.MultiCell(r.wide, 5, r.tr("Topics: "+strings.Join(doc.Topics, ", ")), "", "L", false)
	}
	if doc.TimeLimitMinutes > 0 {
		p.SetFont("Helvetica", "", 10)
		p.CellFormat(r.wide, 5, fmt.Sprintf("Time limit: %d minutes", doc.TimeLimitMinutes), "", 1, "L", false, 0, "")
	}

	p.Ln(3)
	r.rule()
	p.Ln(6)
}

func (r *renderer) studentInfo() {
	p := r.pdf
	p.SetFont("Helvetica", "", 12)
	half := r.wide / 2
	y := p.GetY() + lineHeight

	p.CellFormat(15, lineHeight, "Name:", "", 0, "L", false, 0, "")
	p.Line(r.left+16, y, r.left+half-8, y)
	p.SetX(r.left + half)
	p.CellFormat(12, lineHeight, "Date:", "", 1, "L", false, 0, "")
	p.Line(r.left+half+13, y, r.left+r.wide, y)
	p.Ln(8)
}

func (r *renderer) instructions(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	p := r.pdf
	p.SetFont("Helvetica", "B", 11)
	p.CellFormat(r.wide, lineHeight, "Instructions:", "", 1, "L", false, 0, "")
	p.SetFont("Helvetica", "", 11)
	p.MultiCell(r.wide, 5, r.tr(text), "", "L", false)
	p.Ln(6)
}

func (r *renderer) questions(qs []worksheet.Question) {
	p := r.pdf
	for i, q := range qs {
		r.keepSpace(30)

		p.SetFont("Helvetica", "B", 11)
		p.CellFormat(10, lineHeight, fmt.Sprintf("%d.", i+1), "", 0, "L", false, 0, "")
		p.SetFont("Helvetica", "", 11)
		p.MultiCell(r.wide-10, lineHeight, r.tr(q.Prompt), "", "L", false)
		p.Ln(2)

		switch q.Type {
		case worksheet.TypeMultipleChoice:
			for j, o := range q.Options {
				p.SetX(r.left + 10)
				p.MultiCell(r.wide-10, lineHeight, r.tr(fmt.Sprintf("%s) %s", worksheet.OptionLetter(j), o)), "", "L", false)
			}
		case worksheet.TypeFillBlank:
			r.writingLines(1)
		default:
			n, ok := answerLines[q.Type]
			if !ok {
				n = 2
			}
			r.writingLines(n)
		}
		p.Ln(5)
	}
}

func (r *renderer) writingLines(n int) {
	p := r.pdf
	for i := 0; i < n; i++ {
		r.keepSpace(8)
		p.Ln(8)
		y := p.GetY()
		p.Line(r.left+10, y, r.left+r.wide, y)
	}
	p.Ln(2)
}

func (r *renderer) answerKey(ws *worksheet.Worksheet) {
	p := r.pdf
	p.SetFont("Helvetica", "B", 16)
	p.CellFormat(r.wide, 10, "Answer Key", "", 1, "C", false, 0, "")
	p.Ln(4)

	for i, q := range ws.Questions {
		answer := q.CorrectAnswer
		if a, ok := ws.AnswerKey[q.ID]; ok && a != "" {
			answer = a
		}
		if answer == "" {
			answer = "Answers will vary."
		}
		if q.Type == worksheet.TypeEssay {
			answer = "Evaluation criteria: " + answer
		}

		p.SetFont("Helvetica", "B", 11)
		p.CellFormat(10, lineHeight, fmt.Sprintf("%d.", i+1), "", 0, "L", false, 0, "")
		p.SetFont("Helvetica", "", 11)
		p.MultiCell(r.wide-10, lineHeight, r.tr(answer), "", "L", false)
		if q.Explanation != "" {
			p.SetX(r.left + 10)
			p.SetFont("Helvetica", "I", 9)
			p.MultiCell(r.wide-10, 5, r.tr(q.Explanation), "", "L", false)
		}
		p.Ln(2)
	}
}

func (r *renderer) rule() {
	y := r.pdf.GetY()
	r.pdf.Line(r.left, y, r.left+r.wide, y)
}

// keepSpace starts a new page when less than h mm remain.
func (r *renderer) keepSpace(h float64) {
	_, pageH := r.pdf.GetPageSize()
	if r.pdf.GetY()+h > pageH-margin {
		r.pdf.AddPage()
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var unsafeName = regexp.MustCompile(`[^a-z0-9]+`)

// Filename derives a download name from the worksheet title.
func Filename(title string) string {
	name := strings.Trim(unsafeName.ReplaceAllString(strings.ToLower(title), "_"), "_")
	if name == "" {
		name = "worksheet"
	}
	return name + ".pdf"
}
