package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/wordiz/internal/export"
	"github.com/abhisek/wordiz/internal/grading"
	"github.com/abhisek/wordiz/internal/worksheet"
)

// printWorksheet writes a plain-text rendering of ws.
func printWorksheet(w io.Writer, ws *worksheet.Worksheet, answers bool) {
	fmt.Fprintln(w, ws.Title)
	fmt.Fprintln(w, strings.Repeat("─", min(len(ws.Title), 72)))
	if ws.Instructions != "" {
		fmt.Fprintln(w, ws.Instructions)
	}
	fmt.Fprintln(w)

	for i, q := range ws.Questions {
		fmt.Fprintf(w, "%d. %s  (%d pts)\n", i+1, q.Prompt, q.Points)
		for j, opt := range q.Options {
			fmt.Fprintf(w, "   %s) %s\n", worksheet.OptionLetter(j), opt)
		}
		fmt.Fprintln(w)
	}

	if !answers || len(ws.AnswerKey) == 0 {
		return
	}
	fmt.Fprintln(w, "Answer Key")
	fmt.Fprintln(w, strings.Repeat("─", 10))
	for i, q := range ws.Questions {
		if a, ok := ws.AnswerKey[q.ID]; ok {
			fmt.Fprintf(w, "%d. %s\n", i+1, a)
		}
	}
}

// printResult writes the graded outcome of an attempt.
func printResult(w io.Writer, ws *worksheet.Worksheet, res *grading.Result) {
	fmt.Fprintf(w, "Score: %d%%  (%.1f / %d points)\n\n", res.Score, res.EarnedPoints, res.TotalPoints)
	for i, q := range ws.Questions {
		r, ok := res.Question(q.ID)
		if !ok {
			continue
		}
		mark := "✗"
		switch {
		case r.Correct:
			mark = "✓"
		case r.Credit > 0:
			mark = "~"
		}
		fmt.Fprintf(w, "%s %d. %s\n", mark, i+1, q.Prompt)
		if r.Response != "" {
			fmt.Fprintf(w, "     Your answer: %s\n", r.Response)
		}
		if r.Feedback != "" {
			fmt.Fprintf(w, "     %s\n", r.Feedback)
		}
	}
	if res.OverallFeedback != "" {
		fmt.Fprintf(w, "\n%s\n", res.OverallFeedback)
	}
}

func writePDF(path string, req worksheet.Request, ws *worksheet.Worksheet, answerKey bool, pageSize string) error {
	pageSize, err := export.ParsePageSize(pageSize)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pdf: %w", err)
	}
	doc := export.Document{
		Worksheet:        ws,
		Grade:            req.Grade,
		Subject:          req.Subject,
		Difficulty:       req.Difficulty,
		Topics:           req.TopicNames(),
		TimeLimitMinutes: req.TimeLimitMinutes,
	}
	if err := export.RenderPDF(f, doc, export.Options{AnswerKey: answerKey, PageSize: pageSize}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
