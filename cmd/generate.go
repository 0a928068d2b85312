package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wordiz/internal/export"
	"github.com/abhisek/wordiz/internal/topics"
	"github.com/abhisek/wordiz/internal/worksheet"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a worksheet",
	Example: `  wordiz generate --grade 5 --subject grammar --topics nouns --count 10
  wordiz generate --grade 3 --subject vocabulary --topics synonyms,antonyms --types multiple-choice,fill-blank --save --pdf out.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := requestFromFlags(cmd)
		if err != nil {
			return err
		}
		pageSize, _ := cmd.Flags().GetString("page-size")
		if _, err := export.ParsePageSize(pageSize); err != nil {
			return err
		}

		e, err := openEnv(cmd, zap.WarnLevel)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		provider, err := e.provider(ctx)
		if err != nil {
			return err
		}
		gen := worksheet.New(provider, worksheet.DefaultConfig(), worksheet.WithLogger(e.logger))

		ws, err := gen.Generate(ctx, req)
		if err != nil {
			return err
		}
		if ws.Fallback {
			fmt.Fprintln(os.Stderr, "Note: the AI service was unavailable, using offline content.")
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			entry, err := e.library().Save(ctx, e.user, req, ws)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved worksheet %s\n", entry.ID)
		}

		if path, _ := cmd.Flags().GetString("pdf"); path != "" {
			if err := writePDF(path, req, ws, req.IncludeAnswerKey, pageSize); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(ws)
		}
		printWorksheet(os.Stdout, ws, req.IncludeAnswerKey)
		return nil
	},
}

// requestFromFlags validates the generate flags into a request.
func requestFromFlags(cmd *cobra.Command) (worksheet.Request, error) {
	f := cmd.Flags()
	gradeStr, _ := f.GetString("grade")
	subjectStr, _ := f.GetString("subject")
	topicIDs, _ := f.GetStringSlice("topics")
	difficultyStr, _ := f.GetString("difficulty")
	typeNames, _ := f.GetStringSlice("types")

	var req worksheet.Request
	var err error
	if req.Grade, err = worksheet.ParseGrade(gradeStr); err != nil {
		return req, err
	}
	if req.Subject, err = worksheet.ParseSubject(subjectStr); err != nil {
		return req, err
	}
	if req.Difficulty, err = worksheet.ParseDifficulty(difficultyStr); err != nil {
		return req, err
	}
	if req.Topics, err = topics.Lookup(req.Grade, req.Subject, topicIDs); err != nil {
		return req, err
	}
	for _, name := range typeNames {
		qt, ok := worksheet.ParseQuestionType(name)
		if !ok {
			return req, fmt.Errorf("invalid question type %q", name)
		}
		req.QuestionTypes = append(req.QuestionTypes, qt)
	}
	req.QuestionCount, _ = f.GetInt("count")
	req.IncludeAnswerKey, _ = f.GetBool("answer-key")
	req.TimeLimitMinutes, _ = f.GetInt("time-limit")
	req.ShowHints, _ = f.GetBool("hints")
	req.AllowRetries, _ = f.GetBool("retries")
	req.ForceRefresh, _ = f.GetBool("force-refresh")
	return req, req.Validate()
}

func init() {
	f := generateCmd.Flags()
	f.StringP("grade", "g", "", "Grade: K or 1-12")
	f.StringP("subject", "s", "grammar", "Subject: grammar, vocabulary or reading")
	f.StringSliceP("topics", "t", nil, "Topic ids (see 'wordiz topics <grade>')")
	f.StringP("difficulty", "d", "medium", "Difficulty: easy, medium or hard")
	f.StringSlice("types", []string{"multiple-choice", "fill-blank", "short-answer"}, "Question types: multiple-choice, fill-blank, short-answer, essay")
	f.IntP("count", "n", 10, "Number of questions (3-20)")
	f.Bool("answer-key", true, "Include the answer key")
	f.Int("time-limit", 0, "Time limit in minutes (0 for the default)")
	f.Bool("hints", false, "Show hints during practice")
	f.Bool("retries", false, "Allow retries during practice")
	f.Bool("force-refresh", false, "Bypass the worksheet cache")
	f.Bool("save", false, "Save the worksheet to the library")
	f.String("pdf", "", "Also write a PDF to this path")
	f.String("page-size", "A4", "PDF page size: A4 or Letter")
	f.Bool("json", false, "Print the worksheet as JSON")
	_ = generateCmd.MarkFlagRequired("grade")
	_ = generateCmd.MarkFlagRequired("topics")
}
