package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wordiz/internal/app"
	"github.com/abhisek/wordiz/internal/session"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <id>",
	Short: "Practice a saved worksheet in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, zap.WarnLevel)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		lib := e.library()
		entry, err := lib.Get(ctx, e.user, args[0])
		if err != nil {
			return lookupError(args[0], err)
		}

		opts := session.Options{
			ShowHints:    entry.Request.ShowHints,
			AllowRetries: entry.Request.AllowRetries,
		}
		if m := entry.Request.TimeLimitMinutes; m > 0 {
			opts.TimeLimit = time.Duration(m) * time.Minute
		}
		if untimed, _ := cmd.Flags().GetBool("untimed"); untimed {
			opts.TimeLimit = 0
		}

		run, err := app.Run(entry.ID, entry.Worksheet, opts)
		if err != nil {
			return err
		}
		answers := session.AnswerSnapshot(run.State)
		if run.Summary.Answered == 0 {
			fmt.Println("No answers given; nothing recorded.")
			return nil
		}

		fmt.Println("Grading...")
		res, err := e.grader(ctx).Grade(ctx, entry.Worksheet, answers, entry.Request.Difficulty)
		if err != nil {
			return fmt.Errorf("grade attempt: %w", err)
		}
		if _, err := lib.RecordAttempt(ctx, e.user, entry.ID, res, answers, run.Summary.Duration, run.Completed); err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}
		fmt.Println()
		printResult(os.Stdout, entry.Worksheet, res)
		return nil
	},
}

func init() {
	practiceCmd.Flags().Bool("untimed", false, "Ignore the worksheet time limit")
}
