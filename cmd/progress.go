package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wordiz/internal/library"
	"github.com/abhisek/wordiz/internal/worksheet"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show practice progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, zap.WarnLevel)
		if err != nil {
			return err
		}
		defer e.Close()

		a, err := e.library().Analytics(cmd.Context(), e.user)
		if err != nil {
			return fmt.Errorf("compute progress: %w", err)
		}
		if a.TotalAttempts == 0 {
			fmt.Printf("%d saved worksheets, no attempts yet. Try 'wordiz practice <id>'.\n", a.TotalWorksheets)
			return nil
		}

		sep := strings.Repeat("─", 60)
		fmt.Println("Overview")
		fmt.Println(sep)
		fmt.Printf("Worksheets:      %d\n", a.TotalWorksheets)
		fmt.Printf("Attempts:        %d (%d completed)\n", a.TotalAttempts, a.CompletedAttempts)
		fmt.Printf("Average score:   %.0f%%\n", a.AverageScore)
		fmt.Printf("Best score:      %.0f%%\n", a.BestScore)
		fmt.Printf("Time practiced:  %s\n", a.TotalTimeSpent.Round(time.Minute))
		fmt.Printf("Streak:          %d day(s)\n", a.StreakDays)

		printPerformance("By subject", a.Subjects, func(name string) string {
			return worksheet.Subject(name).DisplayName()
		})
		printPerformance("By grade", a.Grades, func(name string) string {
			return worksheet.Grade(name).Label()
		})
		printPerformance("By topic", a.Topics, nil)

		fmt.Println()
		fmt.Println("Recent activity")
		fmt.Println(sep)
		for _, r := range a.Recent {
			fmt.Printf("%-16s  %4.0f%%  %s\n", r.CompletedAt.Local().Format("2006-01-02 15:04"), r.Score, r.Title)
		}
		return nil
	},
}

func printPerformance(title string, rows []library.Performance, label func(string) string) {
	if len(rows) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(title)
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("%-32s  %8s  %8s  %8s\n", "", "Attempts", "Average", "Best")
	for _, p := range rows {
		name := p.Name
		if label != nil {
			name = label(name)
		}
		fmt.Printf("%-32s  %8d  %7.0f%%  %7.0f%%\n", truncate(name, 32), p.Attempts, p.AverageScore, p.BestScore)
	}
}
