package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wordiz/internal/export"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/worksheet"
)

var worksheetsCmd = &cobra.Command{
	Use:     "worksheets",
	Aliases: []string{"ws"},
	Short:   "Manage saved worksheets",
}

var worksheetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved worksheets",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := store.WorksheetFilter{}
		if g, _ := cmd.Flags().GetString("grade"); g != "" {
			grade, err := worksheet.ParseGrade(g)
			if err != nil {
				return err
			}
			f.Grade = string(grade)
		}
		if s, _ := cmd.Flags().GetString("subject"); s != "" {
			subject, err := worksheet.ParseSubject(s)
			if err != nil {
				return err
			}
			f.Subject = string(subject)
		}
		f.Difficulty, _ = cmd.Flags().GetString("difficulty")
		f.Limit, _ = cmd.Flags().GetInt("limit")

		e, err := openEnv(cmd, zap.WarnLevel)
		if err != nil {
			return err
		}
		defer e.Close()

		list, err := e.library().List(cmd.Context(), e.user, f)
		if err != nil {
			return fmt.Errorf("list worksheets: %w", err)
		}
		if len(list) == 0 {
			fmt.Println("No saved worksheets. Use 'wordiz generate --save' to create one.")
			return nil
		}

		fmt.Printf("%-36s  %-16s  %-5s  %-20s  %-6s  %3s  %s\n",
			"ID", "Created", "Grade", "Subject", "Level", "Qs", "Title")
		fmt.Println(strings.Repeat("─", 110))
		for _, s := range list {
			title := s.Title
			if s.Fallback {
				title += " (offline)"
			}
			fmt.Printf("%-36s  %-16s  %-5s  %-20s  %-6s  %3d  %s\n",
				s.ID,
				s.CreatedAt.Local().Format("2006-01-02 15:04"),
				s.Grade,
				worksheet.Subject(s.Subject).DisplayName(),
				s.Difficulty,
				s.QuestionCount,
				title,
			)
		}
		return nil
	},
}

var worksheetsViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a saved worksheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, zap.WarnLevel)
		if err != nil {
			return err
		}
		defer e.Close()

		entry, err := e.library().Get(cmd.Context(), e.user, args[0])
		if err != nil {
			return lookupError(args[0], err)
		}
		answers, _ := cmd.Flags().GetBool("answers")
		r := entry.Request
		fmt.Printf("%s · %s · %s · %s\n\n", r.Grade.Label(), r.Subject.DisplayName(), r.Difficulty, strings.Join(r.TopicNames(), ", "))
		printWorksheet(os.Stdout, entry.Worksheet, answers)
		return nil
	},
}

var worksheetsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved worksheet and its attempts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, zap.WarnLevel)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.library().Delete(cmd.Context(), e.user, args[0]); err != nil {
			return lookupError(args[0], err)
		}
		fmt.Printf("Deleted worksheet %s\n", args[0])
		return nil
	},
}

var worksheetsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a saved worksheet as PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, zap.WarnLevel)
		if err != nil {
			return err
		}
		defer e.Close()

		entry, err := e.library().Get(cmd.Context(), e.user, args[0])
		if err != nil {
			return lookupError(args[0], err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = export.Filename(entry.Worksheet.Title)
		}
		answerKey := entry.Request.IncludeAnswerKey
		if cmd.Flags().Changed("answer-key") {
			answerKey, _ = cmd.Flags().GetBool("answer-key")
		}
		pageSize, _ := cmd.Flags().GetString("page-size")

		if err := writePDF(out, entry.Request, entry.Worksheet, answerKey, pageSize); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", out)
		return nil
	},
}

func lookupError(id string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("worksheet %s not found", id)
	}
	return err
}

func init() {
	worksheetsListCmd.Flags().String("grade", "", "Filter by grade")
	worksheetsListCmd.Flags().String("subject", "", "Filter by subject")
	worksheetsListCmd.Flags().String("difficulty", "", "Filter by difficulty")
	worksheetsListCmd.Flags().IntP("limit", "n", 20, "Number of worksheets to show")

	worksheetsViewCmd.Flags().Bool("answers", false, "Show the answer key")

	worksheetsExportCmd.Flags().StringP("out", "o", "", "Output path (default: derived from the title)")
	worksheetsExportCmd.Flags().Bool("answer-key", false, "Include the answer key (default: as generated)")
	worksheetsExportCmd.Flags().String("page-size", "A4", "Page size: A4 or Letter")

	worksheetsCmd.AddCommand(worksheetsListCmd)
	worksheetsCmd.AddCommand(worksheetsViewCmd)
	worksheetsCmd.AddCommand(worksheetsDeleteCmd)
	worksheetsCmd.AddCommand(worksheetsExportCmd)
}
