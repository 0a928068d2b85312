package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordiz/internal/topics"
	"github.com/abhisek/wordiz/internal/worksheet"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [grade]",
	Short: "List the topic catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, g := range topics.All() {
				fmt.Printf("%-14s  %2d grammar  %2d vocabulary  %2d reading\n",
					g.Grade.Label(), len(g.Grammar), len(g.Vocabulary), len(g.Reading))
			}
			fmt.Println("\nRun 'wordiz topics <grade>' for topic ids.")
			return nil
		}

		grade, err := worksheet.ParseGrade(args[0])
		if err != nil {
			return err
		}
		g, ok := topics.ForGrade(grade)
		if !ok {
			return fmt.Errorf("no topics for %s", grade.Label())
		}
		only, _ := cmd.Flags().GetString("subject")
		for _, s := range worksheet.Subjects {
			if only != "" {
				want, err := worksheet.ParseSubject(only)
				if err != nil {
					return err
				}
				if want != s {
					continue
				}
			}
			fmt.Printf("%s · %s\n", grade.Label(), s.DisplayName())
			for _, t := range g.Subject(s) {
				fmt.Printf("  %-28s  %s\n", t.ID, t.Name)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().StringP("subject", "s", "", "Only list one subject")
}
