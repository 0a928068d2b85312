package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/wordiz/internal/store"
)

const defaultUser = "local"

var rootCmd = &cobra.Command{
	Use:   "wordiz",
	Short: "AI English worksheets for K-12",
	Long:  "Wordiz generates English grammar, vocabulary and reading worksheets, lets students practice them in the terminal and tracks progress.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env file is normal; the environment may be set already.
		_ = godotenv.Load()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDIZ_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Student id for saved worksheets and attempts (overrides WORDIZ_USER env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(worksheetsCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORDIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser returns the student id from --user, WORDIZ_USER or the
// single-user default.
func resolveUser(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("WORDIZ_USER"); u != "" {
		return u
	}
	return defaultUser
}

// newLogger builds the process logger. Interactive commands only surface
// warnings unless --verbose is set; base is the level used otherwise.
func newLogger(cmd *cobra.Command, base zapcore.Level) (*zap.Logger, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(base)
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
