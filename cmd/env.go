package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/wordiz/internal/grading"
	"github.com/abhisek/wordiz/internal/library"
	"github.com/abhisek/wordiz/internal/llm"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/worksheet"
)

// env bundles what most commands need: the store, a logger and the
// student id.
type env struct {
	store  *store.Store
	logger *zap.Logger
	user   string
}

func openEnv(cmd *cobra.Command, level zapcore.Level) (*env, error) {
	logger, err := newLogger(cmd, level)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug("database opened", zap.String("path", dbPath))
	return &env{store: st, logger: logger, user: resolveUser(cmd)}, nil
}

func (e *env) Close() {
	_ = e.logger.Sync()
	e.store.Close()
}

func (e *env) library() *library.Library {
	return library.New(e.store.WorksheetRepo(), e.store.AttemptRepo(), library.WithLogger(e.logger))
}

// provider builds the configured LLM provider. A missing API key returns
// *llm.ErrConfig.
func (e *env) provider(ctx context.Context) (llm.Provider, error) {
	return llm.NewProviderFromEnv(ctx, e.store.EventRepo(), e.logger)
}

// grader returns a grader backed by the provider when one is configured.
// Without one, open answers are scored by the keyword heuristic.
func (e *env) grader(ctx context.Context) *grading.Grader {
	p, err := e.provider(ctx)
	if err != nil {
		e.logger.Warn("LLM provider unavailable for grading", zap.Error(err))
		return grading.NewGrader(nil, grading.WithLogger(e.logger))
	}
	return grading.NewGrader(p, grading.WithLogger(e.logger))
}

// unconfigured is the generator served when no provider is configured;
// every request reports the configuration error.
type unconfigured struct {
	err error
}

func (u unconfigured) Generate(context.Context, worksheet.Request) (*worksheet.Worksheet, error) {
	return nil, u.err
}
