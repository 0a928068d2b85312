package worksheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/abhisek/wordiz/internal/llm"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LLMGenerator implements Generator using an LLM provider, a TTL cache
// and a bounded retry loop that degrades to Fallback.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	cache    *Cache
	logger   *zap.Logger
	sleep    SleepFunc
	inflight singleflight.Group
}

// Option configures an LLMGenerator.
type Option func(*LLMGenerator)

// WithCache shares an existing cache.
func WithCache(c *Cache) Option {
	return func(g *LLMGenerator) { g.cache = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *LLMGenerator) { g.logger = l }
}

// WithSleep replaces the backoff wait, for tests.
func WithSleep(fn SleepFunc) Option {
	return func(g *LLMGenerator) { g.sleep = fn }
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config, opts ...Option) *LLMGenerator {
	g := &LLMGenerator{
		provider: provider,
		config:   cfg,
		logger:   zap.NewNop(),
		sleep:    sleepContext,
	}
	for _, o := range opts {
		o(g)
	}
	if g.cache == nil {
		g.cache = NewCache(cfg.CacheTTL)
	}
	return g
}

// Cache returns the generator's cache.
func (g *LLMGenerator) Cache() *Cache { return g.cache }

// Generate returns a worksheet for req. Cached results are served unless
// req.ForceRefresh is set. Concurrent calls for the same fingerprint
// share one pipeline run.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) (*Worksheet, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeWorksheet)
	key := Fingerprint(req)

	if req.ForceRefresh {
		return g.run(ctx, key, req)
	}

	if ws, ok := g.cache.Get(key); ok {
		g.logger.Debug("worksheet cache hit", zap.String("fingerprint", key))
		return ws, nil
	}

	v, err, shared := g.inflight.Do(key, func() (any, error) {
		if ws, ok := g.cache.Get(key); ok {
			return ws, nil
		}
		return g.run(ctx, key, req)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		g.logger.Debug("joined in-flight generation", zap.String("fingerprint", key))
	}
	return v.(*Worksheet).Clone(), nil
}

func (g *LLMGenerator) run(ctx context.Context, key string, req Request) (*Worksheet, error) {
	effective := g.config.clamp(req)
	prompt := BuildPrompt(effective)
	maxAttempts := g.config.Retry.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if ctx.Err() != nil {
			lastErr = ctx.Err()
			break
		}

		ws, err := g.attempt(ctx, prompt, effective)
		if err == nil {
			g.cache.Put(key, ws)
			return ws, nil
		}

		if !llm.Retryable(err) {
			return nil, err
		}

		lastErr = err
		g.logger.Warn("worksheet generation attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxAttempts),
			zap.String("fingerprint", key),
			zap.Error(err),
		)

		var verr *ValidationError
		if errors.As(err, &verr) && !verr.Retryable {
			break
		}
		if attempt == maxAttempts {
			break
		}
		if err := g.sleep(ctx, g.config.Retry.Backoff(attempt)); err != nil {
			lastErr = err
			break
		}
	}

	g.logger.Error("worksheet generation failed, using fallback",
		zap.String("fingerprint", key),
		zap.Error(lastErr),
	)
	return Fallback(req), nil
}

func (g *LLMGenerator) attempt(ctx context.Context, prompt string, req Request) (*Worksheet, error) {
	resp, err := g.provider.Generate(ctx, llm.UserPrompt(prompt, g.config.MaxTokens, g.config.Temperature))
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	ws, err := Parse(resp.Text(), req.Subject, req.IncludeAnswerKey)
	if err != nil {
		return nil, err
	}
	if verr := validate(ws, req, g.config.Validators); verr != nil {
		return nil, verr
	}
	return ws, nil
}
