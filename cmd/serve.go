package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wordiz/internal/api"
	"github.com/abhisek/wordiz/internal/grading"
	"github.com/abhisek/wordiz/internal/worksheet"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, zap.InfoLevel)
		if err != nil {
			return err
		}
		defer e.Close()

		if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var gen worksheet.Generator
		provider, err := e.provider(ctx)
		if err != nil {
			e.logger.Warn("LLM provider not configured; generation requests will fail", zap.Error(err))
			gen = unconfigured{err: err}
			provider = nil
		} else {
			gen = worksheet.New(provider, worksheet.DefaultConfig(), worksheet.WithLogger(e.logger))
		}
		grader := grading.NewGrader(provider, grading.WithLogger(e.logger))

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = ":" + envOr("PORT", "8080")
		}

		srv := api.NewServer(gen, e.library(), grader, e.logger, version)
		return srv.Run(ctx, addr)
	},
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default :$PORT or :8080)")
}
