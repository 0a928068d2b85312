// Package api exposes worksheet generation, the saved library and
// progress over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/wordiz/internal/grading"
	"github.com/abhisek/wordiz/internal/library"
	"github.com/abhisek/wordiz/internal/worksheet"
)

// UserHeader carries the caller's user id. It is set by the fronting
// auth proxy.
const UserHeader = "X-User-ID"

// Server wires the HTTP routes.
type Server struct {
	generator worksheet.Generator
	library   *library.Library
	grader    *grading.Grader
	logger    *zap.Logger
	version   string
	engine    *gin.Engine
}

// NewServer creates a Server. logger may be nil.
func NewServer(gen worksheet.Generator, lib *library.Library, grader *grading.Grader, logger *zap.Logger, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		generator: gen,
		library:   lib,
		grader:    grader,
		logger:    logger,
		version:   version,
	}
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), cors())

	r.GET("/health", s.health)

	api := r.Group("/api")
	api.GET("/topics", s.listTopics)

	user := api.Group("", requireUser())
	user.POST("/worksheets/generate", s.generate)
	user.GET("/worksheets", s.listWorksheets)
	user.GET("/worksheets/:id", s.getWorksheet)
	user.DELETE("/worksheets/:id", s.deleteWorksheet)
	user.GET("/worksheets/:id/pdf", s.worksheetPDF)
	user.POST("/worksheets/:id/attempts", s.submitAttempt)
	user.GET("/worksheets/:id/attempts", s.listAttempts)
	user.GET("/progress", s.progress)

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("http server shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "wordiz",
		"version": s.version,
	})
}
