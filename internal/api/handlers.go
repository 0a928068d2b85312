package api

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/wordiz/internal/export"
	"github.com/abhisek/wordiz/internal/llm"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/topics"
	"github.com/abhisek/wordiz/internal/worksheet"
)

const defaultQuestionCount = 10

type generateRequest struct {
	worksheet.Request
	Save bool `json:"save"`
}

type generateResponse struct {
	Success   bool                 `json:"success"`
	ID        string               `json:"id,omitempty"`
	Fallback  bool                 `json:"fallback"`
	Worksheet *worksheet.Worksheet `json:"worksheet"`
}

type attemptRequest struct {
	Answers          map[string]string `json:"answers"`
	TimeSpentSeconds int               `json:"timeSpentSeconds"`
	Completed        bool              `json:"completed"`
}

func (s *Server) listTopics(c *gin.Context) {
	raw := c.Query("grade")
	if raw == "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "grades": topics.All()})
		return
	}
	grade, err := worksheet.ParseGrade(raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	g, ok := topics.ForGrade(grade)
	if !ok {
		writeError(c, http.StatusNotFound, "no topics for grade "+raw)
		return
	}
	if subj := c.Query("subject"); subj != "" {
		subject, err := worksheet.ParseSubject(subj)
		if err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "topics": g.Subject(subject)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "grade": g})
}

func (s *Server) generate(c *gin.Context) {
	var body generateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req, err := normalizeRequest(body.Request)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	ws, err := s.generator.Generate(c.Request.Context(), req)
	if err != nil {
		var cfgErr *llm.ErrConfig
		if errors.As(err, &cfgErr) {
			s.logger.Error("worksheet generation unavailable", zap.Error(err))
			writeError(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		s.logger.Error("worksheet generation failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "worksheet generation failed")
		return
	}

	resp := generateResponse{Success: true, Fallback: ws.Fallback, Worksheet: ws}
	if body.Save {
		entry, err := s.library.Save(c.Request.Context(), userID(c), req, ws)
		if err != nil {
			s.logger.Error("save worksheet", zap.Error(err))
			writeError(c, http.StatusInternalServerError, "could not save worksheet")
			return
		}
		resp.ID = entry.ID
	}
	c.JSON(http.StatusOK, resp)
}

// normalizeRequest canonicalizes enum spellings, applies defaults and
// fills topic names from the catalog when the client sent ids only.
func normalizeRequest(req worksheet.Request) (worksheet.Request, error) {
	grade, err := worksheet.ParseGrade(string(req.Grade))
	if err != nil {
		return req, err
	}
	subject, err := worksheet.ParseSubject(string(req.Subject))
	if err != nil {
		return req, err
	}
	req.Grade, req.Subject = grade, subject
	if req.Difficulty == "" {
		req.Difficulty = worksheet.DifficultyMedium
	}
	if req.QuestionCount == 0 {
		req.QuestionCount = defaultQuestionCount
	}
	for i, t := range req.QuestionTypes {
		if qt, ok := worksheet.ParseQuestionType(string(t)); ok {
			req.QuestionTypes[i] = qt
		}
	}

	var ids []string
	named := true
	for _, t := range req.Topics {
		ids = append(ids, t.ID)
		if t.Name == "" {
			named = false
		}
	}
	if !named {
		resolved, err := topics.Lookup(grade, subject, ids)
		if err != nil {
			return req, err
		}
		req.Topics = resolved
	}
	return req, req.Validate()
}

func (s *Server) listWorksheets(c *gin.Context) {
	f := store.WorksheetFilter{
		Grade:      c.Query("grade"),
		Subject:    c.Query("subject"),
		Difficulty: c.Query("difficulty"),
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		f.Limit = n
	}
	list, err := s.library.List(c.Request.Context(), userID(c), f)
	if err != nil {
		s.logger.Error("list worksheets", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "could not list worksheets")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "worksheets": list})
}

func (s *Server) getWorksheet(c *gin.Context) {
	entry, err := s.library.Get(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "worksheet": entry})
}

func (s *Server) deleteWorksheet(c *gin.Context) {
	if err := s.library.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) worksheetPDF(c *gin.Context) {
	entry, err := s.library.Get(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		s.storeError(c, err)
		return
	}

	pageSize, err := export.ParsePageSize(c.Query("pageSize"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	answerKey := entry.Request.IncludeAnswerKey
	if raw := c.Query("answerKey"); raw != "" {
		answerKey, _ = strconv.ParseBool(raw)
	}
	doc := export.Document{
		Worksheet:        entry.Worksheet,
		Grade:            entry.Request.Grade,
		Subject:          entry.Request.Subject,
		Difficulty:       entry.Request.Difficulty,
		Topics:           entry.Request.TopicNames(),
		TimeLimitMinutes: entry.Request.TimeLimitMinutes,
	}
	var buf bytes.Buffer
	if err := export.RenderPDF(&buf, doc, export.Options{AnswerKey: answerKey, PageSize: pageSize}); err != nil {
		s.logger.Error("render pdf", zap.String("worksheet", entry.ID), zap.Error(err))
		writeError(c, http.StatusInternalServerError, "could not render pdf")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(entry.Worksheet.Title)+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (s *Server) submitAttempt(c *gin.Context) {
	var body attemptRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if body.TimeSpentSeconds < 0 {
		writeError(c, http.StatusBadRequest, "timeSpentSeconds must not be negative")
		return
	}

	ctx := c.Request.Context()
	user := userID(c)
	entry, err := s.library.Get(ctx, user, c.Param("id"))
	if err != nil {
		s.storeError(c, err)
		return
	}

	res, err := s.grader.Grade(ctx, entry.Worksheet, body.Answers, entry.Request.Difficulty)
	if err != nil {
		s.logger.Error("grade attempt", zap.String("worksheet", entry.ID), zap.Error(err))
		writeError(c, http.StatusInternalServerError, "could not grade attempt")
		return
	}
	attempt, err := s.library.RecordAttempt(ctx, user, entry.ID, res, body.Answers,
		time.Duration(body.TimeSpentSeconds)*time.Second, body.Completed)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "attempt": attempt})
}

func (s *Server) listAttempts(c *gin.Context) {
	list, err := s.library.Attempts(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "attempts": list})
}

func (s *Server) progress(c *gin.Context) {
	a, err := s.library.Analytics(c.Request.Context(), userID(c))
	if err != nil {
		s.logger.Error("progress analytics", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "could not compute progress")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "progress": a})
}

func (s *Server) storeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(c, http.StatusNotFound, "worksheet not found")
		return
	}
	s.logger.Error("store request failed", zap.String("path", c.FullPath()), zap.Error(err))
	writeError(c, http.StatusInternalServerError, "internal error")
}
