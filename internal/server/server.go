// Package server exposes the matching engine over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spigell/cv-matcher/internal/filtering"
	"github.com/spigell/cv-matcher/internal/matching"
	"github.com/spigell/cv-matcher/internal/profile"
	"github.com/spigell/cv-matcher/internal/schemas"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	maxBodyBytes    = 4 << 20
	shutdownTimeout = 10 * time.Second
)

// Server serves evaluate and batch requests.
type Server struct {
	engine *matching.Engine
	logger *zap.Logger
}

func New(engine *matching.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{engine: engine, logger: logger}
}

// Routes returns the chi router with every endpoint mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/evaluate", s.evaluate)
		r.Post("/evaluate/batch", s.evaluateBatch)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type evaluateRequest struct {
	Candidate json.RawMessage `json:"candidate"`
	Job       json.RawMessage `json:"job"`
}

type batchRequest struct {
	Job        json.RawMessage   `json:"job"`
	Candidates json.RawMessage   `json:"candidates"`
	Filters    *filtering.Config `json:"filters,omitempty"`
}

type errorResponse struct {
	Error   string               `json:"error"`
	Details []schemas.FieldError `json:"details,omitempty"`
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if !s.readBody(w, r, &req) {
		return
	}

	job, ok := s.decodeJob(w, req.Job)
	if !ok {
		return
	}

	s.warnOnSchema(r, schemas.Candidate, req.Candidate)
	candidate, err := profile.DecodeCandidate(req.Candidate)
	if err != nil {
		s.fail(w, decodeStatus(err), candidateError(err))
		return
	}

	result, err := s.engine.Evaluate(candidate, job)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) evaluateBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !s.readBody(w, r, &req) {
		return
	}

	job, ok := s.decodeJob(w, req.Job)
	if !ok {
		return
	}

	s.warnOnSchema(r, schemas.Candidate, req.Candidates)
	candidates, err := profile.DecodeCandidates(req.Candidates)
	if err != nil && !errors.Is(err, profile.ErrEmptyDocument) {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	list, err := s.engine.EvaluateBatch(r.Context(), candidates, job)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}

	if req.Filters != nil {
		list, err = filtering.Run(r.Context(), req.Filters, filtering.Deps{Logger: s.logger}, filtering.Default(), list)
		if err != nil {
			s.fail(w, http.StatusBadRequest, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request, into any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(into); err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("decoding request body: %w", err))
		return false
	}
	return true
}

// decodeJob validates and decodes the job. Schema violations reject the
// request.
func (s *Server) decodeJob(w http.ResponseWriter, raw json.RawMessage) (*profile.Job, bool) {
	if isEmpty(raw) {
		s.fail(w, http.StatusBadRequest, matching.ErrMissingJob)
		return nil, false
	}

	if err := schemas.ValidateJob(raw); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "job document is invalid", Details: validationErr.Errors})
			return nil, false
		}
		s.fail(w, http.StatusBadRequest, err)
		return nil, false
	}

	job, err := profile.DecodeJob(raw)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return nil, false
	}
	return job, true
}

// warnOnSchema logs candidate schema violations. Candidate data is scored
// best-effort, so they never reject a request.
func (s *Server) warnOnSchema(r *http.Request, kind schemas.Kind, raw json.RawMessage) {
	if isEmpty(raw) {
		return
	}
	if err := schemas.Validate(kind, raw); err != nil {
		s.logger.Warn("document does not match schema",
			zap.String("kind", string(kind)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func isEmpty(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || string(trimmed) == "null"
}

func decodeStatus(err error) int {
	if errors.Is(err, profile.ErrEmptyDocument) {
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

func candidateError(err error) error {
	if errors.Is(err, profile.ErrEmptyDocument) {
		return matching.ErrMissingCandidate
	}
	return err
}
