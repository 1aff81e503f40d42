// Package server exposes the transformation pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/valpere/restyle/internal"
	"github.com/valpere/restyle/internal/logging"
)

// Transformer is the pipeline the server fronts.
type Transformer interface {
	Transform(ctx context.Context, req internal.TransformRequest) (*internal.TransformResult, error)
	SupportedStyles() []string
}

const maxBodyBytes = 1 << 20

// Server handles the transform API routes and serves its own metrics
// registry, so independent instances never collide on registration.
type Server struct {
	transformer Transformer
	logger      *slog.Logger

	registry   *prometheus.Registry
	transforms *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger; the default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// New creates a Server around the given transformer.
func New(tr Transformer, opts ...Option) *Server {
	s := &Server{
		transformer: tr,
		logger:      logging.NewNop(),
		registry:    prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.transforms = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restyle_transforms_total",
			Help: "Total number of transform requests by style and outcome",
		},
		[]string{"style", "outcome"},
	)
	s.duration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "restyle_transform_duration_seconds",
			Help: "Duration of transform requests",
		},
		[]string{"style"},
	)
	s.registry.MustRegister(s.transforms, s.duration)
	return s
}

// Handler returns the HTTP handler for all routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Post("/api/transform", s.handleTransform)
	r.Get("/api/transform", s.handleStatus)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

type transformBody struct {
	Text         string `json:"text"`
	Style        string `json:"style"`
	TargetLength int    `json:"targetLength,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool                      `json:"success"`
	Data    *internal.TransformResult `json:"data,omitempty"`
	Error   *errorBody                `json:"error,omitempty"`
}

func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var body transformBody
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		s.writeError(w, internal.NewError(internal.KindInvalidInput, "invalid request body"))
		return
	}
	if body.Text == "" || body.Style == "" {
		s.writeError(w, internal.NewError(internal.KindInvalidInput, "text and style are required"))
		return
	}

	req := internal.TransformRequest{
		ID:           uuid.New().String(),
		Text:         body.Text,
		StyleID:      body.Style,
		TargetLength: body.TargetLength,
		Timestamp:    time.Now(),
	}

	start := time.Now()
	result, err := s.transformer.Transform(r.Context(), req)
	s.duration.WithLabelValues(body.Style).Observe(time.Since(start).Seconds())

	if err != nil {
		var terr *internal.Error
		if !errors.As(err, &terr) {
			terr = &internal.Error{Kind: internal.KindProviderFatal, Message: "transformation failed", Err: err}
		}
		s.transforms.WithLabelValues(body.Style, terr.APICode()).Inc()
		s.logger.Error("transform failed",
			"request_id", req.ID,
			"style", body.Style,
			"code", terr.APICode(),
			"err", err,
		)
		s.writeError(w, terr)
		return
	}

	s.transforms.WithLabelValues(body.Style, "success").Inc()
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Data: result})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Message         string   `json:"message"`
		SupportedStyles []string `json:"supportedStyles"`
		Timestamp       string   `json:"timestamp"`
	}{
		Message:         "Transform API is running",
		SupportedStyles: s.transformer.SupportedStyles(),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeError(w http.ResponseWriter, terr *internal.Error) {
	s.writeJSON(w, terr.HTTPStatus(), envelope{
		Success: false,
		Error:   &errorBody{Code: terr.APICode(), Message: terr.Message},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
