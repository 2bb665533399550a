// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/okian/lineup/internal/domain/activity"
	"github.com/okian/lineup/internal/domain/roster"
	"github.com/okian/lineup/pkg/logger"
)

// Default server configuration constants.
const (
	defaultMaxRosterSize = 200
	maxBodyBytes         = 1 << 20
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	RecommendDependencies
	ActivitiesDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	recommendHandler  *RecommendHandler
	activitiesHandler *ActivitiesHandler

	maxRosterSize int
	logger        logger.Logger
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*Server)

// WithMaxRosterSize caps the roster length accepted by the recommendation routes.
func WithMaxRosterSize(n int) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.maxRosterSize = n
		}
	}
}

// WithLogger sets the logger used for server-side failures.
func WithLogger(l logger.Logger) ServerOption {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := &Server{maxRosterSize: defaultMaxRosterSize}
	for _, opt := range opts {
		opt(s)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(statsProvider)
	s.recommendHandler = NewRecommendHandler(deps, validate, s.maxRosterSize, s.logger)
	s.activitiesHandler = NewActivitiesHandler(deps, s.logger)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	route := func(path, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(path, RequestIDMiddleware(MetricsMiddleware(h, endpoint)))
	}
	route("/healthz", "healthz", s.healthHandler.HandleHealth)
	route("/stats", "stats", s.statsHandler.HandleStats)
	route("/activities", "activities", s.activitiesHandler.HandleListActivities)
	route("/recommendations", "recommendations", s.recommendHandler.HandleRecommend)
	route("/recommendations/all", "recommendations_all", s.recommendHandler.HandleRecommendAll)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// classify maps engine and service errors to an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, roster.ErrTooLarge):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, activity.ErrUnknownActivity):
		return http.StatusNotFound, "unknown_activity"
	case errors.Is(err, roster.ErrDuplicateHero):
		return http.StatusUnprocessableEntity, "duplicate_hero"
	case errors.Is(err, roster.ErrInvalidHero):
		return http.StatusUnprocessableEntity, "invalid_hero"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// fail writes err with the status derived from its kind, logging server faults.
func fail(ctx context.Context, log logger.Logger, w http.ResponseWriter, op string, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError && log != nil {
		log.Error(ctx, "request failed", logger.String("op", op), logger.Error(err))
	}
	if status == http.StatusInternalServerError {
		err = Wrap(op, err)
	}
	writeError(w, status, code, err)
}
