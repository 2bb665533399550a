// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/lineup/internal/domain/activity"
	"github.com/okian/lineup/internal/domain/catalog"
	"github.com/okian/lineup/internal/domain/recommend"
	"github.com/okian/lineup/internal/domain/roster"
	"github.com/okian/lineup/internal/domain/types"
	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultMaxRosterSize = 200
)

// Service exposes the recommendation engine to the API layer. The engine's
// tables are loaded once in Start and never mutated afterwards.
type Service struct {
	mu sync.RWMutex

	engine *recommend.Engine

	// Configuration
	workerCount    int
	maxRosterSize  int
	activitiesFile string
	catalogFile    string

	// State
	started   bool
	startedAt time.Time

	// Counters
	requests      atomic.Int64
	succeeded     atomic.Int64
	failed        atomic.Int64
	unfilledSlots atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount bounds concurrent activity evaluations in RecommendAll.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithMaxRosterSize caps the number of hero records per request.
func WithMaxRosterSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.maxRosterSize = size
		}
	}
}

// WithActivitiesFile extends the built-in activity table from a YAML file.
func WithActivitiesFile(path string) Option {
	return func(s *Service) {
		s.activitiesFile = path
	}
}

// WithCatalogFile replaces the built-in hero catalog with a YAML file.
func WithCatalogFile(path string) Option {
	return func(s *Service) {
		s.catalogFile = path
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:   runtime.NumCPU(),
		maxRosterSize: defaultMaxRosterSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the activity registry and hero catalog and builds the engine.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting lineup service...")

	registry := activity.Default()
	if s.activitiesFile != "" {
		r, err := activity.LoadFile(s.activitiesFile, activity.Builtin())
		if err != nil {
			return fmt.Errorf("load activities: %w", err)
		}
		registry = r
		s.logger.Info(ctx, "loaded activities file", logger.String("path", s.activitiesFile))
	}

	cat := catalog.Default()
	if s.catalogFile != "" {
		c, err := catalog.LoadFile(s.catalogFile)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		cat = c
		s.logger.Info(ctx, "loaded catalog file", logger.String("path", s.catalogFile))
	}

	s.engine = recommend.NewEngine(
		recommend.WithRegistry(registry),
		recommend.WithCatalog(cat),
	)

	metrics.UpdateTables(registry.Len(), cat.Len())
	metrics.UpdateWorkerCount(s.workerCount)

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "lineup service started",
		logger.Int("activities", registry.Len()),
		logger.Int("catalogHeroes", cat.Len()),
		logger.Int("workers", s.workerCount),
		logger.Int("maxRosterSize", s.maxRosterSize),
	)

	return nil
}

// Stop marks the service as stopped. In-flight calls finish normally.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.engine = nil
	s.logger.Info(context.Background(), "lineup service stopped")
}

// log returns the configured logger, or the global one before Start.
func (s *Service) log() logger.Logger {
	s.mu.RLock()
	l := s.logger
	s.mu.RUnlock()
	if l == nil {
		return logger.Get()
	}
	return l
}

func (s *Service) currentEngine() (*recommend.Engine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.engine, nil
}

func (s *Service) checkRoster(raws []roster.RawHero) error {
	metrics.RecordRosterSize(len(raws))
	if len(raws) > s.maxRosterSize {
		return &roster.TooLargeError{Size: len(raws), Max: s.maxRosterSize}
	}
	return nil
}

// Recommend returns the lineup for one activity.
func (s *Service) Recommend(ctx context.Context, activityID string, raws []roster.RawHero) (types.RecommendationResult, error) {
	start := time.Now()
	s.requests.Add(1)

	res, err := s.recommend(ctx, activityID, raws)
	s.observe(ctx, activityID, res, err, time.Since(start))
	return res, err
}

func (s *Service) recommend(ctx context.Context, activityID string, raws []roster.RawHero) (types.RecommendationResult, error) {
	engine, err := s.currentEngine()
	if err != nil {
		return types.RecommendationResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return types.RecommendationResult{}, err
	}
	if err := s.checkRoster(raws); err != nil {
		return types.RecommendationResult{}, err
	}
	return engine.Recommend(recommend.Request{ActivityID: activityID, Roster: raws})
}

// RecommendAll returns a lineup for every registered activity, ordered by
// activity id. The roster is normalized once; activities are evaluated
// concurrently with at most workerCount in flight.
func (s *Service) RecommendAll(ctx context.Context, raws []roster.RawHero) ([]types.RecommendationResult, error) {
	start := time.Now()
	s.requests.Add(1)

	engine, err := s.currentEngine()
	if err != nil {
		s.failed.Add(1)
		return nil, err
	}
	if err := s.checkRoster(raws); err != nil {
		s.failed.Add(1)
		return nil, err
	}
	heroes, err := engine.Normalize(raws)
	if err != nil {
		s.failed.Add(1)
		metrics.RecordError("service", outcomeOf(err), "warning")
		return nil, err
	}

	ids := engine.ActivityIDs()
	results := make([]types.RecommendationResult, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerCount)
	for i, id := range ids {
		i, id := i, id // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			res, err := engine.RecommendFor(id, heroes)
			if err != nil {
				return err
			}
			results[i] = res
			metrics.RecordRecommendation(id, metrics.OutcomeOK, time.Since(t0))
			metrics.RecordAssignment(id, res.Unfilled(), len(res.UnusedCandidates))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.failed.Add(1)
		return nil, err
	}

	s.succeeded.Add(1)
	for _, r := range results {
		s.unfilledSlots.Add(int64(r.Unfilled()))
	}
	s.log().Debug(ctx, "recommended all activities",
		logger.Int("activities", len(results)),
		logger.Int("rosterSize", len(raws)),
		logger.Duration("took", time.Since(start)),
	)
	return results, nil
}

func (s *Service) observe(ctx context.Context, activityID string, res types.RecommendationResult, err error, took time.Duration) {
	if err != nil {
		s.failed.Add(1)
		outcome := outcomeOf(err)
		metrics.RecordRecommendation(activityID, outcome, took)
		metrics.RecordError("service", outcome, "warning")
		s.log().Debug(ctx, "recommendation rejected",
			logger.String("activity", activityID),
			logger.Error(err),
		)
		return
	}

	s.succeeded.Add(1)
	s.unfilledSlots.Add(int64(res.Unfilled()))
	metrics.RecordRecommendation(activityID, metrics.OutcomeOK, took)
	metrics.RecordAssignment(activityID, res.Unfilled(), len(res.UnusedCandidates))
	s.log().Debug(ctx, "recommendation served",
		logger.String("activity", activityID),
		logger.Int("unfilled", res.Unfilled()),
		logger.Int("unused", len(res.UnusedCandidates)),
		logger.Duration("took", took),
	)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, activity.ErrUnknownActivity):
		return metrics.OutcomeUnknownActivity
	case errors.Is(err, roster.ErrDuplicateHero),
		errors.Is(err, roster.ErrInvalidHero),
		errors.Is(err, ErrRosterTooLarge):
		return metrics.OutcomeInvalidRoster
	default:
		return metrics.OutcomeError
	}
}

// Activities lists the registered activities ordered by id.
func (s *Service) Activities(_ context.Context) ([]types.ActivitySummary, error) {
	engine, err := s.currentEngine()
	if err != nil {
		return nil, err
	}
	return engine.Activities(), nil
}

// MaxRosterSize returns the configured roster cap.
func (s *Service) MaxRosterSize() int { return s.maxRosterSize }

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":       s.started,
		"workerCount":   s.workerCount,
		"maxRosterSize": s.maxRosterSize,
		"requests":      s.requests.Load(),
		"succeeded":     s.succeeded.Load(),
		"failed":        s.failed.Load(),
		"unfilledSlots": s.unfilledSlots.Load(),
	}

	if s.started {
		stats["activities"] = len(s.engine.ActivityIDs())
		stats["catalogHeroes"] = s.engine.CatalogSize()
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
	}

	return stats
}
