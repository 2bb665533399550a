package lineupcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/lineup/internal/domain/catalog"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/roster"
	"github.com/okian/lineup/internal/domain/types"
	"github.com/okian/lineup/pkg/logger"
)

// ErrViolations is returned by Run when any check failed.
var ErrViolations = errors.New("recommendation checks failed")

// Run generates random rosters, submits each twice, and checks every
// response for determinism and assignment invariants.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	stats := &Stats{
		RunID:     uuid.NewString(),
		Seed:      config.Seed,
		StartTime: time.Now(),
	}
	if stats.Seed == 0 {
		stats.Seed = stats.StartTime.UnixNano()
	}
	log := logger.Get().With(logger.String("runID", stats.RunID))

	log.Info(ctx, "starting lineup check",
		logger.String("baseURL", config.BaseURL),
		logger.Int("rosters", config.Rosters),
		logger.Int("maxHeroes", config.MaxHeroes),
		logger.Int("workers", config.Workers),
		logger.Any("seed", stats.Seed),
		logger.Duration("timeout", config.Timeout))

	cat := catalog.Default()
	if config.Catalog != "" {
		c, err := catalog.LoadFile(config.Catalog)
		if err != nil {
			return stats, err
		}
		cat = c
	}

	client := newHTTPClient(config.BaseURL, stats.RunID, config.Timeout)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Discover activities
	activities, err := fetchActivities(ctx, client)
	if err != nil {
		return stats, err
	}
	log.Info(ctx, "discovered activities", logger.Int("count", len(activities)))

	// Step 3: Generate rosters up front so the seed alone fixes the inputs
	gen := newGenerator(stats.Seed, cat, config.MaxHeroes)
	rosters := make([][]roster.RawHero, config.Rosters)
	for i := range rosters {
		rosters[i] = gen.roster(i)
	}
	stats.RostersGenerated = len(rosters)

	// Step 4: Submit and verify concurrently
	var (
		mu         sync.Mutex
		violations []Violation
		checked    int64
	)
	report := func(vs []Violation) {
		if len(vs) == 0 {
			return
		}
		mu.Lock()
		violations = append(violations, vs...)
		mu.Unlock()
		if config.Verbose {
			for _, v := range vs {
				log.Warn(ctx, "violation", logger.Int("roster", v.Roster), logger.String("activity", v.ActivityID),
					logger.String("check", v.Check), logger.String("detail", v.Detail))
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	if config.Workers > 0 {
		g.SetLimit(config.Workers)
	}
	for i, raws := range rosters {
		i, raws := i, raws // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			vs, err := checkRoster(gctx, client, cat, activities, i, raws, stats)
			if err != nil {
				return err
			}
			report(vs)
			atomic.AddInt64(&checked, 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	sort.SliceStable(violations, func(a, b int) bool { return violations[a].Roster < violations[b].Roster })
	stats.Violations = violations
	stats.RostersChecked = int(checked)
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(ctx, log, stats)

	if len(violations) > 0 {
		return stats, fmt.Errorf("%w: %d violations", ErrViolations, len(violations))
	}
	log.Info(ctx, "all checks passed")
	return stats, nil
}

// checkRoster posts raws twice and verifies both responses. Transport
// failures are counted, not fatal; only context cancellation stops the run.
func checkRoster(ctx context.Context, client *HTTPClient, cat *catalog.Catalog, activities []types.ActivitySummary,
	index int, raws []roster.RawHero, stats *Stats) ([]Violation, error) {
	resp := rosterResponse{index: index}

	for _, dst := range []*[]byte{&resp.first, &resp.second} {
		atomic.AddInt64(&stats.Requests, 1)
		status, body, err := recommendAll(ctx, client, raws)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			atomic.AddInt64(&stats.RequestsFailed, 1)
			return []Violation{{Roster: index, Check: CheckStatus, Detail: err.Error()}}, nil
		}
		if status != http.StatusOK {
			atomic.AddInt64(&stats.RequestsFailed, 1)
			return []Violation{{Roster: index, Check: CheckStatus, Detail: fmt.Sprintf("status %d: %s", status, body)}}, nil
		}
		*dst = body
	}

	if err := json.Unmarshal(resp.first, &resp.results); err != nil {
		return []Violation{{Roster: index, Check: CheckDecode, Detail: err.Error()}}, nil
	}

	heroes, err := roster.Normalize(raws, cat)
	if err != nil {
		return nil, fmt.Errorf("generated roster %d is invalid: %w", index, err)
	}
	classes := make(map[string]model.Class, len(heroes))
	for _, h := range heroes {
		classes[h.ID] = h.Class
	}

	vs := verifyDeterminism(resp)
	vs = append(vs, verifyCoverage(index, activities, resp.results)...)
	byID := make(map[string]types.ActivitySummary, len(activities))
	for _, a := range activities {
		byID[a.ID] = a
	}
	for _, res := range resp.results {
		atomic.AddInt64(&stats.Results, 1)
		unfilled := res.Unfilled()
		atomic.AddInt64(&stats.UnfilledSlots, int64(unfilled))
		atomic.AddInt64(&stats.FilledSlots, int64(len(res.BySlot)-unfilled))
		if a, ok := byID[res.ActivityID]; ok {
			vs = append(vs, verifyResult(index, a, res, classes)...)
		}
	}
	return vs, nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient) error {
	status, _, err := client.Get(ctx, "/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if status != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", status)
	}
	return nil
}

// displayFinalStats logs the run summary.
func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var fillRate, rostersPerSecond float64
	if slots := stats.FilledSlots + stats.UnfilledSlots; slots > 0 {
		fillRate = float64(stats.FilledSlots) / float64(slots) * percentMultiplier
	}
	if stats.Duration > 0 {
		rostersPerSecond = float64(stats.RostersChecked) / stats.Duration.Seconds()
	}

	log.Info(ctx, "final statistics",
		logger.Any("seed", stats.Seed),
		logger.Int("rostersGenerated", stats.RostersGenerated),
		logger.Int("rostersChecked", stats.RostersChecked),
		logger.Any("requests", stats.Requests),
		logger.Any("requestsFailed", stats.RequestsFailed),
		logger.Any("results", stats.Results),
		logger.Float64("fillRate", fillRate),
		logger.Int("violations", len(stats.Violations)),
		logger.Duration("duration", stats.Duration),
		logger.Float64("rostersPerSecond", rostersPerSecond))
}
