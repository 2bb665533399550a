package recommend

import (
	"github.com/okian/lineup/internal/domain/activity"
	"github.com/okian/lineup/internal/domain/assign"
	"github.com/okian/lineup/internal/domain/catalog"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/roster"
	"github.com/okian/lineup/internal/domain/types"
)

// Request is the engine input.
type Request struct {
	ActivityID string
	Roster     []roster.RawHero
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithCatalog sets the hero catalog used for tags and default classes.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

// WithRegistry sets the activity registry.
func WithRegistry(r *activity.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithAssigner sets the slot assigner.
func WithAssigner(a *assign.Assigner) Option {
	return func(e *Engine) {
		if a != nil {
			e.assigner = a
		}
	}
}

// Engine wires normalizer, registry, scorer, assigner, and formatter. It
// holds only read-only collaborators, so one Engine serves concurrent
// requests; nothing is cached between calls.
type Engine struct {
	registry *activity.Registry
	catalog  *catalog.Catalog
	assigner *assign.Assigner
}

// NewEngine creates an engine over the built-in tables unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		registry: activity.Default(),
		catalog:  catalog.Default(),
		assigner: assign.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend produces the lineup for one activity. The activity is looked up
// before the roster is touched and the roster is fully normalized before any
// scoring, so both typed errors abort without partial results.
func (e *Engine) Recommend(req Request) (types.RecommendationResult, error) {
	profile, err := e.registry.Lookup(req.ActivityID)
	if err != nil {
		return types.RecommendationResult{}, err
	}
	heroes, err := roster.Normalize(req.Roster, e.catalog)
	if err != nil {
		return types.RecommendationResult{}, err
	}
	return e.run(profile, heroes), nil
}

// RecommendFor runs one activity against an already normalized roster.
func (e *Engine) RecommendFor(activityID string, heroes []model.Hero) (types.RecommendationResult, error) {
	profile, err := e.registry.Lookup(activityID)
	if err != nil {
		return types.RecommendationResult{}, err
	}
	return e.run(profile, heroes), nil
}

// RecommendAll runs every registered activity, in activity id order.
func (e *Engine) RecommendAll(raws []roster.RawHero) ([]types.RecommendationResult, error) {
	heroes, err := roster.Normalize(raws, e.catalog)
	if err != nil {
		return nil, err
	}
	profiles := e.registry.List()
	out := make([]types.RecommendationResult, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, e.run(p, heroes))
	}
	return out, nil
}

// Normalize exposes the engine's normalizer configuration.
func (e *Engine) Normalize(raws []roster.RawHero) ([]model.Hero, error) {
	return roster.Normalize(raws, e.catalog)
}

// Activities lists registered activity summaries ordered by id.
func (e *Engine) Activities() []types.ActivitySummary {
	profiles := e.registry.List()
	out := make([]types.ActivitySummary, len(profiles))
	for i, p := range profiles {
		out[i] = Summarize(p)
	}
	return out
}

// ActivityIDs lists registered activity ids in order.
func (e *Engine) ActivityIDs() []string {
	profiles := e.registry.List()
	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	return ids
}

// CatalogSize returns the number of catalog heroes.
func (e *Engine) CatalogSize() int { return e.catalog.Len() }

func (e *Engine) run(profile model.ActivityProfile, heroes []model.Hero) types.RecommendationResult {
	return Format(e.assigner.Assign(profile, heroes))
}
