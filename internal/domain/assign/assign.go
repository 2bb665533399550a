// Package assign places heroes into activity formation slots.
//
// Assignment is greedy and single pass: slots are visited in priority order
// and each takes the best not-yet-assigned eligible hero. Exhaustive search is
// deliberately not attempted; formations are small and role constraints leave
// few candidates per slot.
package assign

import (
	"sort"

	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/scoring"
)

// SlotAssignment is the outcome for one slot.
type SlotAssignment struct {
	Index     int
	Slot      model.Slot
	HeroID    string // empty when unfilled
	Score     float64
	Rationale string
}

// Filled reports whether a hero was placed in the slot.
func (s SlotAssignment) Filled() bool { return s.HeroID != "" }

// Candidate is an eligible hero that was not placed.
type Candidate struct {
	HeroID string
	Score  float64
}

// Assignment is the engine's per-request result. It is never cached.
type Assignment struct {
	ActivityID string
	Rule       model.ScoringRule
	Slots      []SlotAssignment // ordered by slot index
	Unused     []Candidate      // score desc, then identity asc
}

// Unfilled returns the number of slots left empty.
func (a Assignment) Unfilled() int {
	n := 0
	for _, s := range a.Slots {
		if !s.Filled() {
			n++
		}
	}
	return n
}

// Option applies a configuration option to the Assigner.
type Option func(*Assigner)

// WithScorer sets the scorer used to rank candidates.
func WithScorer(s *scoring.Scorer) Option {
	return func(a *Assigner) {
		if s != nil {
			a.scorer = s
		}
	}
}

// Assigner is stateless and safe for concurrent use.
type Assigner struct {
	scorer *scoring.Scorer
}

// New creates an Assigner with configuration options.
func New(opts ...Option) *Assigner {
	a := &Assigner{scorer: scoring.NewScorer()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assign fills profile's slots from heroes. Heroes must have distinct ids.
// It never fails: slots without an eligible hero are left unfilled.
func (a *Assigner) Assign(profile model.ActivityProfile, heroes []model.Hero) Assignment {
	out := Assignment{
		ActivityID: profile.ID,
		Rule:       profile.Rule,
		Slots:      make([]SlotAssignment, len(profile.Slots)),
	}

	taken := make(map[string]bool, len(profile.Slots))
	lastScore := make(map[string]float64, len(heroes))

	for _, idx := range Order(profile.Slots) {
		slot := profile.Slots[idx]
		var eligible []scoring.Result
		for _, h := range heroes {
			if taken[h.ID] {
				continue
			}
			res := a.scorer.Evaluate(h, slot.Role, profile.Rule)
			if !res.Eligible {
				continue
			}
			lastScore[h.ID] = res.Score
			eligible = append(eligible, res)
		}
		sortResults(eligible)

		sa := SlotAssignment{Index: idx, Slot: slot, Score: scoring.Ineligible}
		if len(eligible) > 0 {
			best := eligible[0]
			sa.HeroID = best.HeroID
			sa.Score = best.Score
			taken[best.HeroID] = true
		}
		sa.Rationale = explain(slot, profile.Rule, eligible)
		out.Slots[idx] = sa
	}

	for _, h := range heroes {
		score, scored := lastScore[h.ID]
		if !scored || taken[h.ID] {
			continue
		}
		out.Unused = append(out.Unused, Candidate{HeroID: h.ID, Score: score})
	}
	sort.Slice(out.Unused, func(i, j int) bool {
		return scoring.RanksBefore(out.Unused[i].Score, out.Unused[i].HeroID, out.Unused[j].Score, out.Unused[j].HeroID)
	})
	return out
}

var defaultAssigner = New()

// Assign runs the default Assigner.
func Assign(profile model.ActivityProfile, heroes []model.Hero) Assignment {
	return defaultAssigner.Assign(profile, heroes)
}

// Order returns slot indices in processing order: role-restricted slots
// before wildcard slots, then weight descending, then index ascending.
func Order(slots []model.Slot) []int {
	order := make([]int, len(slots))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := slots[order[i]], slots[order[j]]
		if a.Role.Wildcard() != b.Role.Wildcard() {
			return !a.Role.Wildcard()
		}
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		return order[i] < order[j]
	})
	return order
}

func sortResults(rs []scoring.Result) {
	sort.Slice(rs, func(i, j int) bool {
		return scoring.RanksBefore(rs[i].Score, rs[i].HeroID, rs[j].Score, rs[j].HeroID)
	})
}
