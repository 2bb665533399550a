// Package scoring computes how well a hero suits a formation slot under an
// activity's scoring rule.
package scoring

import (
	"math"

	"github.com/okian/lineup/internal/domain/model"
)

// Default scoring configuration constants.
const (
	// DefaultTagBonus exceeds any possible skill total (6 positions * level 5),
	// so capability presence always dominates skill level.
	DefaultTagBonus = 1000
)

// Ineligible is the score of a hero whose class does not satisfy the slot
// role. It is strictly lower than every eligible score.
var Ineligible = math.Inf(-1)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithTagBonus sets the bonus granted by the tagged-capability rule. Values
// that could be overtaken by a skill total are ignored.
func WithTagBonus(bonus float64) Option {
	return func(s *Scorer) {
		if bonus > model.SkillSlotCount*model.MaxSkillLevel {
			s.tagBonus = bonus
		}
	}
}

// Result is a score plus the inputs that produced it, used to explain picks.
type Result struct {
	HeroID     string
	Score      float64
	Eligible   bool
	SkillTotal int  // sum of relevant skill levels
	BestSkill  int  // highest relevant skill level
	HasTag     bool // only set under model.RuleTaggedCapability
}

// Scorer is a pure, deterministic scorer. The zero value is not usable; use
// NewScorer.
type Scorer struct {
	tagBonus float64
}

// NewScorer creates a scorer with configuration options.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{tagBonus: DefaultTagBonus}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultScorer = NewScorer()

// Score scores hero for a slot with role under rule using default options.
func Score(hero model.Hero, role model.Role, rule model.ScoringRule) float64 {
	return defaultScorer.Score(hero, role, rule)
}

// Score returns the suitability of hero for a slot with role under rule, or
// Ineligible when the hero's class does not satisfy the role.
func (s *Scorer) Score(hero model.Hero, role model.Role, rule model.ScoringRule) float64 {
	return s.Evaluate(hero, role, rule).Score
}

// Evaluate is Score with the intermediate values exposed.
func (s *Scorer) Evaluate(hero model.Hero, role model.Role, rule model.ScoringRule) Result {
	res := Result{HeroID: hero.ID, Score: Ineligible}
	if !role.Accepts(hero.Class) {
		return res
	}
	res.Eligible = true

	for _, pos := range rule.Skills.Positions() {
		lvl := hero.SkillLevels[pos]
		res.SkillTotal += lvl
		if lvl > res.BestSkill {
			res.BestSkill = lvl
		}
	}

	switch rule.Kind {
	case model.RuleTaggedCapability:
		res.HasTag = hero.HasTag(rule.Tag)
		res.Score = float64(res.SkillTotal)
		if res.HasTag {
			res.Score += s.tagBonus
		}
	case model.RuleSingleBestSkill:
		res.Score = float64(res.BestSkill)
	default:
		res.Score = float64(res.SkillTotal)
	}
	return res
}

// RanksBefore reports whether (aScore, aID) should appear before
// (bScore, bID): higher score first, then identity ascending.
func RanksBefore(aScore float64, aID string, bScore float64, bID string) bool {
	if aScore != bScore {
		return aScore > bScore
	}
	return aID < bID
}
