// Package recommend runs the lineup recommendation pipeline and shapes its
// output for the presentation layer.
package recommend

import (
	"fmt"
	"sort"

	"github.com/okian/lineup/internal/domain/assign"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/scoring"
	"github.com/okian/lineup/internal/domain/types"
)

// Format turns an assignment into the external result. Slots are ordered by
// index and unused candidates by score desc, then identity asc.
func Format(a assign.Assignment) types.RecommendationResult {
	out := types.RecommendationResult{
		ActivityID:       a.ActivityID,
		Rule:             RuleName(a.Rule),
		BySlot:           make([]types.SlotResult, 0, len(a.Slots)),
		UnusedCandidates: make([]types.CandidateResult, 0, len(a.Unused)),
	}

	for _, s := range a.Slots {
		sr := types.SlotResult{
			SlotIndex: s.Index,
			Role:      string(s.Slot.Role),
			Label:     s.Slot.Label,
			Weight:    s.Slot.Weight,
			Rationale: s.Rationale,
		}
		if s.Filled() {
			id, score := s.HeroID, s.Score
			sr.HeroID = &id
			sr.Score = &score
		}
		out.BySlot = append(out.BySlot, sr)
	}
	sort.SliceStable(out.BySlot, func(i, j int) bool { return out.BySlot[i].SlotIndex < out.BySlot[j].SlotIndex })

	for _, c := range a.Unused {
		out.UnusedCandidates = append(out.UnusedCandidates, types.CandidateResult{HeroID: c.HeroID, Score: c.Score})
	}
	sort.SliceStable(out.UnusedCandidates, func(i, j int) bool {
		x, y := out.UnusedCandidates[i], out.UnusedCandidates[j]
		return scoring.RanksBefore(x.Score, x.HeroID, y.Score, y.HeroID)
	})
	return out
}

// RuleName renders a scoring rule, e.g. "tagged-capability(deals-area-damage)/expedition".
func RuleName(r model.ScoringRule) string {
	if r.Kind == model.RuleTaggedCapability {
		return fmt.Sprintf("%s(%s)/%s", r.Kind, r.Tag, r.Skills)
	}
	return fmt.Sprintf("%s/%s", r.Kind, r.Skills)
}

// Summarize describes a profile for listings.
func Summarize(p model.ActivityProfile) types.ActivitySummary {
	s := types.ActivitySummary{
		ID:     p.ID,
		Name:   p.Name,
		Rule:   string(p.Rule.Kind),
		Skills: string(p.Rule.Skills),
		Tag:    string(p.Rule.Tag),
		Slots:  make([]types.SlotSummary, len(p.Slots)),
	}
	for i, slot := range p.Slots {
		s.Slots[i] = types.SlotSummary{Index: i, Role: string(slot.Role), Label: slot.Label, Weight: slot.Weight}
	}
	return s
}
