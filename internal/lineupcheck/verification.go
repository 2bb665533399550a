package lineupcheck

import (
	"bytes"
	"fmt"

	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/scoring"
	"github.com/okian/lineup/internal/domain/types"
)

// verifyDeterminism reports a violation when two responses to one roster differ.
func verifyDeterminism(r rosterResponse) []Violation {
	if bytes.Equal(r.first, r.second) {
		return nil
	}
	return []Violation{{Roster: r.index, Check: CheckDeterminism, Detail: "repeated request produced a different body"}}
}

// verifyCoverage checks that every activity is answered once, in id order.
func verifyCoverage(index int, activities []types.ActivitySummary, results []types.RecommendationResult) []Violation {
	if len(results) != len(activities) {
		return []Violation{{Roster: index, Check: CheckCoverage,
			Detail: fmt.Sprintf("expected %d results, got %d", len(activities), len(results))}}
	}
	var out []Violation
	for i, a := range activities {
		if results[i].ActivityID != a.ID {
			out = append(out, Violation{Roster: index, ActivityID: results[i].ActivityID, Check: CheckCoverage,
				Detail: fmt.Sprintf("result %d is for %q, expected %q", i, results[i].ActivityID, a.ID)})
		}
	}
	return out
}

// verifyResult checks the structural properties of one recommendation.
// classes maps canonical hero ids to the class the service resolves.
func verifyResult(index int, activity types.ActivitySummary, res types.RecommendationResult, classes map[string]model.Class) []Violation {
	var out []Violation
	add := func(check, format string, args ...interface{}) {
		out = append(out, Violation{Roster: index, ActivityID: res.ActivityID, Check: check, Detail: fmt.Sprintf(format, args...)})
	}

	if len(res.BySlot) != len(activity.Slots) {
		add(CheckSlotOrder, "expected %d slots, got %d", len(activity.Slots), len(res.BySlot))
	}

	assigned := make(map[string]int, len(res.BySlot))
	for i, s := range res.BySlot {
		if s.SlotIndex != i {
			add(CheckSlotOrder, "slot at position %d reports index %d", i, s.SlotIndex)
		}
		if i < len(activity.Slots) && s.Role != activity.Slots[i].Role {
			add(CheckSlotOrder, "slot %d has role %q, activity declares %q", i, s.Role, activity.Slots[i].Role)
		}
		if !s.Filled() {
			if s.Score != nil {
				add(CheckScore, "unfilled slot %d carries a score", i)
			}
			continue
		}
		id := *s.HeroID
		if prev, ok := assigned[id]; ok {
			add(CheckDoubleAssigned, "%s fills slots %d and %d", id, prev, i)
		}
		assigned[id] = i

		class, known := classes[id]
		if !known {
			add(CheckRole, "slot %d holds %s which is not in the roster", i, id)
		} else if !model.Role(s.Role).Accepts(class) {
			add(CheckRole, "slot %d requires %s but %s is %q", i, s.Role, id, class)
		}
		if s.Score == nil {
			add(CheckScore, "filled slot %d has no score", i)
		}
	}

	for i, c := range res.UnusedCandidates {
		if slot, ok := assigned[c.HeroID]; ok {
			add(CheckUnusedAssigned, "%s is unused but fills slot %d", c.HeroID, slot)
		}
		if i > 0 {
			prev := res.UnusedCandidates[i-1]
			if !scoring.RanksBefore(prev.Score, prev.HeroID, c.Score, c.HeroID) {
				add(CheckUnusedOrder, "%s (%.0f) listed before %s (%.0f)", prev.HeroID, prev.Score, c.HeroID, c.Score)
			}
		}
	}
	return out
}
