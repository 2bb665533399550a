package assign

import (
	"fmt"
	"strings"

	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/scoring"
)

// explain builds the rationale for a slot from the sorted eligible results.
// The text is derived only from the rule, the winner's scoring inputs, and
// the candidate count.
func explain(slot model.Slot, rule model.ScoringRule, eligible []scoring.Result) string {
	var b strings.Builder
	b.WriteString(slotName(slot))
	b.WriteString(": ")

	if len(eligible) == 0 {
		if slot.Role.Wildcard() {
			b.WriteString("no unassigned hero available")
		} else {
			fmt.Fprintf(&b, "no unassigned %s hero available", slot.Role)
		}
		return b.String()
	}

	best := eligible[0]
	switch rule.Kind {
	case model.RuleSingleBestSkill:
		fmt.Fprintf(&b, "%s has the highest single %s skill level (%d)", best.HeroID, rule.Skills, best.BestSkill)
	case model.RuleTaggedCapability:
		if best.HasTag {
			fmt.Fprintf(&b, "%s has %s with %s skill total %d", best.HeroID, rule.Tag, rule.Skills, best.SkillTotal)
		} else {
			fmt.Fprintf(&b, "no remaining candidate has %s; %s has the highest %s skill total (%d)",
				rule.Tag, best.HeroID, rule.Skills, best.SkillTotal)
		}
	default:
		fmt.Fprintf(&b, "%s has the highest %s skill total (%d)", best.HeroID, rule.Skills, best.SkillTotal)
	}

	fmt.Fprintf(&b, " among %d eligible %s", len(eligible), plural(len(eligible), "candidate", "candidates"))
	if len(eligible) > 1 && eligible[1].Score == best.Score {
		fmt.Fprintf(&b, "; tied with %s, chosen by identity order", eligible[1].HeroID)
	}
	return b.String()
}

func slotName(slot model.Slot) string {
	role := string(slot.Role)
	if slot.Role.Wildcard() {
		role = "any-class"
	}
	if slot.Label != "" {
		return fmt.Sprintf("%s slot (%s, weight %g)", role, slot.Label, slot.Weight)
	}
	return fmt.Sprintf("%s slot (weight %g)", role, slot.Weight)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
