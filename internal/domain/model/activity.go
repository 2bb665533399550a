package model

import "fmt"

// Role is a slot constraint: one of the hero classes or the wildcard.
type Role string

// RoleAny accepts heroes of every class, including ClassUnknown.
const RoleAny Role = "any"

// RoleOf returns the role that only accepts class c.
func RoleOf(c Class) Role { return Role(c) }

// ParseRole validates a raw role name.
func ParseRole(raw string) (Role, error) {
	if Role(raw) == RoleAny {
		return RoleAny, nil
	}
	if c := Class(raw); c.Known() {
		return RoleOf(c), nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

// Wildcard reports whether r accepts any class.
func (r Role) Wildcard() bool { return r == RoleAny }

// Accepts reports whether a hero of class c may occupy a slot with role r.
func (r Role) Accepts(c Class) bool {
	if r.Wildcard() {
		return true
	}
	return c.Known() && Role(c) == r
}

// SkillSet selects which skill positions count for an activity.
type SkillSet string

// Skill sets.
const (
	SkillsExploration SkillSet = "exploration"
	SkillsExpedition  SkillSet = "expedition"
	SkillsAll         SkillSet = "all"
)

// Positions returns the skill slot indices covered by the set.
func (s SkillSet) Positions() []int {
	switch s {
	case SkillsExploration:
		return []int{0, 1, 2}
	case SkillsExpedition:
		return []int{3, 4, 5}
	case SkillsAll:
		return []int{0, 1, 2, 3, 4, 5}
	default:
		return nil
	}
}

// Valid reports whether s is a recognized skill set.
func (s SkillSet) Valid() bool { return len(s.Positions()) > 0 }

// RuleKind is the closed set of scoring rules.
type RuleKind string

// Rule kinds.
const (
	// RuleTotalSkill prefers the higher total of relevant skill levels.
	RuleTotalSkill RuleKind = "total-skill"
	// RuleTaggedCapability prefers heroes carrying a tag, then total skill.
	RuleTaggedCapability RuleKind = "tagged-capability"
	// RuleSingleBestSkill looks only at the single best relevant skill, for
	// activities where only one hero's skill is mechanically active.
	RuleSingleBestSkill RuleKind = "single-best-skill"
)

// ScoringRule is a tagged variant; Tag is only meaningful for
// RuleTaggedCapability.
type ScoringRule struct {
	Kind   RuleKind
	Skills SkillSet
	Tag    Tag
}

// Validate checks the rule is well-formed.
func (r ScoringRule) Validate() error {
	switch r.Kind {
	case RuleTotalSkill, RuleSingleBestSkill:
	case RuleTaggedCapability:
		if r.Tag == "" {
			return fmt.Errorf("rule %s requires a tag", r.Kind)
		}
	default:
		return fmt.Errorf("unknown rule kind %q", r.Kind)
	}
	if !r.Skills.Valid() {
		return fmt.Errorf("unknown skill set %q", r.Skills)
	}
	return nil
}

// Slot is one formation position.
type Slot struct {
	Role   Role
	Weight float64
	Label  string // optional, e.g. "lead" or "safest backline"
}

// ActivityProfile describes the formation shape of one activity.
type ActivityProfile struct {
	ID    string
	Name  string
	Slots []Slot
	Rule  ScoringRule
}
