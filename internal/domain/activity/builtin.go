package activity

import "github.com/okian/lineup/internal/domain/model"

func slot(role model.Role, weight float64, label string) model.Slot {
	return model.Slot{Role: role, Weight: weight, Label: label}
}

var (
	frontline = model.RoleOf(model.ClassFrontline)
	flex      = model.RoleOf(model.ClassFlex)
	ranged    = model.RoleOf(model.ClassRanged)
)

// builtinProfiles is the activity table shipped with the binary.
var builtinProfiles = []model.ActivityProfile{
	{
		ID:   "rally-lead",
		Name: "Rally lead",
		// Only the rally leader's strongest expedition skill applies.
		Slots: []model.Slot{slot(model.RoleAny, 1, "lead")},
		Rule:  model.ScoringRule{Kind: model.RuleSingleBestSkill, Skills: model.SkillsExpedition},
	},
	{
		ID:   "rally-boss",
		Name: "Rally boss",
		Slots: []model.Slot{
			slot(frontline, 2, "first to take damage"),
			slot(flex, 1, "middle line"),
			slot(ranged, 3, "safest backline"),
		},
		Rule: model.ScoringRule{Kind: model.RuleTotalSkill, Skills: model.SkillsExpedition},
	},
	{
		ID:   "5-a-side-arena",
		Name: "5-a-side arena",
		Slots: []model.Slot{
			slot(frontline, 5, "front left"),
			slot(frontline, 4, "front right"),
			slot(flex, 3, "center"),
			slot(ranged, 2, "back left"),
			slot(model.RoleAny, 1, "back right"),
		},
		Rule: model.ScoringRule{Kind: model.RuleTaggedCapability, Skills: model.SkillsExpedition, Tag: model.TagAreaDamage},
	},
	{
		ID:   "exploration-stage",
		Name: "Exploration stage",
		Slots: []model.Slot{
			slot(frontline, 3, "front"),
			slot(flex, 2, "middle"),
			slot(ranged, 2, "back"),
		},
		Rule: model.ScoringRule{Kind: model.RuleTotalSkill, Skills: model.SkillsExploration},
	},
	{
		ID:   "garrison-defense",
		Name: "Garrison defense",
		Slots: []model.Slot{
			slot(frontline, 3, "gate"),
			slot(model.RoleAny, 2, "wall"),
			slot(model.RoleAny, 1, "reserve"),
		},
		Rule: model.ScoringRule{Kind: model.RuleTaggedCapability, Skills: model.SkillsExpedition, Tag: model.TagDamageReduction},
	},
	{
		ID:   "beast-hunt",
		Name: "Beast hunt",
		Slots: []model.Slot{
			slot(model.RoleAny, 2, "striker"),
			slot(model.RoleAny, 1, "support"),
		},
		Rule: model.ScoringRule{Kind: model.RuleTaggedCapability, Skills: model.SkillsExploration, Tag: model.TagSingleTargetDamage},
	},
}

// Default returns a registry holding the built-in activity table.
func Default() *Registry {
	r, err := NewRegistry(builtinProfiles)
	if err != nil {
		panic("builtin activity table is invalid: " + err.Error())
	}
	return r
}

// Builtin returns a copy of the built-in profiles, for callers that extend
// the table from a file.
func Builtin() []model.ActivityProfile {
	out := make([]model.ActivityProfile, len(builtinProfiles))
	for i, p := range builtinProfiles {
		p.Slots = append([]model.Slot(nil), p.Slots...)
		out[i] = p
	}
	return out
}
