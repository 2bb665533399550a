// Package model contains domain models passed between layers.
package model

import "strings"

// Skill slot layout shared by every hero: three exploration skills followed
// by three expedition skills.
const (
	ExplorationSkillCount = 3
	ExpeditionSkillCount  = 3
	SkillSlotCount        = ExplorationSkillCount + ExpeditionSkillCount

	MinSkillLevel = 1
	MaxSkillLevel = 5
	MinHeroLevel  = 1
)

// Class is the combat role of a hero.
type Class string

// Known classes. ClassUnknown is the sentinel for unrecognized input.
const (
	ClassFrontline Class = "frontline"
	ClassFlex      Class = "flex"
	ClassRanged    Class = "ranged"
	ClassUnknown   Class = "unknown"
)

// Classes lists the recognized classes in display order.
var Classes = []Class{ClassFrontline, ClassFlex, ClassRanged}

// Known reports whether c is one of the recognized classes.
func (c Class) Known() bool {
	switch c {
	case ClassFrontline, ClassFlex, ClassRanged:
		return true
	default:
		return false
	}
}

// classAliases maps lower-cased raw class names to canonical classes.
var classAliases = map[string]Class{
	"frontline":  ClassFrontline,
	"front-line": ClassFrontline,
	"front_line": ClassFrontline,
	"front":      ClassFrontline,
	"infantry":   ClassFrontline,
	"tank":       ClassFrontline,
	"flex":       ClassFlex,
	"lancer":     ClassFlex,
	"hybrid":     ClassFlex,
	"mid":        ClassFlex,
	"ranged":     ClassRanged,
	"marksman":   ClassRanged,
	"archer":     ClassRanged,
	"back":       ClassRanged,
	"back-line":  ClassRanged,
	"backline":   ClassRanged,
}

// ParseClass maps a raw class name to a Class. Unrecognized or empty input
// yields ClassUnknown.
func ParseClass(raw string) Class {
	if c, ok := classAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return ClassUnknown
}

// Tag is a static capability flag derived from a hero's skill definitions.
type Tag string

// Capability tags.
const (
	TagAreaDamage         Tag = "deals-area-damage"
	TagSingleTargetDamage Tag = "deals-single-target-damage"
	TagDamageReduction    Tag = "reduces-damage-taken"
	TagHeal               Tag = "heals-allies"
	TagControl            Tag = "controls-enemies"
	TagBuff               Tag = "buffs-allies"
)

// Hero is the canonical, normalized representation of an owned hero.
type Hero struct {
	ID          string
	Name        string
	Class       Class
	Level       int
	SkillLevels [SkillSlotCount]int
	Tags        []Tag // sorted, no duplicates
}

// HasTag reports whether the hero carries tag t.
func (h Hero) HasTag(t Tag) bool {
	for _, tag := range h.Tags {
		if tag == t {
			return true
		}
	}
	return false
}
