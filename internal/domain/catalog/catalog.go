// Package catalog holds the static hero and skill definitions and derives
// capability tags from them once, at load time.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/lineup/internal/domain/model"
)

// Effect is a mechanical effect a skill has when it triggers.
type Effect string

// Known effects.
const (
	EffectAreaDamage      Effect = "area-damage"
	EffectSingleTarget    Effect = "single-target"
	EffectDamageReduction Effect = "damage-reduction"
	EffectHeal            Effect = "heal"
	EffectControl         Effect = "control"
	EffectBuff            Effect = "buff"
)

// effectTags is the explicit derivation table from skill effects to hero tags.
var effectTags = map[Effect]model.Tag{
	EffectAreaDamage:      model.TagAreaDamage,
	EffectSingleTarget:    model.TagSingleTargetDamage,
	EffectDamageReduction: model.TagDamageReduction,
	EffectHeal:            model.TagHeal,
	EffectControl:         model.TagControl,
	EffectBuff:            model.TagBuff,
}

// SkillKind tells which skill bar a skill belongs to.
type SkillKind string

// Skill kinds.
const (
	SkillExploration SkillKind = "exploration"
	SkillExpedition  SkillKind = "expedition"
)

// SkillDefinition describes one hero skill.
type SkillDefinition struct {
	Name    string
	Kind    SkillKind
	Effects []Effect
}

// HeroDefinition is the static description of a hero.
type HeroDefinition struct {
	ID     string
	Name   string
	Class  model.Class
	Skills []SkillDefinition
}

// Entry is a catalog hero with its derived tags.
type Entry struct {
	Definition HeroDefinition
	Tags       []model.Tag
}

// Catalog is an immutable index of hero definitions. It is safe for
// concurrent reads.
type Catalog struct {
	entries map[string]Entry
	ids     []string
}

// CanonicalID normalizes a hero identity for lookups and comparisons.
func CanonicalID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// New validates defs and derives tags for every hero.
func New(defs []HeroDefinition) (*Catalog, error) {
	c := &Catalog{
		entries: make(map[string]Entry, len(defs)),
		ids:     make([]string, 0, len(defs)),
	}
	for i, def := range defs {
		id := CanonicalID(def.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: hero at index %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := c.entries[id]; dup {
			return nil, fmt.Errorf("%w: hero %q defined twice", ErrInvalidCatalog, id)
		}
		if !def.Class.Known() {
			return nil, fmt.Errorf("%w: hero %q has unknown class %q", ErrInvalidCatalog, id, def.Class)
		}
		tags, err := DeriveTags(def)
		if err != nil {
			return nil, fmt.Errorf("%w: hero %q: %v", ErrInvalidCatalog, id, err)
		}
		def.ID = id
		c.entries[id] = Entry{Definition: def, Tags: tags}
		c.ids = append(c.ids, id)
	}
	sort.Strings(c.ids)
	return c, nil
}

// DeriveTags computes the sorted, de-duplicated capability tags of a hero
// from its skill effects.
func DeriveTags(def HeroDefinition) ([]model.Tag, error) {
	set := make(map[model.Tag]struct{})
	for _, skill := range def.Skills {
		if skill.Kind != SkillExploration && skill.Kind != SkillExpedition {
			return nil, fmt.Errorf("skill %q has unknown kind %q", skill.Name, skill.Kind)
		}
		for _, eff := range skill.Effects {
			tag, ok := effectTags[eff]
			if !ok {
				return nil, fmt.Errorf("skill %q has unknown effect %q", skill.Name, eff)
			}
			set[tag] = struct{}{}
		}
	}
	tags := make([]model.Tag, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags, nil
}

// Lookup finds a hero by identity (case-insensitive).
func (c *Catalog) Lookup(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.entries[CanonicalID(id)]
	return e, ok
}

// IDs returns every hero identity in lexical order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of heroes in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}
