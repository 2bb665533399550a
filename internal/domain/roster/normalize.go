package roster

import (
	"github.com/okian/lineup/internal/domain/catalog"
	"github.com/okian/lineup/internal/domain/model"
)

// Normalize converts raw records into canonical heroes, in input order.
//
// Missing levels and skill positions take their minimum values and unknown
// classes map to model.ClassUnknown; none of these fail. A record without an
// identity fails with *InvalidHeroError and two records sharing an identity
// fail with *DuplicateHeroError. The catalog supplies display names, tags,
// and the class when the record omits it; cat may be nil.
func Normalize(raws []RawHero, cat *catalog.Catalog) ([]model.Hero, error) {
	heroes := make([]model.Hero, 0, len(raws))
	seen := make(map[string]int, len(raws))

	for i, raw := range raws {
		id := catalog.CanonicalID(raw.ID)
		if id == "" {
			return nil, &InvalidHeroError{Index: i, Reason: "missing identity"}
		}
		if first, dup := seen[id]; dup {
			return nil, &DuplicateHeroError{HeroID: id, First: first, Second: i}
		}
		seen[id] = i

		heroes = append(heroes, normalizeOne(id, raw, cat))
	}
	return heroes, nil
}

func normalizeOne(id string, raw RawHero, cat *catalog.Catalog) model.Hero {
	h := model.Hero{
		ID:    id,
		Name:  id,
		Class: model.ParseClass(raw.Class),
		Level: model.MinHeroLevel,
	}

	if entry, ok := cat.Lookup(id); ok {
		h.Name = entry.Definition.Name
		h.Tags = append([]model.Tag(nil), entry.Tags...)
		if raw.Class == "" {
			h.Class = entry.Definition.Class
		}
	}

	if raw.Level != nil && *raw.Level > model.MinHeroLevel {
		h.Level = *raw.Level
	}

	h.SkillLevels = skillLevels(raw)
	return h
}

// skillLevels fills every skill position. The combined list is applied
// first; the split exploration/expedition lists override their positions.
func skillLevels(raw RawHero) [model.SkillSlotCount]int {
	var out [model.SkillSlotCount]int
	for i := range out {
		out[i] = model.MinSkillLevel
	}
	overlay := func(offset, limit int, values []int) {
		for i, v := range values {
			if i >= limit {
				break
			}
			out[offset+i] = clampSkill(v)
		}
	}
	overlay(0, model.SkillSlotCount, raw.SkillLevels)
	overlay(0, model.ExplorationSkillCount, raw.ExplorationSkills)
	overlay(model.ExplorationSkillCount, model.ExpeditionSkillCount, raw.ExpeditionSkills)
	return out
}

func clampSkill(v int) int {
	switch {
	case v < model.MinSkillLevel:
		return model.MinSkillLevel
	case v > model.MaxSkillLevel:
		return model.MaxSkillLevel
	default:
		return v
	}
}
