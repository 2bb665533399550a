package lineupcheck

import (
	"fmt"
	"math/rand"

	"github.com/okian/lineup/internal/domain/catalog"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/roster"
)

// rawClasses are the class spellings a player export may use.
var rawClasses = []string{"frontline", "ranged", "flex", "Infantry", "marksman", "cavalry", "wizard"}

// generator builds random rosters of unique heroes. It is not safe for
// concurrent use.
type generator struct {
	rng       *rand.Rand
	ids       []string
	maxHeroes int
}

func newGenerator(seed int64, cat *catalog.Catalog, maxHeroes int) *generator {
	if maxHeroes <= 0 {
		maxHeroes = defaultMaxHeroes
	}
	return &generator{
		rng:       rand.New(rand.NewSource(seed)),
		ids:       cat.IDs(),
		maxHeroes: maxHeroes,
	}
}

// roster returns a roster of 0..maxHeroes heroes with distinct identities.
func (g *generator) roster(index int) []roster.RawHero {
	n := g.rng.Intn(g.maxHeroes + 1)
	raws := make([]roster.RawHero, 0, n)
	order := g.rng.Perm(len(g.ids))

	for i := 0; i < n; i++ {
		var id string
		if i < len(order) && g.rng.Intn(strangerRatio) != 0 {
			id = g.ids[order[i]]
		} else {
			id = fmt.Sprintf("stranger-%d-%d", index, i)
		}
		raws = append(raws, g.hero(id))
	}
	return raws
}

func (g *generator) hero(id string) roster.RawHero {
	level := 1 + g.rng.Intn(60)
	h := roster.RawHero{ID: id, Level: &level}
	if g.rng.Intn(classlessRatio) != 0 {
		h.Class = rawClasses[g.rng.Intn(len(rawClasses))]
	}
	if g.rng.Intn(splitSkillsRatio) == 0 {
		h.ExplorationSkills = g.skills(model.ExplorationSkillCount)
		h.ExpeditionSkills = g.skills(model.ExpeditionSkillCount)
	} else {
		h.SkillLevels = g.skills(model.SkillSlotCount)
	}
	return h
}

// skills returns up to n levels, occasionally out of range to exercise clamping.
func (g *generator) skills(n int) []int {
	out := make([]int, g.rng.Intn(n+1))
	for i := range out {
		out[i] = g.rng.Intn(model.MaxSkillLevel + 2)
	}
	return out
}
