package roster_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/okian/lineup/internal/domain/catalog"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func intPtr(v int) *int { return &v }

func TestNormalize(t *testing.T) {
	Convey("Given a record with only an identity", t, func() {
		raws := []roster.RawHero{{ID: "Stranger"}}

		Convey("When normalizing without a catalog", func() {
			heroes, err := roster.Normalize(raws, nil)

			Convey("Then every missing field takes its minimum", func() {
				So(err, ShouldBeNil)
				So(heroes, ShouldHaveLength, 1)
				h := heroes[0]
				So(h.ID, ShouldEqual, "stranger")
				So(h.Class, ShouldEqual, model.ClassUnknown)
				So(h.Level, ShouldEqual, model.MinHeroLevel)
				for _, lvl := range h.SkillLevels {
					So(lvl, ShouldEqual, model.MinSkillLevel)
				}
				So(h.Tags, ShouldBeEmpty)
			})
		})
	})

	Convey("Given records with skill lists", t, func() {
		raws := []roster.RawHero{{
			ID:                "gareth",
			Level:             intPtr(-4),
			SkillLevels:       []int{2, 2, 2, 2, 2, 2, 9},
			ExpeditionSkills:  []int{5, 0},
			ExplorationSkills: []int{7},
		}}

		Convey("When normalizing", func() {
			heroes, err := roster.Normalize(raws, nil)

			Convey("Then split lists override the combined list and values are clamped", func() {
				So(err, ShouldBeNil)
				h := heroes[0]
				So(h.Level, ShouldEqual, model.MinHeroLevel)
				So(h.SkillLevels, ShouldResemble, [model.SkillSlotCount]int{5, 2, 2, 5, 1, 2})
			})
		})
	})

	Convey("Given a catalog hero", t, func() {
		cat := catalog.Default()

		Convey("When the record omits the class", func() {
			heroes, err := roster.Normalize([]roster.RawHero{{ID: "IVO"}}, cat)

			Convey("Then the catalog supplies class, name, and tags", func() {
				So(err, ShouldBeNil)
				So(heroes[0].Class, ShouldEqual, model.ClassRanged)
				So(heroes[0].Name, ShouldEqual, "Ivo")
				So(heroes[0].HasTag(model.TagAreaDamage), ShouldBeTrue)
			})
		})

		Convey("When the record names an unrecognized class", func() {
			heroes, err := roster.Normalize([]roster.RawHero{{ID: "ivo", Class: "wizard"}}, cat)

			Convey("Then the record's class wins and maps to unknown", func() {
				So(err, ShouldBeNil)
				So(heroes[0].Class, ShouldEqual, model.ClassUnknown)
			})
		})
	})

	Convey("Given two records with the same identity", t, func() {
		raws := []roster.RawHero{
			{ID: "H1", Class: "frontline", Level: intPtr(10)},
			{ID: "h1", Class: "frontline", Level: intPtr(12)},
		}

		Convey("When normalizing", func() {
			heroes, err := roster.Normalize(raws, nil)

			Convey("Then it fails with a duplicate hero error and no heroes", func() {
				So(heroes, ShouldBeNil)
				So(errors.Is(err, roster.ErrDuplicateHero), ShouldBeTrue)
				var dup *roster.DuplicateHeroError
				So(errors.As(err, &dup), ShouldBeTrue)
				So(dup.HeroID, ShouldEqual, "h1")
				So(dup.First, ShouldEqual, 0)
				So(dup.Second, ShouldEqual, 1)
			})
		})
	})

	Convey("Given a record without identity", t, func() {
		_, err := roster.Normalize([]roster.RawHero{{ID: "ok"}, {ID: "   "}}, nil)

		So(errors.Is(err, roster.ErrInvalidHero), ShouldBeTrue)
		var inv *roster.InvalidHeroError
		So(errors.As(err, &inv), ShouldBeTrue)
		So(inv.Index, ShouldEqual, 1)
	})

	Convey("Given an empty roster", t, func() {
		heroes, err := roster.Normalize(nil, nil)

		So(err, ShouldBeNil)
		So(heroes, ShouldBeEmpty)
	})
}

func TestRawHeroUnmarshal(t *testing.T) {
	Convey("Given roster JSON using field aliases", t, func() {
		data := []byte(`[
			{"hero_id": "aldric", "troop_type": "Infantry", "lvl": "12", "skills": [1, 2, 3, "4", null, 5]},
			{"heroId": "ivo", "type": "marksman", "heroLevel": 7.0, "expeditionSkills": [5, 5, 5]},
			{"id": "juno", "class": 42, "level": {"bad": true}, "skill_levels": "nope"}
		]`)

		Convey("When decoding", func() {
			var raws []roster.RawHero
			err := json.Unmarshal(data, &raws)

			Convey("Then aliases are recognized and bad values treated as missing", func() {
				So(err, ShouldBeNil)
				So(raws, ShouldHaveLength, 3)

				So(raws[0].ID, ShouldEqual, "aldric")
				So(raws[0].Class, ShouldEqual, "Infantry")
				So(*raws[0].Level, ShouldEqual, 12)
				So(raws[0].SkillLevels, ShouldResemble, []int{1, 2, 3, 4, 0, 5})

				So(raws[1].ID, ShouldEqual, "ivo")
				So(raws[1].Class, ShouldEqual, "marksman")
				So(*raws[1].Level, ShouldEqual, 7)
				So(raws[1].ExpeditionSkills, ShouldResemble, []int{5, 5, 5})

				So(raws[2].ID, ShouldEqual, "juno")
				So(raws[2].Class, ShouldEqual, "42")
				So(raws[2].Level, ShouldBeNil)
				So(raws[2].SkillLevels, ShouldBeNil)
			})

			Convey("Then normalization yields canonical heroes", func() {
				heroes, err := roster.Normalize(raws, catalog.Default())
				So(err, ShouldBeNil)
				So(heroes[0].Class, ShouldEqual, model.ClassFrontline)
				So(heroes[0].SkillLevels, ShouldResemble, [model.SkillSlotCount]int{1, 2, 3, 4, 1, 5})
				So(heroes[1].SkillLevels, ShouldResemble, [model.SkillSlotCount]int{1, 1, 1, 5, 5, 5})
				So(heroes[2].Class, ShouldEqual, model.ClassUnknown)
			})
		})
	})
}

func TestRawHeroOutOfRangeNumbers(t *testing.T) {
	Convey("Given numbers far outside the int range", t, func() {
		data := []byte(`{"id": "titan", "level": 1e20, "skills": [1e20, 9999999999999999999, 4.9, -1e20]}`)

		Convey("When decoding and normalizing", func() {
			var raw roster.RawHero
			So(json.Unmarshal(data, &raw), ShouldBeNil)
			heroes, err := roster.Normalize([]roster.RawHero{raw}, nil)

			Convey("Then values saturate instead of wrapping", func() {
				So(err, ShouldBeNil)
				So(heroes[0].Level, ShouldBeGreaterThan, model.MinHeroLevel)
				So(heroes[0].SkillLevels, ShouldResemble, [model.SkillSlotCount]int{5, 5, 4, 1, 1, 1})
			})
		})
	})
}
