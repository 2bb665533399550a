// Package roster converts raw owned-hero records into canonical heroes.
package roster

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Field aliases accepted on input, in priority order.
var (
	idKeys          = []string{"id", "hero_id", "heroId", "identity", "name"}
	classKeys       = []string{"class", "type", "troop_type", "troopType", "role"}
	levelKeys       = []string{"level", "lvl", "hero_level", "heroLevel"}
	skillKeys       = []string{"skill_levels", "skillLevels", "skills"}
	explorationKeys = []string{"exploration_skills", "explorationSkills"}
	expeditionKeys  = []string{"expedition_skills", "expeditionSkills"}
)

// RawHero is an owned-hero record as supplied by the roster store. Any field
// may be absent. Skill entries that are absent or unreadable are zero.
type RawHero struct {
	ID                string `json:"id"`
	Class             string `json:"class,omitempty"`
	Level             *int   `json:"level,omitempty"`
	SkillLevels       []int  `json:"skill_levels,omitempty"`
	ExplorationSkills []int  `json:"exploration_skills,omitempty"`
	ExpeditionSkills  []int  `json:"expedition_skills,omitempty"`
}

// UnmarshalJSON accepts the aliased field names used by the different roster
// sources. Values of the wrong type are treated as missing rather than
// failing the whole roster.
func (r *RawHero) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = RawHero{}

	if v, ok := pick(fields, idKeys); ok {
		r.ID, _ = lenientString(v)
	}
	if v, ok := pick(fields, classKeys); ok {
		r.Class, _ = lenientString(v)
	}
	if v, ok := pick(fields, levelKeys); ok {
		if lvl, ok := lenientInt(v); ok {
			r.Level = &lvl
		}
	}
	if v, ok := pick(fields, skillKeys); ok {
		r.SkillLevels = lenientInts(v)
	}
	if v, ok := pick(fields, explorationKeys); ok {
		r.ExplorationSkills = lenientInts(v)
	}
	if v, ok := pick(fields, expeditionKeys); ok {
		r.ExpeditionSkills = lenientInts(v)
	}
	return nil
}

func pick(fields map[string]json.RawMessage, keys []string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := fields[k]; ok && !isNull(v) {
			return v, true
		}
	}
	return nil, false
}

func isNull(v json.RawMessage) bool {
	return len(bytes.TrimSpace(v)) == 0 || string(bytes.TrimSpace(v)) == "null"
}

func lenientString(v json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

func lenientInt(v json.RawMessage) (int, bool) {
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(saturate(f)), true
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// saturate bounds f to the int32 range so the int conversion is defined.
func saturate(f float64) float64 {
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return f
}

func lenientInts(v json.RawMessage) []int {
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return nil
	}
	out := make([]int, len(items))
	for i, item := range items {
		if n, ok := lenientInt(item); ok {
			out[i] = n
		}
	}
	return out
}
