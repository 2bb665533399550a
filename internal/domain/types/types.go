// Package types contains the external-facing result shapes shared by the
// engine, the HTTP API, and the verification tool.
package types

// SlotResult is one formation slot of a recommendation. HeroID and Score are
// nil when the slot is unfilled.
type SlotResult struct {
	SlotIndex int      `json:"slot_index"`
	Role      string   `json:"role"`
	Label     string   `json:"label,omitempty"`
	Weight    float64  `json:"weight"`
	HeroID    *string  `json:"hero_id"`
	Score     *float64 `json:"score"`
	Rationale string   `json:"rationale"`
}

// Filled reports whether a hero occupies the slot.
func (s SlotResult) Filled() bool { return s.HeroID != nil }

// CandidateResult is an eligible hero that was not selected.
type CandidateResult struct {
	HeroID string  `json:"hero_id"`
	Score  float64 `json:"score"`
}

// RecommendationResult is the engine's response for one activity.
type RecommendationResult struct {
	ActivityID       string            `json:"activity_id"`
	Rule             string            `json:"rule"`
	BySlot           []SlotResult      `json:"by_slot"`
	UnusedCandidates []CandidateResult `json:"unused_candidates"`
}

// Unfilled returns the number of empty slots.
func (r RecommendationResult) Unfilled() int {
	n := 0
	for _, s := range r.BySlot {
		if !s.Filled() {
			n++
		}
	}
	return n
}

// SlotSummary describes a slot of a registered activity.
type SlotSummary struct {
	Index  int     `json:"index"`
	Role   string  `json:"role"`
	Label  string  `json:"label,omitempty"`
	Weight float64 `json:"weight"`
}

// ActivitySummary describes a registered activity.
type ActivitySummary struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Rule   string        `json:"rule"`
	Skills string        `json:"skills"`
	Tag    string        `json:"tag,omitempty"`
	Slots  []SlotSummary `json:"slots"`
}
