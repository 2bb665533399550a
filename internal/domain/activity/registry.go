// Package activity holds the registry of activity formation profiles.
//
// The registry is populated once at process start and never mutated, so it is
// safe for unsynchronized concurrent reads.
package activity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/lineup/internal/domain/model"
)

// Registry maps activity ids to profiles.
type Registry struct {
	profiles map[string]model.ActivityProfile
	ids      []string
}

// NewRegistry validates profiles and builds an immutable registry.
func NewRegistry(profiles []model.ActivityProfile) (*Registry, error) {
	r := &Registry{
		profiles: make(map[string]model.ActivityProfile, len(profiles)),
		ids:      make([]string, 0, len(profiles)),
	}
	for _, p := range profiles {
		p.ID = strings.TrimSpace(p.ID)
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, dup := r.profiles[p.ID]; dup {
			return nil, fmt.Errorf("%w: activity %q registered twice", ErrInvalidProfile, p.ID)
		}
		// Own the slot slice so later edits by the caller cannot leak in.
		p.Slots = append([]model.Slot(nil), p.Slots...)
		r.profiles[p.ID] = p
		r.ids = append(r.ids, p.ID)
	}
	sort.Strings(r.ids)
	return r, nil
}

func validate(p model.ActivityProfile) error {
	if p.ID == "" {
		return fmt.Errorf("%w: activity without id", ErrInvalidProfile)
	}
	if len(p.Slots) == 0 {
		return fmt.Errorf("%w: activity %q has no slots", ErrInvalidProfile, p.ID)
	}
	for i, s := range p.Slots {
		if _, err := model.ParseRole(string(s.Role)); err != nil {
			return fmt.Errorf("%w: activity %q slot %d: %v", ErrInvalidProfile, p.ID, i, err)
		}
		if s.Weight <= 0 {
			return fmt.Errorf("%w: activity %q slot %d: weight must be positive", ErrInvalidProfile, p.ID, i)
		}
	}
	if err := p.Rule.Validate(); err != nil {
		return fmt.Errorf("%w: activity %q: %v", ErrInvalidProfile, p.ID, err)
	}
	return nil
}

// Lookup returns the profile for activityID or *UnknownActivityError. It
// never falls back to a default shape.
func (r *Registry) Lookup(activityID string) (model.ActivityProfile, error) {
	p, ok := r.profiles[activityID]
	if !ok {
		return model.ActivityProfile{}, &UnknownActivityError{ActivityID: activityID}
	}
	p.Slots = append([]model.Slot(nil), p.Slots...)
	return p, nil
}

// List returns all profiles ordered by id.
func (r *Registry) List() []model.ActivityProfile {
	out := make([]model.ActivityProfile, 0, len(r.ids))
	for _, id := range r.ids {
		p := r.profiles[id]
		p.Slots = append([]model.Slot(nil), p.Slots...)
		out = append(out, p)
	}
	return out
}

// Len returns the number of registered activities.
func (r *Registry) Len() int { return len(r.ids) }
