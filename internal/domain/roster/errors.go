package roster

import (
	"errors"
	"fmt"
)

// Sentinel kinds for roster errors. These allow errors.Is from callers.
var (
	ErrDuplicateHero = errors.New("duplicate hero")
	ErrInvalidHero   = errors.New("invalid hero record")
	ErrTooLarge      = errors.New("roster too large")
)

// DuplicateHeroError reports two raw records sharing one identity.
type DuplicateHeroError struct {
	HeroID string
	First  int // index of the first record
	Second int // index of the conflicting record
}

func (e *DuplicateHeroError) Error() string {
	return fmt.Sprintf("duplicate hero %q at roster positions %d and %d", e.HeroID, e.First, e.Second)
}

// Is matches ErrDuplicateHero.
func (e *DuplicateHeroError) Is(target error) bool { return target == ErrDuplicateHero }

// InvalidHeroError reports a raw record that cannot be identified.
type InvalidHeroError struct {
	Index  int
	Reason string
}

func (e *InvalidHeroError) Error() string {
	return fmt.Sprintf("invalid hero at roster position %d: %s", e.Index, e.Reason)
}

// Is matches ErrInvalidHero.
func (e *InvalidHeroError) Is(target error) bool { return target == ErrInvalidHero }

// TooLargeError reports a roster above the configured cap.
type TooLargeError struct {
	Size int
	Max  int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("roster has %d heroes, at most %d allowed", e.Size, e.Max)
}

// Is matches ErrTooLarge.
func (e *TooLargeError) Is(target error) bool { return target == ErrTooLarge }
