package service

import (
	"errors"

	"github.com/okian/lineup/internal/domain/roster"
)

// Sentinel kinds for service errors.
var (
	ErrNotStarted     = errors.New("service not started")
	ErrRosterTooLarge = roster.ErrTooLarge
)

// RosterTooLargeError reports a roster above the configured cap.
type RosterTooLargeError = roster.TooLargeError
