package activity

import (
	"errors"
	"fmt"
)

// Sentinel kinds for activity errors.
var (
	ErrUnknownActivity = errors.New("unknown activity")
	ErrInvalidProfile  = errors.New("invalid activity profile")
	ErrLoadProfiles    = errors.New("load activity profiles failed")
)

// UnknownActivityError reports a lookup for an unregistered activity id.
type UnknownActivityError struct {
	ActivityID string
}

func (e *UnknownActivityError) Error() string {
	return fmt.Sprintf("unknown activity %q", e.ActivityID)
}

// Is matches ErrUnknownActivity.
func (e *UnknownActivityError) Is(target error) bool { return target == ErrUnknownActivity }
