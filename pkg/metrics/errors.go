package metrics

// Outcome label values for recommendation metrics.
const (
	OutcomeOK              = "ok"
	OutcomeUnknownActivity = "unknown_activity"
	OutcomeInvalidRoster   = "invalid_roster"
	OutcomeError           = "error"
)
