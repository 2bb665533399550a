package lineupcheck

import (
	"time"

	"github.com/okian/lineup/internal/domain/types"
)

// Config holds configuration for a verification run.
type Config struct {
	BaseURL   string        // Base URL of the service
	Rosters   int           // Number of random rosters to submit
	MaxHeroes int           // Upper bound on heroes per roster
	Workers   int           // Number of concurrent workers
	Timeout   time.Duration // HTTP request timeout
	Seed      int64         // Seed for roster generation; 0 picks one from the clock
	Catalog   string        // Optional hero catalog YAML the service was started with
	Verbose   bool          // Log every violation as it is found
}

// Violation is one broken property found in a response.
type Violation struct {
	Roster     int    `json:"roster"`
	ActivityID string `json:"activity_id,omitempty"`
	Check      string `json:"check"`
	Detail     string `json:"detail"`
}

// Stats holds run statistics.
type Stats struct {
	RunID            string
	Seed             int64
	RostersGenerated int
	RostersChecked   int
	Requests         int64
	RequestsFailed   int64
	Results          int64
	FilledSlots      int64
	UnfilledSlots    int64
	Violations       []Violation
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}

// rosterResponse pairs a submitted roster with the two responses it produced.
type rosterResponse struct {
	index   int
	first   []byte
	second  []byte
	results []types.RecommendationResult
}
