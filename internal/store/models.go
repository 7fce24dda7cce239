package store

import "time"

// PhaseRecord is one completed Sit or Stand phase.
type PhaseRecord struct {
	ID        int64
	Phase     string
	StartedAt time.Time
	EndedAt   time.Time
	Planned   time.Duration
	Actual    time.Duration
}

// PhaseTotal aggregates all completed phases with the same label.
type PhaseTotal struct {
	Phase string
	Count int
	Total time.Duration
}
