package store

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange is returned when a phase would end before it started.
var ErrInvalidRange = errors.New("phase ends before it starts")

// RecordPhase stores a finished phase and returns it with its new ID.
func (s *Store) RecordPhase(phase string, startedAt, endedAt time.Time, planned time.Duration) (*PhaseRecord, error) {
	if endedAt.Before(startedAt) {
		return nil, fmt.Errorf("record %s phase: %w", phase, ErrInvalidRange)
	}
	actual := endedAt.Sub(startedAt)
	res, err := s.db.Exec(
		`INSERT INTO phase_log (phase, started_at, ended_at, planned_seconds, actual_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		phase,
		startedAt.UTC().Format(time.RFC3339Nano),
		endedAt.UTC().Format(time.RFC3339Nano),
		int64(planned/time.Second),
		actual.Milliseconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("record %s phase: %w", phase, err)
	}
	id, _ := res.LastInsertId()
	return s.GetPhase(id)
}

// GetPhase returns the phase with the given ID.
func (s *Store) GetPhase(id int64) (*PhaseRecord, error) {
	r := &PhaseRecord{}
	var startedAt, endedAt string
	var plannedSecs, actualMs int64

	err := s.db.QueryRow(
		`SELECT id, phase, started_at, ended_at, planned_seconds, actual_ms
		 FROM phase_log WHERE id = ?`, id,
	).Scan(&r.ID, &r.Phase, &startedAt, &endedAt, &plannedSecs, &actualMs)
	if err != nil {
		return nil, fmt.Errorf("get phase %d: %w", id, err)
	}
	r.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
	r.EndedAt, _ = time.Parse(time.RFC3339Nano, endedAt)
	r.Planned = time.Duration(plannedSecs) * time.Second
	r.Actual = time.Duration(actualMs) * time.Millisecond
	return r, nil
}

// ListPhases returns the last limit phases in the order they finished.
// A limit of zero or less returns every phase.
func (s *Store) ListPhases(limit int) ([]PhaseRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(`
		SELECT id, phase, started_at, ended_at, planned_seconds, actual_ms
		FROM (SELECT * FROM phase_log ORDER BY id DESC LIMIT ?)
		ORDER BY id ASC`, limit)
	if err != nil {
		return nil, fmt.Errorf("list phases: %w", err)
	}
	defer rows.Close()

	var records []PhaseRecord
	for rows.Next() {
		var r PhaseRecord
		var startedAt, endedAt string
		var plannedSecs, actualMs int64
		if err := rows.Scan(&r.ID, &r.Phase, &startedAt, &endedAt, &plannedSecs, &actualMs); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
		r.EndedAt, _ = time.Parse(time.RFC3339Nano, endedAt)
		r.Planned = time.Duration(plannedSecs) * time.Second
		r.Actual = time.Duration(actualMs) * time.Millisecond
		records = append(records, r)
	}
	return records, rows.Err()
}

// PhaseTotals sums actual time and counts per phase label.
func (s *Store) PhaseTotals() ([]PhaseTotal, error) {
	rows, err := s.db.Query(`
		SELECT phase, COUNT(*), COALESCE(SUM(actual_ms), 0)
		FROM phase_log
		GROUP BY phase
		ORDER BY phase`)
	if err != nil {
		return nil, fmt.Errorf("phase totals: %w", err)
	}
	defer rows.Close()

	var totals []PhaseTotal
	for rows.Next() {
		var t PhaseTotal
		var ms int64
		if err := rows.Scan(&t.Phase, &t.Count, &ms); err != nil {
			return nil, err
		}
		t.Total = time.Duration(ms) * time.Millisecond
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// CountPhases returns how many phases have been recorded.
func (s *Store) CountPhases() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM phase_log`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count phases: %w", err)
	}
	return n, nil
}
