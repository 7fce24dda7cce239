package store

import (
	"errors"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// recordAt inserts a phase that started at base+startOffset and lasted dur.
func recordAt(t *testing.T, s *Store, phase string, base time.Time, startOffset, dur time.Duration) *PhaseRecord {
	t.Helper()
	start := base.Add(startOffset)
	r, err := s.RecordPhase(phase, start, start.Add(dur), dur)
	if err != nil {
		t.Fatalf("record phase: %v", err)
	}
	return r
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != currentVersion {
		t.Fatalf("expected user_version %d, got %d", currentVersion, version)
	}
}

func TestNewMemoryIsolated(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)

	recordAt(t, a, "Sit", time.Now(), 0, time.Minute)

	n, err := b.CountPhases()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("second store should be empty, got %d phases", n)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Phases
// ============================================================

func TestRecordAndGetPhase(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	r, err := s.RecordPhase("Sit", base, base.Add(20*time.Minute+1500*time.Millisecond), 20*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if r.ID == 0 {
		t.Fatal("expected non-zero ID")
	}
	if r.Phase != "Sit" {
		t.Fatalf("expected Sit, got %q", r.Phase)
	}
	if r.Planned != 20*time.Minute {
		t.Fatalf("expected 20m planned, got %v", r.Planned)
	}
	if r.Actual != 20*time.Minute+1500*time.Millisecond {
		t.Fatalf("unexpected actual duration %v", r.Actual)
	}
	if !r.StartedAt.Equal(base) {
		t.Fatalf("started_at round trip: got %v", r.StartedAt)
	}

	got, err := s.GetPhase(r.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Phase != r.Phase || got.Actual != r.Actual {
		t.Fatalf("get returned %+v, want %+v", got, r)
	}
}

func TestRecordPhaseRejectsUnknownLabel(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	if _, err := s.RecordPhase("Lie", now, now.Add(time.Second), time.Second); err == nil {
		t.Fatal("expected error for unknown phase label")
	}
}

func TestRecordPhaseRejectsInvertedRange(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	_, err := s.RecordPhase("Sit", now, now.Add(-time.Second), time.Minute)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestRecordZeroLengthPhase(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	r, err := s.RecordPhase("Stand", now, now, 0)
	if err != nil {
		t.Fatal(err)
	}
	if r.Actual != 0 || r.Planned != 0 {
		t.Fatalf("expected zero durations, got %+v", r)
	}
}

func TestGetPhaseNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetPhase(999); err == nil {
		t.Fatal("expected error for missing phase")
	}
}

func TestListPhasesChronological(t *testing.T) {
	s := newTestStore(t)
	base := time.Now().Add(-time.Hour)
	recordAt(t, s, "Sit", base, 0, 20*time.Minute)
	recordAt(t, s, "Stand", base, 20*time.Minute, 5*time.Minute)
	recordAt(t, s, "Sit", base, 25*time.Minute, 20*time.Minute)

	all, err := s.ListPhases(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(all))
	}
	want := []string{"Sit", "Stand", "Sit"}
	for i, r := range all {
		if r.Phase != want[i] {
			t.Fatalf("phase %d: got %q, want %q", i, r.Phase, want[i])
		}
	}
}

func TestListPhasesLimitKeepsMostRecent(t *testing.T) {
	s := newTestStore(t)
	base := time.Now().Add(-time.Hour)
	recordAt(t, s, "Sit", base, 0, time.Minute)
	recordAt(t, s, "Stand", base, time.Minute, time.Minute)
	last := recordAt(t, s, "Sit", base, 2*time.Minute, time.Minute)

	recent, err := s.ListPhases(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(recent))
	}
	if recent[0].Phase != "Stand" {
		t.Fatalf("expected oldest of the two to be Stand, got %q", recent[0].Phase)
	}
	if recent[1].ID != last.ID {
		t.Fatalf("expected last record %d, got %d", last.ID, recent[1].ID)
	}
}

func TestListPhasesEmpty(t *testing.T) {
	s := newTestStore(t)
	list, err := s.ListPhases(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}

func TestPhaseTotals(t *testing.T) {
	s := newTestStore(t)
	base := time.Now().Add(-time.Hour)
	recordAt(t, s, "Sit", base, 0, 20*time.Minute)
	recordAt(t, s, "Stand", base, 20*time.Minute, 5*time.Minute)
	recordAt(t, s, "Sit", base, 25*time.Minute, 10*time.Minute)

	totals, err := s.PhaseTotals()
	if err != nil {
		t.Fatal(err)
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 totals, got %d", len(totals))
	}
	// Ordered by label.
	if totals[0].Phase != "Sit" || totals[0].Count != 2 || totals[0].Total != 30*time.Minute {
		t.Fatalf("unexpected sit total: %+v", totals[0])
	}
	if totals[1].Phase != "Stand" || totals[1].Count != 1 || totals[1].Total != 5*time.Minute {
		t.Fatalf("unexpected stand total: %+v", totals[1])
	}
}

func TestCountPhases(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 4; i++ {
		recordAt(t, s, "Sit", time.Now(), time.Duration(i)*time.Minute, time.Minute)
	}
	n, err := s.CountPhases()
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("expected 4, got %d", n)
	}
}

func TestClosedStoreErrors(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	if _, err := s.CountPhases(); err == nil {
		t.Fatal("expected error on closed store")
	}
}
