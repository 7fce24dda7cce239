package tui

import "time"

// phase is the activity currently being timed.
type phase int

const (
	phaseSit phase = iota
	phaseStand
)

var phaseNames = map[phase]string{
	phaseSit:   "Sit",
	phaseStand: "Stand",
}

func (p phase) String() string {
	return phaseNames[p]
}

func (p phase) next() phase {
	if p == phaseSit {
		return phaseStand
	}
	return phaseSit
}

// intervalTimer alternates between sitting and standing. The only stored
// anchor is lastSwitch; remaining time is derived from it on every tick.
type intervalTimer struct {
	phase      phase
	sit        time.Duration
	stand      time.Duration
	lastSwitch time.Time
}

func newIntervalTimer(sit, stand time.Duration, start time.Time) intervalTimer {
	return intervalTimer{
		phase:      phaseSit,
		sit:        sit,
		stand:      stand,
		lastSwitch: start,
	}
}

func (t intervalTimer) currentPhase() phase {
	return t.phase
}

func (t intervalTimer) durationFor(p phase) time.Duration {
	if p == phaseStand {
		return t.stand
	}
	return t.sit
}

// remaining may be negative when a transition is due.
func (t intervalTimer) remaining(now time.Time) time.Duration {
	return t.durationFor(t.phase) - now.Sub(t.lastSwitch)
}

// advance flips the phase once remaining has gone negative and reports the
// phase that just ended.
func (t *intervalTimer) advance(now time.Time) (phase, bool) {
	if t.remaining(now) >= 0 {
		return t.phase, false
	}
	ended := t.phase
	t.phase = t.phase.next()
	t.lastSwitch = now
	return ended, true
}
