package tui

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// MaxMinutes bounds a single phase to one day.
const MaxMinutes = 24 * 60

// ErrDurationTooLong is returned for phase lengths above MaxMinutes.
var ErrDurationTooLong = errors.New("duration too long")

// Config holds the phase lengths chosen on the command line.
type Config struct {
	Sit   time.Duration
	Stand time.Duration
	Setup bool
}

// DefaultConfig returns 20 minutes sitting and 5 standing.
func DefaultConfig() Config {
	return Config{
		Sit:   20 * time.Minute,
		Stand: 5 * time.Minute,
	}
}

// NewConfig validates minute counts and converts them to durations.
// Zero is allowed and makes the phase flip on the next tick.
func NewConfig(sitMinutes, standMinutes uint32) (Config, error) {
	if err := checkMinutes("sit time", uint64(sitMinutes)); err != nil {
		return Config{}, err
	}
	if err := checkMinutes("stand time", uint64(standMinutes)); err != nil {
		return Config{}, err
	}
	return Config{
		Sit:   time.Duration(sitMinutes) * time.Minute,
		Stand: time.Duration(standMinutes) * time.Minute,
	}, nil
}

func checkMinutes(name string, n uint64) error {
	if n > MaxMinutes {
		return fmt.Errorf("%s of %d minutes: %w (max %d)", name, n, ErrDurationTooLong, MaxMinutes)
	}
	return nil
}

func parseMinutes(name, s string) (time.Duration, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number of minutes", name)
	}
	if err := checkMinutes(name, n); err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Minute, nil
}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

// --- Helpers ---

// formatClock renders a countdown as M:SS. Minutes are not wrapped at 60.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int64(d / time.Minute)
	s := int64(d/time.Second) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
