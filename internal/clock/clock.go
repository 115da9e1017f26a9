package clock

import "time"

// Clock supplies the current time. Injected so time-based rules (credit
// penalties, deposit maturity) are testable without wall-clock waits.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
