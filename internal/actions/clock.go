package actions

import (
	"context"
	"time"
)

// Clock supplies the current time and the simulated network latency.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in that case.
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns the current time in UTC.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Sleep waits for d on a timer.
func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Delays holds the fixed latency of every simulated request.
type Delays struct {
	Login       time.Duration
	Register    time.Duration
	Logout      time.Duration
	Guest       time.Duration
	Social      time.Duration
	Fetch       time.Duration
	Create      time.Duration
	ResetEmail  time.Duration
	ResetCode   time.Duration
	ResetSubmit time.Duration
}

// DefaultDelays mirrors the latency users see in the hosted dashboard.
var DefaultDelays = Delays{
	Login:       1200 * time.Millisecond,
	Register:    1500 * time.Millisecond,
	Logout:      500 * time.Millisecond,
	Guest:       800 * time.Millisecond,
	Social:      1000 * time.Millisecond,
	Fetch:       800 * time.Millisecond,
	Create:      600 * time.Millisecond,
	ResetEmail:  1200 * time.Millisecond,
	ResetCode:   800 * time.Millisecond,
	ResetSubmit: 1000 * time.Millisecond,
}

// NoDelays resolves every request immediately.
var NoDelays = Delays{}
