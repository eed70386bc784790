// Package tui provides the Bubble Tea front end for the shmup.
// It handles the terminal UI loop, input latching, frame timing and presentation.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 40
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickClock measures frame durations from tick timestamps.
// It implements core.FrameClock.
type tickClock struct {
	start   time.Time
	last    time.Time
	elapsed time.Duration
}

// Advance records a tick at t.
func (c *tickClock) Advance(t time.Time) {
	if c.start.IsZero() {
		c.start, c.last = t, t
	}
	c.elapsed = t.Sub(c.last)
	if c.elapsed < 0 {
		c.elapsed = 0
	}
	c.last = t
}

// ElapsedMillis returns the time between the two latest ticks.
func (c *tickClock) ElapsedMillis() float64 {
	return float64(c.elapsed) / float64(time.Millisecond)
}

// Now returns the time since the first tick.
func (c *tickClock) Now() time.Duration {
	return c.last.Sub(c.start)
}
