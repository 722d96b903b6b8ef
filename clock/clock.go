// Package clock converts real elapsed time into discrete logical cycles at an
// adjustable rate. The frame loop runs at a fixed rate while the clock decides
// how often gravity fires, so difficulty can scale continuously.
package clock

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/tile"
)

// Clock accumulates elapsed time and releases it as whole cycles.
type Clock struct {
	source     TimeSource
	rate       float64
	cycle      time.Duration
	lastUpdate time.Time
	excess     time.Duration
	elapsed    int
	paused     bool
}

// New creates an unpaused clock running at cyclesPerSecond against source.
// A nil source uses SystemTime.
func New(cyclesPerSecond float64, source TimeSource) *Clock {
	if source == nil {
		source = SystemTime{}
	}

	c := &Clock{source: source}
	c.SetCyclesPerSecond(cyclesPerSecond)
	c.Reset()
	return c
}

// SetCyclesPerSecond changes the cycle duration going forward. Time debt that
// has already accumulated is kept and measured against the new duration on the
// next Update.
func (c *Clock) SetCyclesPerSecond(rate float64) {
	if !(rate > 0) {
		panic(fmt.Errorf("%w: cycles per second must be positive, got %v", tile.ErrInvalidArgument, rate))
	}

	cycle := time.Duration(float64(time.Second) / rate)
	if cycle <= 0 {
		cycle = 1
	}
	c.rate = rate
	c.cycle = cycle
}

// CyclesPerSecond returns the current rate.
func (c *Clock) CyclesPerSecond() float64 {
	return c.rate
}

// Update advances the clock by the real time since the previous Update. While
// paused the time is observed but discarded.
func (c *Clock) Update() {
	now := c.source.Now()
	delta := now.Sub(c.lastUpdate)
	c.lastUpdate = now

	if c.paused || delta < 0 {
		return
	}

	debt := c.excess + delta
	c.elapsed += int(debt / c.cycle)
	c.excess = debt % c.cycle
}

// HasElapsedCycle reports whether a cycle has matured, consuming it if so.
// Cycles are consumed one per call.
func (c *Clock) HasElapsedCycle() bool {
	if c.elapsed > 0 {
		c.elapsed--
		return true
	}
	return false
}

// PeekElapsedCycle reports whether a cycle has matured without consuming it.
func (c *Clock) PeekElapsedCycle() bool {
	return c.elapsed > 0
}

// Pending returns the number of matured, unconsumed cycles.
func (c *Clock) Pending() int {
	return c.elapsed
}

// Reset discards matured cycles and accumulated time. Rate and pause state are
// left alone.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.excess = 0
	c.lastUpdate = c.source.Now()
}

// SetPaused freezes or resumes accumulation without resetting.
func (c *Clock) SetPaused(paused bool) {
	c.paused = paused
}

func (c *Clock) IsPaused() bool {
	return c.paused
}
