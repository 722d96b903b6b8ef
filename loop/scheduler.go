// Package loop runs a fixed-rate frame loop made of ordered systems and keeps
// per-system timing statistics.
package loop

import (
	"context"
	"errors"
	"reflect"
	"time"
)

// ErrStopped is returned by Run when a system requested a stop.
var ErrStopped = errors.New("loop stopped")

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	FrameCount      uint64
	LastFrame       time.Duration
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler manages and executes systems in order.
type Scheduler struct {
	systems     []System
	systemStats []*systemStatsInternal
	frames      uint64
	lastFrame   time.Duration
	stopped     bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		systems: make([]System, 0),
	}
}

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	name := "SystemFunc"
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	if systemType.Name() != "" {
		name = systemType.Name()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time, then
// flushes the frame's deferred commands.
func (s *Scheduler) Once(dt float64) {
	frameStart := time.Now()
	frame := newUpdateFrame(s.frames, dt)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	if frame.Commands.Flush() {
		s.stopped = true
	}

	s.frames++
	s.lastFrame = time.Since(frameStart)
}

// Stopped reports whether a system has requested a stop.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Run executes frames at a fixed interval until the context is cancelled or a
// system requests a stop. Each frame's work is timed and the loop sleeps only
// for what remains of the interval, so slow frames do not push later frames
// back.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	lastTime := time.Now()
	next := lastTime

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		s.Once(dt)
		if s.stopped {
			return ErrStopped
		}

		next = next.Add(interval)
		wait := time.Until(next)
		if wait <= 0 {
			// Fell behind by more than a frame; restart pacing from now
			// instead of running a burst of catch-up frames.
			if -wait > interval {
				next = time.Now()
			}
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		FrameCount:  s.frames,
		LastFrame:   s.lastFrame,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
