package loop_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordSystem struct {
	name  string
	trace *[]string
	dts   []float64
}

func (s *recordSystem) Execute(frame *loop.UpdateFrame) {
	*s.trace = append(*s.trace, s.name)
	s.dts = append(s.dts, frame.DeltaTime)
}

type sleepSystem struct {
	executeCount int
	sleepDur     time.Duration
}

func (s *sleepSystem) Execute(frame *loop.UpdateFrame) {
	s.executeCount++
	if s.sleepDur > 0 {
		time.Sleep(s.sleepDur)
	}
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	var trace []string
	scheduler := loop.NewScheduler()
	first := &recordSystem{name: "input", trace: &trace}
	second := &recordSystem{name: "engine", trace: &trace}
	third := &recordSystem{name: "render", trace: &trace}
	scheduler.Register(first)
	scheduler.Register(second)
	scheduler.Register(third)

	scheduler.Once(0.02)
	scheduler.Once(0.5)

	assert.Equal(t, []string{"input", "engine", "render", "input", "engine", "render"}, trace)
	assert.Equal(t, []float64{0.02, 0.5}, second.dts)
	assert.Equal(t, uint64(2), scheduler.GetStats().FrameCount)
}

func TestSchedulerDeferRunsAfterAllSystems(t *testing.T) {
	var trace []string
	scheduler := loop.NewScheduler()
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		frame.Commands.Defer(func() { trace = append(trace, "overlay") })
		trace = append(trace, "first")
	}))
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		trace = append(trace, "second")
	}))

	scheduler.Once(0)
	scheduler.Once(0)

	assert.Equal(t, []string{"first", "second", "overlay", "first", "second", "overlay"}, trace)
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler()

	stats := scheduler.GetStats()
	assert.Equal(t, 0, stats.SystemCount)
	assert.Equal(t, int64(0), stats.TotalExecutions)

	sys1 := &sleepSystem{sleepDur: 1 * time.Millisecond}
	sys2 := &sleepSystem{sleepDur: 2 * time.Millisecond}
	scheduler.Register(sys1)
	scheduler.Register(sys2)
	scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) {}))

	scheduler.Once(0.02)
	scheduler.Once(0.02)
	scheduler.Once(0.02)

	stats = scheduler.GetStats()
	require.Len(t, stats.Systems, 3)
	assert.Equal(t, int64(9), stats.TotalExecutions)
	assert.Equal(t, "SystemFunc", stats.Systems[2].Name)

	for _, sysStats := range stats.Systems[:2] {
		assert.Equal(t, "sleepSystem", sysStats.Name)
		assert.Equal(t, int64(3), sysStats.ExecutionCount)
		assert.NotZero(t, sysStats.MinDuration)
		assert.NotZero(t, sysStats.LastDuration)
		assert.LessOrEqual(t, sysStats.MinDuration, sysStats.AvgDuration)
		assert.LessOrEqual(t, sysStats.AvgDuration, sysStats.MaxDuration)
	}
	assert.GreaterOrEqual(t, stats.LastFrame, 3*time.Millisecond)
	assert.Equal(t, 3, sys1.executeCount)
	assert.Equal(t, 3, sys2.executeCount)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	scheduler := loop.NewScheduler()
	sys := &sleepSystem{}
	scheduler.Register(sys)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- scheduler.Run(ctx, time.Millisecond)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(200 * time.Millisecond):
		t.Fatal("scheduler did not stop after context cancellation")
	}
	assert.NotZero(t, sys.executeCount)
}

func TestRunStopsOnRequest(t *testing.T) {
	scheduler := loop.NewScheduler()
	frames := 0
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		frames++
		if frame.Index == 4 {
			frame.Commands.Stop()
		}
	}))

	err := scheduler.Run(context.Background(), time.Millisecond)
	assert.ErrorIs(t, err, loop.ErrStopped)
	assert.Equal(t, 5, frames)
	assert.True(t, scheduler.Stopped())
}

func TestRunPacesFrames(t *testing.T) {
	scheduler := loop.NewScheduler()
	var total float64
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		total += frame.DeltaTime
		if frame.Index == 10 {
			frame.Commands.Stop()
		}
	}))

	start := time.Now()
	err := scheduler.Run(context.Background(), 5*time.Millisecond)
	require.ErrorIs(t, err, loop.ErrStopped)

	// Ten full intervals separate the first and the eleventh frame.
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
	assert.InDelta(t, 0.05, total, 0.05)
}
