package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/loop"
)

// PerformanceStats shows frame time history and per-system timings.
type PerformanceStats struct {
	scheduler *loop.Scheduler
	timer     *FrameTimer
	history   frameHistory
}

func NewPerformanceStats(scheduler *loop.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		timer:     NewFrameTimer(nil),
		history:   newFrameHistory(historyFrames),
	}
}

func (ps *PerformanceStats) Render() {
	ps.history.add(float32(ps.timer.Delta().Seconds() * 1000))

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.GetStats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.FrameCount))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Last Frame Work: %s", stats.LastFrame))

	avg := ps.history.average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000.0 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.history.samples[0], int32(len(ps.history.samples)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// frameHistory is a fixed ring of frame times in milliseconds.
type frameHistory struct {
	samples []float32
	index   int
	filled  int
}

func newFrameHistory(size int) frameHistory {
	if size < 1 {
		size = 1
	}
	return frameHistory{samples: make([]float32, size)}
}

func (h *frameHistory) add(ms float32) {
	h.samples[h.index] = ms
	h.index = (h.index + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// average is taken over the samples recorded so far, not the whole ring.
func (h *frameHistory) average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, ms := range h.samples {
		sum += ms
	}
	return sum / float32(h.filled)
}

// FrameTimer measures the time between successive calls to Delta.
type FrameTimer struct {
	source clock.TimeSource
	last   time.Time
}

func NewFrameTimer(source clock.TimeSource) *FrameTimer {
	if source == nil {
		source = clock.SystemTime{}
	}
	return &FrameTimer{source: source, last: source.Now()}
}

func (ft *FrameTimer) Delta() time.Duration {
	now := ft.source.Now()
	delta := now.Sub(ft.last)
	ft.last = now
	return delta
}
