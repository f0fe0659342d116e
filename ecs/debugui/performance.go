package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
)

// History is a fixed-size ring of samples.
type History struct {
	samples []float32
	next    int
	filled  bool
}

func NewHistory(size int) *History {
	return &History{samples: make([]float32, size)}
}

// Push records a sample, overwriting the oldest once full.
func (h *History) Push(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.filled = true
	}
}

// Len returns the number of recorded samples.
func (h *History) Len() int {
	if h.filled {
		return len(h.samples)
	}
	return h.next
}

// Average returns the mean of the recorded samples, or 0.
func (h *History) Average() float32 {
	n := h.Len()
	if n == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples[:n] {
		sum += v
	}
	return sum / float32(n)
}

// Ordered returns the samples oldest first.
func (h *History) Ordered() []float32 {
	if !h.filled {
		return append([]float32(nil), h.samples[:h.next]...)
	}
	out := make([]float32, 0, len(h.samples))
	out = append(out, h.samples[h.next:]...)
	return append(out, h.samples[:h.next]...)
}

// PerformanceWindow plots frame times and lists per-system timings.
type PerformanceWindow struct {
	scheduler *ecs.Scheduler
	frames    *History
	last      time.Time
}

func NewPerformanceWindow(scheduler *ecs.Scheduler, historyFrames int) *PerformanceWindow {
	return &PerformanceWindow{
		scheduler: scheduler,
		frames:    NewHistory(historyFrames),
	}
}

func (w *PerformanceWindow) Render() {
	now := time.Now()
	if !w.last.IsZero() {
		w.frames.Push(float32(now.Sub(w.last).Seconds() * 1000))
	}
	w.last = now

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 330), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := w.frames.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Frame: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}
	if samples := w.frames.Ordered(); len(samples) > 0 {
		imgui.PlotLinesFloatPtr("##frames", &samples[0], int32(len(samples)))
	}

	stats := w.scheduler.GetStats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Frames: %d  Systems: %d", stats.Frames, stats.SystemCount))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(sys.LastDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
		}
		imgui.EndTable()
	}

	imgui.End()
}
