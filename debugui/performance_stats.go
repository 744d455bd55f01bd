package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/round"
)

// PerformanceStats shows frame times, the gravity period over time and
// per-system timings from the scheduler.
type PerformanceStats struct {
	frames  *History
	periods *History
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		frames:  NewHistory(historyFrames),
		periods: NewHistory(historyFrames),
	}
}

func (ps *PerformanceStats) Sample(r *round.Round, dt time.Duration) {
	ps.frames.Push(float32(dt.Seconds() * 1000))
	ps.periods.Push(float32(r.Period().Seconds() * 1000))
}

func (ps *PerformanceStats) Render(r *round.Round, dt time.Duration) {
	ps.Sample(r, dt)

	imgui.SetNextWindowPosV(imgui.NewVec2(420, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 320), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := r.Stats()
	store := r.StoreStats()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Settled blocks: %d (%d slots, %d free)", store.Live, store.Slots, store.FreeSlots))

	avg := ps.frames.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	imgui.Text(fmt.Sprintf("Gravity period: %.0f ms", ps.periods.Last()))

	imgui.Separator()
	if imgui.BeginTabBar("PerfTabs") {
		if imgui.BeginTabItem("Frame Time") {
			samples := ps.frames.Ordered()
			imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
			imgui.EndTabItem()
		}

		if imgui.BeginTabItem("Gravity") {
			samples := ps.periods.Ordered()
			if implot.BeginPlotV("Period", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Frame", "ms", 0, implot.AxisFlagsAutoFit)
				implot.PlotLineFloatPtrInt("period", &samples[0], int32(len(samples)))
				implot.EndPlot()
			}
			imgui.EndTabItem()
		}

		if imgui.BeginTabItem("Systems") {
			renderSystemTable(r)
			imgui.EndTabItem()
		}
		imgui.EndTabBar()
	}

	imgui.End()
}

func renderSystemTable(r *round.Round) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Runs")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Max")
	imgui.TableSetupColumn("Last")
	imgui.TableHeadersRow()

	for _, s := range r.SchedulerStats().Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(s.Name)
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))
		imgui.TableNextColumn()
		imgui.Text(s.AvgDuration.String())
		imgui.TableNextColumn()
		imgui.Text(s.MaxDuration.String())
		imgui.TableNextColumn()
		imgui.Text(s.LastDuration.String())
	}

	imgui.EndTable()
}
