package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/agilitycamp/ecs"
)

// StatsWindow shows storage counts, frame times and per-system timings.
// Extra, when set, renders additional lines at the top of the window.
type StatsWindow struct {
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
	Extra     func()

	history *FrameHistory
	last    time.Time
}

// NewStatsWindow returns an ImguiItem rendering a StatsWindow.
func NewStatsWindow(storage *ecs.Storage, scheduler *ecs.Scheduler, historyFrames int, extra func()) ImguiItem {
	w := &StatsWindow{
		Storage:   storage,
		Scheduler: scheduler,
		Extra:     extra,
		history:   NewFrameHistory(historyFrames),
	}
	return ImguiItem{Render: w.Render}
}

func (w *StatsWindow) Render() {
	now := time.Now()
	if !w.last.IsZero() {
		w.history.Add(float32(now.Sub(w.last).Seconds() * 1000))
	}
	w.last = now

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 320), imgui.CondOnce)
	if !imgui.BeginV("Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if w.Extra != nil {
		w.Extra()
		imgui.Separator()
	}

	stats := w.Storage.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	if avg := w.history.Average(); avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	samples := w.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if w.Scheduler != nil && imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableHeadersRow()

			for _, sys := range w.Scheduler.GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Archetypes") {
		for _, arch := range stats.ArchetypeBreakdown {
			imgui.BulletText(fmt.Sprintf("0x%08X %v: %d", arch.ID, arch.ComponentTypes, arch.EntityCount))
		}
		imgui.TreePop()
	}

	imgui.End()
}
