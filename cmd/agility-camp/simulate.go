package main

import (
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/plus3/agilitycamp/ecs"
	"github.com/plus3/agilitycamp/game"
)

var (
	flagFrames      int
	flagAscendEvery int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless and print a report",
	Long: `Run the game without a window, holding ascend for the first half of
every --ascend-every frames (0 never ascends), and print a Markdown
report of the score, gameplay events and system timings.

Examples:
  agility-camp simulate --frames 3600 --seed 7
  agility-camp simulate --frames 36000 --ascend-every 120`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simulateCmd.Flags().IntVar(&flagAscendEvery, "ascend-every", 90, "Autopilot cycle length in frames")
}

// autopilot reports whether to hold ascend on frame.
func autopilot(frame, every int) bool {
	if every <= 0 {
		return false
	}
	return frame%every < (every+1)/2
}

func runSimulate(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd.Context(), "simulate", false)
	if err != nil {
		return err
	}
	defer s.Close()

	report := simulate(s.world, flagFrames, flagAscendEvery, func() bool { return cmd.Context().Err() != nil })
	report.RunID = s.runID
	report.Config = s.source

	s.logger.Info("simulation finished", "frames", report.Frames, "score", report.Score)
	return report.Generate(cmd.OutOrStdout())
}

// simulate steps w for up to frames frames and collects a report. It stops
// early when stop returns true.
func simulate(w *game.World, frames, ascendEvery int, stop func() bool) *Report {
	report := &Report{
		Seed:        w.Seed,
		AscendEvery: ascendEvery,
		UpdateTime:  Stats{Samples: make([]time.Duration, 0, frames)},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	start := time.Now()
	for frame := range frames {
		if stop != nil && stop() {
			break
		}
		updateStart := time.Now()
		w.Step(autopilot(frame, ascendEvery))
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.Frames++
	}
	report.TotalTime = time.Since(start)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Score = w.Score()
	report.Tally = w.Tally()
	report.Storage = w.Storage.CollectStats()
	report.Systems = w.Scheduler.GetStats().Systems

	hawks := ecs.NewView[struct{ *game.Hawk }](w.Storage)
	for range hawks.Values() {
		report.LiveHawks++
	}
	return report
}
