// agility-camp is a small side-scrolling arcade game: keep the dog aloft,
// collect bones and dodge hawks.
//
// Usage:
//
//	agility-camp                      - Play in a window
//	agility-camp terminal             - Play in the terminal
//	agility-camp simulate --frames N  - Run headless and print a report
//
// Global flags:
//
//	--config <path>     - YAML or TOML config file
//	--seed <value>      - RNG seed (0 = time based)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of stderr
//	--watch             - Reload tuning when the config file changes
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/plus3/agilitycamp/platform/window"
)

var (
	flagConfig   string
	flagSeed     uint64
	flagLogLevel string
	flagLogFile  string
	flagWatch    bool
	flagDebug    bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "agility-camp",
	Short: "Agility Camp - keep the dog up, collect bones, dodge hawks",
	Long: `Agility Camp opens a 1280x800 window. Hold Space or Up to float up,
let go to sink. Every bone you touch scores a point; a hawk knocks you
to the ground. Escape quits.

Examples:
  agility-camp
  agility-camp --seed 42 --debug
  agility-camp --config ./configs/agility-camp.yaml --watch
  agility-camp terminal
  agility-camp simulate --frames 36000 --ascend-every 90`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload tuning when the config file changes")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the Dear ImGui stats overlay")

	rootCmd.AddCommand(terminalCmd)
	rootCmd.AddCommand(simulateCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd.Context(), "window", false)
	if err != nil {
		return err
	}
	defer s.Close()

	s.logger.Info("starting", "seed", s.world.Seed, "config", s.source)
	if err := window.Run(cmd.Context(), window.Options{
		Config: s.config,
		World:  s.world,
		Logger: s.logger,
		Debug:  flagDebug,
	}); err != nil {
		s.logger.Error("window failed", "err", err)
		return err
	}
	s.logger.Info("finished", "score", s.world.Score())
	return nil
}
