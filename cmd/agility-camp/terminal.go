package main

import (
	"github.com/spf13/cobra"

	"github.com/plus3/agilitycamp/game"
	"github.com/plus3/agilitycamp/platform/terminal"
)

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Play in the terminal",
	Long: `Play with the world drawn as coloured cells.

Controls:
  Space/Up/k - Float up (each press holds for a moment)
  Esc/q      - Quit

Logs are discarded unless --log-file is set, so they do not
overwrite the screen.`,
	Args: cobra.NoArgs,
	RunE: runTerminal,
}

func runTerminal(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd.Context(), "terminal", true)
	if err != nil {
		return err
	}
	defer s.Close()

	s.logger.Info("starting", "seed", s.world.Seed, "config", s.source)
	if err := terminal.Run(cmd.Context(), terminal.Options{
		Config: s.config,
		World:  s.world,
		Logger: s.logger,
	}); err != nil {
		s.logger.Error("terminal failed", "err", err)
		return err
	}
	cmd.Println(game.FormatScore(s.world.Score()))
	return nil
}
