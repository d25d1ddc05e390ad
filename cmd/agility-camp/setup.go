package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/game"
)

// session is everything a command needs to run a game.
type session struct {
	runID  string
	logger *log.Logger
	config config.Config
	source string
	world  *game.World

	closers []io.Closer
}

func (s *session) Close() error {
	for _, c := range s.closers {
		c.Close()
	}
	return nil
}

// newLogger builds the process logger. Logs go to stderr unless a log file
// is given; quiet discards stderr output for frontends that own the
// terminal.
func newLogger(level, file string, quiet bool) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var out io.Writer = os.Stderr
	var closer io.Closer
	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	case quiet:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "agility-camp",
		Level:           lvl,
	})
	return logger, closer, nil
}

func setup(ctx context.Context, frontend string, quiet bool) (*session, error) {
	logger, closer, err := newLogger(flagLogLevel, flagLogFile, quiet)
	if err != nil {
		return nil, err
	}

	s := &session{runID: uuid.NewString()}
	if closer != nil {
		s.closers = append(s.closers, closer)
	}
	s.logger = logger.With("run", s.runID[:8], "frontend", frontend)

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		s.Close()
		return nil, err
	}
	warnings, err := cfg.Validate()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("invalid config %s: %w", source, err)
	}
	for _, w := range warnings {
		s.logger.Warn(w, "config", source)
	}
	s.config, s.source = cfg, source

	opts := game.Options{Config: cfg, Seed: flagSeed, Logger: s.logger}
	if flagWatch {
		if source == config.EmbeddedSource {
			s.logger.Warn("--watch ignored: no config file in use")
		} else {
			watcher, err := config.Watch(ctx, source, s.logger)
			if err != nil {
				s.Close()
				return nil, err
			}
			opts.TuningUpdates = watcher.Updates()
			s.logger.Info("watching config", "path", watcher.Path())
		}
	}

	s.world = game.New(opts)
	return s, nil
}
