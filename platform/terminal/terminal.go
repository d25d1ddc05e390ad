// Package terminal plays Agility Camp in a terminal using tcell.
package terminal

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
	"github.com/plus3/agilitycamp/game"
)

// HoldFrames is how long one ascend key press keeps the player climbing.
// Terminals report presses and auto-repeats but never releases.
const HoldFrames = 12

// Options configures a Terminal.
type Options struct {
	Config config.Config
	World  *game.World
	Logger *log.Logger
}

// Terminal drives a world from tcell key events and draws it each frame.
type Terminal struct {
	screen tcell.Screen
	world  *game.World
	render *ecs.Scheduler
	logger *log.Logger

	frame       uint64
	ascendUntil uint64
}

// New attaches a world to an initialised screen.
func New(screen tcell.Screen, opts Options) *Terminal {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	storage := opts.World.Storage
	ecs.NewSingleton(storage, Screen{Screen: screen})

	render := ecs.NewScheduler(storage)
	render.Register(&RenderSystem{GroundColor: opts.Config.Window.GroundColor})

	return &Terminal{
		screen: screen,
		world:  opts.World,
		render: render,
		logger: logger,
	}
}

// Run opens the terminal screen and plays until the player quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	return New(screen, opts).Loop(ctx, time.Second/60)
}

// Loop runs frames at interval until quit.
func (t *Terminal) Loop(ctx context.Context, interval time.Duration) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go t.pollEvents(events, done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !t.HandleEvent(ev) {
				t.logger.Debug("terminal closed", "frames", t.frame)
				return nil
			}
		case <-ticker.C:
			t.Frame()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done
// is closed.
func (t *Terminal) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one input event. It returns false when the player
// asked to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyUp, ev.Key() == tcell.KeyRune && (ev.Rune() == ' ' || ev.Rune() == 'k'):
			t.ascendUntil = t.frame + HoldFrames
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// Frame advances the world one step and redraws.
func (t *Terminal) Frame() {
	t.world.Step(t.frame < t.ascendUntil)
	t.render.Once(0)
	t.frame++
}
