// Package window plays Agility Camp in an Ebiten window.
package window

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
	"github.com/plus3/agilitycamp/ecs/debugui"
	debugui_ebiten "github.com/plus3/agilitycamp/ecs/debugui/ebiten"
	"github.com/plus3/agilitycamp/game"
)

// Options configures Run.
type Options struct {
	Config config.Config
	World  *game.World
	Logger *log.Logger
	// Debug shows the Dear ImGui stats overlay.
	Debug bool
}

// Game implements ebiten.Game over a game.World.
type Game struct {
	world  *game.World
	render *ecs.Scheduler
	screen *ecs.Singleton[Screen]
	width  int
	height int
	ctx    context.Context

	overlay *ecs.Scheduler
	imgui   *debugui_ebiten.ImguiBackend
	capture *ecs.Singleton[debugui.ImguiInputState]
}

// Run opens the window and plays until the window closes, Escape is
// pressed or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	win := opts.Config.Window

	var backend *debugui_ebiten.ImguiBackend
	if opts.Debug {
		backend = debugui_ebiten.NewImguiBackend(win.Title, win.Width, win.Height)
	} else {
		ebiten.SetWindowSize(win.Width, win.Height)
		ebiten.SetWindowTitle(win.Title)
	}

	assets, err := LoadAssets(opts.Config.Assets)
	if err != nil {
		return err
	}
	logger.Debug("assets loaded", "sprites", len(assets.Images))

	g := newGame(ctx, opts.World, assets, opts.Config)
	if backend != nil {
		g.attachOverlay(backend)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func newGame(ctx context.Context, world *game.World, assets *Assets, cfg config.Config) *Game {
	storage := world.Storage

	render := ecs.NewScheduler(storage)
	render.Register(&SpriteRenderSystem{Assets: assets, GroundColor: cfg.Window.GroundColor})
	render.Register(&LabelRenderSystem{Assets: assets})

	return &Game{
		world:  world,
		render: render,
		screen: ecs.NewSingleton[Screen](storage),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
		ctx:    ctx,
	}
}

func (g *Game) attachOverlay(backend *debugui_ebiten.ImguiBackend) {
	storage := g.world.Storage
	debugui.RegisterComponents(storage.Registry())

	storage.Spawn(debugui.NewEntityWindow(storage))
	storage.Spawn(debugui.NewStatsWindow(storage, g.world.Scheduler, 120, func() {
		tally := g.world.Tally()
		imgui.Text(game.FormatScore(g.world.Score()))
		imgui.Text(fmt.Sprintf("Seed: %d", g.world.Seed))
		imgui.Text(fmt.Sprintf("Hawks: %d spawned, %d hits", tally.HawksSpawned, tally.HawkHits))
	}))

	g.overlay = ecs.NewScheduler(storage)
	g.overlay.Register(&debugui.ImguiSystem{})
	g.imgui = backend
	g.capture = ecs.NewSingleton[debugui.ImguiInputState](storage)
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	ascend := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	if g.capture != nil && g.capture.Get().WantCaptureKeyboard {
		ascend = false
	}
	g.world.Step(ascend)

	if g.imgui != nil {
		g.imgui.Frame(func() { g.overlay.Once(game.FrameTime) })
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Get().Image = screen
	g.render.Once(0)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

// Layout keeps the logical screen at the configured size; Ebiten scales it
// to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}
