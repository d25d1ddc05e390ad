// Package game holds the Agility Camp gameplay: components, resources and
// the systems that move the player, bones, hawks and clouds, score
// collisions and keep the score label current. It has no rendering or
// input code; frontends write Input and draw from the storage.
package game

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
)

// FrameTime is the fixed frame step every frontend advances by.
const FrameTime = 1.0 / 60.0

// NewRegistry registers every gameplay component.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Sprite](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Bone](registry)
	ecs.RegisterComponent[Hawk](registry)
	ecs.RegisterComponent[Floater](registry)
	ecs.RegisterComponent[Ground](registry)
	ecs.RegisterComponent[Decoration](registry)
	ecs.RegisterComponent[ScoreLabel](registry)
	ecs.RegisterComponent[Label](registry)
	return registry
}

// Options configures a new World.
type Options struct {
	Config config.Config
	// Seed feeds the random source. Zero picks a time based seed.
	Seed   uint64
	Logger *log.Logger
	// TuningUpdates, when set, is drained once per frame.
	TuningUpdates <-chan config.Tuning
}

// World is a ready-to-run game: storage with the resources installed and a
// scheduler with every gameplay system registered.
type World struct {
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
	Seed      uint64

	input *ecs.Singleton[Input]
	score *ecs.Singleton[Score]
	tally *ecs.Singleton[Tally]
}

// New builds a world. Entities appear during the first Step, when the
// startup systems run.
func New(opts Options) *World {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	storage := ecs.NewStorage(NewRegistry())

	w := &World{
		Storage: storage,
		Seed:    seed,
		input:   ecs.NewSingleton[Input](storage),
		score:   ecs.NewSingleton[Score](storage),
		tally:   ecs.NewSingleton[Tally](storage),
	}
	ecs.NewSingleton(storage, opts.Config.Tuning)
	ecs.NewSingleton(storage, Rng{Rand: rand.New(rand.NewPCG(seed, seed))})

	scheduler := ecs.NewScheduler(storage)
	scheduler.RegisterStartup(&SpawnCameraSystem{Window: opts.Config.Window})
	scheduler.RegisterStartup(SpawnPlayerSystem{})
	scheduler.RegisterStartup(SpawnGroundSystem{})
	scheduler.RegisterStartup(&SpawnDecorationsSystem{})
	scheduler.RegisterStartup(&SpawnBonesSystem{Logger: logger})
	scheduler.RegisterStartup(&SpawnScoreLabelSystem{Label: opts.Config.Label})

	if opts.TuningUpdates != nil {
		scheduler.Register(&TuningReloadSystem{Updates: opts.TuningUpdates, Logger: logger})
	}
	scheduler.Register(&PlayerMovementSystem{})
	scheduler.Register(&BoneMoverSystem{})
	scheduler.Register(&HawkSpawnerSystem{Logger: logger})
	scheduler.Register(&HawkMoverSystem{})
	scheduler.Register(&FloaterMoverSystem{})
	scheduler.Register(&CollisionSystem{Logger: logger})
	scheduler.Register(&ScoreDisplaySystem{})

	w.Scheduler = scheduler
	logger.Debug("world created", "seed", seed)
	return w
}

// Step advances the world by one frame with the given control state.
func (w *World) Step(ascend bool) {
	w.input.Get().Ascend = ascend
	w.Scheduler.Once(FrameTime)
}

// Score returns the number of bones collected so far.
func (w *World) Score() uint32 {
	return w.score.Get().Value
}

// Tally returns the event counters.
func (w *World) Tally() Tally {
	return *w.tally.Get()
}

// Camera returns the viewport, or the zero Camera before the first Step.
func (w *World) Camera() Camera {
	var camera *Camera
	if w.Storage.ReadSingleton(&camera) {
		return *camera
	}
	return Camera{}
}
