package game

import (
	"github.com/charmbracelet/log"
	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
)

// ShouldSpawnHawk reports whether a uniform draw r in [0, 1) spawns a hawk.
// live is the current hawk count; a zero MaxHawks leaves it uncapped.
func ShouldSpawnHawk(r float64, live int, tuning *config.Tuning) bool {
	if r <= 1-tuning.HawkChance {
		return false
	}
	return tuning.MaxHawks == 0 || live < tuning.MaxHawks
}

// HawkSpawnerSystem rolls once per frame for a new hawk. Spawns go through
// the command buffer, so a new hawk moves from the next frame on.
type HawkSpawnerSystem struct {
	Tuning ecs.Singleton[config.Tuning]
	Rng    ecs.Singleton[Rng]
	Tally  ecs.Singleton[Tally]
	Hawks  ecs.Query[struct{ *Hawk }]
	Logger *log.Logger
}

func (s *HawkSpawnerSystem) Execute(frame *ecs.UpdateFrame) {
	tuning := s.Tuning.Get()
	rng := s.Rng.Get().Rand

	if !ShouldSpawnHawk(rng.Float64(), s.Hawks.Len(), tuning) {
		return
	}

	y := uniform(rng, -tuning.SpawnRangeY, tuning.SpawnRangeY)
	speed := uniform(rng, tuning.HawkSpeedMin, tuning.HawkSpeedMax)
	frame.Commands.Spawn(
		Transform{Translation: Vec3{X: tuning.WrapRight, Y: y}},
		Sprite{Asset: AssetHawk, Size: HawkSize},
		Hawk{Speed: speed},
	)
	s.Tally.Get().HawksSpawned++
	s.Logger.Debug("hawk spawned", "y", y, "speed", speed, "tick", frame.Tick)
}

type HawkMoverSystem struct {
	Tuning ecs.Singleton[config.Tuning]
	Rng    ecs.Singleton[Rng]
	Hawks  ecs.Query[struct {
		*Transform
		*Hawk
	}]
}

func (s *HawkMoverSystem) Execute(frame *ecs.UpdateFrame) {
	tuning := s.Tuning.Get()
	rng := s.Rng.Get().Rand

	for hawk := range s.Hawks.Values() {
		hawk.Transform.Translation.X -= hawk.Hawk.Speed
		WrapLeft(hawk.Transform, tuning, rng)
	}
}
