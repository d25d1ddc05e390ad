package game

import (
	"github.com/charmbracelet/log"
	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
)

var (
	PlayerSize = Vec2{X: 120, Y: 200}
	BoneSize   = Vec2{X: 30, Y: 15}
	HawkSize   = Vec2{X: 80, Y: 50}
	GrassSize  = Vec2{X: 1280, Y: 70}
	CloudSize  = Vec2{X: 200, Y: 120}

	PlayerStart = Vec3{X: -400, Y: 0, Z: 0}
	GrassAt     = Vec3{X: 0, Y: -365, Z: 1}
	CloudStart  = Vec3{X: 300, Y: 250, Z: 0.5}
)

// BoneRotationMax bounds the initial bone rotation.
const BoneRotationMax = 3.14

// SpawnCameraSystem records the viewport from the window settings.
type SpawnCameraSystem struct {
	Window config.WindowConfig
}

func (s *SpawnCameraSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Storage.AddSingleton(Camera{
		Width:      s.Window.Width,
		Height:     s.Window.Height,
		ClearColor: s.Window.ClearColor,
	})
}

type SpawnPlayerSystem struct{}

func (SpawnPlayerSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(
		Transform{Translation: PlayerStart},
		Sprite{Asset: AssetPlayer, Size: PlayerSize},
		Player{},
	)
}

type SpawnGroundSystem struct{}

func (SpawnGroundSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(
		Transform{Translation: GrassAt},
		Sprite{Asset: AssetGrass, Size: GrassSize},
		Ground{},
	)
}

type SpawnDecorationsSystem struct {
	Tuning ecs.Singleton[config.Tuning]
}

func (s *SpawnDecorationsSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(
		Transform{Translation: CloudStart},
		Sprite{Asset: AssetCloud, Size: CloudSize},
		Floater{Speed: s.Tuning.Get().FloaterStep},
		Decoration{},
	)
}

// SpawnBonesSystem creates the fixed pool of bones at random positions and
// rotations.
type SpawnBonesSystem struct {
	Tuning ecs.Singleton[config.Tuning]
	Rng    ecs.Singleton[Rng]
	Logger *log.Logger
}

func (s *SpawnBonesSystem) Execute(frame *ecs.UpdateFrame) {
	tuning := s.Tuning.Get()
	rng := s.Rng.Get()

	for range tuning.BoneCount {
		frame.Commands.Spawn(
			Transform{
				Translation: Vec3{
					X: uniform(rng.Rand, -tuning.BoneSpreadX, tuning.BoneSpreadX),
					Y: uniform(rng.Rand, -tuning.SpawnRangeY, tuning.SpawnRangeY),
				},
				Rotation: uniform(rng.Rand, 0, BoneRotationMax),
			},
			Sprite{Asset: AssetBone, Size: BoneSize},
			Bone{},
		)
	}
	s.Logger.Debug("bones spawned", "count", tuning.BoneCount)
}

// SpawnScoreLabelSystem creates the on-screen score text.
type SpawnScoreLabelSystem struct {
	Label config.LabelConfig
}

func (s *SpawnScoreLabelSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(
		Transform{Translation: Vec3{X: s.Label.X, Y: s.Label.Y, Z: 10}},
		Label{
			Sections: []TextSection{{Value: FormatScore(0)}},
			Size:     s.Label.Size,
			Color:    s.Label.Color,
		},
		ScoreLabel{},
	)
}
