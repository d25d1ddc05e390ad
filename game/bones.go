package game

import (
	"math/rand/v2"

	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
)

// WrapLeft moves an entity that has passed the left threshold back to the
// right edge at a new random height. It reports whether it wrapped.
func WrapLeft(tr *Transform, tuning *config.Tuning, rng *rand.Rand) bool {
	if tr.Translation.X >= tuning.WrapLeft {
		return false
	}
	tr.Translation.X = tuning.WrapRight
	tr.Translation.Y = uniform(rng, -tuning.SpawnRangeY, tuning.SpawnRangeY)
	return true
}

// AdvanceBone scrolls and spins a bone by one frame, then wraps it.
func AdvanceBone(tr *Transform, tuning *config.Tuning, rng *rand.Rand) bool {
	tr.Translation.X -= tuning.BoneStep
	tr.Rotation = normalizeAngle(tr.Rotation + tuning.BoneSpin)
	return WrapLeft(tr, tuning, rng)
}

type BoneMoverSystem struct {
	Tuning ecs.Singleton[config.Tuning]
	Rng    ecs.Singleton[Rng]
	Tally  ecs.Singleton[Tally]
	Bones  ecs.Query[struct {
		*Transform
		*Bone
	}]
}

func (s *BoneMoverSystem) Execute(frame *ecs.UpdateFrame) {
	tuning := s.Tuning.Get()
	rng := s.Rng.Get().Rand

	for bone := range s.Bones.Values() {
		if AdvanceBone(bone.Transform, tuning, rng) {
			s.Tally.Get().BonesWrapped++
		}
	}
}
