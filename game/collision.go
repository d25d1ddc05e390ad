package game

import (
	"github.com/charmbracelet/log"
	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
)

// PlayerHitbox returns the box used for the player's collisions: full sprite
// width and half its height, centred offsetY above (or, when negative,
// below) the player's origin.
func PlayerHitbox(at Vec3, size Vec2, offsetY float32) (Vec3, Vec2) {
	center := Vec3{X: at.X, Y: at.Y + offsetY, Z: at.Z}
	return center, Vec2{X: size.X, Y: size.Y / 2}
}

// CollectBone credits a collected bone and kicks it far to the right at a
// new random height.
func CollectBone(bone *Transform, score *Score, tuning *config.Tuning, rng *Rng) {
	score.Value++
	bone.Translation.X += tuning.CollectKickX
	bone.Translation.Y = uniform(rng.Rand, -tuning.CollectRange, tuning.CollectRange)
}

// CollisionSystem scores bones the player touches and knocks the player to
// the floor when a hawk touches it. Both checks scan every pair; there are
// only a handful of entities.
type CollisionSystem struct {
	Score  ecs.Singleton[Score]
	Tuning ecs.Singleton[config.Tuning]
	Rng    ecs.Singleton[Rng]
	Tally  ecs.Singleton[Tally]

	Players ecs.Query[struct {
		*Transform
		*Sprite
		*Player
	}]
	Bones ecs.Query[struct {
		*Transform
		*Sprite
		*Bone
	}]
	Hawks ecs.Query[struct {
		*Transform
		*Sprite
		*Hawk
	}]

	Logger *log.Logger
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	score := s.Score.Get()
	tuning := s.Tuning.Get()
	rng := s.Rng.Get()
	tally := s.Tally.Get()

	for bone := range s.Bones.Values() {
		for player := range s.Players.Values() {
			center, size := PlayerHitbox(player.Transform.Translation, player.Sprite.Size, -tuning.HitboxOffset)
			if Collide(bone.Transform.Translation, bone.Sprite.Size, center, size) {
				CollectBone(bone.Transform, score, tuning, rng)
				tally.BonesCollected++
				s.Logger.Debug("bone collected", "score", score.Value, "tick", frame.Tick)
			}
		}
	}

	for hawk := range s.Hawks.Values() {
		for player := range s.Players.Values() {
			center, size := PlayerHitbox(player.Transform.Translation, player.Sprite.Size, tuning.HitboxOffset)
			if Collide(hawk.Transform.Translation, hawk.Sprite.Size, center, size) {
				player.Transform.Translation.Y = tuning.Floor
				tally.HawkHits++
				s.Logger.Debug("hit by hawk", "tick", frame.Tick)
			}
		}
	}
}
