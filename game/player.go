package game

import (
	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
)

// StepPlayer returns the player's next height. Holding ascend climbs toward
// the ceiling; otherwise the player sinks toward the floor.
func StepPlayer(y float32, ascend bool, tuning *config.Tuning) float32 {
	if ascend {
		return min(y+tuning.AscendStep, tuning.Ceiling)
	}
	return max(y-tuning.DescendStep, tuning.Floor)
}

type PlayerMovementSystem struct {
	Input  ecs.Singleton[Input]
	Tuning ecs.Singleton[config.Tuning]
	Player ecs.Query[struct {
		*Transform
		*Player
	}]
}

func (s *PlayerMovementSystem) Execute(frame *ecs.UpdateFrame) {
	ascend := s.Input.Get().Ascend
	tuning := s.Tuning.Get()

	for player := range s.Player.Values() {
		player.Transform.Translation.Y = StepPlayer(player.Transform.Translation.Y, ascend, tuning)
	}
}
