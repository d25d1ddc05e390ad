package game

import (
	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
)

// AdvanceFloater drifts a decoration by speed and wraps it at either edge,
// keeping its height.
func AdvanceFloater(tr *Transform, speed float32, tuning *config.Tuning) {
	tr.Translation.X -= speed
	switch {
	case tr.Translation.X < tuning.WrapLeft:
		tr.Translation.X = tuning.WrapRight
	case tr.Translation.X > tuning.WrapRight:
		tr.Translation.X = tuning.WrapLeft
	}
}

type FloaterMoverSystem struct {
	Tuning   ecs.Singleton[config.Tuning]
	Floaters ecs.Query[struct {
		*Transform
		*Floater
	}]
}

func (s *FloaterMoverSystem) Execute(frame *ecs.UpdateFrame) {
	tuning := s.Tuning.Get()
	for floater := range s.Floaters.Values() {
		AdvanceFloater(floater.Transform, floater.Floater.Speed, tuning)
	}
}
