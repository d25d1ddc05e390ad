package game

import (
	"github.com/charmbracelet/log"
	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
)

// TuningReloadSystem applies tuning delivered by a config watcher. Only
// per-frame steps change; entities already spawned keep their sizes and
// speeds.
type TuningReloadSystem struct {
	Tuning  ecs.Singleton[config.Tuning]
	Updates <-chan config.Tuning
	Logger  *log.Logger
}

func (s *TuningReloadSystem) Execute(frame *ecs.UpdateFrame) {
	select {
	case tuning, ok := <-s.Updates:
		if !ok {
			s.Updates = nil
			return
		}
		*s.Tuning.Get() = tuning
		s.Logger.Info("tuning applied", "tick", frame.Tick)
	default:
	}
}
