package game

import (
	"strconv"

	"github.com/plus3/agilitycamp/ecs"
)

// FormatScore renders the score label text.
func FormatScore(score uint32) string {
	return "Bones: " + strconv.FormatUint(uint64(score), 10)
}

// ScoreDisplaySystem writes the current score into the first section of
// every score label.
type ScoreDisplaySystem struct {
	Score  ecs.Singleton[Score]
	Labels ecs.Query[struct {
		*Label
		*ScoreLabel
	}]
}

func (s *ScoreDisplaySystem) Execute(frame *ecs.UpdateFrame) {
	text := FormatScore(s.Score.Get().Value)
	for label := range s.Labels.Values() {
		if len(label.Label.Sections) == 0 {
			label.Label.Sections = append(label.Label.Sections, TextSection{})
		}
		label.Label.Sections[0].Value = text
	}
}
