package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/agilitycamp/ecs"
	"github.com/plus3/agilitycamp/game"
)

type Report struct {
	// Run
	RunID       string
	Config      string
	Seed        uint64
	AscendEvery int

	// Results
	Frames        int
	Score         uint32
	Tally         game.Tally
	LiveHawks     int
	TotalTime     time.Duration
	UpdateTime    Stats
	Storage       ecs.StorageStats
	Systems       []ecs.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Agility Camp Simulation Report

## Run
- **Run ID:** {{.RunID}}
- **Config:** {{.Config}}
- **Seed:** {{.Seed}}
- **Autopilot Cycle:** {{.AscendEvery}} frames

## Gameplay
- **Frames:** {{.Frames}} ({{gameTime .Frames}} at 60 FPS)
- **Final Score:** {{score .Score}}
- **Bones Collected:** {{.Tally.BonesCollected}}
- **Bones Wrapped:** {{.Tally.BonesWrapped}}
- **Hawks Spawned:** {{.Tally.HawksSpawned}} ({{.LiveHawks}} live)
- **Hawk Hits:** {{.Tally.HawkHits}}

## Performance
- **Total Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
| System | Stage | Runs | Avg | Max |
|---|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{if .Startup}}startup{{else}}update{{end}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Storage
- Entities: {{.Storage.TotalEntityCount}} in {{.Storage.ArchetypeCount}} archetypes
- Singletons: {{.Storage.SingletonCount}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"score": game.FormatScore,
		"gameTime": func(frames int) time.Duration {
			return time.Duration(frames) * time.Second / 60
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
