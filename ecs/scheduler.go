package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          uint64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Startup        bool
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type initializer interface {
	Init(storage *Storage)
}

type executor interface {
	Execute()
}

type registeredSystem struct {
	system  System
	queries []executor

	name           string
	startup        bool
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems in two stages. Startup systems run exactly once,
// at the beginning of the first frame; update systems run every frame.
// Within a stage systems run in registration order and commands are
// flushed when the stage ends.
type Scheduler struct {
	storage *Storage
	startup []*registeredSystem
	update  []*registeredSystem
	frames  uint64
}

// NewScheduler creates a scheduler for storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Register adds an update system.
func (s *Scheduler) Register(system System) {
	s.update = append(s.update, s.wire(system, false))
}

// RegisterStartup adds a system that runs once before the first update.
// Registering a startup system after the first frame has no effect.
func (s *Scheduler) RegisterStartup(system System) {
	s.startup = append(s.startup, s.wire(system, true))
}

// Frames returns the number of completed Once calls.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Storage returns the world the scheduler drives.
func (s *Scheduler) Storage() *Storage {
	return s.storage
}

func (s *Scheduler) wire(system System, startup bool) *registeredSystem {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	rs := &registeredSystem{
		system:      system,
		name:        systemType.Name(),
		startup:     startup,
		minDuration: time.Duration(1<<63 - 1),
	}

	value := reflect.ValueOf(system)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return rs
	}

	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		target := field.Addr().Interface()
		binder, ok := target.(initializer)
		if !ok {
			continue
		}
		binder.Init(s.storage)

		if query, ok := target.(executor); ok {
			rs.queries = append(rs.queries, query)
		}
	}

	return rs
}

// Once runs one frame: the startup stage if it has not run yet, then the
// update stage.
func (s *Scheduler) Once(dt float64) {
	if s.frames == 0 && len(s.startup) > 0 {
		s.runStage(s.startup, newUpdateFrame(dt, s.frames, s.storage))
	}
	s.runStage(s.update, newUpdateFrame(dt, s.frames, s.storage))
	s.frames++
}

func (s *Scheduler) runStage(systems []*registeredSystem, frame *UpdateFrame) {
	for _, rs := range systems {
		start := time.Now()
		for _, query := range rs.queries {
			query.Execute()
		}
		rs.system.Execute(frame)
		rs.record(time.Since(start))
	}
	frame.Commands.Flush(s.storage)
}

func (rs *registeredSystem) record(duration time.Duration) {
	rs.executionCount++
	rs.lastDuration = duration
	rs.totalDuration += duration
	if duration < rs.minDuration {
		rs.minDuration = duration
	}
	if duration > rs.maxDuration {
		rs.maxDuration = duration
	}
}

// Run executes frames at the given interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution, startup systems first.
func (s *Scheduler) GetStats() *SchedulerStats {
	all := make([]*registeredSystem, 0, len(s.startup)+len(s.update))
	all = append(all, s.startup...)
	all = append(all, s.update...)

	stats := &SchedulerStats{
		SystemCount: len(all),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(all)),
	}

	for i, rs := range all {
		avg := time.Duration(0)
		minDuration := rs.minDuration
		if rs.executionCount > 0 {
			avg = rs.totalDuration / time.Duration(rs.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           rs.name,
			Startup:        rs.startup,
			ExecutionCount: rs.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    rs.maxDuration,
			AvgDuration:    avg,
			LastDuration:   rs.lastDuration,
			TotalDuration:  rs.totalDuration,
		}
		stats.TotalExecutions += rs.executionCount
	}

	return stats
}
