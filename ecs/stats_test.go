package ecs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStorageStats(t *testing.T) {
	registry := NewComponentRegistry()
	RegisterComponent[int](registry)
	RegisterComponent[string](registry)
	RegisterComponent[float64](registry)

	storage := NewStorage(registry)

	stats := storage.CollectStats()
	assert.Zero(t, stats.ArchetypeCount)
	assert.Zero(t, stats.TotalEntityCount)
	assert.Zero(t, stats.SingletonCount)

	storage.Spawn(42, "hello")
	storage.Spawn(100, "world")
	storage.Spawn(200.0, "test")

	NewSingleton[float64](storage, 3.14)
	NewSingleton[string](storage, "singleton")

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 2, stats.SingletonCount)
	assert.Equal(t, []string{"float64", "string"}, stats.SingletonTypes)

	if assert.Len(t, stats.ArchetypeBreakdown, 2) {
		assert.Equal(t, 2, stats.ArchetypeBreakdown[0].EntityCount)
		assert.Equal(t, []string{"int", "string"}, stats.ArchetypeBreakdown[0].ComponentTypes)
		assert.Equal(t, 1, stats.ArchetypeBreakdown[1].EntityCount)
	}
}

type sleepySystem struct {
	executeCount int
	sleepDur     time.Duration
}

func (s *sleepySystem) Execute(frame *UpdateFrame) {
	s.executeCount++
	time.Sleep(s.sleepDur)
}

func TestSchedulerStats(t *testing.T) {
	storage := NewStorage(NewComponentRegistry())
	scheduler := NewScheduler(storage)

	stats := scheduler.GetStats()
	assert.Zero(t, stats.SystemCount)
	assert.Zero(t, stats.TotalExecutions)

	setup := &sleepySystem{sleepDur: time.Millisecond}
	sys1 := &sleepySystem{sleepDur: time.Millisecond}
	sys2 := &sleepySystem{sleepDur: 2 * time.Millisecond}
	scheduler.RegisterStartup(setup)
	scheduler.Register(sys1)
	scheduler.Register(sys2)

	scheduler.Once(0.016)
	scheduler.Once(0.016)
	scheduler.Once(0.016)

	stats = scheduler.GetStats()
	assert.Equal(t, 3, stats.SystemCount)
	assert.Equal(t, int64(7), stats.TotalExecutions)
	assert.Equal(t, uint64(3), stats.Frames)

	assert.True(t, stats.Systems[0].Startup)
	assert.Equal(t, int64(1), stats.Systems[0].ExecutionCount)

	for _, sysStats := range stats.Systems[1:] {
		assert.Equal(t, "sleepySystem", sysStats.Name)
		assert.False(t, sysStats.Startup)
		assert.Equal(t, int64(3), sysStats.ExecutionCount)
		assert.Positive(t, sysStats.MinDuration)
		assert.LessOrEqual(t, sysStats.MinDuration, sysStats.AvgDuration)
		assert.LessOrEqual(t, sysStats.AvgDuration, sysStats.MaxDuration)
		assert.GreaterOrEqual(t, sysStats.TotalDuration, 3*time.Millisecond)
	}

	assert.Equal(t, 1, setup.executeCount)
	assert.Equal(t, 3, sys1.executeCount)
	assert.Equal(t, 3, sys2.executeCount)
}
