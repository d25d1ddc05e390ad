package game

import (
	"testing"

	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countOf[T any](storage *ecs.Storage) int {
	view := ecs.NewView[struct{ C *T }](storage)
	count := 0
	for range view.Values() {
		count++
	}
	return count
}

func TestWorldStartup(t *testing.T) {
	w := New(Options{Config: config.Default(), Seed: 11, Logger: quietLogger})
	assert.Zero(t, w.Storage.EntityCount(), "nothing exists before the first step")

	w.Step(false)

	assert.Equal(t, 1, countOf[Player](w.Storage))
	assert.Equal(t, 9, countOf[Bone](w.Storage))
	assert.Equal(t, 1, countOf[Ground](w.Storage))
	assert.Equal(t, 1, countOf[Floater](w.Storage))
	assert.Equal(t, 1, countOf[ScoreLabel](w.Storage))

	camera := w.Camera()
	assert.Equal(t, 1280, camera.Width)
	assert.Equal(t, 800, camera.Height)
	assert.Equal(t, config.RGB{R: 0.3, G: 0.7, B: 1.0}, camera.ClearColor)

	grass := ecs.NewView[struct {
		*Transform
		*Sprite
		*Ground
	}](w.Storage)
	for g := range grass.Values() {
		assert.Equal(t, GrassAt, g.Transform.Translation)
		assert.Equal(t, GrassSize, g.Sprite.Size)
	}

	players := ecs.NewView[struct {
		*Transform
		*Player
	}](w.Storage)
	for p := range players.Values() {
		assert.Equal(t, PlayerStart.X, p.Transform.Translation.X)
		assert.Equal(t, float32(-2), p.Transform.Translation.Y, "the player already fell one step")
	}

	labels := ecs.NewView[struct {
		*Label
		*ScoreLabel
	}](w.Storage)
	for l := range labels.Values() {
		require.NotEmpty(t, l.Label.Sections)
		assert.Equal(t, FormatScore(w.Score()), l.Label.Sections[0].Value)
	}
}

func TestSpawnBones(t *testing.T) {
	for _, seed := range []uint64{1, 3, 99, 2024} {
		storage := newTestStorage(t, seed)
		scheduler := ecs.NewScheduler(storage)
		scheduler.RegisterStartup(&SpawnBonesSystem{Logger: quietLogger})
		scheduler.Once(FrameTime)

		tuning := config.DefaultTuning()
		bones := ecs.NewView[struct {
			*Transform
			*Sprite
			*Bone
		}](storage)

		count := 0
		for bone := range bones.Values() {
			count++
			at := bone.Transform.Translation
			assert.Equal(t, BoneSize, bone.Sprite.Size)
			assert.GreaterOrEqual(t, at.X, -tuning.BoneSpreadX)
			assert.Less(t, at.X, tuning.BoneSpreadX)
			assert.GreaterOrEqual(t, at.Y, -tuning.SpawnRangeY)
			assert.Less(t, at.Y, tuning.SpawnRangeY)
			assert.GreaterOrEqual(t, bone.Transform.Rotation, float32(0))
			assert.Less(t, bone.Transform.Rotation, float32(BoneRotationMax))
		}
		assert.Equal(t, 9, count, "seed %d", seed)
	}
}

func TestWorldStartupBones(t *testing.T) {
	w := New(Options{Config: config.Default(), Seed: 3, Logger: quietLogger})
	w.Step(false)

	tuning := config.DefaultTuning()
	drift := tuning.BoneStep
	bones := ecs.NewView[struct {
		*Transform
		*Bone
	}](w.Storage)

	count, collected := 0, 0
	for bone := range bones.Values() {
		count++
		at := bone.Transform.Translation
		assert.GreaterOrEqual(t, bone.Transform.Rotation, tuning.BoneSpin)
		assert.Less(t, bone.Transform.Rotation, float32(BoneRotationMax)+tuning.BoneSpin)
		assert.GreaterOrEqual(t, at.X, -tuning.BoneSpreadX-drift)

		// A bone collected on the first frame was kicked right and rerolled.
		if at.X >= tuning.BoneSpreadX-drift {
			collected++
			assert.GreaterOrEqual(t, at.Y, -tuning.CollectRange)
			assert.Less(t, at.Y, tuning.CollectRange)
			continue
		}
		assert.GreaterOrEqual(t, at.Y, -tuning.SpawnRangeY)
		assert.Less(t, at.Y, tuning.SpawnRangeY)
	}
	assert.Equal(t, 9, count)
	assert.Equal(t, int(w.Score()), collected)
}

func TestWorldInvariants(t *testing.T) {
	w := New(Options{Config: config.Default(), Seed: 2024, Logger: quietLogger})

	players := ecs.NewView[struct {
		*Transform
		*Player
	}](w.Storage)

	last := uint32(0)
	for frame := range 20000 {
		w.Step(frame%90 < 40)

		for p := range players.Values() {
			require.GreaterOrEqual(t, p.Transform.Translation.Y, float32(-300))
			require.LessOrEqual(t, p.Transform.Translation.Y, float32(300))
		}
		require.GreaterOrEqual(t, w.Score(), last, "score never decreases")
		last = w.Score()
	}

	tally := w.Tally()
	assert.Equal(t, uint64(w.Score()), tally.BonesCollected)
	assert.Positive(t, tally.BonesWrapped)
	assert.Equal(t, int(tally.HawksSpawned), countOf[Hawk](w.Storage))
}

func TestWorldIsDeterministic(t *testing.T) {
	run := func() (uint32, Tally, []Vec3) {
		w := New(Options{Config: config.Default(), Seed: 99})
		for frame := range 3000 {
			w.Step(frame%7 < 3)
		}
		view := ecs.NewView[struct{ *Transform }](w.Storage)
		var positions []Vec3
		for item := range view.Values() {
			positions = append(positions, item.Transform.Translation)
		}
		return w.Score(), w.Tally(), positions
	}

	scoreA, tallyA, positionsA := run()
	scoreB, tallyB, positionsB := run()
	assert.Equal(t, scoreA, scoreB)
	assert.Equal(t, tallyA, tallyB)
	assert.Equal(t, positionsA, positionsB)
}

func TestWorldAppliesTuningUpdates(t *testing.T) {
	updates := make(chan config.Tuning, 1)
	w := New(Options{Config: config.Default(), Seed: 5, TuningUpdates: updates})
	w.Step(false)

	tuning := config.DefaultTuning()
	tuning.DescendStep = 10
	updates <- tuning

	players := ecs.NewView[struct {
		*Transform
		*Player
	}](w.Storage)
	before := float32(0)
	for p := range players.Values() {
		before = p.Transform.Translation.Y
	}

	w.Step(false)
	for p := range players.Values() {
		assert.Equal(t, before-10, p.Transform.Translation.Y)
	}
}
