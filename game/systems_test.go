package game

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepPlayerStaysInBounds(t *testing.T) {
	tuning := config.DefaultTuning()
	rng := rand.New(rand.NewPCG(1, 2))

	y := float32(0)
	for range 20000 {
		y = StepPlayer(y, rng.IntN(3) == 0, &tuning)
		require.GreaterOrEqual(t, y, tuning.Floor)
		require.LessOrEqual(t, y, tuning.Ceiling)
	}

	assert.Equal(t, float32(3), StepPlayer(0, true, &tuning))
	assert.Equal(t, float32(-2), StepPlayer(0, false, &tuning))
	assert.Equal(t, tuning.Ceiling, StepPlayer(299, true, &tuning))
	assert.Equal(t, tuning.Floor, StepPlayer(-299, false, &tuning))
	assert.Equal(t, tuning.Floor, StepPlayer(tuning.Floor, false, &tuning))
}

func TestWrapLeft(t *testing.T) {
	tuning := config.DefaultTuning()
	rng := rand.New(rand.NewPCG(3, 4))

	for range 1000 {
		tr := Transform{Translation: Vec3{X: -650.5, Y: 12}}
		require.True(t, WrapLeft(&tr, &tuning, rng))
		assert.GreaterOrEqual(t, tr.Translation.X, tuning.WrapLeft+1280)
		assert.GreaterOrEqual(t, tr.Translation.Y, float32(-350))
		assert.Less(t, tr.Translation.Y, float32(350))
	}

	tr := Transform{Translation: Vec3{X: -650, Y: 12}}
	assert.False(t, WrapLeft(&tr, &tuning, rng), "the threshold itself does not wrap")
	assert.Equal(t, Vec3{X: -650, Y: 12}, tr.Translation)
}

func TestAdvanceBone(t *testing.T) {
	tuning := config.DefaultTuning()
	rng := rand.New(rand.NewPCG(5, 6))

	tr := Transform{Translation: Vec3{X: 100, Y: 20}, Rotation: 0}
	for range 60 {
		AdvanceBone(&tr, &tuning, rng)
	}
	assert.Equal(t, float32(-20), tr.Translation.X)
	assert.Equal(t, float32(20), tr.Translation.Y)
	rotation := float64(tr.Rotation)
	assert.True(t, rotation < 1e-3 || rotation > 2*math.Pi-1e-3, "one turn per 60 frames, got %v", rotation)

	tr = Transform{Translation: Vec3{X: -649}}
	assert.True(t, AdvanceBone(&tr, &tuning, rng))
	assert.Equal(t, tuning.WrapRight, tr.Translation.X)
}

func TestAdvanceFloater(t *testing.T) {
	tuning := config.DefaultTuning()

	tr := Transform{Translation: Vec3{X: -649.8, Y: 250}}
	AdvanceFloater(&tr, 0.5, &tuning)
	assert.Equal(t, Vec3{X: 650, Y: 250}, tr.Translation)

	tr = Transform{Translation: Vec3{X: 649.8, Y: 250}}
	AdvanceFloater(&tr, -0.5, &tuning)
	assert.Equal(t, Vec3{X: -650, Y: 250}, tr.Translation)
}

func TestShouldSpawnHawk(t *testing.T) {
	tuning := config.DefaultTuning()

	assert.False(t, ShouldSpawnHawk(0.5, 0, &tuning))
	assert.False(t, ShouldSpawnHawk(0.999, 0, &tuning))
	assert.True(t, ShouldSpawnHawk(0.9995, 0, &tuning))
	assert.True(t, ShouldSpawnHawk(0.9995, 1000, &tuning), "uncapped by default")

	tuning.MaxHawks = 2
	assert.True(t, ShouldSpawnHawk(0.9995, 1, &tuning))
	assert.False(t, ShouldSpawnHawk(0.9995, 2, &tuning))
}

func TestHawkSpawnRate(t *testing.T) {
	storage := newTestStorage(t, 42)
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&HawkSpawnerSystem{Logger: quietLogger})

	const frames = 100000
	for range frames {
		scheduler.Once(FrameTime)
	}

	hawks := ecs.NewView[struct {
		*Transform
		*Hawk
	}](storage)

	count := 0
	for hawk := range hawks.Values() {
		count++
		assert.Equal(t, float32(650), hawk.Transform.Translation.X)
		assert.GreaterOrEqual(t, hawk.Hawk.Speed, float32(3))
		assert.Less(t, hawk.Hawk.Speed, float32(7))
	}

	assert.GreaterOrEqual(t, count, 50)
	assert.LessOrEqual(t, count, 150)
	assert.Equal(t, uint64(count), singleton[Tally](t, storage).HawksSpawned)
}

func TestHawkSpawnCap(t *testing.T) {
	storage := newTestStorage(t, 9)
	singleton[config.Tuning](t, storage).MaxHawks = 1
	singleton[config.Tuning](t, storage).HawkChance = 1

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&HawkSpawnerSystem{Logger: quietLogger})
	for range 10 {
		scheduler.Once(FrameTime)
	}

	assert.Equal(t, 1, storage.EntityCount())
}

func TestHawkMover(t *testing.T) {
	storage := newTestStorage(t, 1)
	fast := storage.Spawn(Transform{Translation: Vec3{X: 0, Y: 10}}, Sprite{Asset: AssetHawk, Size: HawkSize}, Hawk{Speed: 5})
	wrapping := storage.Spawn(Transform{Translation: Vec3{X: -648, Y: 10}}, Sprite{Asset: AssetHawk, Size: HawkSize}, Hawk{Speed: 3})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&HawkMoverSystem{})
	scheduler.Once(FrameTime)

	assert.Equal(t, float32(-5), transformOf(storage, fast).Translation.X)
	assert.Equal(t, float32(10), transformOf(storage, fast).Translation.Y)
	assert.Equal(t, float32(650), transformOf(storage, wrapping).Translation.X)
}

func TestPlayerMovementSystem(t *testing.T) {
	storage := newTestStorage(t, 1)
	player := spawnPlayer(storage, 0)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&PlayerMovementSystem{})

	singleton[Input](t, storage).Ascend = true
	for range 200 {
		scheduler.Once(FrameTime)
	}
	assert.Equal(t, float32(300), transformOf(storage, player).Translation.Y)
	assert.Equal(t, PlayerStart.X, transformOf(storage, player).Translation.X)

	singleton[Input](t, storage).Ascend = false
	for range 400 {
		scheduler.Once(FrameTime)
	}
	assert.Equal(t, float32(-300), transformOf(storage, player).Translation.Y)
}

func TestPlayerHitbox(t *testing.T) {
	center, size := PlayerHitbox(Vec3{X: -400, Y: 20}, PlayerSize, -100)
	assert.Equal(t, Vec3{X: -400, Y: -80}, center)
	assert.Equal(t, Vec2{X: 120, Y: 100}, size)

	center, _ = PlayerHitbox(Vec3{X: -400, Y: 20}, PlayerSize, 100)
	assert.Equal(t, float32(120), center.Y)
}

func TestCollisionScoring(t *testing.T) {
	storage := newTestStorage(t, 7)
	spawnPlayer(storage, 0)
	bone := storage.Spawn(Transform{Translation: Vec3{X: 0, Y: 300}}, Sprite{Asset: AssetBone, Size: BoneSize}, Bone{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&CollisionSystem{Logger: quietLogger})
	score := singleton[Score](t, storage)

	for range 10 {
		scheduler.Once(FrameTime)
	}
	assert.Zero(t, score.Value)

	transformOf(storage, bone).Translation = Vec3{X: -400, Y: -100}
	scheduler.Once(FrameTime)
	assert.Equal(t, uint32(1), score.Value)

	moved := transformOf(storage, bone).Translation
	assert.Equal(t, float32(600), moved.X)
	assert.GreaterOrEqual(t, moved.Y, float32(-380))
	assert.Less(t, moved.Y, float32(380))

	for range 10 {
		scheduler.Once(FrameTime)
	}
	assert.Equal(t, uint32(1), score.Value, "a collected bone is not scored twice")
	assert.Equal(t, uint64(1), singleton[Tally](t, storage).BonesCollected)
}

func TestCollisionHawkKnocksPlayerDown(t *testing.T) {
	storage := newTestStorage(t, 7)
	player := spawnPlayer(storage, 0)
	storage.Spawn(Transform{Translation: Vec3{X: -400, Y: 100}}, Sprite{Asset: AssetHawk, Size: HawkSize}, Hawk{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&CollisionSystem{Logger: quietLogger})

	singleton[Score](t, storage).Value = 4
	scheduler.Once(FrameTime)

	assert.Equal(t, float32(-300), transformOf(storage, player).Translation.Y)
	assert.Equal(t, uint32(4), singleton[Score](t, storage).Value, "hawks never take points")
	assert.Equal(t, uint64(1), singleton[Tally](t, storage).HawkHits)

	scheduler.Once(FrameTime)
	assert.Equal(t, uint64(1), singleton[Tally](t, storage).HawkHits)
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "Bones: 0", FormatScore(0))
	assert.Equal(t, "Bones: 1", FormatScore(1))
	assert.Equal(t, "Bones: 42", FormatScore(42))
}

func TestScoreDisplay(t *testing.T) {
	storage := newTestStorage(t, 1)
	label := storage.Spawn(Transform{}, Label{Sections: []TextSection{{Value: "Bones: 0"}, {Value: "!"}}}, ScoreLabel{})
	empty := storage.Spawn(Transform{}, Label{}, ScoreLabel{})
	other := storage.Spawn(Transform{}, Label{Sections: []TextSection{{Value: "title"}}})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&ScoreDisplaySystem{})

	singleton[Score](t, storage).Value = 12
	scheduler.Once(FrameTime)
	scheduler.Once(FrameTime)

	assert.Equal(t, []TextSection{{Value: "Bones: 12"}, {Value: "!"}}, ecs.ReadComponent[Label](storage, label).Sections)
	assert.Equal(t, []TextSection{{Value: "Bones: 12"}}, ecs.ReadComponent[Label](storage, empty).Sections)
	assert.Equal(t, "title", ecs.ReadComponent[Label](storage, other).Sections[0].Value)
}

func TestTuningReload(t *testing.T) {
	storage := newTestStorage(t, 1)
	updates := make(chan config.Tuning, 1)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&TuningReloadSystem{Updates: updates, Logger: quietLogger})

	scheduler.Once(FrameTime)
	assert.Equal(t, float32(2), singleton[config.Tuning](t, storage).BoneStep)

	tuning := config.DefaultTuning()
	tuning.BoneStep = 8
	updates <- tuning
	scheduler.Once(FrameTime)
	assert.Equal(t, float32(8), singleton[config.Tuning](t, storage).BoneStep)

	close(updates)
	scheduler.Once(FrameTime)
	scheduler.Once(FrameTime)
	assert.Equal(t, float32(8), singleton[config.Tuning](t, storage).BoneStep)
}
