package game

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
)

var quietLogger = log.New(io.Discard)

// newTestStorage returns a storage holding every resource the systems use,
// without the startup entities.
func newTestStorage(t *testing.T, seed uint64) *ecs.Storage {
	t.Helper()
	storage := ecs.NewStorage(NewRegistry())
	ecs.NewSingleton(storage, config.DefaultTuning())
	ecs.NewSingleton(storage, Rng{Rand: rand.New(rand.NewPCG(seed, seed))})
	ecs.NewSingleton[Score](storage)
	ecs.NewSingleton[Tally](storage)
	ecs.NewSingleton[Input](storage)
	return storage
}

func spawnPlayer(storage *ecs.Storage, y float32) ecs.EntityId {
	return storage.Spawn(
		Transform{Translation: Vec3{X: PlayerStart.X, Y: y}},
		Sprite{Asset: AssetPlayer, Size: PlayerSize},
		Player{},
	)
}

func transformOf(storage *ecs.Storage, id ecs.EntityId) *Transform {
	return ecs.ReadComponent[Transform](storage, id)
}

func singleton[T any](t *testing.T, storage *ecs.Storage) *T {
	t.Helper()
	var value *T
	if !storage.ReadSingleton(&value) {
		t.Fatalf("missing singleton %T", value)
	}
	return value
}
