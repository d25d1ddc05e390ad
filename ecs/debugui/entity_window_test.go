package debugui

import (
	"testing"

	"github.com/plus3/agilitycamp/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spot struct{ X, Y float32 }
type dog struct{}
type bird struct{ Speed float32 }

func newEntityStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[spot](registry)
	ecs.RegisterComponent[dog](registry)
	ecs.RegisterComponent[bird](registry)
	return ecs.NewStorage(registry)
}

func TestListEntities(t *testing.T) {
	storage := newEntityStorage()
	rex := storage.Spawn(spot{X: 1}, dog{})
	hawk := storage.Spawn(spot{X: 2}, bird{Speed: 4})
	kite := storage.Spawn(spot{X: 3}, bird{Speed: 5})

	t.Run("all entities in archetype order", func(t *testing.T) {
		entities := ListEntities(storage, "")
		require.Len(t, entities, 3)
		assert.Equal(t, rex, entities[0].ID)
		assert.Equal(t, []ecs.EntityId{hawk, kite}, []ecs.EntityId{entities[1].ID, entities[2].ID})
		assert.Equal(t, entities[1].ArchetypeID, entities[2].ArchetypeID)
		assert.Len(t, entities[0].ComponentTypes, 2)
	})

	t.Run("filter by component name", func(t *testing.T) {
		entities := ListEntities(storage, "BIRD")
		require.Len(t, entities, 2)
		for _, e := range entities {
			assert.Contains(t, e.ComponentTypes, "debugui.bird")
		}
	})

	t.Run("filter without matches", func(t *testing.T) {
		assert.Empty(t, ListEntities(storage, "cat"))
	})
}

func TestArchetypeOf(t *testing.T) {
	storage := newEntityStorage()
	id := storage.Spawn(spot{}, dog{})

	archetype := archetypeOf(storage, id)
	require.NotNil(t, archetype)
	assert.Equal(t, id.ArchetypeId(), archetype.ID())
	assert.Nil(t, archetypeOf(storage, ecs.NewEntityId(id.ArchetypeId()+1, 0)))
}
