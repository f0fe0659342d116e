package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/blockfall/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageSpawn(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Cell{Row: 1, Col: 2}, Fall{Speed: 3})
	b := storage.Spawn(&Fall{Speed: 4}, Cell{Row: 5})
	c := storage.Spawn(Tag("solo"))

	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 3, storage.Len())
	assert.Len(t, storage.Archetypes(), 2, "component order does not matter")

	assert.Equal(t, &Cell{Row: 1, Col: 2}, ecs.ReadComponent[Cell](storage, a))
	assert.Equal(t, 4.0, ecs.ReadComponent[Fall](storage, b).Speed)
	assert.Equal(t, Tag("solo"), *ecs.ReadComponent[Tag](storage, c))

	assert.Nil(t, ecs.ReadComponent[Glow](storage, a))
	assert.True(t, storage.HasComponent(a, reflect.TypeFor[Fall]()))
	assert.False(t, storage.HasComponent(c, reflect.TypeFor[Fall]()))
}

func TestStorageSpawnRejects(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(Cell{}, Cell{}) }, "duplicate component")
	assert.Panics(t, func() { storage.Spawn(3.5) }, "unregistered component")
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
}

func TestStorageDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	ids := make([]ecs.EntityId, 5)
	for i := range ids {
		ids[i] = storage.Spawn(Cell{Row: i}, Label{Text: string(rune('a' + i))})
	}

	require.True(t, storage.Delete(ids[1]))
	assert.False(t, storage.Delete(ids[1]), "second delete is a no-op")
	assert.False(t, storage.Alive(ids[1]))
	assert.Nil(t, ecs.ReadComponent[Cell](storage, ids[1]))

	// the last row was moved into the hole; every survivor still resolves
	for i, id := range ids {
		if i == 1 {
			continue
		}
		require.True(t, storage.Alive(id))
		assert.Equal(t, i, ecs.ReadComponent[Cell](storage, id).Row)
		assert.Equal(t, string(rune('a'+i)), ecs.ReadComponent[Label](storage, id).Text)
	}

	require.True(t, storage.Delete(ids[4]))
	require.True(t, storage.Delete(ids[0]))
	assert.Equal(t, 2, storage.Len())
	assert.Equal(t, 3, ecs.ReadComponent[Cell](storage, ids[3]).Row)

	next := storage.Spawn(Cell{Row: 9}, Label{})
	assert.Greater(t, next, ids[4], "ids are not reused")
}

func TestStorageSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Nil(t, ecs.ReadSingleton[Label](storage))

	storage.AddSingleton(Label{Text: "first"})
	ptr := ecs.ReadSingleton[Label](storage)
	require.NotNil(t, ptr)
	assert.Equal(t, "first", ptr.Text)

	storage.AddSingleton(&Label{Text: "second"})
	assert.Same(t, ptr, ecs.ReadSingleton[Label](storage), "replacing keeps the pointer")
	assert.Equal(t, "second", ptr.Text)

	s := ecs.NewSingleton(storage, Label{Text: "ignored"})
	assert.Equal(t, "second", s.Get().Text)

	g := ecs.NewSingleton(storage, Glow{Alpha: 0.5})
	assert.True(t, g.Exists())
	assert.Equal(t, 0.5, g.Get().Alpha)
}

func TestStorageStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Zero(t, stats.ArchetypeCount)
	assert.Zero(t, stats.TotalEntityCount)

	storage.Spawn(Cell{}, Fall{})
	storage.Spawn(Cell{}, Fall{})
	storage.Spawn(Label{})
	storage.AddSingleton(Glow{})

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 1, stats.SingletonCount)
	assert.Equal(t, []string{"ecs_test.Glow"}, stats.SingletonTypes)

	require.Len(t, stats.ArchetypeBreakdown, 2)
	assert.Equal(t, []string{"ecs_test.Cell", "ecs_test.Fall"}, stats.ArchetypeBreakdown[0].ComponentTypes)
	assert.Equal(t, 2, stats.ArchetypeBreakdown[0].EntityCount)
	assert.Equal(t, 1, stats.ArchetypeBreakdown[1].EntityCount)
}
