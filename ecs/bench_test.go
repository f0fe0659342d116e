package ecs_test

import (
	"testing"

	"github.com/plus3/blockfall/ecs"
)

func BenchmarkSpawn(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())

	for b.Loop() {
		storage.Spawn(Cell{Row: 1, Col: 2}, Fall{Speed: 1})
	}
}

func BenchmarkDelete(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())

	ids := make([]ecs.EntityId, b.N)
	for i := range ids {
		ids[i] = storage.Spawn(Cell{Row: i}, Fall{Speed: 1})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		storage.Delete(ids[i])
	}
}

func BenchmarkQueryIter(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	for i := range 10_000 {
		storage.Spawn(Cell{Row: i}, Fall{Speed: 1})
		if i%4 == 0 {
			storage.Spawn(Cell{Row: i}, Fall{Speed: 1}, Glow{})
		}
	}

	q := ecs.NewQuery[struct {
		*Cell
		*Fall
	}](storage)

	for b.Loop() {
		for item := range q.Iter() {
			item.Cell.Row += int(item.Fall.Speed)
		}
	}
}

func BenchmarkReadComponent(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Cell{}, Fall{})

	for b.Loop() {
		_ = ecs.ReadComponent[Cell](storage, id)
	}
}
