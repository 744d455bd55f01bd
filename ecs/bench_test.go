package ecs_test

import (
	"testing"

	"github.com/plus3/blockfall/ecs"
)

func BenchmarkSpawn(b *testing.B) {
	store := ecs.NewStore[Cell]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Spawn(Cell{Row: 20, Column: i % 10})
	}
}

func BenchmarkDelete(b *testing.B) {
	store := ecs.NewStore[Cell]()

	ids := make([]ecs.EntityId, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = store.Spawn(Cell{Row: 20, Column: i % 10})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Delete(ids[i])
	}
}

// A full board of settled cells, the worst case for a line clear.
func BenchmarkIterFullBoard(b *testing.B) {
	store := ecs.NewStore[Cell]()
	for row := range 21 {
		for column := range 10 {
			store.Spawn(Cell{Row: row, Column: column})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count := 0
		for _, cell := range store.Iter() {
			if cell.Row == 20 {
				count++
			}
		}
		_ = count
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	store := ecs.NewStore[Cell]()
	for column := range 10 {
		store.Spawn(Cell{Row: 0, Column: column})
	}
	scheduler := ecs.NewScheduler(store)
	scheduler.Register(&FallSystem{})
	scheduler.Register(&CountSystem{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scheduler.Once(0)
	}
}
