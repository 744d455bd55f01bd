package ecs_test

import (
	"testing"

	"github.com/plus3/blockfall/ecs"
	"github.com/stretchr/testify/assert"
)

// testClearRowSystem deletes every cell in Row and moves the cells above it down.
type testClearRowSystem struct {
	Row int
}

func (s *testClearRowSystem) Execute(frame *ecs.UpdateFrame[Cell]) {
	for id, cell := range frame.Storage.Iter() {
		switch {
		case cell.Row == s.Row:
			frame.Commands.Delete(id)
		case cell.Row < s.Row:
			cell.Row++
		}
	}
}

func TestCommandsDeleteDuringIteration(t *testing.T) {
	store := ecs.NewStore[Cell]()
	store.Spawn(Cell{Row: 4, Column: 0})
	store.Spawn(Cell{Row: 5, Column: 0})
	store.Spawn(Cell{Row: 5, Column: 1})
	store.Spawn(Cell{Row: 6, Column: 0})

	scheduler := ecs.NewScheduler(store)
	scheduler.Register(&testClearRowSystem{Row: 5})
	scheduler.Once(0)

	var rows []int
	for cell := range store.Values() {
		rows = append(rows, cell.Row)
	}
	assert.ElementsMatch(t, []int{5, 6}, rows)
}

func TestCommandsFlushOrder(t *testing.T) {
	store := ecs.NewStore[Cell]()
	id := store.Spawn(Cell{Row: 9})

	scheduler := ecs.NewScheduler(store)
	var order []string
	scheduler.Register(systemFunc(func(frame *ecs.UpdateFrame[Cell]) {
		frame.Commands.Defer(func() {
			order = append(order, "defer")
			assert.Nil(t, lookup(store, id), "deletes are applied before defers")
			assert.Zero(t, store.Len())
		})
		frame.Commands.Delete(id)
		frame.Commands.Delete(id)
		assert.Equal(t, 3, frame.Commands.Pending())
	}))

	scheduler.Once(0)
	assert.Equal(t, []string{"defer"}, order)
}

type systemFunc func(frame *ecs.UpdateFrame[Cell])

func (f systemFunc) Execute(frame *ecs.UpdateFrame[Cell]) { f(frame) }

func TestCommandsResetAfterFlush(t *testing.T) {
	store := ecs.NewStore[Cell]()
	store.Spawn(Cell{Row: 2})

	scheduler := ecs.NewScheduler(store)
	runs := 0
	var pending []int
	scheduler.Register(systemFunc(func(frame *ecs.UpdateFrame[Cell]) {
		pending = append(pending, frame.Commands.Pending())
		frame.Commands.Defer(func() { runs++ })
	}))

	scheduler.Once(0)
	scheduler.Once(0)
	assert.Equal(t, []int{0, 0}, pending)
	assert.Equal(t, 2, runs, "each defer runs exactly once")
}
