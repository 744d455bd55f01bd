package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/ecs"
	"github.com/stretchr/testify/assert"
)

// FallSystem moves every cell down one row per elapsed second.
type FallSystem struct {
	ExecuteCount int
	carry        time.Duration
}

func (s *FallSystem) Execute(frame *ecs.UpdateFrame[Cell]) {
	s.ExecuteCount++
	s.carry += frame.DeltaTime
	for s.carry >= time.Second {
		s.carry -= time.Second
		for cell := range frame.Storage.Values() {
			cell.Row++
		}
	}
}

type CountSystem struct {
	ExecuteCount int
	Total        int
}

func (s *CountSystem) Execute(frame *ecs.UpdateFrame[Cell]) {
	s.ExecuteCount++
	s.Total = frame.Storage.Len()
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		store := ecs.NewStore[Cell]()
		scheduler := ecs.NewScheduler(store)

		var order []string
		scheduler.Register(systemFunc(func(*ecs.UpdateFrame[Cell]) { order = append(order, "first") }))
		scheduler.Register(systemFunc(func(*ecs.UpdateFrame[Cell]) { order = append(order, "second") }))

		scheduler.Once(0)
		scheduler.Once(0)

		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
		assert.Equal(t, int64(2), scheduler.Frames())
	})

	t.Run("custom state persistence", func(t *testing.T) {
		store := ecs.NewStore[Cell]()
		scheduler := ecs.NewScheduler(store)
		store.Spawn(Cell{})
		store.Spawn(Cell{})

		count := &CountSystem{}
		scheduler.Register(count)
		scheduler.Once(0)
		assert.Equal(t, 2, count.Total)

		store.Spawn(Cell{})
		scheduler.Once(0)
		assert.Equal(t, 3, count.Total)
		assert.Equal(t, 2, count.ExecuteCount)
	})

	t.Run("delta time", func(t *testing.T) {
		store := ecs.NewStore[Cell]()
		scheduler := ecs.NewScheduler(store)
		id := store.Spawn(Cell{Row: 0})

		fall := &FallSystem{}
		scheduler.Register(fall)

		scheduler.Once(500 * time.Millisecond)
		assert.Equal(t, 0, lookup(store, id).Row)

		scheduler.Once(500 * time.Millisecond)
		assert.Equal(t, 1, lookup(store, id).Row)

		scheduler.Once(2 * time.Second)
		assert.Equal(t, 3, lookup(store, id).Row)
	})

	t.Run("commands visible next system pass", func(t *testing.T) {
		store := ecs.NewStore[Cell]()
		scheduler := ecs.NewScheduler(store)
		store.Spawn(Cell{Row: 5})
		store.Spawn(Cell{Row: 5, Column: 1})

		count := &CountSystem{}
		scheduler.Register(&testClearRowSystem{Row: 5})
		scheduler.Register(count)

		scheduler.Once(0)
		assert.Equal(t, 2, count.Total, "deletes are deferred to the end of the frame")

		scheduler.Once(0)
		assert.Equal(t, 0, count.Total)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		store := ecs.NewStore[Cell]()
		scheduler := ecs.NewScheduler(store)

		count := &CountSystem{}
		scheduler.Register(count)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.Positive(t, count.ExecuteCount)
	})
}

func TestSchedulerStats(t *testing.T) {
	store := ecs.NewStore[Cell]()
	scheduler := ecs.NewScheduler(store)
	scheduler.Register(&CountSystem{})
	scheduler.Register(&FallSystem{})

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Zero(t, stats.Systems[0].MinDuration)

	for range 3 {
		scheduler.Once(0)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, "CountSystem", stats.Systems[0].Name)
	assert.Equal(t, "FallSystem", stats.Systems[1].Name)
	for _, system := range stats.Systems {
		assert.Equal(t, int64(3), system.ExecutionCount)
		assert.LessOrEqual(t, system.MinDuration, system.MaxDuration)
		assert.Equal(t, system.TotalDuration/3, system.AvgDuration)
	}
}
