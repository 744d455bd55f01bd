package ecs_test

import (
	"testing"

	"github.com/plus3/blockfall/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnAndLookup(t *testing.T) {
	store := ecs.NewStore[Cell]()

	id := store.Spawn(Cell{Row: 3, Column: 4})
	assert.True(t, id.Valid())
	assert.Equal(t, 1, store.Len())

	cell := lookup(store, id)
	require.NotNil(t, cell)
	assert.Equal(t, Cell{Row: 3, Column: 4}, *cell)

	cell.Row = 7
	assert.Equal(t, 7, lookup(store, id).Row, "Iter yields pointers into the store")
}

func TestDelete(t *testing.T) {
	store := ecs.NewStore[Cell]()
	a := store.Spawn(Cell{Row: 1})
	b := store.Spawn(Cell{Row: 2})

	assert.True(t, store.Delete(a))
	assert.False(t, store.Delete(a))
	assert.Nil(t, lookup(store, a))
	assert.Nil(t, lookup(store, a))

	assert.NotNil(t, lookup(store, b))
	assert.Equal(t, 1, store.Len())
}

func TestIdsAreNotReused(t *testing.T) {
	store := ecs.NewStore[Cell]()
	a := store.Spawn(Cell{Row: 1})
	store.Delete(a)

	b := store.Spawn(Cell{Row: 2})
	assert.NotEqual(t, a, b)
	assert.Nil(t, lookup(store, a), "stale id must not resolve to the recycled slot")
	assert.Equal(t, 1, store.Stats().Slots, "slot is recycled")
}

func TestIterSkipsDeleted(t *testing.T) {
	store := ecs.NewStore[Cell]()
	var ids []ecs.EntityId
	for i := range 5 {
		ids = append(ids, store.Spawn(Cell{Row: i}))
	}
	store.Delete(ids[1])
	store.Delete(ids[3])

	var rows []int
	for id, cell := range store.Iter() {
		assert.NotNil(t, lookup(store, id))
		rows = append(rows, cell.Row)
	}
	assert.Equal(t, []int{0, 2, 4}, rows)

	count := 0
	for range store.Values() {
		count++
	}
	assert.Equal(t, 3, count)
}

func TestIterEarlyExit(t *testing.T) {
	store := ecs.NewStore[Cell]()
	for i := range 10 {
		store.Spawn(Cell{Row: i})
	}

	seen := 0
	for range store.Iter() {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestManyBlocks(t *testing.T) {
	store := ecs.NewStore[Cell]()
	ids := make([]ecs.EntityId, 0, 200)
	for i := range 200 {
		ids = append(ids, store.Spawn(Cell{Row: i, Column: i % 10}))
	}

	assert.Equal(t, 200, store.Len())
	assert.Equal(t, 4, store.Stats().Blocks)
	assert.Equal(t, 150, lookup(store, ids[150]).Row)
}

func TestCompact(t *testing.T) {
	store := ecs.NewStore[Cell]()
	ids := make([]ecs.EntityId, 0, 100)
	for i := range 100 {
		ids = append(ids, store.Spawn(Cell{Row: i}))
	}
	for i := 0; i < 100; i += 2 {
		store.Delete(ids[i])
	}

	store.Compact()

	stats := store.Stats()
	assert.Equal(t, 50, stats.Live)
	assert.Equal(t, 50, stats.Slots)
	assert.Zero(t, stats.FreeSlots)
	assert.Equal(t, 1, stats.Blocks)

	for i := 1; i < 100; i += 2 {
		cell := lookup(store, ids[i])
		require.NotNil(t, cell, "id %d", ids[i])
		assert.Equal(t, i, cell.Row)
	}
}

func TestClear(t *testing.T) {
	store := ecs.NewStore[Cell]()
	a := store.Spawn(Cell{})
	store.Clear()

	assert.Zero(t, store.Len())
	assert.Nil(t, lookup(store, a))

	b := store.Spawn(Cell{})
	assert.NotEqual(t, a, b)
}
