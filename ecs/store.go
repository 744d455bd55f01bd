package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const storeBlockSize = 64

// Store holds entities of a single type in fixed-size blocks. Deleted
// slots are recycled; an intmap resolves ids to slots.
type Store[T any] struct {
	blocks    [][storeBlockSize]T
	ids       [][storeBlockSize]EntityId
	freeSlots []int
	nextSlot  int
	lastId    EntityId
	index     *intmap.Map[EntityId, int]
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index: intmap.New[EntityId, int](256),
	}
}

// Spawn adds an entity and returns its id.
func (s *Store[T]) Spawn(item T) EntityId {
	s.lastId++
	id := s.lastId

	var slot int
	if n := len(s.freeSlots); n > 0 {
		slot = s.freeSlots[n-1]
		s.freeSlots = s.freeSlots[:n-1]
	} else {
		slot = s.nextSlot
		s.nextSlot++
		if slot/storeBlockSize >= len(s.blocks) {
			s.blocks = append(s.blocks, [storeBlockSize]T{})
			s.ids = append(s.ids, [storeBlockSize]EntityId{})
		}
	}

	blockIdx, slotIdx := slot/storeBlockSize, slot%storeBlockSize
	s.blocks[blockIdx][slotIdx] = item
	s.ids[blockIdx][slotIdx] = id
	s.index.Put(id, slot)
	return id
}

// Delete removes the entity. It reports whether the id was live.
func (s *Store[T]) Delete(id EntityId) bool {
	slot, ok := s.index.Get(id)
	if !ok {
		return false
	}
	s.index.Del(id)

	blockIdx, slotIdx := slot/storeBlockSize, slot%storeBlockSize
	var zero T
	s.blocks[blockIdx][slotIdx] = zero
	s.ids[blockIdx][slotIdx] = 0
	s.freeSlots = append(s.freeSlots, slot)
	return true
}

// Len returns the number of live entities.
func (s *Store[T]) Len() int {
	return s.index.Len()
}

// Iter yields every live entity in slot order.
func (s *Store[T]) Iter() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for slot := 0; slot < s.nextSlot; slot++ {
			blockIdx, slotIdx := slot/storeBlockSize, slot%storeBlockSize
			id := s.ids[blockIdx][slotIdx]
			if !id.Valid() {
				continue
			}
			if !yield(id, &s.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}

// Values yields every live entity without its id.
func (s *Store[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, item := range s.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}

// Compact moves live entities to the front and drops empty blocks.
// Ids stay valid.
func (s *Store[T]) Compact() {
	live := s.Len()
	numBlocks := (live + storeBlockSize - 1) / storeBlockSize
	blocks := make([][storeBlockSize]T, numBlocks)
	ids := make([][storeBlockSize]EntityId, numBlocks)

	writePos := 0
	for id, item := range s.Iter() {
		blockIdx, slotIdx := writePos/storeBlockSize, writePos%storeBlockSize
		blocks[blockIdx][slotIdx] = *item
		ids[blockIdx][slotIdx] = id
		s.index.Put(id, writePos)
		writePos++
	}

	s.blocks = blocks
	s.ids = ids
	s.freeSlots = nil
	s.nextSlot = writePos
}

// Clear removes every entity. Ids issued before Clear stay dead.
func (s *Store[T]) Clear() {
	s.blocks = nil
	s.ids = nil
	s.freeSlots = nil
	s.nextSlot = 0
	s.index.Clear()
}

// StoreStats summarizes the store's occupancy.
type StoreStats struct {
	Live      int
	Slots     int
	FreeSlots int
	Blocks    int
}

func (s *Store[T]) Stats() StoreStats {
	return StoreStats{
		Live:      s.Len(),
		Slots:     s.nextSlot,
		FreeSlots: len(s.freeSlots),
		Blocks:    len(s.blocks),
	}
}
