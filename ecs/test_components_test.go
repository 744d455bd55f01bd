package ecs_test

import "github.com/plus3/blockfall/ecs"

// Cell is the entity type used across the ecs tests.
type Cell struct {
	Row, Column int
}

// lookup returns the live cell with the given id, or nil.
func lookup(store *ecs.Store[Cell], id ecs.EntityId) *Cell {
	for candidate, cell := range store.Iter() {
		if candidate == id {
			return cell
		}
	}
	return nil
}
