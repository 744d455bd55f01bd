package ecs

// EntityId identifies a live entity in a Store. Ids are never reused, so
// a stale id simply fails to resolve. The zero id is never issued.
type EntityId uint64

// Valid reports whether the id could have been issued by a Store.
func (e EntityId) Valid() bool {
	return e != 0
}
