package ecs

// Commands buffers structural changes made while systems iterate a store.
// They are applied when the scheduler flushes the frame.
type Commands[T any] struct {
	deletes []EntityId
	defers  []func()
}

func newCommands[T any]() *Commands[T] {
	return &Commands[T]{}
}

// Defer queues a function to run after deletes are applied.
func (c *Commands[T]) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Delete queues an entity deletion. Deleting the same id twice is harmless.
func (c *Commands[T]) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Pending reports how many operations are queued.
func (c *Commands[T]) Pending() int {
	return len(c.deletes) + len(c.defers)
}

// Flush applies deletes, then deferred functions, and resets the buffer.
func (c *Commands[T]) Flush(storage *Store[T]) {
	for _, id := range c.deletes {
		storage.Delete(id)
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.defers)
	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]
}
