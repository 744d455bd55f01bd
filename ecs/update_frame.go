package ecs

import "time"

// UpdateFrame is handed to every system during one scheduler pass.
type UpdateFrame[T any] struct {
	DeltaTime time.Duration
	Commands  *Commands[T]
	Storage   *Store[T]
}

func newUpdateFrame[T any](dt time.Duration, storage *Store[T]) *UpdateFrame[T] {
	return &UpdateFrame[T]{
		DeltaTime: dt,
		Commands:  newCommands[T](),
		Storage:   storage,
	}
}
