package ecs

// System is one step of a frame. Systems run in registration order and
// may keep their own state between frames.
type System[T any] interface {
	Execute(frame *UpdateFrame[T])
}
