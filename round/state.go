package round

//go:generate go tool stringer -type=Phase,Scene -output=state_string.go

// Phase is where the round is in a piece's lifecycle.
type Phase int

const (
	Spawning Phase = iota
	Falling
	Locking
	// ToppedOut is terminal until Reset.
	ToppedOut
)

// Scene gates what runs each frame. DebugView only adds an overlay;
// Paused suspends gravity and movement without touching the clock.
type Scene int

const (
	Playing Scene = iota
	DebugView
	Paused
)
