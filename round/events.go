package round

import "github.com/plus3/blockfall/piece"

// Event is something the round reports to its frontend. Events are
// queued during a frame and drained with Round.Events.
type Event interface {
	event()
}

// GravityTick fires once per clock period while the round runs.
type GravityTick struct{}

// ReachedBottom fires once per lock with the distinct rows the piece
// occupied, in increasing order.
type ReachedBottom struct {
	Rows []int
}

// RowsCleared lists the completed rows removed after a lock, in the
// order they were cleared.
type RowsCleared struct {
	Rows []int
}

type PieceSpawned struct {
	Shape piece.Shape
}

// TopOut fires when a new piece cannot be placed at the spawn point.
type TopOut struct {
	Shape piece.Shape
}

type SceneChanged struct {
	From, To Scene
}

func (GravityTick) event()   {}
func (ReachedBottom) event() {}
func (RowsCleared) event()   {}
func (PieceSpawned) event()  {}
func (TopOut) event()       {}
func (SceneChanged) event()  {}
