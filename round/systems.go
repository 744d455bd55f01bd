package round

import (
	"slices"

	"github.com/plus3/blockfall/ecs"
)

// The systems run in registration order each frame: scene, input,
// gravity, lock, line clear, spawn.

// SceneSystem samples input and handles quit, pause and the debug view.
type SceneSystem struct {
	round *Round
}

func (s *SceneSystem) Execute(frame *ecs.UpdateFrame[Settled]) {
	r := s.round
	if r.source != nil {
		r.input = r.source()
	}

	in := r.input
	if in.Has(Quit) && !r.quit {
		r.quit = true
		r.log.Infof("quit requested")
	}

	switch {
	case in.Has(TogglePause) && r.scene == Paused:
		r.setScene(Playing)
	case in.Has(TogglePause):
		r.setScene(Paused)
	case in.Has(ToggleDebug) && r.scene == DebugView:
		r.setScene(Playing)
	case in.Has(ToggleDebug) && r.scene == Playing:
		r.setScene(DebugView)
	}
}

// InputSystem applies speed, horizontal, rotation and soft drop intents
// to the active piece. Left wins when both directions are held.
type InputSystem struct {
	round *Round
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame[Settled]) {
	r := s.round
	if !r.running() {
		return
	}

	in := r.input
	if in.Has(SpeedUp) {
		r.clock.SpeedUp()
	} else if in.Has(SpeedDown) {
		r.clock.SpeedDown()
	}

	if r.active == nil || r.phase != Falling {
		return
	}

	if in.Has(MoveLeft) {
		r.active.MoveLeft(r.field)
	} else if in.Has(MoveRight) {
		r.active.MoveRight(r.field)
	}

	if in.Has(RotateCW) {
		r.active.Rotate(r.field, r.policy)
	}

	if in.Has(MoveDown) {
		r.step()
	}
}

// GravitySystem advances the clock and drops the active piece one row per
// tick. The clock does not advance while the round is paused.
type GravitySystem struct {
	round *Round
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame[Settled]) {
	r := s.round
	if !r.running() {
		return
	}
	if !r.clock.Advance(frame.DeltaTime) {
		return
	}

	r.emit(GravityTick{})
	r.step()
}

// LockSystem commits a resting piece to the board and turns its blocks
// into settled entities.
type LockSystem struct {
	round *Round
}

func (s *LockSystem) Execute(frame *ecs.UpdateFrame[Settled]) {
	r := s.round
	if r.phase != Locking || r.active == nil {
		return
	}

	p := r.active
	rows := p.Lock(r.field)

	// Spawned directly rather than through Commands so the line clear
	// later this frame can see them.
	for _, b := range p.Blocks() {
		frame.Storage.Spawn(Settled{Block: b, Shape: p.Shape()})
	}

	r.active = nil
	r.reached = rows
	r.clock.OnLock()
	r.stats.Locks++
	r.emit(ReachedBottom{Rows: slices.Clone(rows)})
	r.log.Debugf("%s locked on rows %v, period now %s", p.Shape(), rows, r.clock.Period())
}

// LineClearSystem removes completed rows touched by the last lock.
type LineClearSystem struct {
	round *Round
}

func (s *LineClearSystem) Execute(frame *ecs.UpdateFrame[Settled]) {
	r := s.round
	if r.phase != Locking || r.active != nil {
		return
	}

	// Completed rows are collected before any clear so that shifting
	// does not hide a second completed row. Increasing order keeps each
	// later index valid: clearing row i only moves rows above i.
	var completed []int
	for _, row := range r.reached {
		if r.field.RowIsCompleted(row) {
			completed = append(completed, row)
		}
	}

	for _, row := range completed {
		for id, cell := range frame.Storage.Iter() {
			switch current := cell.Block.Row(); {
			case current == row:
				frame.Commands.Delete(id)
			case current < row:
				cell.Block.MoveToNextRow()
			}
		}
		r.field.ClearRow(row)
		r.log.Debugf("cleared row %d", row)
	}

	if len(completed) > 0 {
		r.stats.LinesCleared += len(completed)
		r.emit(RowsCleared{Rows: completed})
		r.log.Infof("cleared %d rows, %d total", len(completed), r.stats.LinesCleared)

		// Clears leave holes across the store's blocks; pack them once
		// holes outnumber the blocks still settled.
		frame.Commands.Defer(func() {
			if stats := frame.Storage.Stats(); stats.FreeSlots > stats.Live {
				frame.Storage.Compact()
			}
		})
		r.log.Debugf("%d store commands queued", frame.Commands.Pending())
	}

	r.reached = nil
	r.phase = Spawning
}

// SpawnSystem places a random piece from the configured set at the spawn
// column.
type SpawnSystem struct {
	round *Round
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame[Settled]) {
	r := s.round
	if !r.running() || r.phase != Spawning {
		return
	}
	r.SpawnPiece(r.nextShape(), r.column)
}
