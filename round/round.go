// Package round drives a single game: it owns the board, the active
// piece, the settled blocks and the gravity clock, and advances them one
// frame at a time through an ecs scheduler.
package round

import (
	"context"
	"encoding/binary"
	"iter"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/gravity"
	"github.com/plus3/blockfall/internal/log"
	"github.com/plus3/blockfall/piece"
)

// Settled is a block that belongs to the board after its piece locked.
type Settled struct {
	Block piece.Block
	Shape piece.Shape
}

type Stats struct {
	Frames       int64
	Spawned      int
	Locks        int
	LinesCleared int
}

type Round struct {
	field     *board.Board
	clock     gravity.Clock
	active    *piece.Piece
	settled   *ecs.Store[Settled]
	scheduler *ecs.Scheduler[Settled]

	shapes  []piece.Shape
	column  int
	policy  piece.RotationPolicy
	seed    uint64
	rng     *rand.Rand
	phase   Phase
	scene   Scene
	quit    bool
	input   Intent
	source  func() Intent
	reached []int
	events  []Event
	stats   Stats

	// firstFrame is the scheduler frame count at the last Reset.
	firstFrame int64
	log        *log.Logger
}

// New validates cfg and builds a round ready for its first frame. A nil
// logger discards output.
func New(cfg *config.Config, logger *log.Logger) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	shapes, err := cfg.ShapeSet()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Discard()
	}

	r := &Round{
		field:   board.New(),
		clock:   cfg.Clock(),
		settled: ecs.NewStore[Settled](),
		shapes:  shapes,
		column:  cfg.Spawn.Column,
		policy:  cfg.RotationPolicy(),
		seed:    cfg.Spawn.Seed,
		log:     logger.With("Round"),
	}

	r.scheduler = ecs.NewScheduler(r.settled)
	r.scheduler.Register(&SceneSystem{round: r})
	r.scheduler.Register(&InputSystem{round: r})
	r.scheduler.Register(&GravitySystem{round: r})
	r.scheduler.Register(&LockSystem{round: r})
	r.scheduler.Register(&LineClearSystem{round: r})
	r.scheduler.Register(&SpawnSystem{round: r})

	r.Reset()
	return r, nil
}

// Reset empties the board and restarts the round from its configuration.
// A zero seed draws a fresh random sequence each time.
func (r *Round) Reset() {
	r.field.Reset()
	r.settled.Clear()
	r.clock.Reset()
	r.active = nil
	r.phase = Spawning
	r.scene = Playing
	r.quit = false
	r.input = 0
	r.reached = nil
	r.events = nil
	r.stats = Stats{}
	r.firstFrame = r.scheduler.Frames()

	seed := r.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	r.rng = rand.New(rand.NewChaCha8(key))

	r.log.Debugf("reset with seed %d", seed)
}

// Step runs one frame with the given intents and elapsed time.
func (r *Round) Step(intents Intent, dt time.Duration) {
	r.input = intents
	r.scheduler.Once(dt)
}

// Run steps the round every interval until ctx is done, sampling intents
// from source at the start of each frame.
func (r *Round) Run(ctx context.Context, interval time.Duration, source func() Intent) {
	r.source = source
	defer func() { r.source = nil }()

	r.scheduler.Run(ctx, interval)
}

// SpawnPiece places a new piece of shape at column, discarding any active
// piece. It reports false and tops out the round if the piece does not
// fit.
func (r *Round) SpawnPiece(shape piece.Shape, column int) bool {
	return r.Place(piece.New(shape, column))
}

// Place makes p the active piece, discarding any previous one.
func (r *Round) Place(p *piece.Piece) bool {
	if !p.Fits(r.field) {
		r.active = nil
		r.phase = ToppedOut
		r.emit(TopOut{Shape: p.Shape()})
		r.log.Warnf("topped out: %s does not fit at the spawn point", p.Shape())
		return false
	}

	r.active = p
	r.phase = Falling
	r.stats.Spawned++
	r.emit(PieceSpawned{Shape: p.Shape()})
	r.log.Debugf("spawned %s", p.Shape())
	return true
}

func (r *Round) Board() *board.Board { return r.field }

// Active returns the falling piece, or nil between lock and spawn.
func (r *Round) Active() *piece.Piece { return r.active }

// Settled yields a copy of every settled block.
func (r *Round) Settled() iter.Seq[Settled] {
	return func(yield func(Settled) bool) {
		for cell := range r.settled.Values() {
			if !yield(*cell) {
				return
			}
		}
	}
}

func (r *Round) SettledCount() int { return r.settled.Len() }

func (r *Round) Period() time.Duration { return r.clock.Period() }
func (r *Round) Clock() gravity.Clock  { return r.clock }
func (r *Round) Phase() Phase          { return r.phase }
func (r *Round) Scene() Scene          { return r.scene }

// Quit reports whether a Quit intent has been seen.
func (r *Round) Quit() bool { return r.quit }

// Stats counts activity since the last Reset.
func (r *Round) Stats() Stats {
	stats := r.stats
	stats.Frames = r.scheduler.Frames() - r.firstFrame
	return stats
}

func (r *Round) SchedulerStats() *ecs.SchedulerStats { return r.scheduler.GetStats() }
func (r *Round) StoreStats() ecs.StoreStats          { return r.settled.Stats() }

// Events drains the events queued since the last call.
func (r *Round) Events() []Event {
	events := r.events
	r.events = nil
	return events
}

func (r *Round) emit(e Event) {
	r.events = append(r.events, e)
}

// running reports whether gravity and movement apply this frame.
func (r *Round) running() bool {
	return !r.quit && r.scene != Paused && r.phase != ToppedOut
}

func (r *Round) setScene(to Scene) {
	if to == r.scene {
		return
	}
	from := r.scene
	r.scene = to
	r.emit(SceneChanged{From: from, To: to})
	r.log.Debugf("scene %s -> %s", from, to)
}

// step moves the active piece down a row, or marks it for locking when
// something is underneath.
func (r *Round) step() {
	if r.active == nil || r.phase != Falling {
		return
	}
	if r.active.CanFall(r.field) {
		r.active.Fall()
		return
	}
	r.phase = Locking
}

func (r *Round) nextShape() piece.Shape {
	return r.shapes[r.rng.IntN(len(r.shapes))]
}
