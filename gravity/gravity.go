// Package gravity provides the clocks that emit gravity ticks.
//
// Countdown is the canonical clock: a repeating timer whose period
// shrinks each time a piece locks. Manual is the variant where the player
// sets the fall speed directly.
package gravity

import (
	"fmt"
	"time"
)

// Clock drives involuntary downward motion.
type Clock interface {
	// Advance adds dt to the clock and reports whether a tick fired.
	Advance(dt time.Duration) bool
	// OnLock is called once per locked piece.
	OnLock()
	// SpeedUp and SpeedDown are the player's speed adjustments.
	SpeedUp()
	SpeedDown()
	// Period is the time between two ticks.
	Period() time.Duration
	Reset()
}

// Countdown is a repeating timer that fires once per period. Its period
// shrinks by Speedup each time a piece locks, as long as the result stays
// above MinPeriod.
type Countdown struct {
	initial   time.Duration
	period    time.Duration
	elapsed   time.Duration
	minPeriod time.Duration
	speedup   float64
}

// NewCountdown creates a countdown starting at initial.
func NewCountdown(initial, minPeriod time.Duration, speedup float64) *Countdown {
	if initial <= 0 {
		panic(fmt.Sprintf("gravity: non-positive period %s", initial))
	}
	return &Countdown{
		initial:   initial,
		period:    initial,
		minPeriod: minPeriod,
		speedup:   speedup,
	}
}

// Advance ticks the timer. At most one tick fires per call; the overflow
// past the period is kept for the next one.
func (c *Countdown) Advance(dt time.Duration) bool {
	c.elapsed += dt
	if c.elapsed < c.period {
		return false
	}
	c.elapsed %= c.period
	return true
}

// OnLock shrinks the period unless that would reach the floor.
func (c *Countdown) OnLock() {
	next := c.period - time.Duration(float64(c.period)*c.speedup)
	if next > c.minPeriod {
		c.period = next
	}
}

func (c *Countdown) SpeedUp()   {}
func (c *Countdown) SpeedDown() {}

func (c *Countdown) Period() time.Duration  { return c.period }
func (c *Countdown) Elapsed() time.Duration { return c.elapsed }

func (c *Countdown) Reset() {
	c.period = c.initial
	c.elapsed = 0
}

// Manual ticks at a player-controlled speed, in rows per second.
type Manual struct {
	initial  float64
	speed    float64
	step     float64
	minSpeed float64
	elapsed  time.Duration
}

// NewManual creates a manual clock. step is the speed change per frame
// a speed key is held; speed never drops below minSpeed.
func NewManual(speed, step, minSpeed float64) *Manual {
	if minSpeed <= 0 || speed < minSpeed {
		panic(fmt.Sprintf("gravity: invalid manual speed %v (min %v)", speed, minSpeed))
	}
	return &Manual{
		initial:  speed,
		speed:    speed,
		step:     step,
		minSpeed: minSpeed,
	}
}

func (m *Manual) Advance(dt time.Duration) bool {
	m.elapsed += dt
	period := m.Period()
	if m.elapsed < period {
		return false
	}
	m.elapsed %= period
	return true
}

func (m *Manual) OnLock() {}

func (m *Manual) SpeedUp() {
	m.speed += m.step
}

func (m *Manual) SpeedDown() {
	m.speed = max(m.speed-m.step, m.minSpeed)
}

func (m *Manual) Speed() float64 { return m.speed }

func (m *Manual) Period() time.Duration {
	return time.Duration(float64(time.Second) / m.speed)
}

func (m *Manual) Reset() {
	m.speed = m.initial
	m.elapsed = 0
}
