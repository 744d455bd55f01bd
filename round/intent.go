package round

// Intent is the set of player inputs sampled for one frame.
type Intent uint16

const (
	MoveLeft Intent = 1 << iota
	MoveRight
	RotateCW
	// MoveDown is the soft drop: one row, or a lock if the piece rests.
	MoveDown
	// SpeedUp and SpeedDown are level-triggered: frontends set them on
	// every frame the key is held.
	SpeedUp
	SpeedDown
	TogglePause
	ToggleDebug
	Quit
)

// Has reports whether every flag in flag is set.
func (i Intent) Has(flag Intent) bool {
	return i&flag == flag
}
