package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/round"
)

// botMoves are the intents the bot mixes. Pause and debug toggles are
// rare so rounds keep moving.
var botMoves = []round.Intent{
	round.MoveLeft,
	round.MoveRight,
	round.RotateCW,
	round.MoveDown,
	round.SpeedUp,
	round.SpeedDown,
}

// Bot presses random keys.
type Bot struct {
	rng *rand.Rand
}

func NewBot(seed uint64) *Bot {
	return &Bot{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns the intents for one frame.
func (b *Bot) Next() round.Intent {
	var intents round.Intent
	for _, move := range botMoves {
		if b.rng.IntN(4) == 0 {
			intents |= move
		}
	}
	if b.rng.IntN(200) == 0 {
		intents |= round.TogglePause
	}
	if b.rng.IntN(200) == 0 {
		intents |= round.ToggleDebug
	}
	return intents
}
