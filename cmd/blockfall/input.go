package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/round"
)

type binding struct {
	keys   []ebiten.Key
	intent round.Intent
	// held intents apply on every frame the key is down, the rest only
	// on the frame it is pressed.
	held bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, intent: round.MoveLeft},
	{keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, intent: round.MoveRight},
	{keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyX}, intent: round.RotateCW},
	{keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, intent: round.MoveDown},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyPageUp}, intent: round.SpeedUp, held: true},
	{keys: []ebiten.Key{ebiten.KeyPageDown}, intent: round.SpeedDown, held: true},
	{keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, intent: round.TogglePause},
	{keys: []ebiten.Key{ebiten.KeyE}, intent: round.ToggleDebug},
	{keys: []ebiten.Key{ebiten.KeyQ}, intent: round.Quit},
}

// readIntents collects this frame's intents. justPressed and held are
// inpututil.IsKeyJustPressed and ebiten.IsKeyPressed outside of tests.
func readIntents(justPressed, held func(ebiten.Key) bool) round.Intent {
	var intents round.Intent
	for _, b := range bindings {
		check := justPressed
		if b.held {
			check = held
		}
		for _, key := range b.keys {
			if check(key) {
				intents |= b.intent
				break
			}
		}
	}
	return intents
}
