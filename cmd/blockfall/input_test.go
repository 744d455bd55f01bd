package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/round"
	"github.com/stretchr/testify/assert"
)

func keys(down ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, d := range down {
			if d == k {
				return true
			}
		}
		return false
	}
}

func TestReadIntents(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		held    []ebiten.Key
		want    round.Intent
	}{
		{"nothing", nil, nil, 0},
		{"left by letter", []ebiten.Key{ebiten.KeyA}, nil, round.MoveLeft},
		{"left by arrow", []ebiten.Key{ebiten.KeyArrowLeft}, nil, round.MoveLeft},
		{"rotate both keys", []ebiten.Key{ebiten.KeyW, ebiten.KeyX}, nil, round.RotateCW},
		{"soft drop and right", []ebiten.Key{ebiten.KeyS, ebiten.KeyD}, nil, round.MoveDown | round.MoveRight},
		{"speed keys need holding", []ebiten.Key{ebiten.KeyPageUp}, nil, 0},
		{"held speed up", nil, []ebiten.Key{ebiten.KeyArrowUp}, round.SpeedUp},
		{"held speed down", nil, []ebiten.Key{ebiten.KeyPageDown}, round.SpeedDown},
		{"held movement is ignored", nil, []ebiten.Key{ebiten.KeyA}, 0},
		{"escape pauses", []ebiten.Key{ebiten.KeyEscape}, nil, round.TogglePause},
		{"debug and quit", []ebiten.Key{ebiten.KeyE, ebiten.KeyQ}, nil, round.ToggleDebug | round.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readIntents(keys(tt.pressed...), keys(tt.held...)))
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	assert.NoError(t, err)
	assert.Equal(t, 400, cfg.Window.Width)
}
