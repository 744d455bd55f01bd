package termui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/round"
)

// KeyIntent maps a terminal key to a round intent. Terminals report no
// key releases, so every intent is a single press.
func KeyIntent(key tcell.Key, ch rune) round.Intent {
	switch key {
	case tcell.KeyLeft:
		return round.MoveLeft
	case tcell.KeyRight:
		return round.MoveRight
	case tcell.KeyDown:
		return round.MoveDown
	case tcell.KeyUp, tcell.KeyPgUp:
		return round.SpeedUp
	case tcell.KeyPgDn:
		return round.SpeedDown
	case tcell.KeyEscape:
		return round.TogglePause
	case tcell.KeyCtrlC:
		return round.Quit
	case tcell.KeyRune:
	default:
		return 0
	}

	switch unicode.ToLower(ch) {
	case 'a':
		return round.MoveLeft
	case 'd':
		return round.MoveRight
	case 'w', 'x':
		return round.RotateCW
	case 's':
		return round.MoveDown
	case 'p':
		return round.TogglePause
	case 'e':
		return round.ToggleDebug
	case 'q':
		return round.Quit
	}
	return 0
}

// IsRestart reports whether the key restarts a topped-out round.
func IsRestart(key tcell.Key, ch rune) bool {
	return key == tcell.KeyRune && unicode.ToLower(ch) == 'r'
}
