// Package termui renders a round in a terminal and drives it from
// keyboard input.
package termui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/gravity"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/round"
)

const (
	// Each board cell is two terminal columns wide.
	cellWidth = 2
	originX   = 1
	originY   = 1
	hudX      = originX + board.Columns*cellWidth + 3
)

var shapeColors = map[piece.Shape]tcell.Color{
	piece.Line:   tcell.ColorAqua,
	piece.Square: tcell.ColorYellow,
	piece.T:      tcell.ColorPurple,
	piece.S:      tcell.ColorGreen,
	piece.Z:      tcell.ColorRed,
	piece.J:      tcell.ColorBlue,
	piece.L:      tcell.ColorOrange,
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw redraws the whole frame and shows it.
func (r *Renderer) Draw(game *round.Round) {
	r.screen.Clear()
	r.drawBorder()

	for cell := range game.Settled() {
		r.drawCell(cell.Block, tcell.StyleDefault.Background(shapeColors[cell.Shape]))
	}
	if p := game.Active(); p != nil {
		style := tcell.StyleDefault.Background(shapeColors[p.Shape()])
		for _, b := range p.Blocks() {
			r.drawCell(b, style)
		}
	}

	r.drawHUD(game)
	r.screen.Show()
}

func (r *Renderer) drawBorder() {
	right := originX + board.Columns*cellWidth
	bottom := originY + board.Rows
	for y := originY; y < bottom; y++ {
		r.screen.SetContent(originX-1, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := originX; x < right; x++ {
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	r.screen.SetContent(originX-1, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *Renderer) drawCell(b piece.Block, style tcell.Style) {
	x := originX + b.Column()*cellWidth
	y := originY + b.Row()
	for i := range cellWidth {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func (r *Renderer) drawHUD(game *round.Round) {
	stats := game.Stats()
	lines := []string{
		fmt.Sprintf("Lines   %d", stats.LinesCleared),
		fmt.Sprintf("Pieces  %d", stats.Spawned),
		speedLine(game),
		fmt.Sprintf("Phase   %s", game.Phase()),
	}
	if game.Scene() == round.DebugView {
		field := game.Board()
		lines = append(lines, "")
		for i := board.Rows - 4; i < board.Rows; i++ {
			lines = append(lines, fmt.Sprintf("%2d %s", i, field.Row(i)))
		}
	}
	for i, line := range lines {
		r.drawText(hudX, originY+i, line, textStyle)
	}

	y := originY + len(lines) + 1
	switch {
	case game.Phase() == round.ToppedOut:
		r.drawText(hudX, y, "TOPPED OUT - r to restart", alertStyle)
	case game.Scene() == round.Paused:
		r.drawText(hudX, y, "PAUSED", alertStyle)
	}
}

func speedLine(game *round.Round) string {
	if manual, ok := game.Clock().(*gravity.Manual); ok {
		return fmt.Sprintf("Speed   %.1f", manual.Speed())
	}
	return fmt.Sprintf("Period  %dms", game.Period().Milliseconds())
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
