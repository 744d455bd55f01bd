package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/gravity"
	"github.com/plus3/blockfall/internal/log"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/round"
)

// The debug view widens the window so the panels sit beside the field.
const (
	debugWidth  = 1120
	debugHeight = 780
)

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	borderColor     = color.RGBA{120, 120, 140, 255}
	settledColor    = color.RGBA{110, 110, 120, 255}
	gizmoColor      = color.RGBA{255, 80, 200, 255}
	anchorColor     = color.RGBA{255, 255, 255, 255}
)

var shapeColors = map[piece.Shape]color.RGBA{
	piece.Line:   {100, 210, 230, 255},
	piece.Square: {240, 220, 90, 255},
	piece.T:      {180, 110, 220, 255},
	piece.S:      {120, 210, 120, 255},
	piece.Z:      {230, 100, 100, 255},
	piece.J:      {90, 120, 230, 255},
	piece.L:      {240, 160, 70, 255},
}

// Game implements ebiten.Game on top of a round.
type Game struct {
	round   *round.Round
	overlay *debugui.Overlay
	imgui   *debugui_ebiten.ImguiBackend
	cfg     *config.Config
	dt      time.Duration
	log     *log.Logger
}

func (g *Game) Update() error {
	g.imgui.BeginFrame()

	if g.round.Scene() != round.DebugView || !g.overlay.InputState().WantCaptureKeyboard {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.round.Phase() == round.ToppedOut {
			g.log.Infof("restarting round")
			g.round.Reset()
		}
		g.round.Step(readIntents(inpututil.IsKeyJustPressed, ebiten.IsKeyPressed), g.dt)
	} else {
		g.round.Step(0, g.dt)
	}
	g.handleEvents()

	if g.round.Scene() == round.DebugView {
		g.overlay.Render(g.round, g.dt)
	}
	g.imgui.EndFrame()

	if g.round.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) handleEvents() {
	for _, ev := range g.round.Events() {
		switch ev := ev.(type) {
		case round.SceneChanged:
			switch {
			case ev.To == round.DebugView:
				ebiten.SetWindowSize(debugWidth, debugHeight)
			case ev.From == round.DebugView:
				ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
			}
		case round.TopOut:
			stats := g.round.Stats()
			g.log.Infof("topped out after %d pieces and %d lines", stats.Spawned, stats.LinesCleared)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// The field stays centered in the configured window area.
	cx := float32(g.cfg.Window.Width) / 2
	cy := float32(g.cfg.Window.Height) / 2
	vector.StrokeRect(screen, cx-board.FieldWidth/2-1, cy-board.FieldHeight/2-1,
		board.FieldWidth+2, board.FieldHeight+2, 1, borderColor, false)

	for cell := range g.round.Settled() {
		drawBlock(screen, cx, cy, cell.Block, settledColor)
	}
	if p := g.round.Active(); p != nil {
		for _, b := range p.Blocks() {
			drawBlock(screen, cx, cy, b, shapeColors[p.Shape()])
		}
	}

	if g.round.Scene() == round.DebugView {
		g.drawGizmos(screen, cx, cy)
	}

	g.drawHUD(screen)
	g.imgui.Draw(screen)
}

// drawGizmos outlines every occupied board cell and marks each active
// block's anchor.
func (g *Game) drawGizmos(screen *ebiten.Image, cx, cy float32) {
	field := g.round.Board()
	for row := range board.Rows {
		for column := range board.Columns {
			if !field.Occupied(row, column) {
				continue
			}
			x := cx + board.ColumnToX(column) - board.CellCenter
			y := cy - board.RowToY(row)
			vector.StrokeRect(screen, x, y, board.CellSize, board.CellSize, 1, gizmoColor, false)
		}
	}

	if p := g.round.Active(); p != nil {
		for _, b := range p.Blocks() {
			ax := cx + board.ColumnToX(b.AnchorColumn()) - board.CellCenter
			ay := cy - board.RowToY(b.AnchorRow())
			vector.DrawFilledCircle(screen, ax, ay, 3, anchorColor, false)
		}
	}
}

// drawBlock converts the block's field coordinates, centered with y up,
// to screen space.
func drawBlock(screen *ebiten.Image, cx, cy float32, b piece.Block, c color.RGBA) {
	x := cx + b.X() - board.CellCenter
	y := cy - b.Y()
	vector.DrawFilledRect(screen, x+1, y+1, board.CellSize-2, board.CellSize-2, c, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	stats := g.round.Stats()
	hud := fmt.Sprintf("Lines %d  Pieces %d  %s", stats.LinesCleared, stats.Spawned, speedLabel(g.round))
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	switch {
	case g.round.Phase() == round.ToppedOut:
		ebitenutil.DebugPrintAt(screen, "TOPPED OUT - R to restart", 8, 24)
	case g.round.Scene() == round.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", 8, 24)
	}
}

// speedLabel shows the manual speed when the round uses the manual clock
// and the countdown period otherwise.
func speedLabel(r *round.Round) string {
	if manual, ok := r.Clock().(*gravity.Manual); ok {
		return fmt.Sprintf("Speed %.1f rows/s", manual.Speed())
	}
	return fmt.Sprintf("Period %dms", r.Period().Milliseconds())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
