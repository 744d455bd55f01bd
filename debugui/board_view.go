package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/round"
)

const boardViewCell = 12

// BoardView draws the occupancy grid and, optionally, each row's bitmask.
type BoardView struct {
	showBits bool
}

func NewBoardView() *BoardView {
	return &BoardView{}
}

func (bv *BoardView) Render(r *round.Round, dt time.Duration) {
	imgui.SetNextWindowPosV(imgui.NewVec2(420, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 420), imgui.CondOnce)
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Phase: %s  Scene: %s", r.Phase(), r.Scene()))
	stats := r.Stats()
	imgui.Text(fmt.Sprintf("Spawned: %d  Locks: %d  Lines: %d", stats.Spawned, stats.Locks, stats.LinesCleared))
	imgui.Checkbox("Show bitmasks", &bv.showBits)
	imgui.Separator()

	bv.renderGrid(r)

	if bv.showBits {
		imgui.Separator()
		field := r.Board()
		for i := range board.Rows {
			imgui.Text(describeRow(i, field.Row(i)))
		}
	}

	imgui.End()
}

func (bv *BoardView) renderGrid(r *round.Round) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	settled := imgui.ColorU32Vec4(imgui.NewVec4(0.6, 0.6, 0.6, 1))
	active := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 1))
	empty := imgui.ColorU32Vec4(imgui.NewVec4(0.15, 0.15, 0.15, 1))

	cell := func(row, column int, color uint32) {
		x := origin.X + float32(column*boardViewCell)
		y := origin.Y + float32(row*boardViewCell)
		drawList.AddRectFilled(imgui.NewVec2(x, y), imgui.NewVec2(x+boardViewCell-1, y+boardViewCell-1), color)
	}

	field := r.Board()
	for row := range board.Rows {
		for column := range board.Columns {
			if field.Occupied(row, column) {
				cell(row, column, settled)
			} else {
				cell(row, column, empty)
			}
		}
	}
	if p := r.Active(); p != nil {
		for _, b := range p.Blocks() {
			cell(b.Row(), b.Column(), active)
		}
	}

	imgui.Dummy(imgui.NewVec2(board.Columns*boardViewCell, board.Rows*boardViewCell))
}

// describeRow formats a row index, its bitmask and a marker when complete.
func describeRow(i int, row board.Row) string {
	marker := ""
	if row.Completed() {
		marker = " full"
	}
	return fmt.Sprintf("%2d %s%s", i, row, marker)
}
