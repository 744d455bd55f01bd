package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/round"
)

// PieceInspector lists the active piece's blocks with their anchors and
// local offsets, and which moves the board currently allows.
type PieceInspector struct{}

func NewPieceInspector() *PieceInspector {
	return &PieceInspector{}
}

func (pi *PieceInspector) Render(r *round.Round, dt time.Duration) {
	imgui.SetNextWindowPosV(imgui.NewVec2(790, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 240), imgui.CondOnce)
	if !imgui.BeginV("Active Piece", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	p := r.Active()
	if p == nil {
		imgui.Text("No active piece")
		imgui.End()
		return
	}

	field := r.Board()
	imgui.Text(fmt.Sprintf("Shape: %s (size %d)", p.Shape(), p.Size()))
	imgui.Text(fmt.Sprintf("Can fall: %t", p.CanFall(field)))
	imgui.Text(fmt.Sprintf("Can rotate: bounds %t, collision %t",
		p.CanRotate(field, piece.RotateBounds), p.CanRotate(field, piece.RotateCollision)))
	imgui.Separator()

	renderBlockTable("ActiveBlocks", p.Blocks())
	imgui.End()
}

func renderBlockTable(id string, blocks []piece.Block) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(id, 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("Cell")
	imgui.TableSetupColumn("Anchor")
	imgui.TableSetupColumn("Local")
	imgui.TableHeadersRow()

	for _, b := range blocks {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d,%d", b.Row(), b.Column()))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d,%d", b.AnchorRow(), b.AnchorColumn()))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d,%d", b.LocalRow(), b.LocalColumn()))
	}

	imgui.EndTable()
}
