package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/round"
)

// SettledBrowser pages through settled blocks, filtered by shape name or
// row number.
type SettledBrowser struct {
	filterText  string
	perPage     int
	currentPage int
}

func NewSettledBrowser(perPage int) *SettledBrowser {
	return &SettledBrowser{perPage: perPage}
}

func (sb *SettledBrowser) Render(r *round.Round, dt time.Duration) {
	imgui.SetNextWindowPosV(imgui.NewVec2(790, 260), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 400), imgui.CondOnce)
	if !imgui.BeginV("Settled Blocks", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Shape or row...", &sb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.filterText = ""
		sb.currentPage = 0
	}

	cells := filterSettled(slices.Collect(r.Settled()), sb.filterText)
	totalPages := max((len(cells)+sb.perPage-1)/sb.perPage, 1)
	sb.currentPage = min(sb.currentPage, totalPages-1)

	start := sb.currentPage * sb.perPage
	end := min(start+sb.perPage, len(cells))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SettledTable", 4, tableFlags, imgui.NewVec2(0, 300), 0) {
		imgui.TableSetupColumn("Cell")
		imgui.TableSetupColumn("Anchor")
		imgui.TableSetupColumn("Local")
		imgui.TableSetupColumn("Shape")
		imgui.TableHeadersRow()

		for _, cell := range cells[start:end] {
			b := cell.Block
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d,%d", b.Row(), b.Column()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d,%d", b.AnchorRow(), b.AnchorColumn()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d,%d", b.LocalRow(), b.LocalColumn()))
			imgui.TableNextColumn()
			imgui.Text(cell.Shape.String())
		}
		imgui.EndTable()
	}

	if totalPages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d blocks)", sb.currentPage+1, totalPages, len(cells)))
		imgui.SameLine()
		if imgui.Button("Prev") && sb.currentPage > 0 {
			sb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && sb.currentPage < totalPages-1 {
			sb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d blocks", len(cells)))
	}

	imgui.End()
}

// filterSettled keeps cells whose shape name contains filter, or whose
// row equals it when filter is a number. The result is ordered bottom
// row first, then by column.
func filterSettled(cells []round.Settled, filter string) []round.Settled {
	filter = strings.TrimSpace(strings.ToLower(filter))
	row, err := strconv.Atoi(filter)

	out := cells[:0:0]
	for _, cell := range cells {
		switch {
		case filter == "":
		case err == nil:
			if cell.Block.Row() != row {
				continue
			}
		case !strings.Contains(strings.ToLower(cell.Shape.String()), filter):
			continue
		}
		out = append(out, cell)
	}

	slices.SortFunc(out, func(a, b round.Settled) int {
		if c := cmp.Compare(b.Block.Row(), a.Block.Row()); c != 0 {
			return c
		}
		return cmp.Compare(a.Block.Column(), b.Block.Column())
	})
	return out
}
