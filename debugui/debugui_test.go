package debugui

import (
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/round"
	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	h := NewHistory(3)
	assert.Zero(t, h.Average())
	assert.Zero(t, h.Last())

	h.Push(3)
	h.Push(6)
	assert.Equal(t, float32(4.5), h.Average())
	assert.Equal(t, float32(6), h.Last())
	assert.Equal(t, []float32{0, 3, 6}, h.Ordered())

	h.Push(9)
	h.Push(12)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []float32{6, 9, 12}, h.Ordered())
	assert.Equal(t, float32(9), h.Average())
	assert.Equal(t, float32(12), h.Last())
}

func TestHistoryRejectsZeroSize(t *testing.T) {
	assert.Panics(t, func() { NewHistory(0) })
}

func TestDescribeRow(t *testing.T) {
	assert.Equal(t, " 3 00000000000000000000000000000000", describeRow(3, 0))
	assert.Equal(t, "20 00111111111111111111111111111111 full", describeRow(20, board.FullRow))
	assert.Equal(t, " 0 00111000000000000000000000000000", describeRow(0, board.ColumnMask(0)))
}

func settledAt(shape piece.Shape, row, column int) round.Settled {
	return round.Settled{Block: piece.NewBlock(row, column, 0, 0), Shape: shape}
}

func TestFilterSettled(t *testing.T) {
	cells := []round.Settled{
		settledAt(piece.Line, 17, 5),
		settledAt(piece.Square, 20, 1),
		settledAt(piece.Line, 20, 0),
		settledAt(piece.T, 19, 4),
	}

	all := filterSettled(cells, "")
	assert.Equal(t, []round.Settled{cells[2], cells[1], cells[3], cells[0]}, all)

	assert.Equal(t, []round.Settled{cells[2], cells[0]}, filterSettled(cells, " LINE "))
	assert.Equal(t, []round.Settled{cells[3]}, filterSettled(cells, "19"))
	assert.Empty(t, filterSettled(cells, "blob"))

	assert.Equal(t, piece.Line, cells[0].Shape, "input order is untouched")
}
