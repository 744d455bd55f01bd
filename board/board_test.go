package board_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/stretchr/testify/assert"
)

func TestColumnMask(t *testing.T) {
	assert.Equal(t, board.Row(0b111<<27), board.ColumnMask(0))
	assert.Equal(t, board.Row(0b111), board.ColumnMask(board.Columns-1))
	assert.Panics(t, func() { board.ColumnMask(-1) })
	assert.Panics(t, func() { board.ColumnMask(board.Columns) })
}

func TestSetThenCanPlace(t *testing.T) {
	for row := range board.Rows {
		for column := range board.Columns {
			t.Run(fmt.Sprintf("row=%d,column=%d", row, column), func(t *testing.T) {
				b := board.New()
				assert.True(t, b.CanPlace(row, column))
				assert.False(t, b.Occupied(row, column))

				b.Set(row, column)

				assert.False(t, b.CanPlace(row, column))
				assert.True(t, b.Occupied(row, column))
			})
		}
	}
}

func TestSetOnlyTouchesOneGroup(t *testing.T) {
	b := board.New()
	b.Set(4, 3)

	for column := range board.Columns {
		assert.Equal(t, column == 3, b.Occupied(4, column), "column %d", column)
	}
	assert.Zero(t, b.Row(4)&^board.FullRow, "bits beyond the column groups must stay zero")
}

func TestCanPlaceOutOfRangeRow(t *testing.T) {
	b := board.New()
	assert.False(t, b.CanPlace(-1, 0))
	assert.False(t, b.CanPlace(board.Rows, 0))
	assert.Panics(t, func() { b.CanPlace(0, board.Columns) })
}

func TestPreconditionsPanic(t *testing.T) {
	b := board.New()
	assert.Panics(t, func() { b.Set(board.Rows, 0) })
	assert.Panics(t, func() { b.Set(0, -1) })
	assert.Panics(t, func() { b.Occupied(-1, 0) })
	assert.Panics(t, func() { b.RowIsCompleted(board.Rows) })
	assert.Panics(t, func() { b.ClearRow(-1) })
}

func TestRowIsCompleted(t *testing.T) {
	t.Run("all columns set", func(t *testing.T) {
		b := board.New()
		for column := range board.Columns {
			b.Set(7, column)
		}
		assert.True(t, b.RowIsCompleted(7))
		assert.Equal(t, board.FullRow, b.Row(7))
	})

	for missing := range board.Columns {
		t.Run(fmt.Sprintf("missing column %d", missing), func(t *testing.T) {
			b := board.New()
			for column := range board.Columns {
				if column != missing {
					b.Set(7, column)
				}
			}
			assert.False(t, b.RowIsCompleted(7))
		})
	}

	t.Run("empty row", func(t *testing.T) {
		assert.False(t, board.New().RowIsCompleted(0))
	})
}

func TestClearRow(t *testing.T) {
	b := board.New()
	// Give every row a distinct pattern so shifts are observable.
	for row := range board.Rows {
		b.Set(row, row%board.Columns)
		if row%3 == 0 {
			b.Set(row, (row+4)%board.Columns)
		}
	}
	before := b.Rows()

	const cleared = 12
	b.ClearRow(cleared)
	after := b.Rows()

	assert.Zero(t, after[0])
	for i := 1; i <= cleared; i++ {
		assert.Equal(t, before[i-1], after[i], "row %d", i)
	}
	for i := cleared + 1; i < board.Rows; i++ {
		assert.Equal(t, before[i], after[i], "row %d", i)
	}
}

func TestClearTopRow(t *testing.T) {
	b := board.New()
	b.Set(0, 2)
	b.Set(1, 5)

	b.ClearRow(0)

	assert.Zero(t, b.Row(0))
	assert.True(t, b.Occupied(1, 5))
}

func TestReset(t *testing.T) {
	b := board.New()
	b.Set(20, 9)
	b.Reset()
	assert.Equal(t, [board.Rows]board.Row{}, b.Rows())
}

func TestWorldCoordinates(t *testing.T) {
	assert.Equal(t, float32(-90), board.ColumnToX(0))
	assert.Equal(t, float32(90), board.ColumnToX(board.Columns-1))
	assert.Equal(t, float32(210), board.RowToY(0))
	assert.Equal(t, float32(-190), board.RowToY(board.Rows-1))
}

func TestRowString(t *testing.T) {
	assert.Equal(t, "00000000000000000000000000000111", board.ColumnMask(9).String())
	assert.Contains(t, board.New().String(), "20 00000000000000000000000000000000")
}
