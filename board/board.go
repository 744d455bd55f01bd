// Package board holds the persistent grid of locked cells.
//
// Each row is a bitmask with one group of BitsPerCell bits per column.
// Column 0 is the highest-order group, so a row prints left to right the
// way it is drawn. Only a full group or an empty group is ever written.
package board

import (
	"fmt"
	"strings"
)

const (
	Rows        = 21
	Columns     = 10
	BitsPerCell = 3
	CellMask    = Row(0b111)
)

// Geometry of the visible field in world units.
const (
	CellSize    = 20.0
	CellCenter  = CellSize / 2
	FieldWidth  = Columns * CellSize
	FieldHeight = Rows * CellSize
)

// FullRow is a row with every column occupied.
const FullRow = Row(1<<(Columns*BitsPerCell) - 1)

// Row is the occupancy bitmask of a single board row.
type Row uint32

// ColumnMask returns the bit group for column.
func ColumnMask(column int) Row {
	checkColumn(column)
	return CellMask << ((Columns - 1 - column) * BitsPerCell)
}

// Free reports whether column has no bits set in r.
func (r Row) Free(column int) bool {
	return r&ColumnMask(column) == 0
}

// Completed reports whether every column group of r is fully set.
func (r Row) Completed() bool {
	for column := range Columns {
		mask := ColumnMask(column)
		if r&mask != mask {
			return false
		}
	}
	return true
}

func (r Row) String() string {
	return fmt.Sprintf("%032b", uint32(r))
}

// Board is the fixed-size grid of row bitmasks.
type Board struct {
	rows [Rows]Row
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// CanPlace reports whether row is on the board and column is free in it.
func (b *Board) CanPlace(row, column int) bool {
	checkColumn(column)
	if row < 0 || row >= Rows {
		return false
	}
	return b.rows[row].Free(column)
}

// Occupied reports whether the cell holds a locked block.
func (b *Board) Occupied(row, column int) bool {
	checkRow(row)
	return !b.rows[row].Free(column)
}

// Set marks the cell as occupied. Callers only set cells a piece has
// already proved placeable.
func (b *Board) Set(row, column int) {
	checkRow(row)
	b.rows[row] |= ColumnMask(column)
}

// RowIsCompleted reports whether every column of row is occupied.
func (b *Board) RowIsCompleted(row int) bool {
	checkRow(row)
	return b.rows[row].Completed()
}

// ClearRow empties row and shifts every row above it down by one.
// Row 0 is empty afterwards; rows below row are untouched.
func (b *Board) ClearRow(row int) {
	checkRow(row)
	b.rows[row] = 0
	for current := row; current >= 1; current-- {
		b.rows[current] = b.rows[current-1]
	}
	b.rows[0] = 0
}

// Row returns the bitmask of row i.
func (b *Board) Row(i int) Row {
	checkRow(i)
	return b.rows[i]
}

// Rows returns a copy of every row, top first.
func (b *Board) Rows() [Rows]Row {
	return b.rows
}

// Reset empties the board.
func (b *Board) Reset() {
	b.rows = [Rows]Row{}
}

func (b *Board) String() string {
	var sb strings.Builder
	for i, row := range b.rows {
		fmt.Fprintf(&sb, "%2d %s\n", i, row)
	}
	return sb.String()
}

// ColumnToX converts a column index to the x coordinate of the cell center.
func ColumnToX(column int) float32 {
	return float32(column)*CellSize - FieldWidth/2 + CellCenter
}

// RowToY converts a row index to the y coordinate of the cell. Row 0 is
// the top of the field and y decreases as the row grows.
func RowToY(row int) float32 {
	return FieldHeight/2 - float32(row)*CellSize
}

func checkRow(row int) {
	if row < 0 || row >= Rows {
		panic(fmt.Sprintf("board: row %d out of range [0, %d)", row, Rows))
	}
}

func checkColumn(column int) {
	if column < 0 || column >= Columns {
		panic(fmt.Sprintf("board: column %d out of range [0, %d)", column, Columns))
	}
}
