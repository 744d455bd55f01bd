package piece

import (
	"fmt"

	"github.com/plus3/blockfall/board"
)

// Block is one cell of a piece. Its position is an anchor shared with the
// other blocks of the piece plus a local offset inside the piece's
// bounding square. Rotation only touches the local offset, movement only
// touches the anchor.
type Block struct {
	row         int
	column      int
	localRow    int
	localColumn int
}

// NewBlock creates a block anchored at (row, column) with the given local offset.
func NewBlock(row, column, localRow, localColumn int) Block {
	if row < 0 || column < 0 || localRow < 0 || localColumn < 0 {
		panic(fmt.Sprintf("piece: negative block coordinate (%d, %d) + (%d, %d)",
			row, column, localRow, localColumn))
	}
	return Block{
		row:         row,
		column:      column,
		localRow:    localRow,
		localColumn: localColumn,
	}
}

// Row returns the effective board row.
func (b Block) Row() int { return b.row + b.localRow }

// Column returns the effective board column.
func (b Block) Column() int { return b.column + b.localColumn }

func (b Block) AnchorRow() int    { return b.row }
func (b Block) AnchorColumn() int { return b.column }
func (b Block) LocalRow() int     { return b.localRow }
func (b Block) LocalColumn() int  { return b.localColumn }

// X returns the world x coordinate of the block's cell center.
func (b Block) X() float32 { return board.ColumnToX(b.Column()) }

// Y returns the world y coordinate of the block's cell.
func (b Block) Y() float32 { return board.RowToY(b.Row()) }

// SetColumn moves the block so its effective column becomes value. At the
// left wall, when value is smaller than the local offset, the anchor is
// pinned to 0 and the local offset absorbs the shortfall.
func (b *Block) SetColumn(value int) {
	if value < 0 {
		panic(fmt.Sprintf("piece: column %d out of range", value))
	}
	if value >= b.localColumn {
		b.column = value - b.localColumn
		return
	}
	shortfall := b.localColumn - value
	b.column = 0
	b.localColumn = max(b.localColumn-shortfall, 0)
}

// MoveToNextRow advances the anchor one row down.
func (b *Block) MoveToNextRow() {
	b.row++
}

// CanMoveNextRow reports whether the cell below the block is on the board and free.
func (b Block) CanMoveNextRow(field *board.Board) bool {
	return field.CanPlace(b.Row()+1, b.Column())
}

// CanMoveLeft reports whether the cell left of the block, in the row the
// block currently occupies, exists and is free.
func (b Block) CanMoveLeft(field *board.Board) bool {
	column := b.Column()
	return column > 0 && field.CanPlace(b.Row(), column-1)
}

// CanMoveRight reports whether the cell right of the block exists and is free.
func (b Block) CanMoveRight(field *board.Board) bool {
	column := b.Column()
	return column+1 < board.Columns && field.CanPlace(b.Row(), column+1)
}

func (b *Block) MoveLeft()  { b.SetColumn(b.Column() - 1) }
func (b *Block) MoveRight() { b.SetColumn(b.Column() + 1) }

// rotated returns the local offset after a quarter turn inside a
// bounding square of side size.
func (b Block) rotated(size int) (localRow, localColumn int) {
	return b.localColumn, size - b.localRow - 1
}

// CanRotate reports whether the rotated block stays on the board.
func (b Block) CanRotate(size int) bool {
	localRow, localColumn := b.rotated(size)
	return b.column+localColumn < board.Columns && b.row+localRow < board.Rows
}

// Rotate applies a quarter turn to the local offset.
func (b *Block) Rotate(size int) {
	b.localRow, b.localColumn = b.rotated(size)
}

// Set marks the block's cell as occupied on the board.
func (b Block) Set(field *board.Board) {
	field.Set(b.Row(), b.Column())
}

func (b Block) String() string {
	return fmt.Sprintf("(%d,%d)+(%d,%d)", b.row, b.column, b.localRow, b.localColumn)
}
