package main

import (
	"fmt"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/round"
)

// checkInvariants verifies that the board and the settled blocks agree
// and that no row is left complete. With exclusive set it also rejects
// overlapping cells, which bounds-only rotation can legitimately produce.
func checkInvariants(game *round.Round, exclusive bool) error {
	field := game.Board()

	var settled [board.Rows][board.Columns]bool
	for cell := range game.Settled() {
		row, column := cell.Block.Row(), cell.Block.Column()
		if exclusive && settled[row][column] {
			return fmt.Errorf("two settled blocks at row %d column %d", row, column)
		}
		settled[row][column] = true
	}

	for row := range board.Rows {
		if field.RowIsCompleted(row) {
			return fmt.Errorf("row %d left completed", row)
		}
		for column := range board.Columns {
			if field.Occupied(row, column) != settled[row][column] {
				return fmt.Errorf("board and settled blocks disagree at row %d column %d", row, column)
			}
		}
	}

	if p := game.Active(); exclusive && p != nil && !p.Fits(field) {
		return fmt.Errorf("active %s overlaps the board", p.Shape())
	}
	return nil
}
