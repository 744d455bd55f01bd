// Package piece implements the falling piece: its blocks, the movement
// and rotation transforms, and collision checks against a board.
//
// Every transform is all-or-nothing. Feasibility is checked for every
// block before any block is mutated.
package piece

import (
	"fmt"
	"slices"

	"github.com/plus3/blockfall/board"
)

// RotationPolicy selects what a rotation is checked against.
type RotationPolicy int

const (
	// RotateBounds only requires rotated blocks to stay on the board.
	RotateBounds RotationPolicy = iota
	// RotateCollision additionally requires every destination cell to be free.
	RotateCollision
)

// ParseRotationPolicy resolves "bounds" or "collision".
func ParseRotationPolicy(name string) (RotationPolicy, error) {
	switch name {
	case "bounds", "":
		return RotateBounds, nil
	case "collision":
		return RotateCollision, nil
	default:
		return 0, fmt.Errorf("unknown rotation policy %q", name)
	}
}

// Piece is the active group of blocks.
type Piece struct {
	shape  Shape
	size   int
	blocks []Block
}

// New creates a piece of the given shape anchored at row 0 and column.
func New(shape Shape, column int) *Piece {
	l, ok := layouts[shape]
	if !ok {
		panic(fmt.Sprintf("piece: unsupported shape %v", shape))
	}

	blocks := make([]Block, 0, len(l.offsets))
	for _, offset := range l.offsets {
		blocks = append(blocks, NewBlock(0, column, offset[0], offset[1]))
	}
	return &Piece{shape: shape, size: l.size, blocks: blocks}
}

// FromBlocks creates a piece from explicit blocks. size is the side of the
// bounding square used for rotation and must contain every local offset.
func FromBlocks(shape Shape, size int, blocks ...Block) *Piece {
	if len(blocks) == 0 {
		panic("piece: piece without blocks")
	}
	for _, b := range blocks {
		if b.LocalRow() >= size || b.LocalColumn() >= size {
			panic(fmt.Sprintf("piece: local offset (%d, %d) outside a square of side %d",
				b.LocalRow(), b.LocalColumn(), size))
		}
	}
	return &Piece{shape: shape, size: size, blocks: slices.Clone(blocks)}
}

func (p *Piece) Shape() Shape { return p.shape }
func (p *Piece) Size() int    { return p.size }

// Blocks returns a copy of the piece's blocks.
func (p *Piece) Blocks() []Block {
	return slices.Clone(p.checked())
}

// Fits reports whether every block's cell is placeable.
func (p *Piece) Fits(field *board.Board) bool {
	for _, b := range p.checked() {
		if b.Column() >= board.Columns || !field.CanPlace(b.Row(), b.Column()) {
			return false
		}
	}
	return true
}

// MoveLeft shifts the piece one column left when every block can follow.
func (p *Piece) MoveLeft(field *board.Board) bool {
	for _, b := range p.checked() {
		if !b.CanMoveLeft(field) {
			return false
		}
	}
	for i := range p.blocks {
		p.blocks[i].MoveLeft()
	}
	return true
}

// MoveRight shifts the piece one column right when every block can follow.
func (p *Piece) MoveRight(field *board.Board) bool {
	for _, b := range p.checked() {
		if !b.CanMoveRight(field) {
			return false
		}
	}
	for i := range p.blocks {
		p.blocks[i].MoveRight()
	}
	return true
}

// CanFall reports whether every block can move to the next row.
func (p *Piece) CanFall(field *board.Board) bool {
	for _, b := range p.checked() {
		if !b.CanMoveNextRow(field) {
			return false
		}
	}
	return true
}

// Fall moves every block one row down.
func (p *Piece) Fall() {
	for i := range p.checked() {
		p.blocks[i].MoveToNextRow()
	}
}

// CanRotate reports whether a quarter turn is allowed under policy.
func (p *Piece) CanRotate(field *board.Board, policy RotationPolicy) bool {
	for _, b := range p.checked() {
		if !b.CanRotate(p.size) {
			return false
		}
		if policy == RotateCollision {
			turned := b
			turned.Rotate(p.size)
			if !field.CanPlace(turned.Row(), turned.Column()) {
				return false
			}
		}
	}
	return true
}

// Rotate turns the piece clockwise when allowed under policy.
func (p *Piece) Rotate(field *board.Board, policy RotationPolicy) bool {
	if !p.CanRotate(field, policy) {
		return false
	}
	for i := range p.blocks {
		p.blocks[i].Rotate(p.size)
	}
	return true
}

// Lock writes every block into the board and returns the distinct rows
// touched, in increasing order.
func (p *Piece) Lock(field *board.Board) []int {
	rows := make([]int, 0, len(p.blocks))
	for _, b := range p.checked() {
		b.Set(field)
		rows = append(rows, b.Row())
	}
	slices.Sort(rows)
	return slices.Compact(rows)
}

func (p *Piece) checked() []Block {
	if len(p.blocks) == 0 {
		panic("piece: piece without blocks")
	}
	return p.blocks
}
