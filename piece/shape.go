package piece

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Shape

// Shape identifies one of the supported piece layouts.
type Shape int

const (
	Line Shape = iota
	Square
	T
	S
	Z
	J
	L
)

// Shapes lists every supported shape.
var Shapes = []Shape{Line, Square, T, S, Z, J, L}

type layout struct {
	size    int
	offsets [][2]int
}

// Local offsets inside the bounding square, as (localRow, localColumn).
var layouts = map[Shape]layout{
	Line:   {size: 4, offsets: [][2]int{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
	Square: {size: 2, offsets: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	T:      {size: 3, offsets: [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, 2}}},
	S:      {size: 3, offsets: [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 1}}},
	Z:      {size: 3, offsets: [][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 2}}},
	J:      {size: 3, offsets: [][2]int{{0, 0}, {1, 0}, {1, 1}, {1, 2}}},
	L:      {size: 3, offsets: [][2]int{{0, 2}, {1, 0}, {1, 1}, {1, 2}}},
}

// Size returns the side of the shape's bounding square.
func (s Shape) Size() int {
	l, ok := layouts[s]
	if !ok {
		panic(fmt.Sprintf("piece: unsupported shape %v", s))
	}
	return l.size
}

// ParseShape resolves a shape by name, ignoring case.
func ParseShape(name string) (Shape, error) {
	for _, shape := range Shapes {
		if strings.EqualFold(shape.String(), name) {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}
