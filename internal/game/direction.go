package game

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Vector returns the unit step (dRow, dCol) for the direction and whether
// the direction is one of the four legal values.
func (d Direction) Vector() (dRow, dCol int, ok bool) {
	switch d {
	case DirUp:
		return -1, 0, true
	case DirDown:
		return 1, 0, true
	case DirLeft:
		return 0, -1, true
	case DirRight:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}

// traversal returns the cell visitation order for one move on a size x size
// grid. Cells closest to the target edge come first, so a cell that receives
// a moved or merged tile is never reconsidered as a source in the same pass.
func traversal(size int, d Direction) []Cell {
	rows := make([]int, size)
	cols := make([]int, size)
	for i := 0; i < size; i++ {
		rows[i] = i
		cols[i] = i
	}

	// Walk from the far edge backward along the axis of travel.
	if d == DirDown {
		for i := 0; i < size; i++ {
			rows[i] = size - 1 - i
		}
	}
	if d == DirRight {
		for i := 0; i < size; i++ {
			cols[i] = size - 1 - i
		}
	}

	order := make([]Cell, 0, size*size)
	for _, r := range rows {
		for _, c := range cols {
			order = append(order, Cell{Row: r, Col: c})
		}
	}
	return order
}
