// Package game implements the 2048 grid transformation engine: the
// move/merge algorithm, scoring, bounded undo history, and win/game-over
// detection. It contains pure logic with no platform dependencies; rendering,
// input, audio, and persistence are injected collaborators.
package game

// DefaultSize is the classic board dimension.
const DefaultSize = 4

// Cell identifies a grid position.
type Cell struct {
	Row, Col int
}

// Grid is a square matrix of tile values. A zero value means the cell is
// empty; any other value is a power of two >= 2.
type Grid struct {
	size  int
	cells [][]int
}

// NewGrid creates an empty size x size grid.
func NewGrid(size int) *Grid {
	if size < 2 {
		size = DefaultSize
	}
	g := &Grid{size: size}
	g.cells = make([][]int, size)
	for r := range g.cells {
		g.cells[r] = make([]int, size)
	}
	return g
}

// Size returns the side length.
func (g *Grid) Size() int {
	return g.size
}

// Within reports whether the cell is inside the grid bounds.
func (g *Grid) Within(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// At returns the tile value at c, or 0 for an empty or out-of-bounds cell.
func (g *Grid) At(c Cell) int {
	if !g.Within(c) {
		return 0
	}
	return g.cells[c.Row][c.Col]
}

// Set places a tile value at c. Out-of-bounds cells are ignored.
func (g *Grid) Set(c Cell, value int) {
	if !g.Within(c) {
		return
	}
	g.cells[c.Row][c.Col] = value
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (g *Grid) EmptyCells() []Cell {
	var cells []Cell
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell reports whether at least one cell is empty.
func (g *Grid) HasEmptyCell() bool {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// HasAdjacentPair reports whether any two orthogonally adjacent cells hold
// equal tile values.
func (g *Grid) HasAdjacentPair() bool {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			v := g.cells[r][c]
			if v == 0 {
				continue
			}
			if c < g.size-1 && g.cells[r][c+1] == v {
				return true
			}
			if r < g.size-1 && g.cells[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the largest tile value on the grid, or 0 when empty.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] > maxVal {
				maxVal = g.cells[r][c]
			}
		}
	}
	return maxVal
}

// TileCount returns the number of occupied cells.
func (g *Grid) TileCount() int {
	n := 0
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy sharing no storage with the receiver.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.size)
	for r := range g.cells {
		copy(clone.cells[r], g.cells[r])
	}
	return clone
}

// Rows returns a copy of the grid contents in row-major order. Callers may
// mutate the result freely without affecting the live grid.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for r := range g.cells {
		rows[r] = make([]int, g.size)
		copy(rows[r], g.cells[r])
	}
	return rows
}
