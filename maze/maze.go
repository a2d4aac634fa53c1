package maze

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// Maze is a rectangular grid of open and walled cells with a start and a
// goal. It is immutable once built and implements search.Problem[Cell, Move].
type Maze struct {
	Width, Height int
	walls         [][]bool
	start, goal   Cell
	layout        LayoutOptions
}

// New constructs a Maze from a non-empty, rectangular wall grid
// (walls[row][col] == true for a wall). It deep-copies the input.
// Returns ErrEmptyMaze, ErrNonRectangular, ErrCellOutOfBounds or
// ErrCellBlocked for invalid input.
func New(walls [][]bool, start, goal Cell) (*Maze, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	h, w := len(walls), len(walls[0])
	for _, row := range walls {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]bool, w)
		copy(cells[r], walls[r])
	}
	m := &Maze{
		Width:  w,
		Height: h,
		walls:  cells,
		start:  start,
		goal:   goal,
		layout: DefaultLayoutOptions(),
	}
	for _, c := range []Cell{start, goal} {
		if !m.InBounds(c.Row, c.Col) {
			return nil, fmt.Errorf("%w: %v in %dx%d maze", ErrCellOutOfBounds, c, h, w)
		}
		if m.walls[c.Row][c.Col] {
			return nil, fmt.Errorf("%w: %v", ErrCellBlocked, c)
		}
	}

	return m, nil
}

// InBounds reports whether (row, col) lies within the grid.
func (m *Maze) InBounds(row, col int) bool {
	return row >= 0 && row < m.Height && col >= 0 && col < m.Width
}

// IsWall reports whether c is a wall. Cells outside the grid count as walls.
func (m *Maze) IsWall(c Cell) bool {
	return !m.InBounds(c.Row, c.Col) || m.walls[c.Row][c.Col]
}

// OpenCells returns the number of non-wall cells.
func (m *Maze) OpenCells() int {
	n := 0
	for _, row := range m.walls {
		for _, wall := range row {
			if !wall {
				n++
			}
		}
	}

	return n
}

// Start returns the start cell.
func (m *Maze) Start() Cell { return m.start }

// Goal returns the goal cell.
func (m *Maze) Goal() Cell { return m.goal }

// Actions lists the moves from c that stay on the grid and off the walls,
// in Up, Right, Down, Left order.
func (m *Maze) Actions(c Cell) []Move {
	moves := make([]Move, 0, len(moveOffsets))
	for _, o := range moveOffsets {
		if !m.IsWall(Cell{c.Row + o.dRow, c.Col + o.dCol}) {
			moves = append(moves, o.move)
		}
	}

	return moves
}

// Result returns the cell reached from c by mv.
// Unknown moves and moves into walls wrap search.ErrIllegalAction.
func (m *Maze) Result(c Cell, mv Move) (Cell, error) {
	for _, o := range moveOffsets {
		if o.move != mv {
			continue
		}
		next := Cell{c.Row + o.dRow, c.Col + o.dCol}
		if m.IsWall(next) {
			return Cell{}, fmt.Errorf("%w: %s from %v hits a wall", search.ErrIllegalAction, mv, c)
		}
		return next, nil
	}

	return Cell{}, fmt.Errorf("%w: unknown move %q", search.ErrIllegalAction, mv)
}

// NewEngine returns a search engine over m.
func (m *Maze) NewEngine(opts ...search.Option) (*search.Engine[Cell, Move], error) {
	return search.NewEngine[Cell, Move](m, opts...)
}
