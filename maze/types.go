package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrEmptyMaze indicates the layout has no rows or no columns.
	ErrEmptyMaze = errors.New("maze: layout must have at least one row and one column")
	// ErrNonRectangular indicates wall rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrStartCount indicates the layout lacks a unique start cell.
	ErrStartCount = errors.New("maze: layout must have exactly one start point")
	// ErrGoalCount indicates the layout lacks a unique goal cell.
	ErrGoalCount = errors.New("maze: layout must have exactly one goal")
	// ErrCellOutOfBounds indicates a start or goal outside the grid.
	ErrCellOutOfBounds = errors.New("maze: cell out of bounds")
	// ErrCellBlocked indicates a start or goal placed on a wall.
	ErrCellBlocked = errors.New("maze: cell is a wall")
)

// Cell is a maze position and the search state.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row, col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Move is a one-cell step.
type Move string

const (
	Up    Move = "up"
	Right Move = "right"
	Down  Move = "down"
	Left  Move = "left"
)

// offset is a (row, col) delta for one move.
type offset struct {
	move       Move
	dRow, dCol int
}

// moveOffsets fixes the action enumeration order: up, right, down, left.
var moveOffsets = [...]offset{
	{Up, -1, 0},
	{Right, 0, 1},
	{Down, 1, 0},
	{Left, 0, -1},
}

// Moves returns every move in enumeration order.
func Moves() []Move {
	out := make([]Move, len(moveOffsets))
	for i, o := range moveOffsets {
		out[i] = o.move
	}

	return out
}

// LayoutOptions selects the characters that mark special cells in a layout.
type LayoutOptions struct {
	// StartChar marks the start cell.
	StartChar rune
	// GoalChar marks the goal cell.
	GoalChar rune
	// PathChar marks an open cell; any other character is a wall.
	PathChar rune
}

// DefaultLayoutOptions returns StartChar='A', GoalChar='B', PathChar=' '.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		StartChar: 'A',
		GoalChar:  'B',
		PathChar:  ' ',
	}
}

// Glyphs used by Render.
const (
	WallGlyph     = '█'
	SolutionGlyph = '¤'
	ExploredGlyph = '·'
)
