package puzzle

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// Move is the direction the blank slides.
type Move string

const (
	Up    Move = "up"
	Right Move = "right"
	Down  Move = "down"
	Left  Move = "left"
)

// blankSteps fixes the action enumeration order: up, right, down, left.
var blankSteps = [...]struct {
	move       Move
	dRow, dCol int
}{
	{Up, -1, 0},
	{Right, 0, 1},
	{Down, 1, 0},
	{Left, 0, -1},
}

// Puzzle is a start/goal board pair; it implements search.Problem[Board, Move].
type Puzzle struct {
	start, goal Board
}

// New pairs start and goal. Returns ErrSizeMismatch when dimensions differ
// and ErrTileMismatch when the tile sets differ.
func New(start, goal Board) (*Puzzle, error) {
	if start.rows != goal.rows || start.cols != goal.cols {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrSizeMismatch, start.rows, start.cols, goal.rows, goal.cols)
	}
	if !start.sameTiles(goal) {
		return nil, ErrTileMismatch
	}

	return &Puzzle{start: start, goal: goal}, nil
}

// Start returns the initial board.
func (p *Puzzle) Start() Board { return p.start }

// Goal returns the goal board.
func (p *Puzzle) Goal() Board { return p.goal }

// Actions lists the moves that keep the blank on the board.
func (p *Puzzle) Actions(b Board) []Move {
	r, c := b.BlankPos()
	moves := make([]Move, 0, len(blankSteps))
	for _, st := range blankSteps {
		nr, nc := r+st.dRow, c+st.dCol
		if nr >= 0 && nr < b.rows && nc >= 0 && nc < b.cols {
			moves = append(moves, st.move)
		}
	}

	return moves
}

// Result slides the blank in direction mv, swapping it with the tile there.
func (p *Puzzle) Result(b Board, mv Move) (Board, error) {
	r, c := b.BlankPos()
	for _, st := range blankSteps {
		if st.move != mv {
			continue
		}
		nr, nc := r+st.dRow, c+st.dCol
		if nr < 0 || nr >= b.rows || nc < 0 || nc >= b.cols {
			return Board{}, fmt.Errorf("%w: blank at (%d, %d) cannot move %s", search.ErrIllegalAction, r, c, mv)
		}
		return b.swap(r*b.cols+c, nr*b.cols+nc), nil
	}

	return Board{}, fmt.Errorf("%w: unknown move %q", search.ErrIllegalAction, mv)
}

// NewEngine returns a search engine over p.
func (p *Puzzle) NewEngine(opts ...search.Option) (*search.Engine[Board, Move], error) {
	return search.NewEngine[Board, Move](p, opts...)
}
