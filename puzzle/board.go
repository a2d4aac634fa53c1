package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for board construction and parsing.
var (
	ErrEmptyLayout    = errors.New("puzzle: layout must have at least one row and one column")
	ErrRaggedRows     = errors.New("puzzle: all rows must have the same number of elements")
	ErrNoBlank        = errors.New("puzzle: layout has no blank cell")
	ErrMultipleBlanks = errors.New("puzzle: blank must appear exactly once")
	ErrDuplicateTile  = errors.New("puzzle: tile numbers must be distinct")
	ErrTileRange      = errors.New("puzzle: tile number out of range")
	ErrSizeMismatch   = errors.New("puzzle: initial and goal boards must have the same size")
	ErrTileMismatch   = errors.New("puzzle: initial and goal boards must have the same tiles")
)

// Blank is returned by Board.At for the blank cell.
const Blank = -1

// MaxTile is the largest tile number a Board can hold.
const MaxTile = 254

// blankCell encodes the blank in Board.cells.
const blankCell = 0xFF

// Board is an immutable tile arrangement and the search state. It is
// comparable: equal boards have equal dimensions and tiles.
type Board struct {
	rows, cols int
	cells      string // row-major, one byte per cell
}

// NewBoard builds a Board from a rectangular grid. The cell equal to
// blank is the blank; every other value is a tile in [0, MaxTile].
func NewBoard(grid [][]int, blank int) (Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return Board{}, ErrEmptyLayout
	}
	rows, cols := len(grid), len(grid[0])
	cells := make([]byte, 0, rows*cols)
	seen := make(map[int]bool, rows*cols)
	blanks := 0
	for _, row := range grid {
		if len(row) != cols {
			return Board{}, ErrRaggedRows
		}
		for _, v := range row {
			switch {
			case v == blank:
				blanks++
				cells = append(cells, blankCell)
				continue
			case v < 0 || v > MaxTile:
				return Board{}, fmt.Errorf("%w: %d", ErrTileRange, v)
			case seen[v]:
				return Board{}, fmt.Errorf("%w: %d", ErrDuplicateTile, v)
			}
			seen[v] = true
			cells = append(cells, byte(v))
		}
	}
	switch {
	case blanks == 0:
		return Board{}, ErrNoBlank
	case blanks > 1:
		return Board{}, fmt.Errorf("%w: found %d", ErrMultipleBlanks, blanks)
	}

	return Board{rows: rows, cols: cols, cells: string(cells)}, nil
}

// MustBoard is NewBoard for literals known to be valid; it panics on error.
func MustBoard(grid [][]int, blank int) Board {
	b, err := NewBoard(grid, blank)
	if err != nil {
		panic(err)
	}

	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b Board) Cols() int { return b.cols }

// At returns the tile at (row, col), or Blank.
func (b Board) At(row, col int) int {
	v := b.cells[row*b.cols+col]
	if v == blankCell {
		return Blank
	}

	return int(v)
}

// BlankPos returns the position of the blank.
func (b Board) BlankPos() (row, col int) {
	i := strings.IndexByte(b.cells, blankCell)
	return i / b.cols, i % b.cols
}

// swap returns a copy of b with cells i and j exchanged.
func (b Board) swap(i, j int) Board {
	cells := []byte(b.cells)
	cells[i], cells[j] = cells[j], cells[i]

	return Board{rows: b.rows, cols: b.cols, cells: string(cells)}
}

// sameTiles reports whether b and o hold the same tile numbers.
func (b Board) sameTiles(o Board) bool {
	if len(b.cells) != len(o.cells) {
		return false
	}
	var count [256]int
	for i := 0; i < len(b.cells); i++ {
		count[b.cells[i]]++
		count[o.cells[i]]--
	}
	for _, c := range count {
		if c != 0 {
			return false
		}
	}

	return true
}

func (b Board) cell(i int) string {
	if b.cells[i] == blankCell {
		return "_"
	}

	return strconv.Itoa(int(b.cells[i]))
}

// String renders the board on one line: rows separated by '/', tiles by
// spaces, '_' for the blank. For example "1 2 3/4 5 6/7 8 _".
func (b Board) String() string {
	return b.join(" ", "/")
}

// Grid renders the board one row per line with a trailing newline.
func (b Board) Grid() string {
	return b.join(" ", "\n") + "\n"
}

func (b Board) join(cellSep, rowSep string) string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteString(rowSep)
		}
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteString(cellSep)
			}
			sb.WriteString(b.cell(r*b.cols + c))
		}
	}

	return sb.String()
}
