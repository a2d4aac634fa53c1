package maze

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a maze layout from r.
//
// Each character is one cell: opts.StartChar and opts.GoalChar must each
// appear exactly once, opts.PathChar is open, anything else is a wall.
// Blank lines are skipped; the width is that of the longest line and
// shorter lines are padded with open cells.
func Parse(r io.Reader, opts LayoutOptions) (*Maze, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("maze: read layout: %w", err)
	}
	contents := string(raw)

	if n := strings.Count(contents, string(opts.StartChar)); n != 1 {
		return nil, fmt.Errorf("%w: found %d %q", ErrStartCount, n, opts.StartChar)
	}
	if n := strings.Count(contents, string(opts.GoalChar)); n != 1 {
		return nil, fmt.Errorf("%w: found %d %q", ErrGoalCount, n, opts.GoalChar)
	}

	var rows [][]rune
	width := 0
	for _, line := range strings.Split(strings.ReplaceAll(contents, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := []rune(line)
		rows = append(rows, row)
		width = max(width, len(row))
	}
	if len(rows) == 0 || width == 0 {
		return nil, ErrEmptyMaze
	}

	walls := make([][]bool, len(rows))
	var start, goal Cell
	for r, row := range rows {
		walls[r] = make([]bool, width)
		for c, ch := range row {
			switch ch {
			case opts.StartChar:
				start = Cell{r, c}
			case opts.GoalChar:
				goal = Cell{r, c}
			case opts.PathChar:
			default:
				walls[r][c] = true
			}
		}
	}

	m, err := New(walls, start, goal)
	if err != nil {
		return nil, err
	}
	m.layout = opts

	return m, nil
}

// ParseString parses a layout held in a string.
func ParseString(layout string, opts LayoutOptions) (*Maze, error) {
	return Parse(strings.NewReader(layout), opts)
}

// Load parses the layout file at path.
func Load(path string, opts LayoutOptions) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open layout: %w", err)
	}
	defer f.Close()

	return Parse(f, opts)
}
