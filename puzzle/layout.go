package puzzle

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a board layout from r: one row per line, tokens separated by
// whitespace. Numeric tokens are tiles; the single non-numeric token is the
// blank. Blank lines are skipped.
func Parse(r io.Reader) (Board, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Board{}, fmt.Errorf("puzzle: read layout: %w", err)
	}

	var grid [][]int
	blankTokens := make(map[string]bool)
	for _, line := range strings.Split(string(raw), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, tok := range fields {
			if !isNumber(tok) {
				blankTokens[tok] = true
				row[i] = Blank
				continue
			}
			v, err := strconv.Atoi(tok)
			if err != nil || v > MaxTile {
				return Board{}, fmt.Errorf("%w: %s", ErrTileRange, tok)
			}
			row[i] = v
		}
		grid = append(grid, row)
	}
	if len(blankTokens) > 1 {
		return Board{}, fmt.Errorf("%w: %d distinct blank markers", ErrMultipleBlanks, len(blankTokens))
	}

	return NewBoard(grid, Blank)
}

// ParseString parses a layout held in a string.
func ParseString(layout string) (Board, error) {
	return Parse(strings.NewReader(layout))
}

// Load parses the layout file at path.
func Load(path string) (Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return Board{}, fmt.Errorf("puzzle: open layout: %w", err)
	}
	defer f.Close()

	b, err := Parse(f)
	if err != nil {
		return Board{}, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}

func isNumber(tok string) bool {
	for _, ch := range tok {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	return tok != ""
}
