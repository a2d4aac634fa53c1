package maze

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// Render draws the maze one row per line: walls as WallGlyph, start and
// goal with their layout characters, solution cells as SolutionGlyph,
// other explored cells as ExploredGlyph and open cells with the path
// character. Either argument may be nil.
func (m *Maze) Render(sol *search.Solution[Cell, Move], explored *search.ExploredSet[Cell, Move]) string {
	var b strings.Builder
	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			cell := Cell{r, c}
			switch {
			case m.walls[r][c]:
				b.WriteRune(WallGlyph)
			case cell == m.start:
				b.WriteRune(m.layout.StartChar)
			case cell == m.goal:
				b.WriteRune(m.layout.GoalChar)
			case sol.Contains(cell):
				b.WriteRune(SolutionGlyph)
			case explored != nil && explored.Contains(cell):
				b.WriteRune(ExploredGlyph)
			default:
				b.WriteRune(m.layout.PathChar)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Summary describes the last run of e over m, one line per entry.
func Summary(name string, e *search.Engine[Cell, Move]) []string {
	sol := "-"
	verdict := "found"
	if e.Status() == search.Succeeded {
		sol = fmt.Sprint(e.Solution().Len())
	} else {
		verdict = "No Solution found!"
	}

	return []string{
		strings.Repeat("-", 28),
		"- Solving: " + name,
		"- Algorithm: " + string(e.Algorithm()),
		fmt.Sprintf("- Explored nodes (%c, %c): %d", ExploredGlyph, SolutionGlyph, e.Explored().Len()),
		fmt.Sprintf("- Solution nodes (%c): %s", SolutionGlyph, sol),
		"- Solution: " + verdict,
	}
}
