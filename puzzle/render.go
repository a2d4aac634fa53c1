package puzzle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// Render describes the last run of e: initial and goal boards, then every
// board along the solution with the move that produced it, and the step
// count, or "No Solution found!".
func Render(e *search.Engine[Board, Move]) string {
	p := e.Problem()
	var b strings.Builder
	fmt.Fprintf(&b, "Puzzle initial state:\n%s\nPuzzle goal state:\n%s\n", p.Start().Grid(), p.Goal().Grid())
	fmt.Fprintf(&b, "Algorithm: %s\n", e.Algorithm())

	if e.Status() != search.Succeeded {
		fmt.Fprintf(&b, "No Solution found! (%d nodes tried)\n", e.Explored().Len())
		return b.String()
	}
	for i, n := range e.Solution().Nodes() {
		fmt.Fprintf(&b, "\n[%d] %s\n%s", i+1, n.Action, n.State.Grid())
	}
	fmt.Fprintf(&b, "\nSolution steps: %d (%d nodes tried)\n", e.Solution().Len(), e.Explored().Len())

	return b.String()
}
