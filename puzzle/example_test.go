package puzzle_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/search"
)

// ExamplePuzzle demonstrates solving a 2×2 puzzle one move from its goal,
// and detecting an unreachable goal before searching.
func ExamplePuzzle() {
	start, _ := puzzle.ParseString("1 2\n_ 3")
	goal, _ := puzzle.ParseString("1 2\n3 _")
	swapped, _ := puzzle.ParseString("2 1\n3 _")

	p, err := puzzle.New(start, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	e, _ := p.NewEngine()
	found, _ := e.Solve(search.BFS)
	fmt.Println(found, e.Solution().Actions(), e.Solution().States())

	fmt.Println(puzzle.Solvable(start, goal), puzzle.Solvable(goal, swapped))
	// Output:
	// true [right] [1 2/3 _]
	// true false
}
