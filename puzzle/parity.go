package puzzle

// Solvable reports whether goal is reachable from start.
//
// Every move swaps the blank with a neighbour: it flips the parity of the
// cell permutation and moves the blank by one cell. On boards with at least
// two rows and two columns that invariant is also sufficient. On a single
// row or column tiles never pass each other, so their order must match.
func Solvable(start, goal Board) bool {
	if start.rows != goal.rows || start.cols != goal.cols || !start.sameTiles(goal) {
		return false
	}
	if start.rows == 1 || start.cols == 1 {
		return withoutBlank(start.cells) == withoutBlank(goal.cells)
	}

	var where [256]int
	for i := 0; i < len(goal.cells); i++ {
		where[goal.cells[i]] = i
	}
	n := len(start.cells)
	visited := make([]bool, n)
	cycles := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycles++
		for j := i; !visited[j]; j = where[start.cells[j]] {
			visited[j] = true
		}
	}
	permOdd := (n-cycles)%2 == 1

	sr, sc := start.BlankPos()
	gr, gc := goal.BlankPos()
	distOdd := (abs(sr-gr)+abs(sc-gc))%2 == 1

	return permOdd == distOdd
}

func withoutBlank(cells string) string {
	out := make([]byte, 0, len(cells))
	for i := 0; i < len(cells); i++ {
		if cells[i] != blankCell {
			out = append(out, cells[i])
		}
	}

	return string(out)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
