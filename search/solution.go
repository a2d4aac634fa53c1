package search

// Solution is the ordered path of nodes from the start (exclusive) to the
// goal (inclusive). An unbuilt or failed Solution is empty.
type Solution[S comparable, A any] struct {
	nodes []*Node[S, A]
	built bool
}

// NewSolution returns an empty solution.
func NewSolution[S comparable, A any]() *Solution[S, A] {
	return &Solution[S, A]{}
}

// Build walks parent links from goal to the root, drops the root and
// stores the rest in start→goal order. A Solution is built once.
func (s *Solution[S, A]) Build(goal *Node[S, A]) error {
	if s.built {
		return ErrSolutionBuilt
	}
	s.built = true
	if goal == nil {
		return nil
	}
	s.nodes = goal.Path()[1:]

	return nil
}

// Empty reports whether the solution holds no steps. A start==goal run
// yields a built but empty solution.
func (s *Solution[S, A]) Empty() bool {
	return s == nil || len(s.nodes) == 0
}

// Len returns the number of steps in the solution.
func (s *Solution[S, A]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.nodes)
}

// Nodes returns the solution nodes in start→goal order.
func (s *Solution[S, A]) Nodes() []*Node[S, A] {
	if s == nil {
		return nil
	}
	out := make([]*Node[S, A], len(s.nodes))
	copy(out, s.nodes)

	return out
}

// States returns the solution states in start→goal order.
func (s *Solution[S, A]) States() []S {
	if s == nil {
		return nil
	}

	return states(s.nodes)
}

// Actions returns the actions that lead from start to goal.
func (s *Solution[S, A]) Actions() []A {
	if s == nil {
		return nil
	}
	out := make([]A, len(s.nodes))
	for i, n := range s.nodes {
		out[i] = n.Action
	}

	return out
}

// Contains reports whether the solution passes through state.
// Linear scan: solutions are short.
func (s *Solution[S, A]) Contains(state S) bool {
	if s == nil {
		return false
	}
	for _, n := range s.nodes {
		if n.State == state {
			return true
		}
	}

	return false
}
