package search

// ExploredSet holds the nodes already extracted and expanded.
// Nodes are kept in insertion order so logs and reports are deterministic.
type ExploredSet[S comparable, A any] struct {
	nodes []*Node[S, A]
	index map[S]struct{}
}

// NewExploredSet returns an empty explored set.
func NewExploredSet[S comparable, A any]() *ExploredSet[S, A] {
	return &ExploredSet[S, A]{index: make(map[S]struct{})}
}

// Add records n as explored. Adding a state twice is a no-op.
func (e *ExploredSet[S, A]) Add(n *Node[S, A]) {
	if _, ok := e.index[n.State]; ok {
		return
	}
	e.index[n.State] = struct{}{}
	e.nodes = append(e.nodes, n)
}

// Contains reports whether state has been explored.
func (e *ExploredSet[S, A]) Contains(state S) bool {
	_, ok := e.index[state]
	return ok
}

// ContainsNode reports whether n's state has been explored.
func (e *ExploredSet[S, A]) ContainsNode(n *Node[S, A]) bool {
	return n != nil && e.Contains(n.State)
}

// Len returns the number of explored nodes.
func (e *ExploredSet[S, A]) Len() int {
	if e == nil {
		return 0
	}

	return len(e.nodes)
}

// Nodes returns the explored nodes in the order they were added.
func (e *ExploredSet[S, A]) Nodes() []*Node[S, A] {
	out := make([]*Node[S, A], len(e.nodes))
	copy(out, e.nodes)

	return out
}

// States returns the explored states in the order they were added.
func (e *ExploredSet[S, A]) States() []S {
	return states(e.nodes)
}

// Snapshot returns an independent copy of the set.
func (e *ExploredSet[S, A]) Snapshot() *ExploredSet[S, A] {
	c := &ExploredSet[S, A]{
		nodes: make([]*Node[S, A], len(e.nodes)),
		index: make(map[S]struct{}, len(e.index)),
	}
	copy(c.nodes, e.nodes)
	for s := range e.index {
		c.index[s] = struct{}{}
	}

	return c
}
