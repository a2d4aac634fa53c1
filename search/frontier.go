package search

// Frontier holds nodes discovered but not yet expanded.
//
// Add inserts unconditionally: the caller checks Contains against both the
// frontier and the explored set first. Snapshot returns an independent
// shallow copy that later mutations of the live frontier do not affect.
type Frontier[S comparable, A any] interface {
	Add(n *Node[S, A])
	Extract() (*Node[S, A], error)
	NotEmpty() bool
	Len() int
	Contains(state S) bool
	ContainsNode(n *Node[S, A]) bool
	// Nodes returns the pending nodes in insertion order.
	Nodes() []*Node[S, A]
	Snapshot() Frontier[S, A]
}

// nodeList is the storage shared by both frontier disciplines: an
// insertion-ordered slice plus a per-state count for O(1) membership.
type nodeList[S comparable, A any] struct {
	nodes  []*Node[S, A]
	counts map[S]int
}

func newNodeList[S comparable, A any]() nodeList[S, A] {
	return nodeList[S, A]{counts: make(map[S]int)}
}

func (l *nodeList[S, A]) add(n *Node[S, A]) {
	l.nodes = append(l.nodes, n)
	l.counts[n.State]++
}

func (l *nodeList[S, A]) forget(n *Node[S, A]) {
	if c := l.counts[n.State]; c > 1 {
		l.counts[n.State] = c - 1
	} else {
		delete(l.counts, n.State)
	}
}

func (l *nodeList[S, A]) clone() nodeList[S, A] {
	c := nodeList[S, A]{
		nodes:  make([]*Node[S, A], len(l.nodes)),
		counts: make(map[S]int, len(l.counts)),
	}
	copy(c.nodes, l.nodes)
	for s, k := range l.counts {
		c.counts[s] = k
	}

	return c
}

func (l *nodeList[S, A]) NotEmpty() bool { return len(l.nodes) > 0 }

func (l *nodeList[S, A]) Len() int { return len(l.nodes) }

func (l *nodeList[S, A]) Contains(state S) bool {
	return l.counts[state] > 0
}

func (l *nodeList[S, A]) ContainsNode(n *Node[S, A]) bool {
	return n != nil && l.Contains(n.State)
}

func (l *nodeList[S, A]) Nodes() []*Node[S, A] {
	out := make([]*Node[S, A], len(l.nodes))
	copy(out, l.nodes)

	return out
}

// StackFrontier extracts the most recently added node first (DFS).
type StackFrontier[S comparable, A any] struct {
	nodeList[S, A]
}

// NewStackFrontier returns an empty LIFO frontier.
func NewStackFrontier[S comparable, A any]() *StackFrontier[S, A] {
	return &StackFrontier[S, A]{nodeList: newNodeList[S, A]()}
}

// Add pushes n on top of the stack.
func (f *StackFrontier[S, A]) Add(n *Node[S, A]) { f.add(n) }

// Extract pops the top of the stack.
func (f *StackFrontier[S, A]) Extract() (*Node[S, A], error) {
	if len(f.nodes) == 0 {
		return nil, ErrEmptyFrontier
	}
	last := len(f.nodes) - 1
	n := f.nodes[last]
	f.nodes[last] = nil
	f.nodes = f.nodes[:last]
	f.forget(n)

	return n, nil
}

// Snapshot returns an independent copy of the stack.
func (f *StackFrontier[S, A]) Snapshot() Frontier[S, A] {
	return &StackFrontier[S, A]{nodeList: f.clone()}
}

// QueueFrontier extracts the least recently added node first (BFS).
type QueueFrontier[S comparable, A any] struct {
	nodeList[S, A]
}

// NewQueueFrontier returns an empty FIFO frontier.
func NewQueueFrontier[S comparable, A any]() *QueueFrontier[S, A] {
	return &QueueFrontier[S, A]{nodeList: newNodeList[S, A]()}
}

// Add enqueues n at the tail.
func (f *QueueFrontier[S, A]) Add(n *Node[S, A]) { f.add(n) }

// Extract dequeues the head of the queue.
func (f *QueueFrontier[S, A]) Extract() (*Node[S, A], error) {
	if len(f.nodes) == 0 {
		return nil, ErrEmptyFrontier
	}
	n := f.nodes[0]
	f.nodes[0] = nil
	f.nodes = f.nodes[1:]
	f.forget(n)

	return n, nil
}

// Snapshot returns an independent copy of the queue.
func (f *QueueFrontier[S, A]) Snapshot() Frontier[S, A] {
	return &QueueFrontier[S, A]{nodeList: f.clone()}
}

// newFrontier returns the frontier discipline for algo.
func newFrontier[S comparable, A any](algo Algorithm) Frontier[S, A] {
	if algo == DFS {
		return NewStackFrontier[S, A]()
	}

	return NewQueueFrontier[S, A]()
}
