package search

import (
	"fmt"
	"slices"
)

// Node is one point in the search tree: a state, the node it was reached
// from and the action taken to get here. Nodes are never modified after
// construction; equality for search purposes is equality of State.
type Node[S comparable, A any] struct {
	State  S
	Parent *Node[S, A] // nil for the root
	Action A           // zero value for the root
	depth  int
}

// NewRoot returns a parentless node for state.
func NewRoot[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{State: state}
}

// IsRoot reports whether n has no parent.
func (n *Node[S, A]) IsRoot() bool {
	return n.Parent == nil
}

// Depth is the number of actions from the root to n.
func (n *Node[S, A]) Depth() int {
	return n.depth
}

// Actions returns the legal actions from n's state.
func (n *Node[S, A]) Actions(p Problem[S, A]) []A {
	return p.Actions(n.State)
}

// Result returns the child reached by applying action to n.
// n itself is left untouched.
func (n *Node[S, A]) Result(action A, p Problem[S, A]) (*Node[S, A], error) {
	next, err := p.Result(n.State, action)
	if err != nil {
		return nil, err
	}

	return &Node[S, A]{State: next, Parent: n, Action: action, depth: n.depth + 1}, nil
}

// Expand applies every legal action to n and returns the children in
// action order.
func (n *Node[S, A]) Expand(p Problem[S, A]) ([]*Node[S, A], error) {
	actions := n.Actions(p)
	children := make([]*Node[S, A], 0, len(actions))
	for _, a := range actions {
		child, err := n.Result(a, p)
		if err != nil {
			return nil, fmt.Errorf("search: expand %v: %w", n.State, err)
		}
		children = append(children, child)
	}

	return children, nil
}

// Path returns the nodes from the root to n, both inclusive.
func (n *Node[S, A]) Path() []*Node[S, A] {
	path := make([]*Node[S, A], 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}

// String renders the node as its state followed by the producing action.
func (n *Node[S, A]) String() string {
	if n.IsRoot() {
		return fmt.Sprintf("%v", n.State)
	}

	return fmt.Sprintf("%v'%v'", n.State, n.Action)
}

// states projects nodes onto their states.
func states[S comparable, A any](nodes []*Node[S, A]) []S {
	out := make([]S, len(nodes))
	for i, n := range nodes {
		out[i] = n.State
	}

	return out
}
