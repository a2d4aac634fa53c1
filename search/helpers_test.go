package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// graphProblem is a directed graph of string states; an action is the name
// of the target state. Adjacency order is the action order.
type graphProblem struct {
	start, goal string
	edges       map[string][]string
}

func (g *graphProblem) Start() string { return g.start }
func (g *graphProblem) Goal() string  { return g.goal }

func (g *graphProblem) Actions(state string) []string {
	return append([]string(nil), g.edges[state]...)
}

func (g *graphProblem) Result(state, action string) (string, error) {
	for _, to := range g.edges[state] {
		if to == action {
			return to, nil
		}
	}

	return "", fmt.Errorf("%w: %q from %q", search.ErrIllegalAction, action, state)
}

// branching builds:
//
//	A ──▶ B ──▶ D
//	│
//	└───▶ C ──▶ E
//
// BFS extracts A B C D E, DFS extracts A C E.
func branching(goal string) *graphProblem {
	return &graphProblem{
		start: "A",
		goal:  goal,
		edges: map[string][]string{
			"A": {"B", "C"},
			"B": {"D"},
			"C": {"E"},
		},
	}
}

// undirected turns an edge list into a symmetric adjacency map.
func undirected(pairs ...[2]string) map[string][]string {
	adj := make(map[string][]string)
	for _, p := range pairs {
		adj[p[0]] = append(adj[p[0]], p[1])
		adj[p[1]] = append(adj[p[1]], p[0])
	}

	return adj
}

// brokenProblem offers an action that Result refuses.
type brokenProblem struct{}

func (brokenProblem) Start() int           { return 0 }
func (brokenProblem) Goal() int            { return 99 }
func (brokenProblem) Actions(int) []string { return []string{"jump"} }
func (brokenProblem) Result(s int, a string) (int, error) {
	return 0, fmt.Errorf("%w: %q from %d", search.ErrIllegalAction, a, s)
}

func extractedStates[S comparable, A any](l *search.StepLog[S, A]) []S {
	var out []S
	for _, n := range l.Extracted() {
		out = append(out, n.State)
	}

	return out
}
