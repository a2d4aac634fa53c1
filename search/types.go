package search

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for search execution.
var (
	// ErrInvalidAlgorithm is returned when Solve receives an unknown algorithm tag.
	ErrInvalidAlgorithm = errors.New("search: invalid algorithm")

	// ErrEmptyFrontier is returned by Extract on an empty frontier.
	ErrEmptyFrontier = errors.New("search: extract from empty frontier")

	// ErrIllegalAction must be wrapped by Problem.Result when the action
	// is not one of Actions(state).
	ErrIllegalAction = errors.New("search: illegal action")

	// ErrProblemNil is returned if a nil Problem is passed to NewEngine.
	ErrProblemNil = errors.New("search: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrSolutionBuilt is returned when Build is called on a populated Solution.
	ErrSolutionBuilt = errors.New("search: solution already built")

	// ErrStepLimit is returned when the WithMaxSteps limit is reached.
	ErrStepLimit = errors.New("search: step limit reached")
)

// Algorithm selects the frontier discipline used by Solve.
type Algorithm string

const (
	// BFS is breadth-first search: FIFO queue frontier.
	BFS Algorithm = "BFS"
	// DFS is depth-first search: LIFO stack frontier.
	DFS Algorithm = "DFS"
)

// Algorithms returns the supported algorithms in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS}
}

// ParseAlgorithm maps a case-insensitive tag ("bfs", "DFS", ...) to an Algorithm.
func ParseAlgorithm(tag string) (Algorithm, error) {
	switch Algorithm(strings.ToUpper(strings.TrimSpace(tag))) {
	case BFS:
		return BFS, nil
	case DFS:
		return DFS, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, tag)
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a == BFS || a == DFS
}

// Status is the engine state machine position.
type Status int

const (
	// Ready: freshly constructed or reset; containers are empty.
	Ready Status = iota
	// Running: inside the Solve loop.
	Running
	// Succeeded: the goal was extracted and a solution built.
	Succeeded
	// Failed: frontier exhausted, or the run aborted with an error.
	Failed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Succeeded:
		return "SUCCEEDED"
	case Failed:
		return "FAILED"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Problem describes a state graph to search.
//
// S is the state: an opaque comparable value the engine only compares and
// uses as a map key. A is the action type.
//
// Actions must be deterministic and side-effect free; its order is the order
// children are generated and therefore the tie-break order of the search.
// Result must not mutate its input and must wrap ErrIllegalAction when the
// action is not in Actions(state).
type Problem[S comparable, A any] interface {
	Start() S
	Goal() S
	Actions(state S) []A
	Result(state S, action A) (S, error)
}
