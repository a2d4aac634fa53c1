package search

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Engine runs BFS or DFS over a Problem. It owns one frontier, explored
// set, solution and step log per Solve call; all are replaced at the start
// of every call. An Engine is not safe for concurrent use: run parallel
// searches on separate engines.
type Engine[S comparable, A any] struct {
	problem Problem[S, A]
	opts    Options

	algorithm Algorithm
	runID     string
	status    Status
	frontier  Frontier[S, A]
	explored  *ExploredSet[S, A]
	solution  *Solution[S, A]
	log       *StepLog[S, A]
}

// NewEngine returns a READY engine for p.
// Returns ErrProblemNil for a nil problem, ErrOptionViolation for bad options.
func NewEngine[S comparable, A any](p Problem[S, A], opts ...Option) (*Engine[S, A], error) {
	if p == nil {
		return nil, ErrProblemNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &Engine[S, A]{problem: p, opts: o}
	e.reset("")

	return e, nil
}

// reset drops all per-run state and returns the engine to READY.
func (e *Engine[S, A]) reset(algo Algorithm) {
	e.algorithm = algo
	e.runID = ""
	e.status = Ready
	e.frontier = newFrontier[S, A](algo)
	e.explored = NewExploredSet[S, A]()
	e.solution = NewSolution[S, A]()
	e.log = NewStepLog[S, A]()
}

// Solve searches from the problem's start state to its goal state using algo.
// It returns true when the goal was reached; Solution then holds the path.
// It returns false, nil when the reachable space is exhausted without
// reaching the goal. Errors are programming errors (ErrInvalidAlgorithm,
// ErrIllegalAction, ErrEmptyFrontier), ErrStepLimit, or the context error.
func (e *Engine[S, A]) Solve(algo Algorithm) (bool, error) {
	if !algo.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, string(algo))
	}
	e.reset(algo)
	e.runID = uuid.Must(uuid.NewV7()).String()
	e.status = Running

	logger := e.opts.Logger.With(
		slog.String("run_id", e.runID),
		slog.String("algorithm", string(algo)),
	)

	found, err := e.loop(logger)
	switch {
	case err != nil:
		e.status = Failed
		logger.Error("search aborted", slog.Int("steps", e.steps()), slog.Any("error", err))
		return false, err
	case found:
		e.status = Succeeded
	default:
		e.status = Failed
	}

	logger.Info("search finished",
		slog.Bool("found", found),
		slog.Int("explored", e.explored.Len()),
		slog.Int("solution", e.solution.Len()),
		slog.Int("steps", e.log.Len()),
	)

	return found, nil
}

// loop is the RUNNING state.
func (e *Engine[S, A]) loop(logger *slog.Logger) (bool, error) {
	goal := e.problem.Goal()
	e.frontier.Add(NewRoot[S, A](e.problem.Start()))

	for iter := 1; e.frontier.NotEmpty(); iter++ {
		select {
		case <-e.opts.Ctx.Done():
			return false, e.opts.Ctx.Err()
		default:
		}
		if e.opts.MaxSteps > 0 && iter > e.opts.MaxSteps {
			return false, fmt.Errorf("%w: %d", ErrStepLimit, e.opts.MaxSteps)
		}

		if e.opts.RecordSteps {
			e.log.begin(e.frontier.Snapshot(), e.explored.Snapshot())
		}

		node, err := e.frontier.Extract()
		if err != nil {
			return false, fmt.Errorf("search: step %d: %w", iter, err)
		}
		e.log.extracted(node)
		logger.Debug("extracted", slog.Int("step", iter), slog.Any("state", node.State), slog.Int("depth", node.Depth()))

		if node.State == goal {
			if err = e.solution.Build(node); err != nil {
				return false, err
			}
			e.log.expanded([]*Node[S, A]{})
			e.log.commit()
			return true, nil
		}

		e.explored.Add(node)
		children, err := node.Expand(e.problem)
		if err != nil {
			return false, fmt.Errorf("search: step %d: %w", iter, err)
		}
		e.log.expanded(children)
		for _, child := range children {
			if !e.frontier.Contains(child.State) && !e.explored.Contains(child.State) {
				e.frontier.Add(child)
			}
		}
		e.log.commit()
	}

	return false, nil
}

// steps counts iterations of the current run whether or not they were logged.
func (e *Engine[S, A]) steps() int {
	if e.opts.RecordSteps {
		return e.log.Len()
	}

	return e.explored.Len()
}

// Problem returns the problem the engine searches.
func (e *Engine[S, A]) Problem() Problem[S, A] { return e.problem }

// Algorithm returns the algorithm of the last Solve call, or "" when READY
// since construction.
func (e *Engine[S, A]) Algorithm() Algorithm { return e.algorithm }

// RunID identifies the last Solve call; empty before the first call.
func (e *Engine[S, A]) RunID() string { return e.runID }

// Status returns the engine state.
func (e *Engine[S, A]) Status() Status { return e.status }

// Solution returns the path found by the last Solve call. It is empty when
// no path exists.
func (e *Engine[S, A]) Solution() *Solution[S, A] { return e.solution }

// Explored returns every node expanded by the last Solve call.
func (e *Engine[S, A]) Explored() *ExploredSet[S, A] { return e.explored }

// Frontier returns the live frontier as left by the last Solve call.
func (e *Engine[S, A]) Frontier() Frontier[S, A] { return e.frontier }

// Log returns the step log of the last Solve call.
func (e *Engine[S, A]) Log() *StepLog[S, A] { return e.log }
