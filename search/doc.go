// Package search implements uninformed graph search (breadth-first and
// depth-first) over any state graph described by a Problem.
//
// What:
//
//   - Problem describes a state graph: start and goal states, the legal
//     actions from a state, and the state each action leads to.
//   - Node links a state to the parent it was reached from and the action taken.
//   - Frontier holds discovered but unexpanded nodes: StackFrontier (LIFO, DFS)
//     or QueueFrontier (FIFO, BFS).
//   - ExploredSet holds nodes already expanded.
//   - Solution is the path from start (exclusive) to goal (inclusive).
//   - StepLog records frontier, explored set, extracted node and expansion
//     for every iteration, for audit and visualization.
//   - Engine runs the loop and owns all of the above for one Solve call.
//
// Lifecycle:
//
//	READY ──Solve──▶ RUNNING ──goal extracted──▶ SUCCEEDED
//	                    │
//	                    └──frontier exhausted──▶ FAILED
//
// Every Solve call resets the engine to READY first, so solving again with
// another Algorithm never sees residue from the previous run.
//
// Options:
//
//   - WithContext(ctx)   cooperative cancellation, checked once per iteration.
//   - WithLogger(l)      slog logger for per-step debug and per-run info records.
//   - WithStepLog(b)     toggle step recording (on by default).
//   - WithMaxSteps(n)    abort with ErrStepLimit after n iterations.
//
// Errors:
//
//   - ErrInvalidAlgorithm: Solve called with something other than BFS or DFS.
//   - ErrEmptyFrontier:    Extract on an empty frontier (engine bug, never recovered).
//   - ErrIllegalAction:    Problem.Result given an action Actions did not offer.
//   - ErrProblemNil:       NewEngine called with a nil Problem.
//   - ErrOptionViolation:  an Option was given an invalid value.
//   - ErrSolutionBuilt:    Solution.Build called twice on one Solution.
//   - ErrStepLimit:        WithMaxSteps limit reached before termination.
//
// A search that finds no path is not an error: Solve returns false, nil.
//
// Complexity: O(V + E) iterations for V reachable states and E transitions,
// plus O(|frontier| + |explored|) per iteration for step snapshots when the
// step log is enabled.
package search
