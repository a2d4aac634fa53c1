// Package lvsearch is a small playground for uninformed state-space search:
// breadth-first and depth-first search over any problem you can describe
// with a start state, a goal state and a transition model.
//
// 🚀 What is lvsearch?
//
//	A generic, dependency-light library that brings together:
//		• Search engine: BFS (queue frontier) and DFS (stack frontier)
//		• Step log: frontier, explored set and expansion of every iteration
//		• Mazes: text layouts, validation, rendering of solution & explored cells
//		• Sliding puzzles: any N×M board, parity check, move-by-move rendering
//
// ✨ Why choose lvsearch?
//
//   - Beginner-friendly: one Problem interface, one Engine, two algorithms
//   - Deterministic: same problem and algorithm give the same run every time
//   - Observable: structured slog logging and full per-step reports
//   - Extensible: implement search.Problem for your own state space
//
// Under the hood, everything is organized under three subpackages:
//
//	search/ : Problem, Node, frontiers, explored set, solution, step log & Engine
//	maze/   : grid maze problems parsed from text layouts
//	puzzle/ : sliding-tile puzzles parsed from start/goal layouts
//
// plus the lvsearch command in cmd/lvsearch and runnable scenarios in
// examples/.
//
// Quick ASCII example:
//
//	#####
//	#A  #      BFS     █A¤¤█
//	# #B#     ────▶    █·█B█
//	#####
//
//	finds the 3-step path from A to B after exploring 4 cells.
//
//	go get github.com/katalvlaran/lvsearch/search
package lvsearch
