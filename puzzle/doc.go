// Package puzzle models the sliding-tile puzzle as a search problem for
// package search.
//
// A Board is a rows×cols grid of distinct numbered tiles and one blank.
// A Move slides the blank one cell Up, Right, Down or Left, swapping it
// with the tile there; moves are tried in that order.
//
// Layouts are whitespace-separated tokens, one board row per line: numbers
// are tiles and exactly one non-numeric token marks the blank.
//
//	1 2 3
//	4 5 6
//	7 8 _
//
// Half of all tile arrangements cannot reach the other half. Solvable
// reports this up front from permutation parity; searching an unsolvable
// pair exhausts the whole reachable class and returns false.
package puzzle
