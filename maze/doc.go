// Package maze treats a 2D grid of open and walled cells as a search
// problem for package search.
//
// What:
//
//   - Maze wraps a rectangular wall grid with one start and one goal cell.
//   - States are Cell{Row, Col}; actions are Up, Right, Down, Left, tried in
//     that order, so the order is also the BFS/DFS tie-break.
//   - Parse reads a text layout: one character per cell, start 'A', goal 'B',
//     open path ' ', anything else is a wall.
//   - Render draws the layout with the explored cells and the solution path.
//
// Layout example:
//
//	███████████
//	█         █
//	████ ████ █
//	█B   █    █
//	█ ████ ████
//	█         █
//	█A█████████
//
// Complexity:
//
//   - Parse, New, Render: O(W×H).
//   - Actions, Result:    O(1).
//
// Errors:
//
//   - ErrEmptyMaze:       layout has no rows or no columns.
//   - ErrNonRectangular:  rows of differing lengths passed to New.
//   - ErrStartCount:      layout does not contain exactly one start character.
//   - ErrGoalCount:       layout does not contain exactly one goal character.
//   - ErrCellOutOfBounds: start or goal outside the grid.
//   - ErrCellBlocked:     start or goal on a wall.
//
// Moving into a wall or off the grid wraps search.ErrIllegalAction.
package maze
