// Package history implements the undo/redo engine for the tile grid.
//
// # Commands
//
// A Command is a tagged variant over two kinds:
//   - KindAddRow creates a row on first execution, detaches it on undo and
//     reattaches the same row on redo.
//   - KindSwap exchanges label and color between two cells. The exchange is
//     its own inverse, so execute, undo and redo share one implementation.
//
// Every command is driven through Apply with a Direction. Each command tracks
// its own lifecycle (pending, done, undone) and ignores directions that do
// not follow from its current state.
//
// # Manager
//
// Manager owns the undo and redo stacks:
//
//	h := history.New()
//	h.Execute(history.NewAddRow(g))
//	h.Undo()
//	h.Redo()
//
// Executing a new command clears the redo stack; there is no redo tree.
package history
