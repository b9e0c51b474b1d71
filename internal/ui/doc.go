// Package ui contains the Bubble Tea program for the tile grid editor.
//
// Message flow:
//   - Bubble Tea invokes Model.Update, which routes each tea.Msg through a
//     typed handler registry so key presses, mouse events, resizes and effect
//     ticks are each handled by one focused function.
//   - Add row, undo and redo go through the internal/ui/command bus, which
//     drives the history manager. Any drag in flight is ended first.
//   - Picking up and dropping tiles, by keyboard or mouse, goes through the
//     drag coordinator, which records swaps as history commands.
//
// Mouse handling is delegated: the view lays cells out on a fixed geometry
// (see mouse.go) and a single handler per mouse message type maps terminal
// coordinates back to a cell, so rows added or removed later need no
// per-cell wiring.
package ui
