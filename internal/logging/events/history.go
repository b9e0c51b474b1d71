package events

import "github.com/atomicstack/tilegrid/internal/logging"

type HistoryTracer struct{}

type GridTracer struct{}

var (
	History = HistoryTracer{}
	Grid    = GridTracer{}
)

func (HistoryTracer) Execute(kind, description string, undo int) {
	logging.Trace("history.execute", map[string]interface{}{"kind": kind, "description": description, "undo": undo})
}

func (HistoryTracer) Undo(kind, description string, redo int) {
	logging.Trace("history.undo", map[string]interface{}{"kind": kind, "description": description, "redo": redo})
}

func (HistoryTracer) Redo(kind, description string, undo int) {
	logging.Trace("history.redo", map[string]interface{}{"kind": kind, "description": description, "undo": undo})
}

func (HistoryTracer) Empty(op string) {
	logging.Trace("history.empty", map[string]interface{}{"op": op})
}

// Discard records redo entries dropped by a fresh action.
func (HistoryTracer) Discard(count int) {
	logging.Trace("history.discard", map[string]interface{}{"count": count})
}

// Trim records undo entries dropped by the depth limit.
func (HistoryTracer) Trim(count, limit int) {
	logging.Trace("history.trim", map[string]interface{}{"count": count, "limit": limit})
}

func (GridTracer) Attach(rowID int, labels []string) {
	logging.Trace("grid.attach", map[string]interface{}{"row": rowID, "labels": labels})
}

func (GridTracer) Detach(rowID int) {
	logging.Trace("grid.detach", map[string]interface{}{"row": rowID})
}

func (GridTracer) Swap(first, second string) {
	logging.Trace("grid.swap", map[string]interface{}{"first": first, "second": second})
}
