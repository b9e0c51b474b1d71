package events

import "github.com/atomicstack/tilegrid/internal/logging"

type DragTracer struct{}

type DropReason string

const (
	DropNoDrag     DropReason = "no-drag"
	DropSameCell   DropReason = "same-cell"
	DropNoTarget   DropReason = "no-target"
	DropEmptyCell  DropReason = "empty-target"
	DropCommandErr DropReason = "command-error"
)

var Drag = DragTracer{}

func (DragTracer) Start(label string, row, col int) {
	logging.Trace("drag.start", map[string]interface{}{"label": label, "row": row, "col": col})
}

func (DragTracer) End(label string) {
	logging.Trace("drag.end", map[string]interface{}{"label": label})
}

func (DragTracer) Drop(source, target string) {
	logging.Trace("drag.drop", map[string]interface{}{"source": source, "target": target})
}

func (DragTracer) Ignore(reason DropReason) {
	logging.Trace("drag.ignore", map[string]interface{}{"reason": string(reason)})
}
