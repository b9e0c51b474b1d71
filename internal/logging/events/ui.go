package events

import "github.com/atomicstack/tilegrid/internal/logging"

type UITracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
)

func (UITracer) Cursor(row, col int) {
	logging.Trace("ui.cursor", map[string]interface{}{"row": row, "col": col})
}

func (UITracer) Find(query string, matches int) {
	logging.Trace("ui.find", map[string]interface{}{"query": query, "matches": matches})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, info string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "info": info})
}
