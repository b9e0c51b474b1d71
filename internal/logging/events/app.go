package events

import "github.com/atomicstack/tilegrid/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Seed(rows int) {
	logging.Trace("app.seed", map[string]interface{}{"rows": rows})
}
