package events

import "github.com/atomicstack/popup-launcher/internal/logging"

type QueryTracer struct{}

type FocusTracer struct{}

type LaunchTracer struct{}

var (
	Query  = QueryTracer{}
	Focus  = FocusTracer{}
	Launch = LaunchTracer{}
)

func (QueryTracer) Changed(query string, matches int) {
	logging.Trace("query.changed", map[string]interface{}{"query": query, "matches": matches})
}

func (FocusTracer) Move(action string, position int, saved int) {
	logging.Trace("focus.move", map[string]interface{}{"action": action, "position": position, "saved": saved})
}

func (LaunchTracer) Dispatch(program string, args []string) {
	logging.Trace("launch.dispatch", map[string]interface{}{"program": program, "args": args})
}

func (LaunchTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("launch.error", map[string]interface{}{"error": err.Error()})
}

func (LaunchTracer) Copy(command string) {
	logging.Trace("launch.copy", map[string]interface{}{"command": command})
}
