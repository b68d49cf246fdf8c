package events

import "github.com/atomicstack/popup-launcher/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Loaded(count int, dirs []string) {
	logging.Trace("catalog.loaded", map[string]interface{}{"count": count, "dirs": dirs})
}

// Skip records an entry dropped during loading. Skips are expected (hidden
// entries, duplicates) and never abort the load.
func (CatalogTracer) Skip(path, reason string) {
	logging.Trace("catalog.skip", map[string]interface{}{"path": path, "reason": reason})
}

func (CatalogTracer) IconFallback(name string) {
	logging.Trace("catalog.icon.fallback", map[string]interface{}{"icon": name})
}
