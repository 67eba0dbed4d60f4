package diagnostic

import (
	"fmt"
	"sort"
	"sync"
)

// Global analyzer registry. Analyzer packages register themselves in
// init(); consumers blank-import them (see pkg/refcheck).
var (
	registered = make(map[string]AnalyzerDef)
	registryMu sync.RWMutex
)

// Register adds an analyzer to the global registry.
// It panics on a duplicate ID, which indicates a programming error.
func Register(def AnalyzerDef) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registered[def.ID]; exists {
		panic(fmt.Sprintf("diagnostic: analyzer %q registered twice", def.ID))
	}
	registered[def.ID] = def
}

// Get returns a registered analyzer by ID.
func Get(id string) (AnalyzerDef, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	def, ok := registered[id]
	return def, ok
}

// All returns every registered analyzer, sorted by ID for stable output.
func All() []AnalyzerDef {
	registryMu.RLock()
	defer registryMu.RUnlock()
	defs := make([]AnalyzerDef, 0, len(registered))
	for _, def := range registered {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}
