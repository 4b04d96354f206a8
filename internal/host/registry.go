package host

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Faultbox/tesseract/internal/pluginapi"
)

// Factory constructs a plugin bound to the host API.
type Factory func(api pluginapi.API) pluginapi.Plugin

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a plugin available under name. It panics on duplicates,
// like database/sql drivers, since registration happens at init time.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if f == nil {
		panic("host: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("host: Register called twice for plugin " + name)
	}
	registry[name] = f
}

// Plugins returns the registered plugin names, sorted.
func Plugins() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookup(name string) (Factory, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %s)",
			pluginapi.ErrUnknownPlugin, name, strings.Join(Plugins(), ", "))
	}
	return f, nil
}
