package logger

import (
	"sync"
)

// registry holds the named loggers library packages resolve through Get
// (e.g. "inference", "provider").
var registry = &loggerRegistry{
	loggers: make(map[string]*Logger),
}

type loggerRegistry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

// Register stores a named logger in the registry.
func Register(name string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[name] = l
}

// Get resolves a named logger. Unregistered names fall back to a
// component-tagged view of the global logger, so packages can call Get
// before any logging setup has run.
func Get(name string) *Logger {
	registry.mu.RLock()
	l, ok := registry.loggers[name]
	registry.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterDefaults seeds the registry with component-tagged views of the
// global logger. The adapter config calls this after Init so "inference" and
// "provider" resolve to stable instances.
func RegisterDefaults(names ...string) {
	for _, name := range names {
		Register(name, GetGlobalLogger().WithComponent(name))
	}
}
