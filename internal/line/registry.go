package line

import (
	"fmt"
	"sync"
)

// Registry holds the lines served by one process, keyed by name.
type Registry struct {
	mu    sync.RWMutex
	lines map[string]*Line
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{lines: make(map[string]*Line)}
}

// Add registers l under its name.
func (r *Registry) Add(l *Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.lines[l.Name()]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateLine, l.Name())
	}
	r.lines[l.Name()] = l
	r.order = append(r.order, l.Name())
	return nil
}

// Get returns the line registered under name.
func (r *Registry) Get(name string) (*Line, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.lines[name]
	return l, ok
}

// Names returns the registered line names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}
