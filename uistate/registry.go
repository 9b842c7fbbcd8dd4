package uistate

import (
	"fmt"
	"sync"
)

// Callback mutates a rendered element tree in response to a sidebar style
// change and returns a Result for the renderer.
type Callback func(doc *Element, style *SidebarStyle) Result

// Registry holds named callbacks under "namespace.function" keys. Bindings
// are explicit: a callback is registered once at startup and looked up by
// its full key at render time.
type Registry struct {
	mu        sync.RWMutex
	callbacks map[string]Callback
}

// NewRegistry returns an empty callback registry.
func NewRegistry() *Registry {
	return &Registry{callbacks: make(map[string]Callback)}
}

// Bind registers a callback under namespace.function. Rebinding an existing
// key is an error; bindings are fixed for the process lifetime.
func (r *Registry) Bind(namespace, function string, cb Callback) error {
	if namespace == "" || function == "" {
		return fmt.Errorf("uistate: binding requires namespace and function, got %q.%q", namespace, function)
	}
	if cb == nil {
		return fmt.Errorf("uistate: nil callback for %s.%s", namespace, function)
	}
	key := namespace + "." + function
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.callbacks[key]; exists {
		return fmt.Errorf("uistate: callback %s already bound", key)
	}
	r.callbacks[key] = cb
	return nil
}

// Invoke runs the callback bound under namespace.function against the given
// tree and style. Unknown bindings are an error.
func (r *Registry) Invoke(namespace, function string, doc *Element, style *SidebarStyle) (Result, error) {
	key := namespace + "." + function
	r.mu.RLock()
	cb, ok := r.callbacks[key]
	r.mu.RUnlock()
	if !ok {
		return Result{}, fmt.Errorf("uistate: no callback bound for %s", key)
	}
	return cb(doc, style), nil
}
