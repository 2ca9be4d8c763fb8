package modkit

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry maps module names to their port sets during bootstrap
type Registry struct {
	mu    sync.RWMutex
	ports map[string]any
}

// NewRegistry returns an empty Registry
func NewRegistry() *Registry { return &Registry{ports: map[string]any{}} }

// Add registers m's ports under m's name; names must be unique
func (r *Registry) Add(m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := m.Name()
	if _, dup := r.ports[name]; dup {
		return fmt.Errorf("modkit: module %q registered twice", name)
	}
	r.ports[name] = m.Ports()
	return nil
}

// Names lists registered module names in no particular order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.ports))
	for n := range r.ports {
		out = append(out, n)
	}
	return out
}

// PortsAs returns the port set registered under name asserted to T
func PortsAs[T any](r *Registry, name string) (T, bool) {
	r.mu.RLock()
	p, ok := r.ports[name]
	r.mu.RUnlock()
	var zero T
	if !ok {
		return zero, false
	}
	v, ok := p.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// PortOf finds a T in m's port set: the set itself, or its first exported field holding a T
func PortOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.Indirect(reflect.ValueOf(p))
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		if !rv.Type().Field(i).IsExported() {
			continue
		}
		if v, ok := rv.Field(i).Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}
