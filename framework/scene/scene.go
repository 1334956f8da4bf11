// Package scene models the live component set the injection kit operates on:
// an ordered collection of component instances with stable per-instance IDs
// and a minimal Start/Update lifecycle.
package scene

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// ── Lifecycle capabilities ───────────────────────────────────────────────────

// Starter is implemented by components that want a callback once the scene
// has been activated and all dependencies are injected.
type Starter interface {
	Start()
}

// Updater is implemented by components that take part in the per-frame loop.
type Updater interface {
	Update(dt float64)
}

// ── Scene ────────────────────────────────────────────────────────────────────

// Scene holds the live component instances of one scene generation, in
// attach order. The order is stable and is the enumeration order every
// scan, validation and clear pass uses — reproducible diagnostics depend on
// it, correctness does not.
//
// A Scene is not safe for concurrent use; all attachment and lifecycle
// dispatch happens on the engine's main update goroutine.
type Scene struct {
	name       string
	components []any
	ids        map[any]string
}

// New creates an empty scene.
func New(name string) *Scene {
	return &Scene{
		name: name,
		ids:  make(map[any]string),
	}
}

// Name returns the scene name used in diagnostics.
func (s *Scene) Name() string { return s.name }

// Attach adds a component instance to the scene and assigns it a unique
// instance ID. The component must be a pointer — injection writes through
// it. Attach panics on a non-pointer, which is a programmer error, not a
// runtime condition.
//
// The component is returned so attachment can be chained:
//
//	player := s.Attach(&Player{}).(*Player)
func (s *Scene) Attach(c any) any {
	if c == nil || reflect.ValueOf(c).Kind() != reflect.Pointer {
		panic(fmt.Sprintf("scene: Attach requires a pointer component, got %T", c))
	}
	if _, dup := s.ids[c]; dup {
		return c
	}
	s.components = append(s.components, c)
	s.ids[c] = uuid.NewString()
	return c
}

// Detach removes a component instance; the relative order of the remaining
// components is preserved. Detaching an unknown component is a no-op.
func (s *Scene) Detach(c any) {
	if _, ok := s.ids[c]; !ok {
		return
	}
	delete(s.ids, c)
	for i, existing := range s.components {
		if existing == c {
			s.components = append(s.components[:i], s.components[i+1:]...)
			return
		}
	}
}

// Components returns the live component instances in attach order. The
// returned slice is a copy; mutating it does not affect the scene.
func (s *Scene) Components() []any {
	out := make([]any, len(s.components))
	copy(out, s.components)
	return out
}

// Len returns the number of attached components.
func (s *Scene) Len() int { return len(s.components) }

// InstanceID returns the unique ID assigned at attach time, or "" for a
// component that was never attached.
func (s *Scene) InstanceID(c any) string {
	return s.ids[c]
}

// ── Lifecycle dispatch ───────────────────────────────────────────────────────

// Start invokes Start on every component implementing Starter, in attach
// order. Call it once, after activation has injected all dependencies.
func (s *Scene) Start() {
	for _, c := range s.components {
		if st, ok := c.(Starter); ok {
			st.Start()
		}
	}
}

// Update invokes Update on every component implementing Updater, in attach
// order.
func (s *Scene) Update(dt float64) {
	for _, c := range s.components {
		if u, ok := c.(Updater); ok {
			u.Update(dt)
		}
	}
}
