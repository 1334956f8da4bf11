package container

import (
	"fmt"
	"reflect"
	"sort"
)

// ── Registry ─────────────────────────────────────────────────────────────────

// Registry is the scene-scoped dependency registry: a mapping from an exact
// Go type to the single shared instance provided for that type.
//
// Lookup is exact-type equality. Requesting an interface type never matches
// an instance registered under a concrete type, and vice versa — when
// consumers depend on an interface, the provider must declare the interface
// as its return type (or the value must be seeded under the interface key,
// see [KeyOf]).
//
// A Registry is owned by the activating kernel and lives for one scene
// generation; it is rebuilt from scratch on re-activation and never merged
// with a prior generation. All methods must be called from the engine's main
// update goroutine — the Registry does no internal locking.
type Registry struct {
	entries map[reflect.Type]any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]any)}
}

// ── Registration ─────────────────────────────────────────────────────────────

// Register inserts instance under t. If t is already present the existing
// entry is kept and ErrDuplicateProvider is returned — a provider scan must
// never silently overwrite another provider's instance.
func (r *Registry) Register(t reflect.Type, instance any) error {
	if _, exists := r.entries[t]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateProvider, t)
	}
	r.entries[t] = instance
	return nil
}

// Put inserts instance under t unconditionally — last write wins.
// It is the escape hatch for bootstrap code that needs to seed or override
// an entry outside a provider scan. Prefer the generic [Seed] helper.
func (r *Registry) Put(t reflect.Type, instance any) {
	r.entries[t] = instance
}

// ── Resolution ───────────────────────────────────────────────────────────────

// Resolve returns the instance registered under t. Pure lookup: no side
// effects, never fails beyond the ok flag.
func (r *Registry) Resolve(t reflect.Type) (any, bool) {
	v, ok := r.entries[t]
	return v, ok
}

// Has reports whether t is registered.
func (r *Registry) Has(t reflect.Type) bool {
	_, ok := r.entries[t]
	return ok
}

// Len returns the number of registered types.
func (r *Registry) Len() int { return len(r.entries) }

// Types returns every registered type key, sorted by type name so that
// diagnostics and devtools output are reproducible.
func (r *Registry) Types() []reflect.Type {
	out := make([]reflect.Type, 0, len(r.entries))
	for t := range r.entries {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Flush drops every entry. Each activation starts a new registry generation
// from a flushed state.
func (r *Registry) Flush() {
	r.entries = make(map[reflect.Type]any)
}

// ── Generics helpers ─────────────────────────────────────────────────────────

// KeyOf returns the registry key for T. Unlike reflect.TypeOf on a value,
// this yields the interface type itself when T is an interface:
//
//	key := container.KeyOf[EventBus]()   // the EventBus interface type
//	key := container.KeyOf[*Mixer]()     // the *Mixer pointer type
func KeyOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Seed registers v under T's key, bypassing the duplicate check.
//
//	container.Seed(reg, settings)                  // key: *GameSettings
//	container.Seed[AudioService](reg, mixer)       // key: the interface
func Seed[T any](r *Registry, v T) {
	r.Put(KeyOf[T](), v)
}

// Resolve is the generic companion to [Registry.Resolve] — no type
// assertion required at the call site.
//
//	bus, ok := container.Resolve[*EventBus](reg)
func Resolve[T any](r *Registry) (T, bool) {
	v, ok := r.entries[KeyOf[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}
