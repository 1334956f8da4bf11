package inject

import (
	"fmt"
	"reflect"
	"strings"
)

// ── Provider capability ──────────────────────────────────────────────────────

// Provider marks a component that manufactures shared dependencies.
// Components gain the capability by embedding [BaseProvider]:
//
//	type GameInstaller struct {
//	    inject.BaseProvider
//	}
//
//	// Unity: [Provide] public EventBus ProvideEventBus() => new EventBus();
//	func (g *GameInstaller) ProvideEventBus() *EventBus { return NewEventBus() }
//
// Factory methods are discovered by convention: every exported method whose
// name starts with "Provide", takes no arguments and returns exactly one
// value. The declared return type becomes the registration key, so a factory
// returning an interface registers under the interface, not the concrete
// type behind it.
//
// Factories take no arguments by design — providers must be self-sufficient.
// A provider's own injectable members are populated later in the same
// activation pass, after every factory has run.
type Provider interface {
	isProvider()
}

// BaseProvider grants the [Provider] capability. Embed it; it carries no
// state and no behavior.
type BaseProvider struct{}

func (BaseProvider) isProvider() {}

// ── Factory discovery ────────────────────────────────────────────────────────

const factoryPrefix = "Provide"

// factory is one discovered Provide* method on a live provider component.
type factory struct {
	owner  reflect.Value
	method reflect.Method
	out    reflect.Type
}

func (f factory) name() string {
	return typeName(f.owner.Type()) + "." + f.method.Name
}

// invoke calls the factory with zero arguments and returns its result.
func (f factory) invoke() reflect.Value {
	return f.owner.Method(f.method.Index).Call(nil)[0]
}

// factoriesOf enumerates the factory methods of p in reflect's stable method
// order. A Provide* method with the wrong shape is a configuration error,
// not something to skip silently.
func factoriesOf(p Provider) ([]factory, error) {
	v := reflect.ValueOf(p)
	t := v.Type()

	var out []factory
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !strings.HasPrefix(m.Name, factoryPrefix) {
			continue
		}
		// m.Type counts the receiver as In(0).
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			return nil, fmt.Errorf("%w: %s.%s must take no arguments and return exactly one value",
				ErrBadFactory, typeName(t), m.Name)
		}
		out = append(out, factory{owner: v, method: m, out: m.Type.Out(0)})
	}
	return out, nil
}

// ── Shared reflect helpers ───────────────────────────────────────────────────

// typeName renders a component or dependency type for diagnostics, without
// the leading pointer star.
func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return t.Elem().String()
	}
	return t.String()
}

// isAbsent reports whether v holds no usable value: an invalid Value or a
// nil of a nilable kind.
func isAbsent(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
