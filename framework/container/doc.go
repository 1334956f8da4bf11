// Package container provides the type-keyed dependency registry at the heart
// of the scene injection kit.
//
// # Overview
//
// The Registry maps an exact Go type to the single shared instance provided
// for that type within one scene generation. It deliberately supports nothing
// else: no aliases, no tags, no contextual bindings, no lazy factories.
// Provider components manufacture instances eagerly at scene activation (see
// the inject package), so by the time anything resolves, every entry is a
// plain value.
//
// It mirrors the registry of the Unity scene-DI pattern as closely as Go
// allows. Because Go has no attribute reflection, provider and consumer
// members are discovered by the conventions documented in the inject package.
//
// # Lifecycle
//
//  1. Create: reg := container.NewRegistry()
//  2. Seed bootstrap values: container.Seed(reg, settings)
//  3. Scan providers (inject.Kernel.Activate) — fills the registry
//  4. Resolve during injection — read many times, never mutated mid-pass
//
// # Registering
//
//	// Unity: registry.Add(typeof(EventBus), bus);
//	err := reg.Register(reflect.TypeOf(bus), bus)   // duplicate → error
//
//	// Unity: Injector.Instance.Register<GameSettings>(settings);
//	container.Seed(reg, settings)                   // bypasses the check
//
// # Resolving
//
//	// Untyped
//	v, ok := reg.Resolve(t)
//
//	// Generic (preferred — no type assertion required)
//	bus, ok := container.Resolve[*EventBus](reg)
//
// The Registry is not safe for concurrent use; the host engine guarantees
// single-threaded lifecycle callbacks and the kit relies on that.
package container
