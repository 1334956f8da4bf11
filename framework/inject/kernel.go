package inject

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/km-arc/go-scene-di/framework/container"
	"github.com/km-arc/go-scene-di/framework/scene"
)

// ── Kernel ───────────────────────────────────────────────────────────────────

// Kernel coordinates dependency injection for one scene: it owns the
// registry, runs the activation pass (scan providers → register → inject),
// and exposes the on-demand validation and clear tools.
//
// It plays the role of the Injector component in the Unity scene-DI pattern,
// with one difference mandated by Go: fatal configuration errors are
// returned, not thrown. The caller must treat a non-nil error from
// [Kernel.Activate] as a broken scene.
type Kernel struct {
	scene     *scene.Scene
	registry  *container.Registry
	log       *slog.Logger
	activated bool
}

// Option configures a Kernel during construction.
type Option func(*Kernel)

// WithLogger sets the logger used for injection diagnostics. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(k *Kernel) { k.log = l }
}

// WithRegistry supplies a pre-built registry, e.g. one already seeded by
// bootstrap code.
func WithRegistry(r *container.Registry) Option {
	return func(k *Kernel) { k.registry = r }
}

// New creates a Kernel for the given scene.
func New(s *scene.Scene, opts ...Option) *Kernel {
	k := &Kernel{
		scene:    s,
		registry: container.NewRegistry(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Registry returns the kernel's registry. Intended for bootstrap seeding and
// for the devtools surface; mutating it mid-pass is not supported.
func (k *Kernel) Registry() *container.Registry { return k.registry }

// Scene returns the scene this kernel operates on.
func (k *Kernel) Scene() *scene.Scene { return k.scene }

// Seed registers v with k's registry under T, outside any provider scan.
// Last write wins. Values seeded before the first Activate survive the
// scan; a re-activation starts a fresh registry generation and drops them.
//
//	inject.Seed(kernel, settings)
func Seed[T any](k *Kernel, v T) {
	container.Seed(k.registry, v)
}

// ── Activation ───────────────────────────────────────────────────────────────

// Activate runs the full scan-register-inject sequence exactly as the host
// engine's once-per-activation lifecycle hook would:
//
//  1. every Provide* factory on every [Provider] component runs, and its
//     result is registered under the factory's declared return type;
//  2. only then is every component's injection-target set resolved and
//     populated, so a provider's own injectable members are filled by this
//     same pass.
//
// The first error aborts the whole pass and is returned; the registry is
// left partially populated and some targets uninjected. That mirrors the
// crash-visible failure surface of scene activation — there is no retry.
func (k *Kernel) Activate() error {
	if k.activated {
		// Re-activation: new registry generation, never merged with the old.
		k.registry.Flush()
	}
	k.activated = true

	if err := k.registerProviders(); err != nil {
		return err
	}
	return k.injectAll()
}

// registerProviders runs every factory of every live provider component and
// fills the registry.
func (k *Kernel) registerProviders() error {
	for _, c := range k.scene.Components() {
		p, ok := c.(Provider)
		if !ok {
			continue
		}
		facs, err := factoriesOf(p)
		if err != nil {
			return err
		}
		for _, f := range facs {
			ret := f.invoke()
			if isAbsent(ret) {
				return fmt.Errorf("%w: %s declares %s", ErrNilProviderResult, f.name(), f.out)
			}
			if err := k.registry.Register(f.out, ret.Interface()); err != nil {
				return fmt.Errorf("%s: %w", f.name(), err)
			}
			k.log.Debug("dependency registered",
				"type", f.out.String(),
				"factory", f.name(),
				"scene", k.scene.Name(),
			)
		}
	}
	return nil
}

// injectAll populates every component exposing at least one injection
// target, in scene enumeration order.
func (k *Kernel) injectAll() error {
	for _, c := range k.scene.Components() {
		if err := k.injectInstance(c); err != nil {
			return err
		}
	}
	return nil
}

// injectInstance processes one component's targets in the fixed order
// guarded fields → methods → overwrite fields. The order is a design choice
// carried for deterministic diagnostics, not a correctness requirement.
func (k *Kernel) injectInstance(c any) error {
	tg, err := targetsOf(c)
	if err != nil {
		return err
	}
	if tg.empty() {
		return nil
	}

	owner := typeName(reflect.TypeOf(c))
	id := k.scene.InstanceID(c)

	for _, ft := range tg.fields {
		if !ft.value.IsNil() {
			k.log.Warn("injectable field already set, skipping",
				"component", owner,
				"field", ft.field.Name,
				"instance", id,
			)
			continue
		}
		dep, ok := k.registry.Resolve(ft.field.Type)
		if !ok {
			return fmt.Errorf("%w: field %s.%s needs %s (instance %s)",
				ErrUnresolvedDependency, owner, ft.field.Name, ft.field.Type, id)
		}
		ft.value.Set(reflect.ValueOf(dep))
	}

	for _, mt := range tg.methods {
		args := make([]reflect.Value, 0, len(mt.params))
		var missing []string
		for _, pt := range mt.params {
			dep, ok := k.registry.Resolve(pt)
			if !ok {
				missing = append(missing, pt.String())
				continue
			}
			args = append(args, reflect.ValueOf(dep))
		}
		// Never invoke with partial arguments; report every missing type at once.
		if len(missing) > 0 {
			return fmt.Errorf("%w: method %s needs %s (instance %s)",
				ErrUnresolvedDependency, mt.name(), strings.Join(missing, ", "), id)
		}
		rets := mt.owner.Method(mt.method.Index).Call(args)
		if mt.hasErr && !rets[0].IsNil() {
			return fmt.Errorf("inject: %s: %w", mt.name(), rets[0].Interface().(error))
		}
	}

	for _, pt := range tg.props {
		dep, ok := k.registry.Resolve(pt.field.Type)
		if !ok {
			return fmt.Errorf("%w: field %s.%s needs %s (instance %s)",
				ErrUnresolvedDependency, owner, pt.field.Name, pt.field.Type, id)
		}
		pt.value.Set(reflect.ValueOf(dep))
	}

	return nil
}
