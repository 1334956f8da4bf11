// Package inject implements scene-activation dependency injection for
// component-based games: provider components manufacture shared instances,
// consumer components receive them through tagged fields and Inject*
// methods, and a Kernel coordinates the whole pass.
//
// # Conventions
//
// Go has no member attributes, so the Unity-style markers become
// conventions the Kernel discovers by reflection:
//
//	// Unity: public class GameInstaller : MonoBehaviour, IDependencyProvider
//	type GameInstaller struct {
//	    inject.BaseProvider
//	}
//
//	// Unity: [Provide] public EventBus ProvideEventBus()
//	func (g *GameInstaller) ProvideEventBus() *EventBus { return NewEventBus() }
//
//	type Player struct {
//	    // Unity: [Inject] EventBus bus;
//	    Bus *EventBus `inject:""`
//
//	    // Unity: [Inject] public AssetCatalog Catalog { get; set; }
//	    Catalog *AssetCatalog `inject:"overwrite"`
//	}
//
//	// Unity: [Inject] void Init(EventBus bus, GameSettings settings)
//	func (p *Player) InjectServices(bus *EventBus, s *GameSettings) {}
//
// # Activation
//
//	s := scene.New("level-1")
//	s.Attach(&GameInstaller{})
//	s.Attach(&Player{})
//
//	k := inject.New(s)
//	inject.Seed(k, settings) // bootstrap values, before the scan
//	if err := k.Activate(); err != nil {
//	    // broken scene configuration — surface it loudly
//	}
//
// All registration strictly precedes all injection within one activation,
// so provider components may themselves declare injectable members.
//
// # Tools
//
// Kernel.Validate dry-runs resolution and reports unsatisfiable guarded
// fields without writing anything; Kernel.Clear resets every guarded field
// to nil. Both are safe on demand at any time — the devtools package exposes
// them over HTTP for use during development.
package inject
