// Demo scene: a minimal game wired entirely through scene injection.
// Run with --validate to dry-run dependency resolution, or --devtools to
// poke the kernel over HTTP while the scene runs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/km-arc/go-scene-di/devtools"
	"github.com/km-arc/go-scene-di/framework/config"
	"github.com/km-arc/go-scene-di/framework/inject"
	"github.com/km-arc/go-scene-di/framework/scene"
)

// ── Shared dependencies ──────────────────────────────────────────────────────

// EventBus is a tiny pub/sub hub shared by every gameplay component.
type EventBus struct {
	subscribers map[string][]func(payload any)
}

func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[string][]func(any))}
}

func (b *EventBus) Subscribe(topic string, fn func(payload any)) {
	b.subscribers[topic] = append(b.subscribers[topic], fn)
}

func (b *EventBus) Publish(topic string, payload any) {
	for _, fn := range b.subscribers[topic] {
		fn(payload)
	}
}

// AssetCatalog maps logical asset names to their on-disk paths.
type AssetCatalog struct {
	paths map[string]string
}

func (c *AssetCatalog) Lookup(name string) (string, bool) {
	p, ok := c.paths[name]
	return p, ok
}

// GameSettings is provided by the installer like any other scene service.
type GameSettings struct {
	Difficulty string
	MaxPlayers int
}

// PlayerProfile is seeded by bootstrap code rather than provided by a scene
// component — the classic pre-scan registration case. Seeded entries satisfy
// injection but are invisible to Validate, which counts factory-declared
// types only, so they are consumed through a method here, not a guarded field.
type PlayerProfile struct {
	Handle string
}

// ── Components ───────────────────────────────────────────────────────────────

// GameInstaller provides the scene-wide services.
type GameInstaller struct {
	inject.BaseProvider
}

func (g *GameInstaller) ProvideEventBus() *EventBus { return NewEventBus() }

func (g *GameInstaller) ProvideSettings() *GameSettings {
	return &GameSettings{Difficulty: "normal", MaxPlayers: 4}
}

func (g *GameInstaller) ProvideAssetCatalog() *AssetCatalog {
	return &AssetCatalog{paths: map[string]string{
		"player/sprite": "assets/player.png",
		"hud/font":      "assets/mono.ttf",
	}}
}

// Player consumes through guarded fields.
type Player struct {
	Bus      *EventBus     `inject:""`
	Catalog  *AssetCatalog `inject:""`
	Settings *GameSettings `inject:""`

	frames int
}

func (p *Player) Start() {
	sprite, _ := p.Catalog.Lookup("player/sprite")
	slog.Info("player ready", "sprite", sprite, "difficulty", p.Settings.Difficulty)
}

func (p *Player) Update(dt float64) {
	p.frames++
	if p.frames%60 == 0 {
		p.Bus.Publish("player/heartbeat", p.frames)
	}
}

// HUD consumes through an Inject* method.
type HUD struct {
	bus      *EventBus
	settings *GameSettings
	profile  *PlayerProfile
}

func (h *HUD) InjectServices(bus *EventBus, s *GameSettings, p *PlayerProfile) {
	h.bus = bus
	h.settings = s
	h.profile = p
}

func (h *HUD) Start() {
	h.bus.Subscribe("player/heartbeat", func(payload any) {
		slog.Debug("hud heartbeat", "player", h.profile.Handle, "frames", payload)
	})
}

// Spawner holds an overwrite field: injection replaces whatever is there.
type Spawner struct {
	Bus *EventBus `inject:"overwrite"`
}

// ── Scene assembly ───────────────────────────────────────────────────────────

// newDemoScene assembles the demo component set in attach order.
func newDemoScene(name string) *scene.Scene {
	s := scene.New(name)
	s.Attach(&GameInstaller{})
	s.Attach(&Player{})
	s.Attach(&HUD{})
	s.Attach(&Spawner{})
	return s
}

// newDemoKernel wires a kernel for the scene and seeds the bootstrap-only
// values before any scan runs.
func newDemoKernel(s *scene.Scene, logger *slog.Logger) *inject.Kernel {
	k := inject.New(s, inject.WithLogger(logger))
	inject.Seed(k, &PlayerProfile{Handle: "player-one"})
	return k
}

// ── Entry point ──────────────────────────────────────────────────────────────

// CLI flags override the corresponding .env settings.
type CLI struct {
	LogLevel string `kong:"short='l',placeholder='LEVEL',help='Override LOG_LEVEL (debug|info|warn|error).'"`
	Devtools string `kong:"placeholder='ADDR',help='Serve the DI debug endpoints on this address.'"`
	Validate bool   `kong:"help='Validate scene dependencies, print a report, and exit.'"`
	Frames   int    `kong:"default='180',help='Number of frames to simulate.'"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("scenedemo"),
		kong.Description("Demo game scene for the go-scene-di kit."),
	)

	cfg := config.Load()
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.Devtools != "" {
		cfg.Devtools.Enabled = true
		cfg.Devtools.Addr = cli.Devtools
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	s := newDemoScene(cfg.App.Name)
	kernel := newDemoKernel(s, logger)

	if cli.Validate {
		rep := kernel.Validate()
		devtools.WriteReport(os.Stdout, rep)
		if !rep.OK() {
			kctx.Exit(1)
		}
		return
	}

	if err := kernel.Activate(); err != nil {
		logger.Error("scene activation failed", "scene", s.Name(), "error", err)
		kctx.Exit(1)
	}

	s.Start()
	for i := 0; i < cli.Frames; i++ {
		s.Update(1.0 / 60.0)
	}

	if cfg.Devtools.Enabled {
		fmt.Printf("devtools listening on http://%s  (scene %q)\n", cfg.Devtools.Addr, s.Name())
		srv := devtools.NewServer(kernel)
		if err := srv.ListenAndServe(cfg.Devtools.Addr); err != nil {
			logger.Error("devtools server error", "error", err)
			kctx.Exit(1)
		}
	}
}
