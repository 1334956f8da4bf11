package config_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/km-arc/go-scene-di/framework/config"
)

// clearEnv unsets every variable Load reads so defaults are observable.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "APP_DEBUG",
		"LOG_LEVEL", "DEVTOOLS_ENABLED", "DEVTOOLS_ADDR",
	} {
		t.Setenv(key, "") // restores the original value after the test
		os.Unsetenv(key)
	}
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := config.Load("testdata/empty.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "GoSceneDI"},
		{"App.Env", cfg.App.Env, "local"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Devtools.Addr", cfg.Devtools.Addr, "127.0.0.1:9066"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if !cfg.App.Debug {
		t.Error("App.Debug default should be true")
	}
	if cfg.Devtools.Enabled {
		t.Error("Devtools.Enabled default should be false")
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_NAME", "MyGame")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEVTOOLS_ENABLED", "true")
	t.Setenv("DEVTOOLS_ADDR", "127.0.0.1:7001")

	cfg := config.Load("testdata/empty.env")

	if cfg.App.Name != "MyGame" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "MyGame")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level: got %q want %q", cfg.Log.Level, "debug")
	}
	if !cfg.Devtools.Enabled {
		t.Error("Devtools.Enabled should be true")
	}
	if cfg.Devtools.Addr != "127.0.0.1:7001" {
		t.Errorf("Devtools.Addr: got %q want %q", cfg.Devtools.Addr, "127.0.0.1:7001")
	}
}

// ── SlogLevel ────────────────────────────────────────────────────────────────

func TestSlogLevel_Mapping(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			lc := config.LogConfig{Level: tt.level}
			if got := lc.SlogLevel(); got != tt.want {
				t.Errorf("SlogLevel(%q): got %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

// ── Raw helpers ──────────────────────────────────────────────────────────────

func TestGetHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	t.Setenv("SOME_BOOL", "true")
	t.Setenv("SOME_BAD_INT", "not-a-number")

	if got := config.GetInt("SOME_INT", 0); got != 42 {
		t.Errorf("GetInt: got %d, want 42", got)
	}
	if got := config.GetInt("SOME_BAD_INT", 7); got != 7 {
		t.Errorf("GetInt fallback: got %d, want 7", got)
	}
	if got := config.GetInt("SOME_MISSING_INT", 3); got != 3 {
		t.Errorf("GetInt missing: got %d, want 3", got)
	}
	if !config.GetBool("SOME_BOOL", false) {
		t.Error("GetBool: got false, want true")
	}
	if got := config.Get("SOME_MISSING", "fallback"); got != "fallback" {
		t.Errorf("Get missing: got %q, want %q", got, "fallback")
	}
}
