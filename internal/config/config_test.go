package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lumawm/luma/internal/diag"
	"github.com/lumawm/luma/internal/win"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "luma.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestConfig_New_PublishesDefaults(t *testing.T) {
	c := New()
	st := c.State()
	if st == nil {
		t.Fatal("State() = nil before any load")
	}
	if st.Options.Backend != BackendXRender {
		t.Errorf("default backend = %v, want xrender", st.Options.Backend)
	}

	e := c.EffectiveFor(win.Info{Class: "App", Type: win.Normal})
	if e.Opacity != 1.0 {
		t.Errorf("default effective opacity = %v, want 1.0", e.Opacity)
	}
}

func TestConfig_Load(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
shadow = true
inactive-opacity = 0.8

[wintypes.dock]
shadow = false
`)
	c := New(WithPath(path))
	report, err := c.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if report.HasWarnings() {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}

	st := c.State()
	if st.SourcePath != path {
		t.Errorf("SourcePath = %q, want %q", st.SourcePath, path)
	}
	if !st.Options.ShadowEnabled {
		t.Error("ShadowEnabled = false after load")
	}

	dock := win.Info{Class: "Panel", Type: win.Dock}
	if c.EffectiveFor(dock).Shadow {
		t.Error("dock shadow = true, want wintype override false")
	}
	normal := win.Info{Class: "App", Type: win.Normal}
	if !c.EffectiveFor(normal).Shadow {
		t.Error("normal shadow = false, want global true")
	}
}

// A failed load must leave the previously published generation intact.
func TestConfig_FailedLoadKeepsPreviousState(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `shadow = true`)

	sink := &diag.Collector{}
	c := New(WithPath(path), WithDiagnostics(sink))
	if _, err := c.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	before := c.State()

	writeConfig(t, dir, `backend = "opengl"`)
	if _, err := c.Load(); err == nil {
		t.Fatal("Load of broken config should fail")
	}

	after := c.State()
	if after != before {
		t.Error("failed load replaced the published state")
	}
	if !after.Options.ShadowEnabled {
		t.Error("previous generation lost its settings")
	}
	if len(sink.Errors()) == 0 {
		t.Error("failed load should report through the diagnostics sink")
	}
}

func TestConfig_ReloadSwapsGeneration(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `corner-radius = 4`)

	c := New(WithPath(path))
	if _, err := c.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	first := c.State()

	writeConfig(t, dir, `corner-radius = 9`)
	if _, err := c.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	second := c.State()

	if first.Generation == second.Generation {
		t.Error("reload did not produce a new generation")
	}
	if second.Options.CornerRadius != 9 {
		t.Errorf("CornerRadius = %d, want 9", second.Options.CornerRadius)
	}

	// The superseded generation stays valid for readers still holding it.
	if first.Options.CornerRadius != 4 {
		t.Errorf("old generation CornerRadius = %d, want 4", first.Options.CornerRadius)
	}
}

func TestConfig_LoadWarningsReachSink(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `shadow-exclude = ["[unclosed"]`)

	sink := &diag.Collector{}
	c := New(WithPath(path), WithDiagnostics(sink))
	report, err := c.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(report.Warnings))
	}
	if len(sink.Warnings()) != 1 {
		t.Errorf("sink warnings = %d, want 1", len(sink.Warnings()))
	}
}

func TestConfig_LoadWithoutPath(t *testing.T) {
	c := New()
	if _, err := c.Load(); err == nil {
		t.Error("Load without a path should fail")
	}
}

func TestConfig_MissingFile(t *testing.T) {
	c := New(WithPath(filepath.Join(t.TempDir(), "absent.toml")))
	if _, err := c.Load(); err == nil {
		t.Error("Load of a missing file should fail")
	}
}
