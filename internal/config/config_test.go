package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"width": 320, "height": 200, "line_color": "#00ff00", "surface": "webp"}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != 200 || cfg.LineColor != "#00ff00" || cfg.Surface != SurfaceWebP {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.FPS != 0 {
		t.Errorf("unset FPS = %d, want 0", cfg.FPS)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", "width = 640\nfps = 30\nlines_per_frame = 50\nscale = 0.5\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 640 || cfg.FPS != 30 || cfg.LinesPerFrame != 50 || cfg.Scale != 0.5 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "bad.json", "{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := Load(writeFile(t, "bad.toml", "width = ")); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	if cfg.Width != 800 || cfg.Height != 600 || cfg.FPS != 120 || cfg.LinesPerFrame != 1000 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Surface != SurfaceWindow || cfg.MaxFrames != 0 {
		t.Errorf("surface = %q, max frames = %d", cfg.Surface, cfg.MaxFrames)
	}
	c, err := cfg.Color()
	if err != nil {
		t.Fatal(err)
	}
	if c != 0xFFFF0000 {
		t.Errorf("Color() = %#08x, want 0xffff0000", c)
	}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{FPS: 60, Surface: SurfaceWindow}
	cfg.Resolve(Flags{Surface: SurfaceWebP, FPS: 24, Lines: 10, OutputDir: "out", Seed: 7})
	if cfg.Surface != SurfaceWebP || cfg.FPS != 24 || cfg.LinesPerFrame != 10 || cfg.OutputDir != "out" || cfg.Seed != 7 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.MaxFrames != 120 || cfg.RecordEvery != 1 || cfg.Scale != 1 {
		t.Errorf("webp defaults not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"bad color", Config{Width: 1, Height: 1, FPS: 1, LineColor: "red", Surface: SurfaceWindow}, "line_color"},
		{"bad surface", Config{Width: 1, Height: 1, FPS: 1, LineColor: "#fff", Surface: "tty"}, "unknown surface"},
		{"bad size", Config{Width: 0, Height: 1, FPS: 1, LineColor: "#fff", Surface: SurfaceWindow}, "canvas size"},
		{"bad fps", Config{Width: 1, Height: 1, FPS: -1, LineColor: "#fff", Surface: SurfaceWindow}, "fps"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tc.want)
			}
		})
	}
}

func TestColor(t *testing.T) {
	cfg := Config{LineColor: "#102030"}
	c, err := cfg.Color()
	if err != nil {
		t.Fatal(err)
	}
	if c != 0xFF102030 {
		t.Errorf("Color() = %#08x", c)
	}
}
