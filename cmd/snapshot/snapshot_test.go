package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stdiopt/gowasm-portfolio/fluid"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions("")
	if err != nil {
		t.Fatal(err)
	}
	if opts.Width != 1280 || opts.Height != 720 || opts.Frames != 120 || !opts.Caption {
		t.Fatalf("opts = %+v", opts)
	}
	if opts.Fluid.Count != 100 || len(opts.Fluid.Stops) != 4 {
		t.Fatalf("fluid = %+v", opts.Fluid)
	}
}

func TestLoadOptionsEnvAndYAML(t *testing.T) {
	t.Setenv("FX_SEED", "99")
	t.Setenv("FX_WIDTH", "640")
	path := writeConfig(t, `
height: 200
frames: 3
fluid:
  count: 7
  radius_min: 5
  radius_max: 15
`)
	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Seed != 99 || opts.Width != 640 || opts.Height != 200 || opts.Frames != 3 {
		t.Fatalf("opts = %+v", opts)
	}
	if opts.Fluid.Count != 7 || opts.Fluid.RadiusMin != 5 || opts.Fluid.RadiusMax != 15 {
		t.Fatalf("fluid = %+v", opts.Fluid)
	}
	// untouched keys keep their defaults
	if opts.Fluid.Blend != "screen" || opts.Fluid.OpacityMax != 0.3 {
		t.Fatalf("defaults lost: %+v", opts.Fluid)
	}
}

func TestLoadOptionsInvalid(t *testing.T) {
	path := writeConfig(t, "fluid:\n  count: -3\n")
	if _, err := LoadOptions(path); !errors.Is(err, fluid.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	path = writeConfig(t, "width: 0\n")
	if _, err := LoadOptions(path); err == nil {
		t.Fatal("zero width accepted")
	}
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestRenderDeterministic(t *testing.T) {
	opts := Options{
		Width:  64,
		Height: 48,
		Frames: 4,
		Seed:   5,
		Fluid:  fluid.DefaultConfig(),
	}
	opts.Fluid.Count = 6
	opts.Fluid.RadiusMin, opts.Fluid.RadiusMax = 4, 12

	a, err := Render(opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
		t.Fatal("same seed rendered different images")
	}
}
