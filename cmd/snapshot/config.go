package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/stdiopt/gowasm-portfolio/fluid"
)

// Options controls a snapshot run.
type Options struct {
	Width  int    `yaml:"width" env:"FX_WIDTH" envDefault:"1280"`
	Height int    `yaml:"height" env:"FX_HEIGHT" envDefault:"720"`
	Frames int    `yaml:"frames" env:"FX_FRAMES" envDefault:"120"`
	Seed   int64  `yaml:"seed" env:"FX_SEED" envDefault:"1"`
	Out    string `yaml:"out" env:"FX_OUT" envDefault:"snapshot.png"`
	// Caption prints the frame count in a corner.
	Caption bool `yaml:"caption" env:"FX_CAPTION" envDefault:"true"`

	Fluid fluid.Config `yaml:"fluid"`
}

// LoadOptions reads defaults from the environment, then overlays the yaml
// file at path when path is not empty.
func LoadOptions(path string) (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return opts, fmt.Errorf("parse env: %w", err)
	}
	opts.Fluid = fluid.DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return opts, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return opts, fmt.Errorf("invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.Frames < 0 {
		return opts, fmt.Errorf("invalid frame count %d", opts.Frames)
	}
	if err := opts.Fluid.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
