package fluid

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// CanvasID is the element id the animator draws on.
const CanvasID = "fluidCanvas"

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid fluid config")

// Stop is a gradient color stop, Color is a #rrggbb hex string.
type Stop struct {
	Color string  `yaml:"color"`
	Pos   float64 `yaml:"pos"`
}

// Config holds the animator constants, read once at init.
type Config struct {
	Count      int     `yaml:"count"`
	RadiusMin  float64 `yaml:"radius_min"`
	RadiusMax  float64 `yaml:"radius_max"`
	SpeedMax   float64 `yaml:"speed_max"`
	OpacityMin float64 `yaml:"opacity_min"`
	OpacityMax float64 `yaml:"opacity_max"`
	Stops      []Stop  `yaml:"stops"`
	// Fade is painted over the whole surface at the start of every frame.
	Fade string `yaml:"fade"`
	// Blend is the composite operation set at the end of every frame.
	Blend string `yaml:"blend"`
}

// DefaultConfig returns the page defaults.
func DefaultConfig() Config {
	return Config{
		Count:      100,
		RadiusMin:  50,
		RadiusMax:  150,
		SpeedMax:   1,
		OpacityMin: 0.1,
		OpacityMax: 0.3,
		Stops: []Stop{
			{Color: "#6e42f5", Pos: 0},
			{Color: "#8a56ff", Pos: 0.3},
			{Color: "#42a5f5", Pos: 0.6},
			{Color: "#6e42f5", Pos: 1},
		},
		Fade:  "rgba(5, 5, 16, 0.1)",
		Blend: "screen",
	}
}

// Validate checks ranges and palette colors.
func (c Config) Validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("%w: negative count %d", ErrInvalidConfig, c.Count)
	case c.RadiusMin < 0 || c.RadiusMax < c.RadiusMin:
		return fmt.Errorf("%w: radius range [%v, %v]", ErrInvalidConfig, c.RadiusMin, c.RadiusMax)
	case c.SpeedMax < 0:
		return fmt.Errorf("%w: negative speed %v", ErrInvalidConfig, c.SpeedMax)
	case c.OpacityMin < 0 || c.OpacityMax > 1 || c.OpacityMax < c.OpacityMin:
		return fmt.Errorf("%w: opacity range [%v, %v]", ErrInvalidConfig, c.OpacityMin, c.OpacityMax)
	case len(c.Stops) == 0:
		return fmt.Errorf("%w: empty palette", ErrInvalidConfig)
	case c.Fade == "":
		return fmt.Errorf("%w: empty fade style", ErrInvalidConfig)
	}
	for i, s := range c.Stops {
		if s.Pos < 0 || s.Pos > 1 {
			return fmt.Errorf("%w: stop %d position %v", ErrInvalidConfig, i, s.Pos)
		}
		if _, err := colorful.Hex(s.Color); err != nil {
			return fmt.Errorf("%w: stop %d color %q: %v", ErrInvalidConfig, i, s.Color, err)
		}
	}
	return nil
}

// palette is the parsed form of Config.Stops.
type palette []paletteStop

type paletteStop struct {
	pos float64
	hex string // normalized lowercase #rrggbb
}

func newPalette(stops []Stop) (palette, error) {
	p := make(palette, 0, len(stops))
	for _, s := range stops {
		col, err := colorful.Hex(s.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: color %q: %v", ErrInvalidConfig, s.Color, err)
		}
		p = append(p, paletteStop{pos: s.Pos, hex: col.Hex()})
	}
	return p, nil
}

// AlphaHex renders an opacity in [0,1] as the two hex digit alpha suffix
// appended to a #rrggbb color.
func AlphaHex(opacity float64) string {
	a := int(opacity * 255)
	if a < 0 {
		a = 0
	}
	if a > 255 {
		a = 255
	}
	return fmt.Sprintf("%02x", a)
}
