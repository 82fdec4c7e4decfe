package raster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// rgba is a straight (non premultiplied) color with alpha.
type rgba struct {
	c colorful.Color
	a float64
}

// parseStyle understands the canvas styles the animator emits:
// #rgb, #rrggbb, #rrggbbaa and rgba(r, g, b, a).
func parseStyle(s string) (rgba, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#") && len(s) == 9:
		c, err := colorful.Hex(s[:7])
		if err != nil {
			return rgba{}, err
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return rgba{}, fmt.Errorf("alpha %q: %w", s[7:], err)
		}
		return rgba{c, float64(a) / 255}, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return rgba{}, err
		}
		return rgba{c, 1}, nil
	case strings.HasPrefix(s, "rgba("):
		var r, g, b int
		var a float64
		if _, err := fmt.Sscanf(s, "rgba(%d, %d, %d, %g)", &r, &g, &b, &a); err != nil {
			return rgba{}, fmt.Errorf("style %q: %w", s, err)
		}
		return rgba{colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, a}, nil
	}
	return rgba{}, fmt.Errorf("unsupported style %q", s)
}

// lerp interpolates two straight colors.
func lerp(a, b rgba, t float64) rgba {
	return rgba{a.c.BlendRgb(b.c, t), a.a + (b.a-a.a)*t}
}
