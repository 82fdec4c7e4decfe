package page

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// FloaterCount is how many decorative particles are generated.
const FloaterCount = 50

// Accent colors, as css variables defined by the page stylesheet.
var accents = [2]string{"var(--accent-color)", "var(--accent-color-2)"}

// glow is the shadow tint shared by every floater.
var glow = colorful.Color{R: 110.0 / 255, G: 66.0 / 255, B: 245.0 / 255}

// Rand is the random source used for floaters.
type Rand interface {
	Float64() float64
}

// Floater is a decorative particle animated by css.
type Floater struct {
	Size     float64 // px
	Accent   string
	Opacity  float64
	Left     float64 // percent
	Top      float64 // percent
	Duration float64 // seconds
	Delay    float64 // seconds
}

// NewFloater draws a random floater.
func NewFloater(rng Rand) Floater {
	f := Floater{Size: rng.Float64() * 5}
	f.Accent = accents[0]
	if rng.Float64() <= 0.5 {
		f.Accent = accents[1]
	}
	f.Opacity = rng.Float64() * 0.5
	f.Left = rng.Float64() * 100
	f.Top = rng.Float64() * 100
	f.Duration = rng.Float64()*15 + 10
	f.Delay = rng.Float64() * 5
	return f
}

// Style returns the inline css properties of the floater.
func (f Floater) Style() map[string]string {
	size := fmt.Sprintf("%gpx", f.Size)
	return map[string]string{
		"position":       "absolute",
		"width":          size,
		"height":         size,
		"background":     f.Accent,
		"borderRadius":   "50%",
		"opacity":        fmt.Sprintf("%g", f.Opacity),
		"boxShadow":      "0 0 10px " + cssRGBA(glow, 0.5),
		"left":           fmt.Sprintf("%g%%", f.Left),
		"top":            fmt.Sprintf("%g%%", f.Top),
		"animation":      fmt.Sprintf("float %gs linear infinite", f.Duration),
		"animationDelay": fmt.Sprintf("%gs", f.Delay),
	}
}

func cssRGBA(c colorful.Color, a float64) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, a)
}

// FloatKeyframes is appended to the document head once floaters exist.
const FloatKeyframes = `
@keyframes float {
	0% { transform: translateY(0) translateX(0); }
	25% { transform: translateY(-20px) translateX(10px); }
	50% { transform: translateY(-40px) translateX(0); }
	75% { transform: translateY(-20px) translateX(-10px); }
	100% { transform: translateY(0) translateX(0); }
}

.particle {
	pointer-events: none;
}
`
