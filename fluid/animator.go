package fluid

import "fmt"

// Gradient receives color stops, it mirrors a canvas radial gradient.
type Gradient interface {
	AddColorStop(pos float64, color string)
}

// Surface is the 2D drawing target the animator paints on.
type Surface interface {
	Size() (w, h float64)
	SetSize(w, h float64)
	SetFillStyle(style string)
	FillRect(x, y, w, h float64)
	RadialGradient(x0, y0, r0, x1, y1, r1 float64) Gradient
	// FillCircle fills a full circle at x,y using g as fill style.
	FillCircle(x, y, r float64, g Gradient)
	SetComposite(op string)
}

// Animator owns the particle pool and paints it on a surface.
type Animator struct {
	cfg    Config
	pal    palette
	pool   *Pool
	surf   Surface
	frames int
}

// New validates cfg and seeds a pool over the current surface size.
func New(surf Surface, cfg Config, rng Rand) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := surf.Size()
	return NewWithPool(surf, cfg, NewPool(cfg, rng, w, h))
}

// NewWithPool builds an animator around an existing pool.
func NewWithPool(surf Surface, cfg Config, pool *Pool) (*Animator, error) {
	pal, err := newPalette(cfg.Stops)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	return &Animator{
		cfg:  cfg,
		pal:  pal,
		pool: pool,
		surf: surf,
	}, nil
}

// Pool returns the animated pool.
func (a *Animator) Pool() *Pool { return a.pool }

// Frames returns how many frames were painted.
func (a *Animator) Frames() int { return a.frames }

// Resize matches the surface to a new viewport size, the next frame uses it.
func (a *Animator) Resize(w, h float64) {
	a.surf.SetSize(w, h)
}

// Frame runs a single tick: fade, move and paint every particle, then set
// the blend mode used by everything painted afterwards, including the next
// frame's fade.
func (a *Animator) Frame() {
	s := a.surf
	w, h := s.Size()

	s.SetFillStyle(a.cfg.Fade)
	s.FillRect(0, 0, w, h)

	for i := range a.pool.parts {
		p := Step(a.pool.parts[i], w, h)
		a.pool.parts[i] = p

		x, y := p.Pos[0], p.Pos[1]
		g := s.RadialGradient(x, y, 0, x, y, p.Radius)
		alpha := AlphaHex(p.Opacity)
		for _, st := range a.pal {
			g.AddColorStop(st.pos, st.hex+alpha)
		}
		s.FillCircle(x, y, p.Radius, g)
	}

	s.SetComposite(a.cfg.Blend)
	a.frames++
}
