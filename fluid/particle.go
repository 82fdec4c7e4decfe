package fluid

// Rand is the random source used to seed a pool, *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Particle represents a single blob.
type Particle struct {
	Pos     [2]float64
	Vel     [2]float64
	Radius  float64
	Opacity float64
}

// Step advances p by one frame inside a w x h surface. A velocity component
// flips when the new position touches or passes either bound on that axis;
// the position itself is never clamped.
func Step(p Particle, w, h float64) Particle {
	p.Pos[0] += p.Vel[0]
	p.Pos[1] += p.Vel[1]

	if p.Pos[0] <= 0 || p.Pos[0] >= w {
		p.Vel[0] = -p.Vel[0]
	}
	if p.Pos[1] <= 0 || p.Pos[1] >= h {
		p.Vel[1] = -p.Vel[1]
	}
	return p
}

// Pool is a fixed size set of particles, its length never changes after
// creation.
type Pool struct {
	parts []Particle
}

// NewPool creates cfg.Count particles spread over a w x h surface.
func NewPool(cfg Config, rng Rand, w, h float64) *Pool {
	parts := make([]Particle, cfg.Count)
	for i := range parts {
		parts[i] = Particle{
			Pos: [2]float64{
				rng.Float64() * w,
				rng.Float64() * h,
			},
			Radius: between(rng, cfg.RadiusMin, cfg.RadiusMax),
			Vel: [2]float64{
				between(rng, -cfg.SpeedMax, cfg.SpeedMax),
				between(rng, -cfg.SpeedMax, cfg.SpeedMax),
			},
			Opacity: between(rng, cfg.OpacityMin, cfg.OpacityMax),
		}
	}
	return &Pool{parts: parts}
}

// PoolOf builds a pool from explicit particles.
func PoolOf(ps ...Particle) *Pool {
	parts := make([]Particle, len(ps))
	copy(parts, ps)
	return &Pool{parts: parts}
}

// Len returns the number of particles.
func (p *Pool) Len() int { return len(p.parts) }

// At returns the i-th particle.
func (p *Pool) At(i int) Particle { return p.parts[i] }

// Particles returns a copy of the pool contents.
func (p *Pool) Particles() []Particle {
	ret := make([]Particle, len(p.parts))
	copy(ret, p.parts)
	return ret
}

// Step advances every particle one frame.
func (p *Pool) Step(w, h float64) {
	for i := range p.parts {
		p.parts[i] = Step(p.parts[i], w, h)
	}
}

func between(rng Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}
