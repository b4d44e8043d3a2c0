package components

import "time"

// ParticleKind distinguishes pooled transient visuals
type ParticleKind int

const (
	ParticleTrail ParticleKind = iota
	ParticleExplosion
)

// Particle is a pooled visual; explosion particles travel from origin to target over their lifetime
type Particle struct {
	Kind             ParticleKind
	Active           bool
	X, Y             float64
	TargetX, TargetY float64
	Born             time.Time
	Lifetime         time.Duration
}

// Position interpolates the particle position at now
func (p *Particle) Position(now time.Time) (float64, float64) {
	if p.Lifetime <= 0 || (p.TargetX == p.X && p.TargetY == p.Y) {
		return p.X, p.Y
	}
	t := float64(now.Sub(p.Born)) / float64(p.Lifetime)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.X + (p.TargetX-p.X)*t, p.Y + (p.TargetY-p.Y)*t
}

// ParticlePool is a fixed set of particles cycled FIFO
// Acquire takes from the front of the free queue, Release appends to the back
type ParticlePool struct {
	items []Particle
	free  []int
}

// NewParticlePool pre-allocates size particles of one kind
func NewParticlePool(kind ParticleKind, size int) *ParticlePool {
	p := &ParticlePool{
		items: make([]Particle, size),
		free:  make([]int, 0, size),
	}
	for i := range p.items {
		p.items[i].Kind = kind
		p.free = append(p.free, i)
	}
	return p
}

// Acquire activates the next free particle, returning its slot
// Returns false when the pool is exhausted
func (p *ParticlePool) Acquire() (int, *Particle, bool) {
	if len(p.free) == 0 {
		return -1, nil, false
	}
	idx := p.free[0]
	p.free = p.free[1:]
	part := &p.items[idx]
	part.Active = true
	return idx, part, true
}

// Release deactivates a slot and returns it to the free queue
// Releasing an inactive slot is a no-op
func (p *ParticlePool) Release(idx int) {
	if idx < 0 || idx >= len(p.items) || !p.items[idx].Active {
		return
	}
	p.items[idx].Active = false
	p.free = append(p.free, idx)
}

// Available returns the count of free particles
func (p *ParticlePool) Available() int {
	return len(p.free)
}

// Size returns the fixed pool capacity
func (p *ParticlePool) Size() int {
	return len(p.items)
}

// Each calls fn for every active particle
func (p *ParticlePool) Each(fn func(*Particle)) {
	for i := range p.items {
		if p.items[i].Active {
			fn(&p.items[i])
		}
	}
}
