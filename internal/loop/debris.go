package loop

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/tomz197/asteroides/internal/draw"
	"github.com/tomz197/asteroides/internal/game"
	"github.com/tomz197/asteroides/internal/physics"
)

// Burst tuning, in logical units and ticks.
const (
	debrisPerSize      = 4
	debrisShipHit      = 12
	debrisShipLost     = 24
	debrisSpeed        = 3.0
	debrisLifetime     = 30
	debrisDrag         = 0.95
	debrisFadeFraction = 0.25
)

// particlePool recycles particles between bursts.
var particlePool = sync.Pool{
	New: func() any {
		return &particle{}
	},
}

// particle is a short-lived fragment drawn where something broke.
type particle struct {
	pos     physics.Vec2
	vel     physics.Vec2
	life    int // Ticks remaining
	maxLife int
}

// debris is the purely visual particle layer. It reads session events and
// never feeds anything back into the simulation.
type debris struct {
	particles []*particle
	rng       *rand.Rand
}

func newDebris(seed uint64) *debris {
	return &debris{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

// absorb turns this tick's events into bursts.
func (d *debris) absorb(events []game.Event) {
	for _, e := range events {
		switch e.Kind {
		case game.EventAsteroidDestroyed:
			d.burst(e.Pos, int(e.Size)*debrisPerSize)
		case game.EventShipHit:
			d.burst(e.Pos, debrisShipHit)
		case game.EventShipDestroyed:
			d.burst(e.Pos, debrisShipLost)
		}
	}
}

// burst spawns count particles flying out of pos in random directions.
func (d *debris) burst(pos physics.Vec2, count int) {
	for range count {
		angle := d.rng.Float64() * 2 * math.Pi
		speed := debrisSpeed * (0.5 + d.rng.Float64())
		life := debrisLifetime/2 + d.rng.IntN(debrisLifetime/2+1)

		p := particlePool.Get().(*particle)
		p.pos = pos
		p.vel = physics.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		p.life = life
		p.maxLife = life
		d.particles = append(d.particles, p)
	}
}

// update ages and moves every particle, releasing the expired ones.
func (d *debris) update() {
	kept := d.particles[:0]
	for _, p := range d.particles {
		p.life--
		if p.life <= 0 {
			particlePool.Put(p)
			continue
		}
		p.vel = p.vel.Scale(debrisDrag)
		p.pos = p.pos.Add(p.vel)
		kept = append(kept, p)
	}
	clear(d.particles[len(kept):])
	d.particles = kept
}

func (d *debris) draw(c *draw.Canvas) {
	for _, p := range d.particles {
		// Faded out
		if float64(p.life)/float64(p.maxLife) < debrisFadeFraction {
			continue
		}
		c.SetFloat(p.pos.X, p.pos.Y)
	}
}

func (d *debris) reset() {
	for _, p := range d.particles {
		particlePool.Put(p)
	}
	clear(d.particles)
	d.particles = d.particles[:0]
}

func (d *debris) count() int {
	return len(d.particles)
}
