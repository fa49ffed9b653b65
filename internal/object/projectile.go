package object

import (
	"github.com/tomz197/asteroides/internal/game/config"
	"github.com/tomz197/asteroides/internal/physics"
)

// Projectile is a bullet fired by the ship.
type Projectile struct {
	Pos    physics.Vec2 // Position
	Vel    physics.Vec2 // Fixed at fire time
	Active bool
}

// Launch activates the projectile at from, travelling along heading.
func (p *Projectile) Launch(from physics.Vec2, heading float64) {
	p.Pos = from
	p.Vel = physics.FromHeading(heading, config.ProjectileSpeed)
	p.Active = true
}

// Update moves the projectile and deactivates it once it leaves the playfield.
func (p *Projectile) Update() {
	p.Pos = p.Pos.Add(p.Vel)
	if !InField(p.Pos) {
		p.Active = false
	}
}

// InField reports whether pos lies inside the closed playfield rectangle.
func InField(pos physics.Vec2) bool {
	return pos.X >= 0 && pos.X <= config.FieldWidth &&
		pos.Y >= 0 && pos.Y <= config.FieldHeight
}

// ProjectilePool is the fixed-capacity projectile arena.
type ProjectilePool [config.MaxProjectiles]Projectile

// FreeSlot returns the lowest inactive slot index, or -1 if the pool is full.
func (p ProjectilePool) FreeSlot() int {
	for i := range p {
		if !p[i].Active {
			return i
		}
	}
	return -1
}

// ActiveCount returns the number of projectiles in flight.
func (p ProjectilePool) ActiveCount() int {
	n := 0
	for i := range p {
		if p[i].Active {
			n++
		}
	}
	return n
}

// Clear deactivates every slot.
func (p *ProjectilePool) Clear() {
	for i := range p {
		p[i].Active = false
	}
}
