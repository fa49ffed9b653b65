// Package object defines the game entities and their fixed-capacity pools.
package object

import (
	"github.com/tomz197/asteroides/internal/game/config"
	"github.com/tomz197/asteroides/internal/physics"
)

// AsteroidSize represents the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

// Collision radius for each asteroid size.
var asteroidRadii = map[AsteroidSize]float64{
	AsteroidSmall:  15,
	AsteroidMedium: 25,
	AsteroidLarge:  40,
}

// defaultAsteroidRadius is used for sizes outside the table.
const defaultAsteroidRadius = 20

// RadiusFor returns the collision radius of an asteroid of the given size.
func RadiusFor(size AsteroidSize) float64 {
	if r, ok := asteroidRadii[size]; ok {
		return r
	}
	return defaultAsteroidRadius
}

// CanSplit reports whether destroying an asteroid of this size yields fragments.
func (s AsteroidSize) CanSplit() bool {
	return s > AsteroidSmall
}

// Asteroid is a drifting space rock occupying one pool slot.
type Asteroid struct {
	Pos    physics.Vec2 // Center
	Vel    physics.Vec2 // Fixed at spawn
	Size   AsteroidSize // Size category
	Radius float64      // Always RadiusFor(Size)
	Active bool
}

// Update drifts the asteroid and wraps it to the opposite edge.
func (a *Asteroid) Update() {
	a.Pos = a.Pos.Add(a.Vel)

	if a.Pos.X > config.FieldWidth {
		a.Pos.X = 0
	}
	if a.Pos.X < 0 {
		a.Pos.X = config.FieldWidth
	}
	if a.Pos.Y > config.FieldHeight {
		a.Pos.Y = 0
	}
	if a.Pos.Y < 0 {
		a.Pos.Y = config.FieldHeight
	}
}

// Contains reports whether p is strictly inside the asteroid.
func (a *Asteroid) Contains(p physics.Vec2) bool {
	return physics.PointInCircle(p, a.Pos, a.Radius)
}

// AsteroidPool is the fixed-capacity asteroid arena. A slot's identity is
// its index; Active is the only occupancy marker.
type AsteroidPool [config.MaxAsteroids]Asteroid

// FreeSlot returns the lowest inactive slot index, or -1 if the pool is full.
func (p AsteroidPool) FreeSlot() int {
	for i := range p {
		if !p[i].Active {
			return i
		}
	}
	return -1
}

// ActiveCount returns the number of occupied slots.
func (p AsteroidPool) ActiveCount() int {
	n := 0
	for i := range p {
		if p[i].Active {
			n++
		}
	}
	return n
}

// Clear deactivates every slot.
func (p *AsteroidPool) Clear() {
	for i := range p {
		p[i].Active = false
	}
}
