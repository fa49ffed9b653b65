package game

import "github.com/tomz197/asteroides/internal/object"

// StepShip applies one tick of ship physics for the held movement keys.
func StepShip(ship *object.Ship, c Controls) {
	ship.Update(c.Intent())
}

// StepAsteroids drifts every active asteroid, wrapping at the edges.
func StepAsteroids(pool *object.AsteroidPool) {
	for i := range pool {
		if pool[i].Active {
			pool[i].Update()
		}
	}
}

// StepProjectiles moves every active projectile, retiring those that leave
// the playfield.
func StepProjectiles(pool *object.ProjectilePool) {
	for i := range pool {
		if pool[i].Active {
			pool[i].Update()
		}
	}
}
