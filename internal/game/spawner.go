package game

import (
	"github.com/tomz197/asteroides/internal/game/config"
	"github.com/tomz197/asteroides/internal/object"
	"github.com/tomz197/asteroides/internal/physics"
)

// Spawner creates asteroids in a pool and keeps its population above a floor.
type Spawner struct {
	pool    *object.AsteroidPool
	rng     Rand
	onSpawn func(slot int, a *object.Asteroid)
}

// NewSpawner creates a spawner over pool drawing from rng.
func NewSpawner(pool *object.AsteroidPool, rng Rand) *Spawner {
	return &Spawner{pool: pool, rng: rng}
}

// CreateAsteroid overwrites slot with a fresh active asteroid at pos.
// Each velocity axis is drawn independently in [-1.5, 1.5].
func (s *Spawner) CreateAsteroid(slot int, pos physics.Vec2, size object.AsteroidSize) {
	a := &s.pool[slot]
	a.Pos = pos
	a.Vel = physics.Vec2{
		X: float64(s.rng.IntRange(-config.AsteroidSpeedSteps, config.AsteroidSpeedSteps)) / config.AsteroidStepsPerUnit,
		Y: float64(s.rng.IntRange(-config.AsteroidSpeedSteps, config.AsteroidSpeedSteps)) / config.AsteroidStepsPerUnit,
	}
	a.Size = size
	a.Radius = object.RadiusFor(size)
	a.Active = true

	if s.onSpawn != nil {
		s.onSpawn(slot, a)
	}
}

// RandomPosition returns a uniformly random point on the playfield.
func (s *Spawner) RandomPosition() physics.Vec2 {
	return physics.Vec2{
		X: float64(s.rng.IntRange(0, config.FieldWidth)),
		Y: float64(s.rng.IntRange(0, config.FieldHeight)),
	}
}

// Populate fills every slot with a large asteroid at a random position.
func (s *Spawner) Populate() {
	for i := range s.pool {
		s.CreateAsteroid(i, s.RandomPosition(), object.AsteroidLarge)
	}
}

// Replenish refills every inactive slot with a large asteroid once the active
// count has dropped to the floor. It returns the number of asteroids created.
func (s *Spawner) Replenish() int {
	if s.pool.ActiveCount() > config.MaxAsteroids/config.ReplenishDivisor {
		return 0
	}

	created := 0
	for i := range s.pool {
		if !s.pool[i].Active {
			s.CreateAsteroid(i, s.RandomPosition(), object.AsteroidLarge)
			created++
		}
	}
	return created
}

// Split places up to two fragments of the given size near center, each in the
// first free slot. With a saturated pool fewer fragments appear.
func (s *Spawner) Split(center physics.Vec2, size object.AsteroidSize) int {
	created := 0
	for range config.SplitChildren {
		slot := s.pool.FreeSlot()
		if slot < 0 {
			break
		}
		pos := physics.Vec2{
			X: center.X + float64(s.rng.IntRange(-config.SplitOffset, config.SplitOffset)),
			Y: center.Y + float64(s.rng.IntRange(-config.SplitOffset, config.SplitOffset)),
		}
		s.CreateAsteroid(slot, pos, size)
		created++
	}
	return created
}
