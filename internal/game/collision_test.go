package game

import (
	"testing"

	"github.com/tomz197/asteroides/internal/game/config"
	"github.com/tomz197/asteroides/internal/object"
	"github.com/tomz197/asteroides/internal/physics"
)

func TestProjectileSplitsLargeAsteroid(t *testing.T) {
	s, rng := newPlaying(t)
	s.asteroids.Clear()
	placeAsteroid(s, 0, physics.Vec2{X: 200, Y: 200}, object.AsteroidLarge)
	placeProjectile(s, 0, physics.Vec2{X: 210, Y: 200})
	rng.vals = []int{5, -3, 15, -15, -10, 10, 0, 0}

	s.resolveProjectileHits()

	if s.projectiles[0].Active {
		t.Fatal("projectile should be spent")
	}
	if s.Score() != config.ScorePerAsteroid {
		t.Fatalf("score = %d, want %d", s.Score(), config.ScorePerAsteroid)
	}

	if s.asteroids[0].Active {
		t.Fatal("struck slot 0 should be freed, not reused by a fragment")
	}
	want := []struct {
		slot int
		pos  physics.Vec2
		vel  physics.Vec2
	}{
		{1, physics.Vec2{X: 205, Y: 197}, physics.Vec2{X: 1.5, Y: -1.5}},
		{2, physics.Vec2{X: 190, Y: 210}, physics.Vec2{}},
	}
	for _, w := range want {
		a := s.asteroids[w.slot]
		if !a.Active || a.Size != object.AsteroidMedium || a.Radius != 25 {
			t.Fatalf("slot %d = %+v, want active medium with radius 25", w.slot, a)
		}
		if a.Pos != w.pos || a.Vel != w.vel {
			t.Fatalf("slot %d pos=%+v vel=%+v, want pos=%+v vel=%+v", w.slot, a.Pos, a.Vel, w.pos, w.vel)
		}
	}
	if got := s.asteroids.ActiveCount(); got != 2 {
		t.Fatalf("active asteroids = %d, want 2", got)
	}
}

func TestSmallAsteroidDoesNotSplit(t *testing.T) {
	s, _ := newPlaying(t)
	s.asteroids.Clear()
	placeAsteroid(s, 3, physics.Vec2{X: 100, Y: 100}, object.AsteroidSmall)
	placeProjectile(s, 0, physics.Vec2{X: 100, Y: 100})

	s.resolveProjectileHits()

	if got := s.asteroids.ActiveCount(); got != 0 {
		t.Fatalf("active asteroids = %d, want 0", got)
	}
	if s.Score() != config.ScorePerAsteroid {
		t.Fatalf("score = %d, want %d", s.Score(), config.ScorePerAsteroid)
	}
}

func TestSplitIntoSaturatedPool(t *testing.T) {
	s, rng := newPlaying(t)
	for i := range s.asteroids {
		placeAsteroid(s, i, far(i), object.AsteroidLarge)
	}
	placeAsteroid(s, 3, physics.Vec2{X: 200, Y: 200}, object.AsteroidLarge)
	placeProjectile(s, 0, physics.Vec2{X: 200, Y: 200})
	calls := rng.calls

	s.resolveProjectileHits()

	if got := s.asteroids.ActiveCount(); got != config.MaxAsteroids-1 {
		t.Fatalf("active asteroids = %d, want %d", got, config.MaxAsteroids-1)
	}
	if a := s.asteroids[3]; a.Active || a.Size != object.AsteroidLarge {
		t.Fatalf("slot 3 = %+v, want the inactive struck asteroid", a)
	}
	for i, a := range s.asteroids {
		if i != 3 && (!a.Active || a.Size != object.AsteroidLarge) {
			t.Fatalf("slot %d = %+v, other slots must be untouched", i, a)
		}
	}
	if rng.calls != calls {
		t.Fatalf("split on a full pool drew %d random numbers, want 0", rng.calls-calls)
	}
	if s.Score() != config.ScorePerAsteroid {
		t.Fatalf("score = %d, want %d", s.Score(), config.ScorePerAsteroid)
	}
}

func TestFirstHitAfterResetLeavesSevenAsteroids(t *testing.T) {
	s, _ := newPlaying(t)
	target := s.asteroids[0].Pos
	placeProjectile(s, 0, target)

	s.resolveProjectileHits()

	if got := s.Asteroids().ActiveCount(); got != config.MaxAsteroids-1 {
		t.Fatalf("active asteroids = %d, want %d", got, config.MaxAsteroids-1)
	}
}

func TestProjectileHitsLowestSlotOnly(t *testing.T) {
	s, _ := newPlaying(t)
	s.asteroids.Clear()
	placeAsteroid(s, 1, physics.Vec2{X: 300, Y: 300}, object.AsteroidSmall)
	placeAsteroid(s, 4, physics.Vec2{X: 302, Y: 300}, object.AsteroidSmall)
	placeProjectile(s, 2, physics.Vec2{X: 301, Y: 300})

	s.resolveProjectileHits()

	if s.asteroids[1].Active {
		t.Fatal("slot 1 should be destroyed")
	}
	if !s.asteroids[4].Active {
		t.Fatal("slot 4 should survive; one projectile resolves one asteroid")
	}
	if s.Score() != config.ScorePerAsteroid {
		t.Fatalf("score = %d, want %d", s.Score(), config.ScorePerAsteroid)
	}
}

func TestEveryProjectileResolves(t *testing.T) {
	s, _ := newPlaying(t)
	s.asteroids.Clear()
	placeAsteroid(s, 0, physics.Vec2{X: 100, Y: 100}, object.AsteroidSmall)
	placeAsteroid(s, 1, physics.Vec2{X: 500, Y: 100}, object.AsteroidSmall)
	placeProjectile(s, 0, physics.Vec2{X: 100, Y: 100})
	placeProjectile(s, 1, physics.Vec2{X: 500, Y: 100})

	s.resolveProjectileHits()

	if got := s.asteroids.ActiveCount(); got != 0 {
		t.Fatalf("active asteroids = %d, want 0", got)
	}
	if s.Score() != 2*config.ScorePerAsteroid {
		t.Fatalf("score = %d, want %d", s.Score(), 2*config.ScorePerAsteroid)
	}
}

func TestRimContactIsNotAHit(t *testing.T) {
	s, _ := newPlaying(t)
	s.asteroids.Clear()
	placeAsteroid(s, 0, physics.Vec2{X: 400, Y: 100}, object.AsteroidLarge)
	placeProjectile(s, 0, physics.Vec2{X: 440, Y: 100})

	s.resolveProjectileHits()

	if !s.asteroids[0].Active || !s.projectiles[0].Active {
		t.Fatal("distance equal to the radius must not collide")
	}
	if s.Score() != 0 {
		t.Fatalf("score = %d, want 0", s.Score())
	}
}

func TestShipHitRespawnsAtCenter(t *testing.T) {
	s, _ := newPlaying(t)
	s.asteroids.Clear()
	s.ship.Heading = 135
	s.ship.Vel = physics.Vec2{X: 1, Y: 1}
	s.ship.Pos = physics.Vec2{X: 410, Y: 310}
	placeAsteroid(s, 0, physics.Vec2{X: 410, Y: 310}, object.AsteroidLarge)

	s.resolveShipHits()

	ship := s.Ship()
	if s.Lives() != config.InitialLives-1 {
		t.Fatalf("lives = %d, want %d", s.Lives(), config.InitialLives-1)
	}
	if !ship.Active || ship.Pos != object.Center() || !ship.Vel.IsZero() || !ship.Accel.IsZero() || ship.Heading != 0 {
		t.Fatalf("ship = %+v, want active at center with no motion", ship)
	}
	if !s.asteroids[0].Active {
		t.Fatal("asteroid must be untouched by a ship hit")
	}
}

func TestShipHullTolerance(t *testing.T) {
	s, _ := newPlaying(t)
	s.asteroids.Clear()
	// Radius 15 plus 10 of hull padding: 25 is exactly on the edge.
	placeAsteroid(s, 0, physics.Vec2{X: 425, Y: 300}, object.AsteroidSmall)

	s.resolveShipHits()
	if s.Lives() != config.InitialLives {
		t.Fatalf("lives = %d, contact at exactly radius+10 must not count", s.Lives())
	}

	s.asteroids[0].Pos.X = 424.9
	s.resolveShipHits()
	if s.Lives() != config.InitialLives-1 {
		t.Fatalf("lives = %d, want %d", s.Lives(), config.InitialLives-1)
	}
}

func TestOneShipHitPerTick(t *testing.T) {
	s, _ := newPlaying(t)
	s.asteroids.Clear()
	placeAsteroid(s, 0, object.Center(), object.AsteroidLarge)
	placeAsteroid(s, 1, object.Center(), object.AsteroidMedium)
	placeAsteroid(s, 2, object.Center(), object.AsteroidSmall)

	s.resolveShipHits()

	if s.Lives() != config.InitialLives-1 {
		t.Fatalf("lives = %d, want %d", s.Lives(), config.InitialLives-1)
	}
}

func TestLastLifeDeactivatesShip(t *testing.T) {
	s, _ := newPlaying(t)
	s.asteroids.Clear()
	s.lives = 1
	placeAsteroid(s, 0, object.Center(), object.AsteroidLarge)

	s.resolveShipHits()

	if s.Ship().Active {
		t.Fatal("ship should be inactive after the last life")
	}
	if s.Lives() != 0 {
		t.Fatalf("lives = %d, want 0", s.Lives())
	}

	// An inactive ship takes no further hits.
	s.resolveShipHits()
	if s.Lives() != 0 {
		t.Fatalf("lives = %d after second pass, want 0", s.Lives())
	}
}

func TestRespawnGrace(t *testing.T) {
	s, _ := newPlaying(t)
	s.respawnGrace = 2
	s.asteroids.Clear()
	placeAsteroid(s, 0, object.Center(), object.AsteroidLarge)

	s.resolveShipHits()
	s.resolveShipHits()
	s.resolveShipHits()
	if s.Lives() != config.InitialLives-1 {
		t.Fatalf("lives = %d during grace, want %d", s.Lives(), config.InitialLives-1)
	}

	s.resolveShipHits()
	if s.Lives() != config.InitialLives-2 {
		t.Fatalf("lives = %d after grace, want %d", s.Lives(), config.InitialLives-2)
	}
}
