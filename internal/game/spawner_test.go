package game

import (
	"testing"

	"github.com/tomz197/asteroides/internal/game/config"
	"github.com/tomz197/asteroides/internal/object"
	"github.com/tomz197/asteroides/internal/physics"
)

func TestCreateAsteroid(t *testing.T) {
	var pool object.AsteroidPool
	sp := NewSpawner(&pool, &scriptRand{vals: []int{-15, 7}})

	sp.CreateAsteroid(5, physics.Vec2{X: 10, Y: 20}, object.AsteroidMedium)

	a := pool[5]
	if !a.Active || a.Size != object.AsteroidMedium || a.Radius != 25 {
		t.Fatalf("asteroid = %+v, want active medium with radius 25", a)
	}
	if a.Vel != (physics.Vec2{X: -1.5, Y: 0.7}) {
		t.Fatalf("velocity = %+v, want (-1.5, 0.7)", a.Vel)
	}
}

func TestCreateAsteroidUnknownSize(t *testing.T) {
	var pool object.AsteroidPool
	sp := NewSpawner(&pool, &scriptRand{})

	sp.CreateAsteroid(0, physics.Vec2{}, 7)

	if pool[0].Radius != 20 {
		t.Fatalf("radius = %v, want 20", pool[0].Radius)
	}
}

func TestVelocityStaysInRange(t *testing.T) {
	var pool object.AsteroidPool
	sp := NewSpawner(&pool, NewRand(99))

	for range 500 {
		sp.Populate()
		for i, a := range pool {
			if a.Vel.X < -1.5 || a.Vel.X > 1.5 || a.Vel.Y < -1.5 || a.Vel.Y > 1.5 {
				t.Fatalf("slot %d velocity %+v outside [-1.5, 1.5]", i, a.Vel)
			}
			if a.Pos.X < 0 || a.Pos.X > config.FieldWidth || a.Pos.Y < 0 || a.Pos.Y > config.FieldHeight {
				t.Fatalf("slot %d spawned off the field at %+v", i, a.Pos)
			}
		}
	}
}

func TestSplitDrawsOnlyForFreeSlots(t *testing.T) {
	var pool object.AsteroidPool
	for i := range pool {
		pool[i].Active = true
	}
	rng := &scriptRand{}
	sp := NewSpawner(&pool, rng)

	if n := sp.Split(physics.Vec2{X: 100, Y: 100}, object.AsteroidMedium); n != 0 {
		t.Fatalf("Split on a full pool created %d, want 0", n)
	}
	if rng.calls != 0 {
		t.Fatalf("Split on a full pool drew %d random numbers, want 0", rng.calls)
	}
}

func TestReplenishThreshold(t *testing.T) {
	var pool object.AsteroidPool
	sp := NewSpawner(&pool, &scriptRand{})
	pool[0].Active = true
	pool[1].Active = true
	pool[2].Active = true

	if n := sp.Replenish(); n != 0 {
		t.Fatalf("Replenish with 3 active created %d, want 0", n)
	}

	pool[2].Active = false
	if n := sp.Replenish(); n != config.MaxAsteroids-2 {
		t.Fatalf("Replenish with 2 active created %d, want %d", n, config.MaxAsteroids-2)
	}
	for i, a := range pool[2:] {
		if a.Size != object.AsteroidLarge {
			t.Fatalf("refilled slot %d size %d, want large", i+2, a.Size)
		}
	}
}

func TestDefaultRandBounds(t *testing.T) {
	r := NewRand(7)
	for range 1000 {
		if v := r.IntRange(-10, 10); v < -10 || v > 10 {
			t.Fatalf("IntRange(-10, 10) = %d", v)
		}
	}
	if v := r.IntRange(3, 3); v != 3 {
		t.Fatalf("IntRange(3, 3) = %d, want 3", v)
	}
}

func TestResolveSeed(t *testing.T) {
	if got := ResolveSeed(42); got != 42 {
		t.Fatalf("ResolveSeed(42) = %d, want 42", got)
	}
	if got := ResolveSeed(0); got == 0 {
		t.Fatal("ResolveSeed(0) should pick a non-zero clock seed")
	}
}
