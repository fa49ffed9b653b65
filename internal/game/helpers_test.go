package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroides/internal/object"
	"github.com/tomz197/asteroides/internal/physics"
)

// scriptRand replays vals in order, clamped to the requested range. Once the
// script runs out it returns 0 clamped to the range.
type scriptRand struct {
	vals  []int
	calls int
}

func (r *scriptRand) IntRange(min, max int) int {
	r.calls++
	v := 0
	if len(r.vals) > 0 {
		v = r.vals[0]
		r.vals = r.vals[1:]
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// newPlaying returns a session already in play. With an empty script every
// asteroid spawns motionless at the top-left corner, far from the ship.
func newPlaying(t *testing.T, vals ...int) (*Session, *scriptRand) {
	t.Helper()
	rng := &scriptRand{vals: vals}
	s := New(Options{Rand: rng, Logger: log.New(io.Discard)})
	s.Tick(Controls{Start: true})
	if s.Mode() != ModePlaying {
		t.Fatalf("mode after start = %v, want %v", s.Mode(), ModePlaying)
	}
	return s, rng
}

func placeAsteroid(s *Session, slot int, pos physics.Vec2, size object.AsteroidSize) {
	s.asteroids[slot] = object.Asteroid{
		Pos:    pos,
		Size:   size,
		Radius: object.RadiusFor(size),
		Active: true,
	}
}

func placeProjectile(s *Session, slot int, pos physics.Vec2) {
	s.projectiles[slot] = object.Projectile{Pos: pos, Active: true}
}

func far(i int) physics.Vec2 {
	return physics.Vec2{X: 700, Y: 450 + float64(i)*10}
}
