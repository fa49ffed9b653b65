// Package game implements the simulation core: one Session owns the ship,
// the asteroid and projectile pools, score, lives and mode, and advances them
// one fixed tick at a time.
package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroides/internal/game/config"
	"github.com/tomz197/asteroides/internal/object"
)

// Options configures a Session.
type Options struct {
	// Rand drives spawning and splitting. Nil uses a clock-seeded PCG source.
	Rand Rand
	// Logger receives lifecycle messages. Nil discards them.
	Logger *log.Logger
	// RespawnGrace is the number of ticks after a respawn during which the
	// ship ignores asteroid contact. Zero keeps the classic rules.
	RespawnGrace int
}

// Session is the whole game model. It is not safe for concurrent use; the
// owning frontend ticks it and reads it from a single goroutine.
type Session struct {
	ship        object.Ship
	asteroids   object.AsteroidPool
	projectiles object.ProjectilePool
	score       int
	lives       int
	mode        Mode
	tick        uint64

	grace        int // Remaining invulnerable ticks
	respawnGrace int

	spawner *Spawner
	logger  *log.Logger
	events  []Event
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Ship        object.Ship
	Asteroids   object.AsteroidPool
	Projectiles object.ProjectilePool
	Score       int
	Lives       int
	Mode        Mode
	Tick        uint64
	Grace       int
}

// New creates a session sitting on the menu.
func New(opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	grace := opts.RespawnGrace
	if grace < 0 {
		grace = 0
	}

	s := &Session{
		ship:         object.NewShip(),
		lives:        config.InitialLives,
		mode:         ModeMenu,
		respawnGrace: grace,
		logger:       logger,
		events:       make([]Event, 0, config.MaxAsteroids+config.MaxProjectiles),
	}
	s.spawner = NewSpawner(&s.asteroids, rng)
	s.spawner.onSpawn = func(slot int, a *object.Asteroid) {
		s.emit(Event{Kind: EventAsteroidSpawned, Slot: slot, Pos: a.Pos, Size: a.Size})
	}
	return s
}

// Reset starts a fresh game: centered ship, zero score, full lives, a full
// field of large asteroids and no projectiles. The mode is not changed.
func (s *Session) Reset() {
	s.ship = object.NewShip()
	s.score = 0
	s.lives = config.InitialLives
	s.grace = 0
	s.projectiles.Clear()
	s.spawner.Populate()
	s.logger.Info("game reset", "asteroids", s.asteroids.ActiveCount())
}

// Tick advances the session by one frame using the given controls.
func (s *Session) Tick(c Controls) {
	s.events = s.events[:0]

	switch s.mode {
	case ModeMenu:
		if c.Start {
			s.Reset()
			s.transition(TriggerStart)
		} else if c.Quit {
			s.transition(TriggerQuit)
		}
	case ModePlaying:
		if c.Quit {
			s.transition(TriggerQuit)
			return
		}
		s.step(c)
		if !s.ship.Active && s.lives <= 0 {
			s.logger.Info("game over", "score", s.score, "tick", s.tick)
			s.transition(TriggerShipLost)
		}
	case ModeGameOver:
		if c.Restart {
			s.Reset()
			s.transition(TriggerRestart)
		} else if c.Quit {
			s.transition(TriggerQuit)
		}
	case ModeExit:
	}
}

// step runs one simulation tick: ship, firing, asteroids, projectiles, both
// collision passes and the population floor.
func (s *Session) step(c Controls) {
	s.tick++

	if s.ship.Active {
		StepShip(&s.ship, c)
		if c.Fire {
			s.Fire()
		}
	}
	StepAsteroids(&s.asteroids)
	StepProjectiles(&s.projectiles)

	s.resolveProjectileHits()
	s.resolveShipHits()

	if n := s.spawner.Replenish(); n > 0 {
		s.emit(Event{Kind: EventReplenished, Slot: -1})
		s.logger.Debug("asteroids replenished", "count", n, "tick", s.tick)
	}
}

// Fire launches a projectile from the ship along its heading into the first
// free slot. It reports false, doing nothing, when the pool is full.
func (s *Session) Fire() bool {
	if !s.ship.Active {
		return false
	}
	slot := s.projectiles.FreeSlot()
	if slot < 0 {
		return false
	}
	s.projectiles[slot].Launch(s.ship.Pos, s.ship.Heading)
	s.emit(Event{Kind: EventFired, Slot: slot, Pos: s.ship.Pos})
	return true
}

func (s *Session) transition(t Trigger) {
	next, ok := NextMode(s.mode, t)
	if !ok {
		return
	}
	s.logger.Debug("mode change", "from", s.mode, "to", next)
	s.mode = next
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// Ship returns a copy of the ship.
func (s *Session) Ship() object.Ship { return s.ship }

// Asteroids returns a copy of the asteroid pool.
func (s *Session) Asteroids() object.AsteroidPool { return s.asteroids }

// Projectiles returns a copy of the projectile pool.
func (s *Session) Projectiles() object.ProjectilePool { return s.projectiles }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Events returns what happened during the last tick. The slice is reused by
// the next call to Tick.
func (s *Session) Events() []Event { return s.events }

// Snapshot copies the renderable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Ship:        s.ship,
		Asteroids:   s.asteroids,
		Projectiles: s.projectiles,
		Score:       s.score,
		Lives:       s.lives,
		Mode:        s.mode,
		Tick:        s.tick,
		Grace:       s.grace,
	}
}
