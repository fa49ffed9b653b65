package object

import (
	"github.com/tomz197/asteroides/internal/game/config"
	"github.com/tomz197/asteroides/internal/physics"
)

// Ship is the player-controlled spaceship. There is exactly one per session.
type Ship struct {
	Pos     physics.Vec2 // Position, always inside the playfield
	Vel     physics.Vec2 // Velocity per tick
	Accel   physics.Vec2 // Acceleration derived from this tick's intent
	Heading float64      // Degrees, 0 = screen-up, increasing clockwise
	Active  bool         // False once the last life is lost
}

// Center returns the ship spawn point.
func Center() physics.Vec2 {
	return physics.Vec2{X: config.FieldWidth / 2, Y: config.FieldHeight / 2}
}

// NewShip creates an active ship at rest in the middle of the playfield.
func NewShip() Ship {
	return Ship{Pos: Center(), Active: true}
}

// Respawn puts the ship back at the center with no motion or rotation.
// The active flag is left untouched.
func (s *Ship) Respawn() {
	s.Pos = Center()
	s.Vel = physics.Vec2{}
	s.Accel = physics.Vec2{}
	s.Heading = 0
}

// Update advances the ship by one tick. intent is a unit screen-space direction
// or the zero vector when no movement key is held.
func (s *Ship) Update(intent physics.Vec2) {
	if intent.IsZero() {
		s.Accel = physics.Vec2{}
		s.Vel = s.Vel.Scale(config.ShipDamping)
	} else {
		s.Accel = intent.Scale(config.ShipAccel)
		s.Heading = physics.Heading(intent)
	}

	s.Vel = s.Vel.Add(s.Accel)
	s.Vel.X = physics.Clamp(s.Vel.X, -config.ShipMaxSpeed, config.ShipMaxSpeed)
	s.Vel.Y = physics.Clamp(s.Vel.Y, -config.ShipMaxSpeed, config.ShipMaxSpeed)

	s.Pos = s.Pos.Add(s.Vel)

	// Walls stop the ship on the axis it hit
	if s.Pos.X < 0 || s.Pos.X > config.FieldWidth {
		s.Pos.X = physics.Clamp(s.Pos.X, 0, config.FieldWidth)
		s.Vel.X = 0
	}
	if s.Pos.Y < 0 || s.Pos.Y > config.FieldHeight {
		s.Pos.Y = physics.Clamp(s.Pos.Y, 0, config.FieldHeight)
		s.Vel.Y = 0
	}
}

// Hull returns the ship triangle: the nose along the heading and two rear
// vertices at heading +-150 degrees.
func (s *Ship) Hull() [3]physics.Vec2 {
	return [3]physics.Vec2{
		s.Pos.Add(physics.FromHeading(s.Heading, config.ShipDrawSize)),
		s.Pos.Add(physics.FromHeading(s.Heading+150, config.ShipDrawSize)),
		s.Pos.Add(physics.FromHeading(s.Heading-150, config.ShipDrawSize)),
	}
}
