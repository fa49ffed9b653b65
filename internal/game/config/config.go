// Package config centralizes all tunable game parameters.
// Values are tuned for a fixed 60 Hz tick; nothing scales by elapsed time.
package config

import "time"

// Playfield - the fixed logical coordinate space every entity lives in.
const (
	FieldWidth  = 800
	FieldHeight = 600
)

// Pool capacities.
const (
	MaxAsteroids   = 8
	MaxProjectiles = 10
)

// Ship physics (per tick).
const (
	ShipAccel       = 0.3
	ShipDamping     = 0.95
	ShipMaxSpeed    = 5.0
	ShipHullPadding = 10.0 // Added to asteroid radius for ship contact
	ShipDrawSize    = 20.0
)

// Projectiles
const (
	ProjectileSpeed      = 10.0
	ProjectileDrawRadius = 3.0
)

// Asteroids
const (
	AsteroidSpeedSteps   = 15 // Velocity axis drawn from [-15, 15] steps
	AsteroidStepsPerUnit = 10 // So each axis spans [-1.5, 1.5] units per tick
	SplitChildren        = 2  // Fragments per split
	SplitOffset          = 10 // Fragment offset range per axis, [-10, 10]
	ReplenishDivisor     = 3  // Refill when active <= MaxAsteroids / ReplenishDivisor
)

// Scoring and lives
const (
	ScorePerAsteroid = 100
	InitialLives     = 3
)

// Tick rate
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)
