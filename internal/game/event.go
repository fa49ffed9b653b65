package game

import (
	"github.com/tomz197/asteroides/internal/object"
	"github.com/tomz197/asteroides/internal/physics"
)

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventFired EventKind = iota
	EventAsteroidDestroyed
	EventAsteroidSpawned
	EventShipHit
	EventShipDestroyed
	EventReplenished
)

// Event is a read-only record for renderers (debris, flashes).
// Slot is the pool index involved, or -1.
type Event struct {
	Kind EventKind
	Slot int
	Pos  physics.Vec2
	Size object.AsteroidSize
}
