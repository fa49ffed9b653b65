package game

import "github.com/tomz197/asteroides/internal/physics"

// Controls is the input written by a frontend for one tick.
// Movement keys are levels (held); the rest are edges, true only on the tick
// the key went down.
type Controls struct {
	Up, Down, Left, Right bool

	Fire    bool
	Restart bool
	Start   bool
	Quit    bool
}

// Intent combines the held movement keys into a unit screen-space direction,
// or the zero vector when they cancel out or none is held.
func (c Controls) Intent() physics.Vec2 {
	var dir physics.Vec2
	if c.Up {
		dir.Y--
	}
	if c.Down {
		dir.Y++
	}
	if c.Left {
		dir.X--
	}
	if c.Right {
		dir.X++
	}
	return dir.Normalize()
}
