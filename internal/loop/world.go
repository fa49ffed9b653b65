package loop

import (
	"github.com/tomz197/asteroides/internal/draw"
	"github.com/tomz197/asteroides/internal/game"
	"github.com/tomz197/asteroides/internal/physics"
)

// graceBlinkTicks is the half period of the ship blink while it is invulnerable.
const graceBlinkTicks = 6

func point(v physics.Vec2) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}

// drawWorld outlines every active entity of the snapshot onto the canvas.
func drawWorld(c *draw.Canvas, snap game.Snapshot) {
	for i := range snap.Asteroids {
		a := &snap.Asteroids[i]
		if a.Active {
			c.DrawCircle(point(a.Pos), a.Radius)
		}
	}

	for i := range snap.Projectiles {
		p := &snap.Projectiles[i]
		if p.Active {
			c.SetFloat(p.Pos.X, p.Pos.Y)
		}
	}

	if snap.Ship.Active && shouldRenderShip(snap.Grace) {
		hull := snap.Ship.Hull()
		c.DrawPolygon([]draw.Point{point(hull[0]), point(hull[1]), point(hull[2])})
	}
}

// shouldRenderShip blinks the ship while grace ticks remain.
func shouldRenderShip(grace int) bool {
	if grace <= 0 {
		return true
	}
	return (grace/graceBlinkTicks)%2 == 0
}
