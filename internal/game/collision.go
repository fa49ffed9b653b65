package game

import "github.com/tomz197/asteroides/internal/game/config"

// resolveProjectileHits runs the projectile-asteroid pass. Each projectile
// destroys at most one asteroid, the lowest slot it overlaps.
func (s *Session) resolveProjectileHits() {
	for i := range s.projectiles {
		p := &s.projectiles[i]
		if !p.Active {
			continue
		}
		for j := range s.asteroids {
			a := &s.asteroids[j]
			if !a.Active || !a.Contains(p.Pos) {
				continue
			}

			p.Active = false
			s.score += config.ScorePerAsteroid
			s.emit(Event{Kind: EventAsteroidDestroyed, Slot: j, Pos: a.Pos, Size: a.Size})

			// Fragments are placed while the struck slot is still occupied,
			// so a full pool yields none.
			if a.Size.CanSplit() {
				s.spawner.Split(a.Pos, a.Size-1)
			}
			a.Active = false
			break
		}
	}
}

// resolveShipHits runs the ship-asteroid pass. At most one hit is processed
// per tick so overlapping rocks cannot drain several lives at once.
func (s *Session) resolveShipHits() {
	if !s.ship.Active {
		return
	}
	if s.grace > 0 {
		s.grace--
		return
	}

	for i := range s.asteroids {
		a := &s.asteroids[i]
		if !a.Active {
			continue
		}
		if s.ship.Pos.Distance(a.Pos) >= a.Radius+config.ShipHullPadding {
			continue
		}

		s.lives--
		s.emit(Event{Kind: EventShipHit, Slot: i, Pos: s.ship.Pos})
		if s.lives > 0 {
			s.ship.Respawn()
			s.grace = s.respawnGrace
			s.logger.Debug("life lost", "lives", s.lives, "tick", s.tick)
		} else {
			s.ship.Active = false
			s.emit(Event{Kind: EventShipDestroyed, Slot: -1, Pos: s.ship.Pos})
		}
		break
	}
}
