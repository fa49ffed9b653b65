package physics

import "math"

// Vec2 is a 2D vector in playfield units (y grows downward).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return Distance(v.X, v.Y, o.X, o.Y)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// FromHeading returns a vector of length mag pointing along heading, given in
// degrees where 0 is screen-up and angles grow clockwise.
func FromHeading(heading, mag float64) Vec2 {
	rad := heading * math.Pi / 180
	return Vec2{X: math.Sin(rad) * mag, Y: -math.Cos(rad) * mag}
}

// Heading returns the heading in degrees of a screen-space direction, using the
// same convention as FromHeading. The result lies in (-90, 270].
func Heading(dir Vec2) float64 {
	// atan2(-up, right) with up = -dir.Y, shifted so 0 points up.
	return math.Atan2(dir.Y, dir.X)*180/math.Pi + 90
}
