// Package geometry provides immutable 2D vector algebra.
// These are engine-level primitives usable by any grid or rendering code.
package geometry

import (
	"fmt"
	"math"
)

// Vec2 is an immutable 2D vector. It doubles as a spatial offset and,
// when normalized, as a direction. All operations return new values.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the vector sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the vector difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector with the same direction.
// The zero vector has no direction; normalizing it is a programmer error.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		panic("geometry: normalize of zero vector")
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate returns the vector rotated by rad radians through the cardinal
// cycle: rotating (0,1) by +pi/2 yields (1,0). This is the frame the
// direction algebra and the renderer agree on.
func (v Vec2) Rotate(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos + v.Y*sin,
		Y: v.Y*cos - v.X*sin,
	}
}

// Angle returns the signed angle that rotates v onto o, normalized into
// (-pi, pi]. It is the inverse of Rotate: v.Rotate(v.Angle(o)) points
// along o. Both vectors must be non-zero.
func (v Vec2) Angle(o Vec2) float64 {
	a := math.Atan2(v.Y*o.X-v.X*o.Y, v.X*o.X+v.Y*o.Y)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// String returns a compact representation for debugging and test output.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}
