// Package world provides the tile-graph primitives for a locally Euclidean,
// globally non-Euclidean 2D grid: cardinal directions as a cyclic group,
// unoriented tiles with four edge slots, and oriented views onto them.
package world

import (
	"math"

	"twistgrid/pkg/engine/geometry"
)

// Direction represents a cardinal direction, modeled as an element of the
// cyclic group of order 4 with North = 0.
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

const directionCount = 4

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Add returns the direction rotated forward by o (the group operation).
func (d Direction) Add(o Direction) Direction {
	return ((d+o)%directionCount + directionCount) % directionCount
}

// Sub returns the direction rotated backward by o.
func (d Direction) Sub(o Direction) Direction {
	return ((d-o)%directionCount + directionCount) % directionCount
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	return d.Add(South)
}

// IsLeftOf reports whether d is immediately left of o, i.e. d is reached
// by rotating o a quarter turn backward. North is left of East.
func (d Direction) IsLeftOf(o Direction) bool {
	return o.Sub(d) == 1
}

// Angle returns the direction's angle in radians: North = 0, East = pi/2,
// increasing through the cardinal cycle.
func (d Direction) Angle() float64 {
	return float64(d) * math.Pi / 2
}

// Vector returns the direction's unit vector: North = (0,1), East = (1,0),
// South = (0,-1), West = (-1,0). Consistent with Angle under
// geometry.Vec2.Rotate.
func (d Direction) Vector() geometry.Vec2 {
	switch d {
	case North:
		return geometry.Vec2{X: 0, Y: 1}
	case East:
		return geometry.Vec2{X: 1, Y: 0}
	case South:
		return geometry.Vec2{X: 0, Y: -1}
	case West:
		return geometry.Vec2{X: -1, Y: 0}
	default:
		return geometry.Vec2{}
	}
}
