package world

import (
	"math"
	"testing"

	"twistgrid/pkg/engine/geometry"
)

func TestGroupLaws(t *testing.T) {
	for _, d := range AllDirections() {
		for _, x := range AllDirections() {
			if got := d.Add(x.Sub(d)); got != x {
				t.Errorf("%v.Add(%v.Sub(%v)) = %v, want %v", d, x, d, got, x)
			}
			if got := d.Add(x).Sub(x); got != d {
				t.Errorf("%v.Add(%v).Sub(%v) = %v, want %v", d, x, x, got, d)
			}
		}
		if got := d.Add(North); got != d {
			t.Errorf("%v.Add(North) = %v, want %v (North is the identity)", d, got, d)
		}
	}
}

func TestOpposite(t *testing.T) {
	pairs := map[Direction]Direction{North: South, East: West, South: North, West: East}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestIsLeftOf(t *testing.T) {
	wantLeft := map[Direction]Direction{North: East, East: South, South: West, West: North}
	for a, b := range wantLeft {
		if !a.IsLeftOf(b) {
			t.Errorf("%v.IsLeftOf(%v) = false, want true", a, b)
		}
		if b.IsLeftOf(a) {
			t.Errorf("%v.IsLeftOf(%v) = true, want false", b, a)
		}
		if a.IsLeftOf(a) {
			t.Errorf("%v.IsLeftOf(%v) = true, want false", a, a)
		}
	}
}

// Vector and Angle must agree: rotating North's unit vector by d.Angle()
// must give d.Vector().
func TestVectorAngleConsistency(t *testing.T) {
	north := geometry.Vec2{X: 0, Y: 1}
	for _, d := range AllDirections() {
		want := d.Vector()
		got := north.Rotate(d.Angle())
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("north.Rotate(%v.Angle()) = %v, want %v", d, got, want)
		}
	}
}

func TestVectorsAreUnitAndOrthogonal(t *testing.T) {
	for _, d := range AllDirections() {
		v := d.Vector()
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Errorf("%v.Vector() length = %v, want 1", d, v.Length())
		}
		next := d.Add(East).Vector()
		if math.Abs(v.Dot(next)) > 1e-9 {
			t.Errorf("%v.Vector() not orthogonal to its successor", d)
		}
	}
}
