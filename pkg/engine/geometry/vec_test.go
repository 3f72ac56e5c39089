package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func approxEqualVec(a, b Vec2) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y)
}

func TestAddSubScale(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -1}
	if got := a.Add(b); !approxEqualVec(got, Vec2{4, 1}) {
		t.Errorf("Add = %v, want (4,1)", got)
	}
	if got := a.Sub(b); !approxEqualVec(got, Vec2{-2, 3}) {
		t.Errorf("Sub = %v, want (-2,3)", got)
	}
	if got := a.Scale(2); !approxEqualVec(got, Vec2{2, 4}) {
		t.Errorf("Scale = %v, want (2,4)", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec2{3, 4}.Normalize()
	if !approxEqual(v.Length(), 1) {
		t.Errorf("Normalize length = %v, want 1", v.Length())
	}
	if !approxEqualVec(v, Vec2{0.6, 0.8}) {
		t.Errorf("Normalize = %v, want (0.6,0.8)", v)
	}
}

func TestNormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Normalize of zero vector did not panic")
		}
	}()
	Vec2{}.Normalize()
}

// Rotating north (0,1) by +pi/2 must give east (1,0); this pins the
// handedness the whole renderer depends on.
func TestRotateHandedness(t *testing.T) {
	north := Vec2{0, 1}
	if got := north.Rotate(math.Pi / 2); !approxEqualVec(got, Vec2{1, 0}) {
		t.Errorf("north.Rotate(pi/2) = %v, want east (1,0)", got)
	}
	if got := north.Rotate(math.Pi); !approxEqualVec(got, Vec2{0, -1}) {
		t.Errorf("north.Rotate(pi) = %v, want south (0,-1)", got)
	}
	if got := north.Rotate(3 * math.Pi / 2); !approxEqualVec(got, Vec2{-1, 0}) {
		t.Errorf("north.Rotate(3pi/2) = %v, want west (-1,0)", got)
	}
}

func TestAngleIsInverseOfRotate(t *testing.T) {
	v := Vec2{0.3, 0.9}
	for _, rad := range []float64{0, 0.5, math.Pi / 2, 2.0, -1.3, math.Pi - 0.001} {
		rotated := v.Rotate(rad)
		got := v.Angle(rotated)
		if !approxEqual(got, rad) {
			t.Errorf("Angle after Rotate(%v) = %v, want %v", rad, got, rad)
		}
	}
}

func TestAngleRange(t *testing.T) {
	a := Vec2{1, 0}
	b := Vec2{-1, 0}
	got := a.Angle(b)
	if got <= -math.Pi || got > math.Pi {
		t.Errorf("Angle of opposite vectors = %v, outside (-pi, pi]", got)
	}
	if !approxEqual(math.Abs(got), math.Pi) {
		t.Errorf("Angle of opposite vectors = %v, want +pi", got)
	}
}
