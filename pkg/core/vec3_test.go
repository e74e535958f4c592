package core

import (
	"math"
	"testing"
)

func vecEquals(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %v, want 32", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("x cross y = %v, want (0,0,1)", got)
	}
	if got := y.Cross(x); got != NewVec3(0, 0, -1) {
		t.Errorf("y cross x = %v, want (0,0,-1)", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if !vecEquals(v, NewVec3(0.6, 0.8, 0), 1e-12) {
		t.Errorf("Normalize: got %v", v)
	}
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}

	// Zero vector normalizes to zero rather than NaN
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Normalize: got %v", got)
	}
}

func TestVec3Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)

	if got := v.Reflect(n); !vecEquals(got, NewVec3(1, 1, 0), 1e-12) {
		t.Errorf("Reflect: got %v, want (1,1,0)", got)
	}
}

func TestVec3Refract(t *testing.T) {
	// Straight-on incidence is unchanged regardless of the index ratio
	v := NewVec3(0, 0, -1)
	n := NewVec3(0, 0, 1)

	if got := v.Refract(n, 1.5); !vecEquals(got, v, 1e-12) {
		t.Errorf("straight-on Refract: got %v, want %v", got, v)
	}

	// With matched indices the direction is preserved at any angle
	v = NewVec3(0.6, 0, -0.8)
	if got := v.Refract(n, 1.0); !vecEquals(got, v, 1e-12) {
		t.Errorf("matched-index Refract: got %v, want %v", got, v)
	}
}

func TestVec3NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("expected near-zero vector to report NearZero")
	}
	if NewVec3(1e-7, 0, 0).NearZero() {
		t.Error("expected non-degenerate vector to not report NearZero")
	}
}
