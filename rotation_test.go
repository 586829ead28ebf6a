package orrery

import (
	"math"
	"testing"
)

func TestRotationBasics(t *testing.T) {
	x := []float64{1, 0, 0}
	// R3(-θ) rotates a vector by +θ about the z axis.
	if got := MxV33(R3(-math.Pi/2), x); !vectorsEqual(got, []float64{0, 1, 0}) {
		t.Fatalf("R3(-π/2)·x = %+v", got)
	}
	if got := MxV33(R1(-math.Pi/2), []float64{0, 1, 0}); !vectorsEqual(got, []float64{0, 0, 1}) {
		t.Fatalf("R1(-π/2)·y = %+v", got)
	}
	if got := MxV33(R2(-math.Pi/2), []float64{0, 0, 1}); !vectorsEqual(got, []float64{1, 0, 0}) {
		t.Fatalf("R2(-π/2)·z = %+v", got)
	}
}

func TestR3R1R3Composition(t *testing.T) {
	// R3R1R3(θ1,θ2,θ3) must equal R3(θ3)·R1(θ2)·R3(θ1).
	θ1, θ2, θ3 := 0.3, 1.1, -0.7
	v := []float64{0.2, -1.4, 3.1}
	step := MxV33(R3(θ1), v)
	step = MxV33(R1(θ2), step)
	step = MxV33(R3(θ3), step)
	if got := Rot313Vec(θ1, θ2, θ3, v); !vectorsEqual(got, step) {
		t.Fatalf("composition mismatch: %+v != %+v", got, step)
	}
}

func TestPQW2World(t *testing.T) {
	// Zero angles: identity.
	v := []float64{1, 2, 3}
	if got := PQW2World(0, 0, 0, v); !vectorsEqual(got, v) {
		t.Fatalf("identity rotation changed the vector: %+v", got)
	}
	// In-plane: argument of periapsis rotates the position angle by +ω.
	if got := PQW2World(0, math.Pi/2, 0, []float64{1, 0, 0}); !vectorsEqual(got, []float64{0, 1, 0}) {
		t.Fatalf("ω rotation fail: %+v", got)
	}
	// 90° inclination maps the in-plane y axis onto the world z axis.
	if got := PQW2World(math.Pi/2, 0, 0, []float64{0, 1, 0}); !vectorsEqual(got, []float64{0, 0, 1}) {
		t.Fatalf("inclination rotation fail: %+v", got)
	}
	// Rotations preserve the norm.
	rot := PQW2World(0.4, 1.2, 2.2, v)
	if !vectorsEqual([]float64{norm(rot)}, []float64{norm(v)}) {
		t.Fatalf("norm not preserved: %f != %f", norm(rot), norm(v))
	}
}
