package orrery

import (
	"fmt"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !floats.EqualWithinAbs(a[i], b[i], 1e-9) {
			return false
		}
	}
	return true
}

// anglesEqual returns whether two angles in radians are equal.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Mod(math.Abs(a-b), twoPi)
	if diff > math.Pi {
		diff = twoPi - diff
	}
	if diff < angleε {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10f degrees", math.Abs(Rad2deg(diff)))
}

// testBody returns a celestial body at the given planar position.
func testBody(id BodyID, mass, radius, x, y float64) CelestialBody {
	b := NewCelestialBody(id, string(id), mass, radius)
	b.R[0] = x
	b.R[1] = y
	return *b
}

// testVehicle returns a fresh vehicle with the default config and the given
// spec, failing the test on an invalid spec.
func testVehicle(t *testing.T, spec VehicleSpec) *InertialBody {
	t.Helper()
	v, err := NewInertialBody(spec, DefaultSimConfig())
	if err != nil {
		t.Fatalf("could not create vehicle: %s", err)
	}
	return v
}
