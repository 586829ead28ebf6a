package orrery

import "testing"

func TestCelestialBody(t *testing.T) {
	b := NewCelestialBody("planet-1", "Okraj", 350, 40)
	if len(b.R) != 3 || len(b.V) != 3 {
		t.Fatal("state vectors must be three dimensional")
	}
	if !vectorsEqual(b.R, []float64{0, 0, 0}) {
		t.Fatalf("new body not at the origin: %+v", b.R)
	}
	if b.String() != "Okraj (m=350 r=40)" {
		t.Fatalf("unexpected string: %s", b.String())
	}
	same := *NewCelestialBody("planet-1", "renamed", 350, 40)
	if !b.Equals(same) {
		t.Fatal("identity must ignore the display name")
	}
	other := *NewCelestialBody("planet-2", "Okraj", 350, 40)
	if b.Equals(other) {
		t.Fatal("distinct IDs compared equal")
	}
}
