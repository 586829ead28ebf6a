package orrery

import (
	"errors"
	"fmt"

	"github.com/gonum/floats"
)

const (
	eccentricityε = 5e-5
	angleε        = (5e-3 / 360) * twoPi // 0.005 degrees
	distanceε     = 1e-3
	periodε       = 1e-9
)

// OrbitalElements defines one body's elliptical orbit and its current phase.
// A body holds a weak reference (Center) to whatever it orbits; the central
// body may itself be orbiting something else, so ownership stays with the
// simulation world. All angles are in radians, the period in seconds.
type OrbitalElements struct {
	A    float64 // semi-major axis, > 0
	E    float64 // eccentricity, 0 <= e < 1 (ellipses only)
	I    float64 // inclination
	Node float64 // longitude of the ascending node Ω
	Peri float64 // argument of periapsis ω
	M0   float64 // mean anomaly at epoch

	T float64 // period, seconds
	N float64 // mean motion, 2π/T

	// Current anomalies, advanced by the propagator each tick. These must
	// round-trip byte-for-byte through host save/load so propagation resumes
	// without a visible jump.
	MeanAnomaly      float64
	EccentricAnomaly float64
	TrueAnomaly      float64

	Center BodyID
}

// Periapsis returns the closest distance to the focus, a(1-e).
func (oe OrbitalElements) Periapsis() float64 {
	return oe.A * (1 - oe.E)
}

// Apoapsis returns the farthest distance from the focus, a(1+e).
func (oe OrbitalElements) Apoapsis() float64 {
	return oe.A * (1 + oe.E)
}

// SemiParameter returns the semi-latus rectum p = a(1-e²).
func (oe OrbitalElements) SemiParameter() float64 {
	return oe.A * (1 - oe.E*oe.E)
}

// Validate checks the ellipse invariants.
func (oe OrbitalElements) Validate() error {
	if oe.A <= 0 {
		return fmt.Errorf("semi-major axis must be positive, got %f", oe.A)
	}
	if oe.E < 0 || oe.E >= 1 {
		return fmt.Errorf("eccentricity must be in [0,1), got %f", oe.E)
	}
	if !floats.EqualWithinAbs(oe.N*oe.T, twoPi, periodε*oe.T) {
		return errors.New("mean motion and period are inconsistent")
	}
	return nil
}

// Equals returns whether two element sets describe the same orbit, with free
// current anomaly.
func (oe OrbitalElements) Equals(other OrbitalElements) (bool, error) {
	if oe.Center != other.Center {
		return false, errors.New("different central body")
	}
	if !floats.EqualWithinAbs(oe.A, other.A, distanceε) {
		return false, errors.New("semi major axis invalid")
	}
	if !floats.EqualWithinAbs(oe.E, other.E, eccentricityε) {
		return false, errors.New("eccentricity invalid")
	}
	if !floats.EqualWithinAbs(oe.I, other.I, angleε) {
		return false, errors.New("inclination invalid")
	}
	if !floats.EqualWithinAbs(oe.Node, other.Node, angleε) {
		return false, errors.New("ascending node invalid")
	}
	if !floats.EqualWithinAbs(oe.Peri, other.Peri, angleε) {
		return false, errors.New("argument of periapsis invalid")
	}
	return true, nil
}

// String implements the Stringer interface.
func (oe OrbitalElements) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f M=%.3f",
		oe.A, oe.E, Rad2deg(oe.I), Rad2deg(oe.Node), Rad2deg(oe.Peri), Rad2deg(oe.MeanAnomaly))
}

// ElementStore maps stable body identifiers to their orbital elements. It is
// owned by the simulation world: one record per orbiting body, created at
// world generation and removed when the body leaves simulation scope.
type ElementStore struct {
	elements map[BodyID]*OrbitalElements
}

// NewElementStore returns an empty store.
func NewElementStore() *ElementStore {
	return &ElementStore{elements: make(map[BodyID]*OrbitalElements)}
}

// Set registers (or replaces) the elements of a body.
func (s *ElementStore) Set(id BodyID, oe *OrbitalElements) {
	s.elements[id] = oe
}

// Get returns the elements of a body, or false when none were initialized.
func (s *ElementStore) Get(id BodyID) (*OrbitalElements, bool) {
	oe, ok := s.elements[id]
	return oe, ok
}

// Remove discards the elements of a body, e.g. on system unload.
func (s *ElementStore) Remove(id BodyID) {
	delete(s.elements, id)
}

// Len returns the number of tracked bodies.
func (s *ElementStore) Len() int {
	return len(s.elements)
}
