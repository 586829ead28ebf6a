package orrery

import "fmt"

// BodyID identifies a celestial body for the lifetime of the simulation.
// IDs are assigned once at world generation and never derived from mutable
// state such as position or size.
type BodyID string

// CelestialBody defines a celestial body of the generated system.
// R and V hold the current world-frame position and velocity, refreshed by the
// propagator every tick. Mass is a game mass, consistent with the tuned
// gravitational constant, not kilograms.
type CelestialBody struct {
	ID     BodyID
	Name   string
	Mass   float64
	Radius float64
	R, V   []float64
}

// NewCelestialBody returns a body at the world origin.
func NewCelestialBody(id BodyID, name string, mass, radius float64) *CelestialBody {
	return &CelestialBody{ID: id, Name: name, Mass: mass, Radius: radius,
		R: make([]float64, 3), V: make([]float64, 3)}
}

// String implements the Stringer interface.
func (c CelestialBody) String() string {
	return fmt.Sprintf("%s (m=%.0f r=%.0f)", c.Name, c.Mass, c.Radius)
}

// Equals returns whether the provided celestial body is the same.
func (c *CelestialBody) Equals(b CelestialBody) bool {
	return c.ID == b.ID && c.Mass == b.Mass && c.Radius == b.Radius
}
