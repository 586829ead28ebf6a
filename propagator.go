package orrery

import (
	"fmt"
	"math"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// Eccentricity and inclination generation buckets. These are hand tuned for
// visual variety, not astrophysical realism; do not change the thresholds.
var (
	eccentricityBuckets = []bucket{
		{0.40, 0.05, 0.12},
		{0.35, 0.12, 0.25},
		{0.25, 0.25, 0.45},
	}
	inclinationBuckets = []bucket{
		{0.50, Deg2rad(2), Deg2rad(8)},
		{0.30, Deg2rad(8), Deg2rad(20)},
		{0.20, Deg2rad(20), Deg2rad(40)},
	}
)

type bucket struct {
	weight, min, max float64
}

// drawBucketed picks a bucket by cumulative weight, then a uniform value in it.
func drawBucketed(rng *Rand, buckets []bucket) float64 {
	draw := rng.Float64()
	acc := 0.0
	for _, b := range buckets {
		acc += b.weight
		if draw < acc {
			return rng.Range(b.min, b.max)
		}
	}
	last := buckets[len(buckets)-1]
	return rng.Range(last.min, last.max)
}

// OrbitState is the per-tick output of the propagator for one body. The host
// copies it into its own entity representation; the physics core never writes
// into host objects.
type OrbitState struct {
	Body             BodyID
	Epoch            time.Time
	R, V             []float64
	Radius           float64
	MeanAnomaly      float64
	EccentricAnomaly float64
	TrueAnomaly      float64
}

// Propagator advances the elliptical orbits of every registered celestial
// body, one closed-form Kepler solve per body per tick. It owns the element
// store and the body registry; dynamic vehicles are handled by InertialBody.
type Propagator struct {
	// G is the shared gravitational constant, tuned for visually faster
	// orbits rather than physical accuracy.
	G float64
	// Epoch is the current simulation time, advanced by PropagateSystem.
	Epoch time.Time

	bodies   map[BodyID]*CelestialBody
	elements *ElementStore
	logger   kitlog.Logger
}

// NewPropagator returns a propagator with the given gravitational constant.
// A nil logger is replaced by a no-op logger.
func NewPropagator(g float64, logger kitlog.Logger) *Propagator {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &Propagator{
		G:        g,
		Epoch:    time.Unix(0, 0).UTC(),
		bodies:   make(map[BodyID]*CelestialBody),
		elements: NewElementStore(),
		logger:   logger,
	}
}

// AddBody registers a celestial body with the propagator.
func (p *Propagator) AddBody(b *CelestialBody) {
	p.bodies[b.ID] = b
}

// Body returns a registered body.
func (p *Propagator) Body(id BodyID) (*CelestialBody, bool) {
	b, ok := p.bodies[id]
	return b, ok
}

// RemoveBody drops a body and its elements, e.g. on system unload.
func (p *Propagator) RemoveBody(id BodyID) {
	delete(p.bodies, id)
	p.elements.Remove(id)
}

// Elements exposes the element store, e.g. for host save/load.
func (p *Propagator) Elements() *ElementStore {
	return p.elements
}

// InitializeOrbit generates deterministic orbital elements for a body around
// the given central body and stores them. Eccentricity and inclination are
// drawn from the tuned buckets, the remaining angles uniformly in [0, 2π),
// and the period follows Kepler's third law T² = 4π²a³/(G·M).
func (p *Propagator) InitializeOrbit(id, center BodyID, semiMajorAxis float64, seed uint64) (*OrbitalElements, error) {
	if _, ok := p.bodies[id]; !ok {
		return nil, fmt.Errorf("unknown body %q", id)
	}
	central, ok := p.bodies[center]
	if !ok {
		return nil, fmt.Errorf("unknown central body %q", center)
	}
	if semiMajorAxis <= 0 {
		return nil, fmt.Errorf("semi-major axis must be positive, got %f", semiMajorAxis)
	}

	rng := NewRand(seed)
	oe := &OrbitalElements{
		A:      semiMajorAxis,
		E:      drawBucketed(rng, eccentricityBuckets),
		I:      drawBucketed(rng, inclinationBuckets),
		Node:   rng.Range(0, twoPi),
		Peri:   rng.Range(0, twoPi),
		M0:     rng.Range(0, twoPi),
		Center: center,
	}
	oe.T = twoPi * math.Sqrt(math.Pow(semiMajorAxis, 3)/(p.G*central.Mass))
	oe.N = twoPi / oe.T
	oe.MeanAnomaly = oe.M0
	oe.EccentricAnomaly, _ = SolveKepler(oe.MeanAnomaly, oe.E)
	oe.TrueAnomaly = normalizeAngle(TrueAnomalyFromE(oe.EccentricAnomaly, oe.E))

	p.elements.Set(id, oe)
	p.logger.Log("level", "info", "subsys", "orbit", "body", id, "center", center, "elements", oe)
	return oe, nil
}

// UpdateOrbit advances one body by dt seconds and returns its new state.
// Returns false, without effect, when the body was never initialized, so the
// host can skip physics and rendering gracefully.
func (p *Propagator) UpdateOrbit(id BodyID, dt float64) (OrbitState, bool) {
	oe, ok := p.elements.Get(id)
	if !ok {
		return OrbitState{}, false
	}
	body, ok := p.bodies[id]
	if !ok {
		return OrbitState{}, false
	}
	central, ok := p.bodies[oe.Center]
	if !ok {
		return OrbitState{}, false
	}

	oe.MeanAnomaly = normalizeAngle(oe.MeanAnomaly + oe.N*dt)
	oe.EccentricAnomaly, _ = SolveKepler(oe.MeanAnomaly, oe.E)
	oe.TrueAnomaly = normalizeAngle(TrueAnomalyFromE(oe.EccentricAnomaly, oe.E))
	r := OrbitalRadius(oe.A, oe.E, oe.TrueAnomaly)

	sinν, cosν := math.Sincos(oe.TrueAnomaly)
	R := PQW2World(oe.I, oe.Peri, oe.Node, []float64{r * cosν, r * sinν, 0})

	// Vis-viva speed, pointed along the flight path angle off the local
	// horizontal, then rotated through the same 3-1-3 sequence.
	speed := math.Sqrt(math.Max(p.G*central.Mass*(2/r-1/oe.A), 0))
	γ := math.Atan2(oe.E*sinν, 1+oe.E*cosν)
	sinu, cosu := math.Sincos(oe.TrueAnomaly + math.Pi/2 - γ)
	V := PQW2World(oe.I, oe.Peri, oe.Node, []float64{speed * cosu, speed * sinu, 0})

	// Offset by the central body's current state: supports nested orbits
	// (moon around planet around star) when updated parent-first.
	for i := 0; i < 3; i++ {
		R[i] += central.R[i]
		V[i] += central.V[i]
	}
	copy(body.R, R)
	copy(body.V, V)

	return OrbitState{
		Body:             id,
		Epoch:            p.Epoch,
		R:                R,
		V:                V,
		Radius:           r,
		MeanAnomaly:      oe.MeanAnomaly,
		EccentricAnomaly: oe.EccentricAnomaly,
		TrueAnomaly:      oe.TrueAnomaly,
	}, true
}

// PropagateSystem advances the epoch by dt seconds and updates every body in
// the provided order, which must list parents before their satellites.
// Bodies without initialized elements (e.g. the central star) are skipped.
func (p *Propagator) PropagateSystem(order []BodyID, dt float64) []OrbitState {
	p.Epoch = p.Epoch.Add(time.Duration(dt * float64(time.Second)))
	states := make([]OrbitState, 0, len(order))
	for _, id := range order {
		if state, ok := p.UpdateOrbit(id, dt); ok {
			states = append(states, state)
		}
	}
	return states
}
