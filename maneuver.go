package orrery

import (
	"math"

	"github.com/gonum/floats"
)

// Maneuver heuristics. The gravity assist and aerobraking models are
// deliberately non rigorous: gameplay balance depends on these exact values,
// so they must not be corrected toward textbook two-body mechanics.
const (
	// influenceRadiusFactor scales a body's mass into its slingshot
	// influence radius.
	influenceRadiusFactor = 10.0
	// assistDeflectionThreshold below which a slingshot has no effect.
	assistDeflectionThreshold = 0.1
	// assistBoostFactor scales the relative-velocity boost of a slingshot.
	assistBoostFactor = 0.3
	// atmosphereScaleDivisor derives the exponential scale height from the
	// atmosphere height.
	atmosphereScaleDivisor = 5.0
	// aerobrakeDragCoeff converts density times speed squared into drag force.
	aerobrakeDragCoeff = 0.002
	// aerobrakeHeatFactor converts dissipated drag power into the heat metric.
	aerobrakeHeatFactor = 0.001
	// lagrangeHoldThreshold is the dead zone of station keeping, in world units.
	lagrangeHoldThreshold = 50.0
)

// OrbitalVelocity returns the orbital speed at radius r on an orbit of
// semi-major axis a around a body of the given mass, via the vis-viva
// equation. The square root argument is floored at zero.
func OrbitalVelocity(g, r, a, mass float64) float64 {
	return math.Sqrt(math.Max(g*mass*(2/r-1/a), 0))
}

// HohmannPlan describes a two-burn transfer between circular orbits.
type HohmannPlan struct {
	DeltaV1      float64 // first burn, at departure radius
	DeltaV2      float64 // second burn, at arrival radius
	TotalDeltaV  float64
	TransferTime float64 // half-period of the transfer ellipse, seconds
	Expanding    bool    // true when moving outward (r2 > r1)
}

// NewHohmannTransfer computes the transfer between circular orbits of radii
// r1 and r2 around a body of the given mass. Returns nil when the radii are
// equal: there is no transfer to perform.
func NewHohmannTransfer(g, r1, r2, mass float64) *HohmannPlan {
	if floats.EqualWithinAbs(r1, r2, 1e-9) {
		return nil
	}
	μ := g * mass
	aTransfer := 0.5 * (r1 + r2)
	Δv1 := math.Sqrt(math.Max(μ*(2/r1-1/aTransfer), 0)) - math.Sqrt(μ/r1)
	Δv2 := math.Sqrt(μ/r2) - math.Sqrt(math.Max(μ*(2/r2-1/aTransfer), 0))
	return &HohmannPlan{
		DeltaV1:      Δv1,
		DeltaV2:      Δv2,
		TotalDeltaV:  math.Abs(Δv1) + math.Abs(Δv2),
		TransferTime: math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/μ),
		Expanding:    r2 > r1,
	}
}

// progradeDirection returns the unit vector along the instantaneous circular
// orbit direction of v around the center, i.e. perpendicular to the radius
// vector, oriented by the current angular momentum. Returns false at the
// zero-distance singularity.
func progradeDirection(center CelestialBody, v *InertialBody) (tx, ty float64, ok bool) {
	rx := v.X - center.R[0]
	ry := v.Y - center.R[1]
	dist := hypot2(rx, ry)
	if dist < 1e-9 {
		return 0, 0, false
	}
	relVX := v.VX - center.V[0]
	relVY := v.VY - center.V[1]
	if rx*relVY-ry*relVX >= 0 {
		return -ry / dist, rx / dist, true
	}
	return ry / dist, -rx / dist, true
}

// ExecuteProgradeBurn thrusts along the current orbital direction around the
// given body, scaled by burnStrength and thruster efficiency. Returns false,
// without effect, at the zero-distance singularity.
func ExecuteProgradeBurn(center CelestialBody, v *InertialBody, burnStrength, dt float64) bool {
	tx, ty, ok := progradeDirection(center, v)
	if !ok {
		return false
	}
	Δv := burnStrength * v.ThrusterEfficiency() / v.EffectiveMass() * dt
	v.VX += tx * Δv
	v.VY += ty * Δv
	return true
}

// ExecuteRetrogradeBurn thrusts against the current orbital direction around
// the given body.
func ExecuteRetrogradeBurn(center CelestialBody, v *InertialBody, burnStrength, dt float64) bool {
	tx, ty, ok := progradeDirection(center, v)
	if !ok {
		return false
	}
	Δv := burnStrength * v.ThrusterEfficiency() / v.EffectiveMass() * dt
	v.VX -= tx * Δv
	v.VY -= ty * Δv
	return true
}

// InsertionPlan is the velocity change required to circularize at the
// current radius.
type InsertionPlan struct {
	DeltaVX, DeltaVY float64
	DeltaV           float64 // magnitude of the required change
}

// PlanOrbitalInsertion computes the delta-v between the vehicle's current
// velocity and the circular-orbit velocity at its current radius around the
// given body. Returns false at the zero-distance singularity.
func PlanOrbitalInsertion(g float64, center CelestialBody, v *InertialBody) (InsertionPlan, bool) {
	rx := v.X - center.R[0]
	ry := v.Y - center.R[1]
	dist := hypot2(rx, ry)
	if dist < 1e-9 {
		return InsertionPlan{}, false
	}
	tx, ty, _ := progradeDirection(center, v)
	vCirc := OrbitalVelocity(g, dist, dist, center.Mass)
	ΔvX := center.V[0] + tx*vCirc - v.VX
	ΔvY := center.V[1] + ty*vCirc - v.VY
	return InsertionPlan{DeltaVX: ΔvX, DeltaVY: ΔvY, DeltaV: hypot2(ΔvX, ΔvY)}, true
}

// InsertionStatus reports the progress of an orbital insertion burn.
type InsertionStatus struct {
	Remaining float64 // delta-v still required after this tick
	Progress  float64 // fraction of the required delta-v applied, in [0,1]
	Complete  bool
}

// ExecuteOrbitalInsertion performs one tick of a circularization burn: it
// applies up to burnStrength worth of thrust along the required delta-v
// vector. The maneuver is stateless between ticks; a caller cancels it by
// simply not calling this again.
func ExecuteOrbitalInsertion(g float64, center CelestialBody, v *InertialBody, burnStrength, dt float64) (InsertionStatus, bool) {
	plan, ok := PlanOrbitalInsertion(g, center, v)
	if !ok {
		return InsertionStatus{}, false
	}
	if plan.DeltaV < 1e-9 {
		return InsertionStatus{Remaining: 0, Progress: 1, Complete: true}, true
	}
	capΔv := burnStrength * v.ThrusterEfficiency() / v.EffectiveMass() * dt
	applied := math.Min(plan.DeltaV, capΔv)
	v.VX += plan.DeltaVX / plan.DeltaV * applied
	v.VY += plan.DeltaVY / plan.DeltaV * applied
	remaining := plan.DeltaV - applied
	return InsertionStatus{
		Remaining: remaining,
		Progress:  clamp(applied/plan.DeltaV, 0, 1),
		Complete:  remaining < 1e-9,
	}, true
}

// AssistResult reports the outcome of a gravity assist attempt.
type AssistResult struct {
	DeltaV  float64 // magnitude of the velocity change
	Angle   float64 // deflection angle applied to the relative velocity
	Success bool
}

// GravityAssist applies a simplified slingshot around the given body. The
// vehicle's velocity relative to the body is deflected and boosted when the
// vehicle is deep enough inside the body's influence radius (mass × 10);
// below the 0.1 deflection threshold the result is a structured no-effect.
// Note the heuristic never consults the gravitational constant.
func GravityAssist(center CelestialBody, v *InertialBody) AssistResult {
	rx := v.X - center.R[0]
	ry := v.Y - center.R[1]
	dist := hypot2(rx, ry)
	if dist < 1e-9 {
		return AssistResult{}
	}
	influenceRadius := center.Mass * influenceRadiusFactor
	deflection := math.Max(0, 1-dist/influenceRadius)
	if deflection <= assistDeflectionThreshold {
		return AssistResult{}
	}

	relVX := v.VX - center.V[0]
	relVY := v.VY - center.V[1]
	// Turn away around the body, on the side the vehicle is passing.
	turn := sign(rx*relVY-ry*relVX) * deflection * math.Pi / 2
	boost := 1 + deflection*assistBoostFactor
	sinT, cosT := math.Sincos(turn)
	newVX := center.V[0] + boost*(relVX*cosT-relVY*sinT)
	newVY := center.V[1] + boost*(relVX*sinT+relVY*cosT)
	Δv := hypot2(newVX-v.VX, newVY-v.VY)
	v.VX = newVX
	v.VY = newVY
	return AssistResult{DeltaV: Δv, Angle: turn, Success: true}
}

// AerobrakeResult reports the outcome of one tick of atmospheric braking.
type AerobrakeResult struct {
	InAtmosphere bool
	DragForce    float64
	Heat         float64 // heat generated this tick
}

// Aerobrake decelerates the vehicle through the exponential atmosphere of the
// given body (scale height = atmosphereHeight / 5). Above the atmosphere it
// returns a structured no-effect result with no velocity change.
func Aerobrake(center CelestialBody, atmosphereHeight float64, v *InertialBody, dt float64) AerobrakeResult {
	rx := v.X - center.R[0]
	ry := v.Y - center.R[1]
	altitude := hypot2(rx, ry) - center.Radius
	if altitude > atmosphereHeight {
		return AerobrakeResult{InAtmosphere: false, DragForce: 0}
	}

	relVX := v.VX - center.V[0]
	relVY := v.VY - center.V[1]
	speed := hypot2(relVX, relVY)
	density := math.Exp(-altitude / (atmosphereHeight / atmosphereScaleDivisor))
	drag := aerobrakeDragCoeff * density * speed * speed
	if speed > 1e-9 {
		// Cap the deceleration so drag never reverses the velocity.
		Δv := math.Min(drag/v.EffectiveMass()*dt, speed)
		v.VX -= relVX / speed * Δv
		v.VY -= relVY / speed * Δv
	}
	return AerobrakeResult{
		InAtmosphere: true,
		DragForce:    drag,
		Heat:         drag * speed * aerobrakeHeatFactor,
	}
}

// LagrangePoint is one equilibrium position of a two-body system.
type LagrangePoint struct {
	X, Y float64
}

// LagrangePoints returns the standard L1-L5 approximations for the system of
// b1 (primary) and b2 (secondary, orbiting b1), from the mass ratio
// μ = m2/(m1+m2). Returns false when the bodies coincide.
func LagrangePoints(b1, b2 CelestialBody) ([5]LagrangePoint, bool) {
	dx := b2.R[0] - b1.R[0]
	dy := b2.R[1] - b1.R[1]
	d := hypot2(dx, dy)
	if d < 1e-9 || b1.Mass+b2.Mass <= 0 {
		return [5]LagrangePoint{}, false
	}
	μ := b2.Mass / (b1.Mass + b2.Mass)
	hill := math.Cbrt(μ / 3)

	var pts [5]LagrangePoint
	// L1 and L2 sit on either side of the secondary, L3 opposite it.
	pts[0] = LagrangePoint{b1.R[0] + dx*(1-hill), b1.R[1] + dy*(1-hill)}
	pts[1] = LagrangePoint{b1.R[0] + dx*(1+hill), b1.R[1] + dy*(1+hill)}
	l3 := 1 + 5*μ/12
	pts[2] = LagrangePoint{b1.R[0] - dx*l3, b1.R[1] - dy*l3}
	// L4 leads and L5 trails the secondary by 60°.
	sin60, cos60 := math.Sincos(math.Pi / 3)
	pts[3] = LagrangePoint{b1.R[0] + dx*cos60 - dy*sin60, b1.R[1] + dx*sin60 + dy*cos60}
	pts[4] = LagrangePoint{b1.R[0] + dx*cos60 + dy*sin60, b1.R[1] - dx*sin60 + dy*cos60}
	return pts, true
}

// MaintainLagrangePosition applies a proportional correction force toward the
// target point, but only once the vehicle has drifted beyond the hold
// threshold (50 units). Returns whether a correction was applied.
func MaintainLagrangePosition(v *InertialBody, target LagrangePoint, strength, dt float64) bool {
	dx := target.X - v.X
	dy := target.Y - v.Y
	if hypot2(dx, dy) <= lagrangeHoldThreshold {
		return false
	}
	v.ApplyForce(dx*strength, dy*strength, dt)
	return true
}
