package orrery

import (
	"fmt"
	"math"
)

// ThrustDirection selects which thruster group fires.
type ThrustDirection uint8

// Available thrust directions.
const (
	ThrustForward ThrustDirection = iota + 1
	ThrustBackward
	ThrustLeft
	ThrustRight
)

func (d ThrustDirection) String() string {
	switch d {
	case ThrustForward:
		return "forward"
	case ThrustBackward:
		return "backward"
	case ThrustLeft:
		return "left"
	case ThrustRight:
		return "right"
	}
	panic("cannot stringify unknown thrust direction")
}

const (
	// momentOfInertiaFactor derives the moment of inertia from the base mass.
	momentOfInertiaFactor = 0.5
	// Thruster efficiency degrades linearly with hull damage, from 100% at
	// full hull down to 50% at zero hull.
	minThrusterEfficiency = 0.5
	// Damage multiplier range applied on top of hull efficiency.
	minDamageMultiplier = 0.7
	maxDamageMultiplier = 1.0
)

// VehicleSpec describes the fixed characteristics of a thrust-capable vehicle.
type VehicleSpec struct {
	Mass     float64 // base mass, > 0
	MaxCargo float64 // cargo mass clamp

	MainThruster     float64 // forward thrust force
	RetroThruster    float64 // backward thrust force
	LateralThruster  float64 // left/right thrust force
	RotationThruster float64 // torque
}

// ThrustEvent describes one thruster firing, for visual feedback by the
// renderer. The physics core only fills it in; it never consumes it.
type ThrustEvent struct {
	Active    bool
	Direction ThrustDirection
	Angle     float64 // world angle of the applied force
	Force     float64
}

// BodyState is the per-tick output of InertialBody.Update. The host copies it
// back into its own entity fields.
type BodyState struct {
	X, Y        float64
	VX, VY      float64
	Rotation    float64
	RotationVel float64
}

// InertialBody integrates Newtonian motion for one dynamic vehicle: thrust,
// momentum, torque and dampening. All mutation is synchronous and in place,
// exactly one Update per tick.
type InertialBody struct {
	X, Y        float64
	VX, VY      float64
	Rotation    float64
	RotationVel float64

	spec             VehicleSpec
	cargoMass        float64
	momentOfInertia  float64
	hullFraction     float64
	damageMultiplier float64
	dampeningActive  bool

	// Dampening regimes and clamps, normally taken from SimConfig.
	DampeningStrength float64
	LinearDampening   float64
	AngularDampening  float64
	MaxSpeed          float64
	MaxRotationVel    float64
}

// NewInertialBody returns a vehicle at the origin with full hull, no damage
// and inertial dampening off.
func NewInertialBody(spec VehicleSpec, cfg SimConfig) (*InertialBody, error) {
	if spec.Mass <= 0 {
		return nil, fmt.Errorf("vehicle mass must be positive, got %f", spec.Mass)
	}
	return &InertialBody{
		spec:              spec,
		momentOfInertia:   spec.Mass * momentOfInertiaFactor,
		hullFraction:      1,
		damageMultiplier:  maxDamageMultiplier,
		DampeningStrength: cfg.DampeningStrength,
		LinearDampening:   cfg.LinearDampening,
		AngularDampening:  cfg.AngularDampening,
		MaxSpeed:          cfg.MaxSpeed,
		MaxRotationVel:    cfg.MaxRotationRate,
	}, nil
}

// EffectiveMass returns base mass plus cargo mass.
func (b *InertialBody) EffectiveMass() float64 {
	return b.spec.Mass + b.cargoMass
}

// Speed returns the linear speed.
func (b *InertialBody) Speed() float64 {
	return hypot2(b.VX, b.VY)
}

// SetCargoMass sets the additional load, clamped to [0, MaxCargo].
func (b *InertialBody) SetCargoMass(m float64) {
	b.cargoMass = clamp(m, 0, b.spec.MaxCargo)
}

// CargoMass returns the current cargo load.
func (b *InertialBody) CargoMass() float64 {
	return b.cargoMass
}

// SetHull updates the hull fraction from the host vehicle record.
func (b *InertialBody) SetHull(hull, maxHull float64) {
	if maxHull <= 0 {
		b.hullFraction = 0
		return
	}
	b.hullFraction = clamp(hull/maxHull, 0, 1)
}

// SetDamageMultiplier sets the damage-derived efficiency multiplier, clamped
// to [0.7, 1.0].
func (b *InertialBody) SetDamageMultiplier(m float64) {
	b.damageMultiplier = clamp(m, minDamageMultiplier, maxDamageMultiplier)
}

// ThrusterEfficiency returns the combined hull and damage efficiency factor.
func (b *InertialBody) ThrusterEfficiency() float64 {
	hullEff := minThrusterEfficiency + (1-minThrusterEfficiency)*b.hullFraction
	return hullEff * b.damageMultiplier
}

// ToggleInertialDampening flips the dampening regime used by Update and
// returns the new state.
func (b *InertialBody) ToggleInertialDampening() bool {
	b.dampeningActive = !b.dampeningActive
	return b.dampeningActive
}

// DampeningActive reports whether inertial dampening is engaged.
func (b *InertialBody) DampeningActive() bool {
	return b.dampeningActive
}

// ApplyThrust fires the thruster group for the given direction over dt
// seconds, converting force to acceleration with the effective mass. The
// returned event describes the burn for visual feedback.
func (b *InertialBody) ApplyThrust(dir ThrustDirection, dt float64) ThrustEvent {
	var force, angle float64
	switch dir {
	case ThrustForward:
		force = b.spec.MainThruster
		angle = b.Rotation
	case ThrustBackward:
		force = b.spec.RetroThruster
		angle = b.Rotation + math.Pi
	case ThrustLeft:
		force = b.spec.LateralThruster
		angle = b.Rotation - math.Pi/2
	case ThrustRight:
		force = b.spec.LateralThruster
		angle = b.Rotation + math.Pi/2
	default:
		return ThrustEvent{}
	}
	force *= b.ThrusterEfficiency()
	accel := force / b.EffectiveMass()
	sinA, cosA := math.Sincos(angle)
	b.VX += accel * cosA * dt
	b.VY += accel * sinA * dt
	return ThrustEvent{Active: true, Direction: dir, Angle: angle, Force: force}
}

// ApplyRotationalThrust applies torque around the vehicle's axis. The sign
// picks the turn direction.
func (b *InertialBody) ApplyRotationalThrust(sign float64, dt float64) {
	torque := b.spec.RotationThruster * sign * b.ThrusterEfficiency()
	b.RotationVel += torque / b.momentOfInertia * dt
}

// ApplyForce applies an external force over dt seconds. Uses the base mass,
// not the effective mass.
func (b *InertialBody) ApplyForce(fx, fy, dt float64) {
	b.VX += fx / b.spec.Mass * dt
	b.VY += fy / b.spec.Mass * dt
}

// ApplyImpulse applies an instantaneous momentum change. Uses the base mass,
// not the effective mass.
func (b *InertialBody) ApplyImpulse(ix, iy float64) {
	b.VX += ix / b.spec.Mass
	b.VY += iy / b.spec.Mass
}

// Update integrates one tick of dt seconds: dampening, rotation, translation
// and the speed clamps. Returns the new state for the host to copy back.
func (b *InertialBody) Update(dt float64) BodyState {
	if b.dampeningActive {
		// Active dampening decays both velocities toward zero, the angular
		// velocity at double rate.
		linFactor := math.Max(1-b.DampeningStrength*dt, 0)
		angFactor := math.Max(1-2*b.DampeningStrength*dt, 0)
		b.VX *= linFactor
		b.VY *= linFactor
		b.RotationVel *= angFactor
	} else {
		// Minimal "space friction" so released controls eventually settle.
		b.VX *= math.Max(1-b.LinearDampening*dt, 0)
		b.VY *= math.Max(1-b.LinearDampening*dt, 0)
		b.RotationVel *= math.Max(1-b.AngularDampening*dt, 0)
	}

	if speed := b.Speed(); speed > b.MaxSpeed {
		scale := b.MaxSpeed / speed
		b.VX *= scale
		b.VY *= scale
	}
	if math.Abs(b.RotationVel) > b.MaxRotationVel {
		b.RotationVel = sign(b.RotationVel) * b.MaxRotationVel
	}

	b.Rotation = normalizeAngle(b.Rotation + b.RotationVel*dt)
	b.X += b.VX * dt
	b.Y += b.VY * dt

	return BodyState{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY,
		Rotation: b.Rotation, RotationVel: b.RotationVel}
}
