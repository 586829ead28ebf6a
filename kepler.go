package orrery

import "math"

const (
	// maxKeplerIterations caps the Newton-Raphson loop of SolveKepler.
	maxKeplerIterations = 10
	// keplerε is the convergence tolerance on the Newton-Raphson step size.
	keplerε = 1e-6
	// maxEccentricity guards against the parabolic singularity at e=1.
	maxEccentricity = 0.9999
	// minRadiusDenom floors the conic equation denominator at ν=π, e→1.
	minRadiusDenom = 1e-4
)

// SolveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly E via Newton-Raphson, starting from E₀ = M. The mean anomaly is
// normalized into [0, 2π) and the eccentricity clamped to maxEccentricity.
// Also returns the number of iterations performed.
// There is no bisection fallback: for e very close to 1 the loop may exhaust
// its iteration cap and return the best estimate so far.
func SolveKepler(M, e float64) (E float64, iterations int) {
	M = normalizeAngle(M)
	e = clamp(e, 0, maxEccentricity)
	E = M
	for iterations = 0; iterations < maxKeplerIterations; iterations++ {
		ΔE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= ΔE
		if math.Abs(ΔE) < keplerε {
			break
		}
	}
	return E, iterations
}

// TrueAnomalyFromE converts an eccentric anomaly to the true anomaly ν.
func TrueAnomalyFromE(E, e float64) float64 {
	e = clamp(e, 0, maxEccentricity)
	sinHalf, cosHalf := math.Sincos(E / 2)
	return 2 * math.Atan2(math.Sqrt(1+e)*sinHalf, math.Sqrt(1-e)*cosHalf)
}

// MeanFromEccentric returns the mean anomaly for a given eccentric anomaly.
func MeanFromEccentric(E, e float64) float64 {
	return normalizeAngle(E - e*math.Sin(E))
}

// OrbitalRadius returns the distance from the focus at true anomaly ν via the
// conic equation r = a(1-e²)/(1+e·cos ν). The denominator is floored to keep
// near-parabolic trajectories finite.
func OrbitalRadius(a, e, ν float64) float64 {
	return a * (1 - e*e) / math.Max(1+e*math.Cos(ν), minRadiusDenom)
}
