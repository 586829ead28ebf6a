package orrery

// Deterministic world generation requires a PRNG whose stream is reproducible
// regardless of Go version, so the stdlib generators are out. This is the
// xorshift64* generator (Vigna, "An experimental exploration of Marsaglia's
// xorshift generators, scrambled").

const (
	xorshiftMultiplier = 0x2545F4914F6CDD1D
	// seedFallback replaces a zero seed, which xorshift cannot escape from.
	seedFallback = 0x9E3779B97F4A7C15
)

// Rand is a seedable xorshift64* pseudo-random number generator.
type Rand struct {
	state uint64
}

// NewRand returns a generator seeded with the given value.
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = seedFallback
	}
	return &Rand{state: seed}
}

// NewRandFromString returns a generator seeded from the FNV-1a hash of s.
func NewRandFromString(s string) *Rand {
	return NewRand(SeedFromString(s))
}

// SeedFromString hashes a string seed deterministically (64-bit FNV-1a).
func SeedFromString(s string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

// Next returns the next value of the stream.
func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * xorshiftMultiplier
}

// Float64 returns a uniform value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [min, max).
func (r *Rand) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}
