// Package rng provides a seeded linear-congruential generator whose output
// sequence is identical for a given seed on every platform. Generation must
// be reproducible from (seed, difficulty) alone, so the module never touches
// math/rand's global state or system entropy.
package rng

const (
	modulus    = 2147483647 // 2^31 - 1, prime
	multiplier = 48271
)

// LCG is a Park-Miller multiplicative linear-congruential generator.
// It is not safe for concurrent use; each generation request owns one.
type LCG struct {
	state int64
}

// New seeds a generator. Any int64 is accepted: the seed is reduced
// modulo the Mersenne prime and a zero residue is bumped to 1, so every
// seed gets a well-defined, non-degenerate starting state and seeds
// already in [1, modulus-1] are used as-is.
func New(seed int64) *LCG {
	s := seed % modulus
	if s < 0 {
		s += modulus
	}
	if s == 0 {
		s = 1
	}
	return &LCG{state: s}
}

// Next advances the generator and returns the new state in [1, modulus-1].
func (l *LCG) Next() int64 {
	l.state = l.state * multiplier % modulus
	return l.state
}

// Intn returns a draw in [0, n). n must be positive.
func (l *LCG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with non-positive n")
	}
	return int(l.Next() % int64(n))
}

// Shuffle performs an in-place Fisher-Yates permutation of n elements,
// swapping via the provided function. Mirrors math/rand.Shuffle's shape.
func (l *LCG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := l.Intn(i + 1)
		swap(i, j)
	}
}
