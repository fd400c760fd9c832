package p0gen

import (
	"math/rand"

	"github.com/pkg/errors"
)

// DPRNG is a Deterministic Pseudo-Random Number Generator based on the xorshift* algorithm
// (see https://en.wikipedia.org/wiki/Xorshift#xorshift*).
// This random number generator is deterministic in the sequence of numbers it generates.
// It is seeded from a string (see SeedFromString), so the same string always reproduces the same stream.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
// This random number generator has a very small memory footprint (16 bytes).
// A zero state is a fixed point of the xorshift step and only ever yields zeros.
type DPRNG struct {
	State uint64
	Round uint64 // for debugging purposes
}

var _ rand.Source64 = (*DPRNG)(nil)

const (
	seedOffset     = 0xDEADBEEF
	seedMultiplier = 0x5DEECE66D
	seedIncrement  = 0xB
	seedPosFactor  = 131
)

// SeedFromString folds s into a 64-bit seed, one Unicode code point at a time.
// The position i counts code points, not bytes. The empty string yields 0xDEADBEEF.
func SeedFromString(s string) uint64 {
	h := uint64(seedOffset)
	i := uint64(0)
	for _, c := range s {
		h ^= uint64(c) + i*seedPosFactor
		h = h*seedMultiplier + seedIncrement
		i++
	}
	return h
}

// NewDPRNGFromString returns a DPRNG whose state is SeedFromString(seed).
func NewDPRNGFromString(seed string) *DPRNG {
	return &DPRNG{State: SeedFromString(seed)}
}

// This function returns the next pseudo-random number in the sequence.
// It has a deterministic (i.e. constant) runtime and a high probability to be inlined by the compiler.
func (thisState *DPRNG) Uint64() uint64 {
	x := thisState.State
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	thisState.State = x
	thisState.Round++
	return x * 0x2545F4914F6CDD1D
}

// Randint returns a pseudo-random integer in the closed interval [low, high].
// The value is reduced by modulo, so it carries a slight bias for spans that do not divide 2^64.
// The bias is part of the reproducible stream and must not be corrected.
// If high < low, no number is drawn and an error wrapping ErrInvalidRange is returned.
func (thisState *DPRNG) Randint(low, high int) (int, error) {
	if high < low {
		return 0, errors.Wrapf(ErrInvalidRange, "randint(%d, %d)", low, high)
	}
	return thisState.randint(low, high), nil
}

// randint expects high >= low. The span is computed in uint64 so that
// [math.MinInt, math.MaxInt] does not overflow; that span wraps to 0 and takes the full draw.
func (thisState *DPRNG) randint(low, high int) int {
	span := uint64(high) - uint64(low) + 1
	if span == 0 {
		return low + int(thisState.Uint64())
	}
	return low + int(thisState.Uint64()%span)
}

// Shuffle permutes xs in place (Fisher-Yates, from the last index down to 1).
func (thisState *DPRNG) Shuffle(xs []int) {
	for i := len(xs) - 1; i > 0; i-- {
		j := thisState.randint(0, i)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Int63 returns the top 63 bits of the next number, for use as a math/rand source.
func (thisState *DPRNG) Int63() int64 {
	return int64(thisState.Uint64() >> 1)
}

// Seed resets the state to seed and clears the round counter.
// A zero seed would stall the generator at zero, so it is replaced by SeedFromString("").
func (thisState *DPRNG) Seed(seed int64) {
	thisState.State = uint64(seed)
	if thisState.State == 0 {
		thisState.State = SeedFromString("")
	}
	thisState.Round = 0
}
