package p0gen

import (
	"math/bits"

	"github.com/pkg/errors"
)

const (
	// MaxRounds is the number of rounds the constant and rotation tables cover.
	MaxRounds = 16
	// DefaultRounds is the round count used by Permute.
	DefaultRounds = 4
	// Words is the number of 64-bit words in the permutation state (512 bits).
	Words = 8
)

// Published tables, generated by DeriveConstants(DefaultConstantsSeed) and
// GenerateSchedules(DefaultScheduleSeed).
var (
	RC = Constants{
		0x313c6532d658201a, 0x956d549917eac3c0,
		0x083d4edaf496ee20, 0x0cb386eeab6965d2,
		0x6f856ac36b7642e0, 0xe81887430eb2f988,
		0xaed89bd9076d6e8b, 0xabe63903dd74dfbb,
		0x1add4c445f6c7432, 0xd1d113667136bbcc,
		0xcbf0b33854f1a287, 0x37e6e010269e7e78,
		0x9856a37486c20a3c, 0x5020a4e865c9be36,
		0x1401db7b7dac82b8, 0x62cdab713371b069,
	}
	ROT1 = Schedule{49, 1, 9, 13, 41, 59, 21, 23, 39, 5, 45, 3, 51, 63, 11, 57}
	ROT2 = Schedule{43, 11, 41, 25, 51, 47, 35, 3, 21, 63, 9, 45, 49, 17, 55, 19}
	ROT3 = Schedule{49, 63, 39, 61, 45, 37, 27, 41, 53, 21, 59, 55, 35, 33, 19, 29}
	ROT4 = Schedule{11, 45, 59, 41, 33, 17, 49, 39, 15, 5, 27, 51, 57, 53, 47, 1}
)

// Permutation is the p0 512-bit permutation parameterized by its round constants and
// rotation schedules. Each round injects a constant, runs four ARX boxes on word pairs,
// diffuses within every word and finally mixes words globally.
type Permutation struct {
	rc  Constants
	rot [NumSchedules][MaxRounds]int
}

// NewPermutation copies rc and rot into a new Permutation.
// Every schedule must hold exactly MaxRounds rotation amounts.
func NewPermutation(rc Constants, rot [NumSchedules]Schedule) (*Permutation, error) {
	p := &Permutation{rc: rc}
	for k, s := range rot {
		if len(s) != MaxRounds {
			return nil, errors.Wrapf(ErrRounds, "schedule %d has %d entries, want %d", k+1, len(s), MaxRounds)
		}
		copy(p.rot[k][:], s)
	}
	return p, nil
}

// DefaultPermutation returns the permutation built from RC and ROT1..ROT4.
func DefaultPermutation() *Permutation {
	p, err := NewPermutation(RC, [NumSchedules]Schedule{ROT1, ROT2, ROT3, ROT4})
	if err != nil {
		panic(err) // the published tables are well-formed
	}
	return p
}

// Permute applies DefaultRounds rounds to state in place.
func (p *Permutation) Permute(state *[Words]uint64) {
	p.permute(state, DefaultRounds)
}

// PermuteRounds applies the first rounds rounds to state in place.
// rounds must be in [0, MaxRounds].
func (p *Permutation) PermuteRounds(state *[Words]uint64, rounds int) error {
	if rounds < 0 || rounds > MaxRounds {
		return errors.Wrapf(ErrRounds, "got %d, want 0..%d", rounds, MaxRounds)
	}
	p.permute(state, rounds)
	return nil
}

func (p *Permutation) permute(state *[Words]uint64, rounds int) {
	for r := range rounds {
		state[(r*3)&7] ^= p.rc[r]

		// ARX layer
		for i := range 4 {
			a := (2*i + r) & 7
			b := (a + 1) & 7
			x, y := state[a], state[b]
			x += bits.RotateLeft64(y, p.rot[0][r])
			y ^= bits.RotateLeft64(x, p.rot[1][r])
			x += bits.RotateLeft64(y, p.rot[2][r])
			y ^= bits.RotateLeft64(x, p.rot[3][r])
			state[a], state[b] = x, y
		}

		for i, w := range state {
			state[i] = w ^
				bits.RotateLeft64(w, (3*r+7)&63) ^
				bits.RotateLeft64(w, (5*r+23)&63) ^
				bits.RotateLeft64(w, (7*r+41)&63)
		}

		o1 := (r*2 + 1) & 7
		o2 := (r*3 + 3) & 7
		var tmp [Words]uint64
		for i := range tmp {
			tmp[i] = state[i] ^ state[(i+o1)&7] ^ state[(i+o2)&7]
		}
		*state = tmp
	}
}
