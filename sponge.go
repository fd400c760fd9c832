package p0gen

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const (
	// StateSize is the size of the sponge state and of the seed it absorbs, in bytes.
	StateSize = 128
	// SpongeRounds is the number of mix+permute rounds applied to the state.
	SpongeRounds = 8
	// NumConstants is the number of 64-bit words the state is split into.
	NumConstants = StateSize / 8
)

// DefaultConstantsSeed is the text the published round constants RC were derived from.
// It encodes to exactly StateSize bytes.
const DefaultConstantsSeed = "ghosts eat drywall\n" +
	"pineapple on pie\n" +
	"throw the sun away\n" +
	"beans in my shoes\n" +
	"moonwalk on saturn\n" +
	"i left my brain at home\n" +
	"cows go moo\n"

// Constants holds the final sponge state as 16 little-endian 64-bit words.
type Constants [NumConstants]uint64

// RotateLeft8 rotates x left by r bits. r must be in [1,7].
func RotateLeft8(x byte, r uint) byte {
	return x<<r | x>>(8-r)
}

// InitialState returns the nonzero starting pattern state[i] = (i*73) ^ 0x5A.
func InitialState() [StateSize]byte {
	var state [StateSize]byte
	for i := range state {
		state[i] = byte(i*73) ^ 0x5A
	}
	return state
}

// DeriveConstants absorbs the UTF-8 encoding of seed into the sponge state and returns
// the result as 16 little-endian words.
// The seed is neither padded nor truncated: if it does not encode to exactly StateSize
// bytes, an error wrapping ErrSeedLength is returned and nothing is derived.
// The result depends only on seed, so the same seed always yields the same constants.
func DeriveConstants(seed string) (Constants, error) {
	input := []byte(seed)
	if len(input) != StateSize {
		return Constants{}, errors.Wrapf(ErrSeedLength, "got %d bytes", len(input))
	}

	state := InitialState()
	for round := range SpongeRounds {
		mixBytes(&state, input, round)
		state = permuteBytes(&state)
	}

	var c Constants
	for i := range c {
		c[i] = binary.LittleEndian.Uint64(state[i*8 : i*8+8])
	}
	return c, nil
}

// mixBytes xors a rotated copy of each input byte into the state in place.
// Every index reads only its own previous value, so the order of the loop is irrelevant.
func mixBytes(state *[StateSize]byte, input []byte, round int) {
	for i := range state {
		b := input[i]
		s := state[i]
		m := byte(i*31 + round*17)
		r := uint((b^s^m)%7) + 1
		state[i] ^= RotateLeft8(b^m, r)
	}
}

// permuteBytes returns a new state where every byte combines two bytes of old.
// old is never written.
func permuteBytes(old *[StateSize]byte) [StateSize]byte {
	var next [StateSize]byte
	for i := range next {
		next[i] = old[(i*11+37)%StateSize] ^ RotateLeft8(old[(i+53)%StateSize], uint(i%7)+1)
	}
	return next
}

// Chunk labels one constant with the byte range of the state it was read from.
type Chunk struct {
	Start, End int
	Value      uint64
}

// Chunks returns the constants together with their byte offsets, in state order.
func (c Constants) Chunks() []Chunk {
	chunks := make([]Chunk, 0, len(c))
	for i, v := range c {
		chunks = append(chunks, Chunk{Start: i * 8, End: i*8 + 7, Value: v})
	}
	return chunks
}
