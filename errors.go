package p0gen

import "github.com/pkg/errors"

var (
	// ErrSeedLength is returned by DeriveConstants when the encoded seed is not exactly StateSize bytes long.
	ErrSeedLength = errors.New("seed must encode to exactly 128 bytes")

	// ErrInvalidRange is returned by Randint when high < low.
	ErrInvalidRange = errors.New("invalid range: high < low")

	// ErrRounds is returned for round counts or schedule lengths the permutation cannot handle.
	ErrRounds = errors.New("invalid number of rounds")
)
