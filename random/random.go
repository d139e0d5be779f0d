package random

import (
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
)

// Source is the subset of *rand.Rand used by the helpers.
// Implementations must return values in [0, n) from IntN and [0.0, 1.0)
// from Float64; IntN may panic when n <= 0.
type Source interface {
	IntN(n int) int
	Float64() float64
}

type global struct{}

func (global) IntN(n int) int { return rand.IntN(n) }
func (global) Float64() float64 { return rand.Float64() }

// Default returns the process-wide source. It is safe for concurrent use and
// is seeded randomly at program start.
func Default() Source { return global{} }

// New returns a deterministic generator keyed by seed.
// The returned *rand.Rand is not safe for concurrent use.
//
//	r := random.New("fixture")
//	r.IntN(10) // same value on every run
func New(seed string) *rand.Rand {
	key := blake2b.Sum256([]byte(seed))
	return rand.New(rand.NewChaCha8(key))
}
