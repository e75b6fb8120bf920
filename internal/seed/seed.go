// Package seed derives 64-bit RNG seeds for planning runs.
package seed

import (
	"math/rand/v2"
	"strconv"

	"github.com/zeebo/xxh3"
)

// Parse derives a seed from a seed phrase.
//
// Numeric phrases are used verbatim, so a run can be replayed from the seed
// value printed in its logs. Any other phrase is hashed, letting callers
// seed runs with a memorable string such as a course offering name.
//
// Parameters:
//   - phrase: Decimal seed value or free-form phrase
//
// Returns:
//   - uint64: The derived seed
func Parse(phrase string) uint64 {
	if n, err := strconv.ParseUint(phrase, 10, 64); err == nil {
		return n
	}

	return xxh3.HashString(phrase)
}

// Random returns a non-deterministic seed.
func Random() uint64 {
	return rand.Uint64()
}
