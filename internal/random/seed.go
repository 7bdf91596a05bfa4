// Package random provides seed generation and deterministic random sources.
//
// Seeds come from crypto/rand; sources are math/rand generators that are
// NOT goroutine-safe and must stay within a single invocation.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a non-zero random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		// Zero means "pick a seed" everywhere else, so never hand it out.
		if seed := int64(binary.LittleEndian.Uint64(b[:]) >> 1); seed != 0 {
			return seed, nil
		}
	}
}

// New returns a deterministic source for seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
