package simulation

import (
	"math/rand"
	"time"
)

// NewRand returns a generator for seed and the seed actually used. A zero seed
// is replaced with a time-derived one so that every run can still be replayed.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
