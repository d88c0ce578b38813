package match

import (
	"math/rand"
	"time"
)

// Random is the source of randomness for launches and paddle deflections.
type Random interface {
	// IntRange returns a uniform integer in [lo, hi], both inclusive.
	IntRange(lo, hi int) int
}

type mathRandom struct {
	rng *rand.Rand
}

// NewRandom returns a Random backed by math/rand.
// A zero seed picks one from the current time.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathRandom{rng: rand.New(rand.NewSource(seed))}
}

func (m *mathRandom) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + m.rng.Intn(hi-lo+1)
}
