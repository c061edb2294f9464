// FILE: pkg/chance/chance.go
// PURPOSE: Seedable, goroutine-safe random source shared by classifier, synthesizer and dispatcher

package chance

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the subset of *rand.Rand the bot needs.
type Source interface {
	Intn(n int) int
	Float64() float64
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a mutex-guarded source. A zero seed means "seed from the clock".
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// Pick returns a uniformly random element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// Between returns a uniform int in [min, max].
func Between(src Source, min, max int) int {
	return min + src.Intn(max-min+1)
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
