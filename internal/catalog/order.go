package catalog

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/drstein77/techaurex/internal/models"
)

// SortByRecencyDesc returns a copy ordered by date, most recent first.
// Equal dates keep their input order.
func SortByRecencyDesc(products []models.Product) []models.Product {
	out := slices.Clone(products)
	slices.SortStableFunc(out, func(a, b models.Product) int {
		return b.Date.Compare(a.Date.Time)
	})
	return out
}

// Shuffler is the random source behind "other reviews" ordering and the
// synthesized review counts. It is safe for concurrent use.
type Shuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewShuffler seeds a Shuffler. A zero seed draws the seed from process
// entropy; any other seed gives a reproducible sequence.
func NewShuffler(seed int64) *Shuffler {
	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	}
	return &Shuffler{rnd: rand.New(src)}
}

// Shuffle returns a uniformly random permutation of a copy of products.
func (s *Shuffler) Shuffle(products []models.Product) []models.Product {
	out := slices.Clone(products)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(out) - 1; i > 0; i-- {
		j := s.rnd.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// IntN returns a value in [0, n).
func (s *Shuffler) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}
