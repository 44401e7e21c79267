package generator

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"realestate-seed/internal/models"
)

// State is the random stream every generator draws from. The PRNG and the
// faker share one source, so a seed fully determines the dataset.
type State struct {
	seed  uint64
	rng   *rand.Rand
	faker *gofakeit.Faker
}

func NewState(seed uint64) *State {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &State{
		seed:  seed,
		rng:   rand.New(src),
		faker: gofakeit.NewFaker(src, false),
	}
}

func (s *State) Seed() uint64 {
	return s.seed
}

// intBetween returns a uniform integer in [lo, hi].
func (s *State) intBetween(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

// floatBetween returns a uniform float in [lo, hi).
func (s *State) floatBetween(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *State) pick(items []string) string {
	return items[s.rng.IntN(len(items))]
}

func (s *State) shuffle(ids []int) {
	s.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
}

// sample draws k distinct elements of population without replacement.
func (s *State) sample(population []int, k int) []int {
	pool := make([]int, len(population))
	copy(pool, population)
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// dateBetween returns a uniform day between Jan 1 of startYear and Dec 31 of endYear.
func (s *State) dateBetween(startYear, endYear int) models.Date {
	start := models.NewDate(startYear, time.January, 1)
	end := models.NewDate(endYear, time.December, 31)
	days := int(end.Sub(start.Time).Hours() / 24)
	return start.AddDays(s.intBetween(0, days))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// idRange returns [first, first+count).
func idRange(first, count int) []int {
	ids := make([]int, count)
	for i := range ids {
		ids[i] = first + i
	}
	return ids
}

// repeatTo cycles ids until the result has exactly n entries.
func repeatTo(ids []int, n int) []int {
	out := make([]int, 0, n)
	for len(out) < n && len(ids) > 0 {
		for _, id := range ids {
			if len(out) == n {
				break
			}
			out = append(out, id)
		}
	}
	return out
}
