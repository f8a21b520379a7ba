// Package pick implements the random selection at the heart of the tool.
package pick

import (
	"errors"
	"math/rand"

	"github.com/frankjstrike/restaurant-decider/internal/models"
)

// ErrNoCandidates is returned when there is nothing to choose from.
var ErrNoCandidates = errors.New("no restaurants to choose from")

// Picker selects restaurants using an injectable randomness source so tests
// can seed it.
type Picker struct {
	rng *rand.Rand
}

// New returns a Picker backed by the given source.
func New(src rand.Source) *Picker {
	return &Picker{rng: rand.New(src)}
}

// Shuffle permutes the slice in place.
func (p *Picker) Shuffle(rs []models.Restaurant) {
	p.rng.Shuffle(len(rs), func(i, j int) {
		rs[i], rs[j] = rs[j], rs[i]
	})
}

// Choose returns one restaurant uniformly at random.
func (p *Picker) Choose(rs []models.Restaurant) (models.Restaurant, error) {
	if len(rs) == 0 {
		return models.Restaurant{}, ErrNoCandidates
	}
	return rs[p.rng.Intn(len(rs))], nil
}
