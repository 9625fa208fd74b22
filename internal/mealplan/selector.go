package mealplan

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"rasoi/internal/catalog"
)

// ErrNoCandidateMeal means a slot had no eligible meal left after
// filtering. Plan generation must treat this as a hard stop.
var ErrNoCandidateMeal = errors.New("no candidate meal for slot")

// Selector picks one meal per slot, uniformly at random.
// The random source is injectable so tests can pin the draw.
// One Selector is shared by every request, and rand.Rand is not safe
// for concurrent use, so the draw is serialized.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

func (s *Selector) Pick(candidates []*catalog.Meal, slot string) (*catalog.Meal, error) {
	var slotMeals []*catalog.Meal
	for _, meal := range candidates {
		if meal.HasTag(slot) {
			slotMeals = append(slotMeals, meal)
		}
	}

	if len(slotMeals) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCandidateMeal, slot)
	}

	s.mu.Lock()
	index := s.rng.Intn(len(slotMeals))
	s.mu.Unlock()

	return slotMeals[index], nil
}
