package quiz

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/vytor/flashquiz/internal/errors"
	"github.com/vytor/flashquiz/internal/models"
)

// Recognized mode names.
const (
	ModeSequential = "sequential"
	ModeRandom     = "random"
	ModeAdaptive   = "adaptive"
)

type options struct {
	rng *rand.Rand
}

// Option configures mode construction.
type Option func(*options)

// WithRand sets the randomness source for shuffling modes.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed seeds the randomness source for shuffling modes.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

type constructor func(cards []*models.Card, o options) Mode

var registry = map[string]constructor{
	ModeSequential: func(cards []*models.Card, _ options) Mode { return NewSequential(cards) },
	ModeRandom:     func(cards []*models.Card, o options) Mode { return NewRandom(cards, o.rng) },
	ModeAdaptive:   func(cards []*models.Card, _ options) Mode { return NewAdaptive(cards) },
}

// Create builds the mode registered under name over a copy of cards.
// Names must match exactly. An empty card list is rejected.
func Create(name string, cards []*models.Card, opts ...Option) (Mode, error) {
	build, ok := registry[name]
	if !ok {
		return nil, errors.NewUnknownModeError(name, AvailableModes())
	}
	if len(cards) == 0 {
		return nil, errors.NewInvalidDeckError("no flashcards to quiz on")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		now := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(now, now>>1))
	}
	return build(cards, o), nil
}

// AvailableModes returns the recognized mode names, sorted.
func AvailableModes() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
