// Package quiz implements the card ordering strategies of a quiz session
// and the selector that builds them from a mode name.
package quiz

import (
	"math/rand/v2"
	"slices"

	"github.com/vytor/flashquiz/internal/models"
)

// Mode decides the order in which cards are presented.
type Mode interface {
	// NextCard returns the next card, or false when none remain.
	NextCard() (*models.Card, bool)
	// HasMore reports whether NextCard would return a card.
	HasMore() bool
	// Reset restores the initial presentation order and discards re-queueing progress.
	Reset()
	// RecordResult observes the outcome of presenting card.
	RecordResult(card *models.Card, correct bool)
}

// cursor walks a fixed slice of cards once.
type cursor struct {
	cards []*models.Card
	index int
}

func (c *cursor) NextCard() (*models.Card, bool) {
	if c.index >= len(c.cards) {
		return nil, false
	}
	card := c.cards[c.index]
	c.index++
	return card, true
}

func (c *cursor) HasMore() bool {
	return c.index < len(c.cards)
}

// RecordResult is a no-op for modes that do not re-queue.
func (c *cursor) RecordResult(*models.Card, bool) {}

// Sequential presents cards once each, in deck order.
type Sequential struct {
	cursor
}

// NewSequential returns a Sequential mode over a copy of cards.
func NewSequential(cards []*models.Card) *Sequential {
	return &Sequential{cursor{cards: slices.Clone(cards)}}
}

func (s *Sequential) Reset() {
	s.index = 0
}

// Random presents cards once each, in a uniformly shuffled order.
// Reset draws a new permutation.
type Random struct {
	cursor
	original []*models.Card
	rng      *rand.Rand
}

// NewRandom returns a Random mode over a copy of cards, shuffled with rng.
func NewRandom(cards []*models.Card, rng *rand.Rand) *Random {
	r := &Random{
		original: slices.Clone(cards),
		rng:      rng,
	}
	r.shuffle()
	return r
}

func (r *Random) shuffle() {
	r.cards = slices.Clone(r.original)
	r.rng.Shuffle(len(r.cards), func(i, j int) {
		r.cards[i], r.cards[j] = r.cards[j], r.cards[i]
	})
	r.index = 0
}

func (r *Random) Reset() {
	r.shuffle()
}

// Adaptive presents cards from a queue; incorrectly answered cards go back
// to the end of the queue until they are answered correctly.
type Adaptive struct {
	original []*models.Card
	queue    []*models.Card
}

// NewAdaptive returns an Adaptive mode whose queue starts as a copy of cards.
func NewAdaptive(cards []*models.Card) *Adaptive {
	a := &Adaptive{original: slices.Clone(cards)}
	a.Reset()
	return a
}

func (a *Adaptive) NextCard() (*models.Card, bool) {
	if len(a.queue) == 0 {
		return nil, false
	}
	card := a.queue[0]
	a.queue[0] = nil
	a.queue = a.queue[1:]
	return card, true
}

func (a *Adaptive) HasMore() bool {
	return len(a.queue) > 0
}

func (a *Adaptive) Reset() {
	a.queue = slices.Clone(a.original)
}

// RecordResult re-queues card at the back when the answer was wrong.
// There is no retry limit.
func (a *Adaptive) RecordResult(card *models.Card, correct bool) {
	if !correct {
		a.queue = append(a.queue, card)
	}
}

// Pending returns the number of queued presentations.
func (a *Adaptive) Pending() int {
	return len(a.queue)
}

var (
	_ Mode = (*Sequential)(nil)
	_ Mode = (*Random)(nil)
	_ Mode = (*Adaptive)(nil)
)
