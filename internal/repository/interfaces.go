package repository

import (
	"context"

	"github.com/vytor/flashquiz/internal/models"
)

// DeckFilter narrows which cards a deck source returns.
type DeckFilter struct {
	// Name selects a named deck in sources that hold several. Empty means all cards.
	Name string
}

// DeckRepository reads the raw cards of a deck in presentation order.
// Implementations do not trim or validate; see deck.Build.
type DeckRepository interface {
	LoadCards(ctx context.Context, filter DeckFilter) ([]models.RawCard, error)
}
