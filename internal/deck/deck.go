// Package deck turns raw deck entries from a deck source into the validated,
// ordered card list a quiz session owns.
package deck

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vytor/flashquiz/internal/errors"
	"github.com/vytor/flashquiz/internal/logger"
	"github.com/vytor/flashquiz/internal/models"
	"github.com/vytor/flashquiz/internal/repository"
	"github.com/vytor/flashquiz/internal/repository/jsonfile"
	"github.com/vytor/flashquiz/internal/repository/sqlite"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their deck-file names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Build trims and validates raw entries and returns fresh cards with zero counters.
// The first invalid entry fails the whole deck.
func Build(raw []models.RawCard) ([]*models.Card, error) {
	if len(raw) == 0 {
		return nil, errors.NewInvalidDeckError("no flashcards found in deck")
	}

	cards := make([]*models.Card, 0, len(raw))
	for i, rc := range raw {
		rc.Front = strings.TrimSpace(rc.Front)
		rc.Back = strings.TrimSpace(rc.Back)

		if err := validate.Struct(rc); err != nil {
			var verrs validator.ValidationErrors
			if stderrors.As(err, &verrs) && len(verrs) > 0 {
				return nil, errors.NewCardValidationError(i, verrs[0].Field(), "is empty")
			}
			return nil, errors.NewInvalidDeckError(fmt.Sprintf("card %d: %v", i+1, err))
		}

		cards = append(cards, &models.Card{Front: rc.Front, Back: rc.Back})
	}
	return cards, nil
}

// IsSQLitePath reports whether path names a SQLite deck database.
func IsSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	default:
		return false
	}
}

// Load reads the deck at path and builds its cards.
// SQLite files are recognized by extension; anything else is read as JSON.
func Load(ctx context.Context, path string, filter repository.DeckFilter) ([]*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("deck")

	if !IsSQLitePath(path) {
		log.Debug("loading JSON deck: %s", path)
		return load(ctx, jsonfile.NewDeckRepository(path), filter)
	}

	log.Debug("loading SQLite deck: %s deck=%q", path, filter.Name)
	db, err := sqlite.OpenReadOnly(ctx, path)
	if err != nil {
		return nil, errors.NewDeckSourceError(path, err)
	}
	defer db.Close()

	raw, err := sqlite.NewDeckRepository(db).LoadCards(ctx, filter)
	if err != nil {
		return nil, errors.NewDeckSourceError(path, err)
	}
	if len(raw) == 0 && filter.Name != "" {
		names, err := sqlite.DeckNames(ctx, db)
		if err != nil {
			return nil, errors.NewDeckSourceError(path, err)
		}
		return nil, errors.NewInvalidDeckError(fmt.Sprintf("deck %q not found in %s. Available: %s",
			filter.Name, path, strings.Join(names, ", ")))
	}
	return build(ctx, raw)
}

func load(ctx context.Context, repo repository.DeckRepository, filter repository.DeckFilter) ([]*models.Card, error) {
	raw, err := repo.LoadCards(ctx, filter)
	if err != nil {
		return nil, err
	}
	return build(ctx, raw)
}

func build(ctx context.Context, raw []models.RawCard) ([]*models.Card, error) {
	cards, err := Build(raw)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).WithPrefix("deck").Debug("deck ready: %d cards", len(cards))
	return cards, nil
}
