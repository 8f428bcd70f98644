// Package jsonfile reads flashcard decks from JSON files.
//
// Two layouts are accepted:
//
//	[{"front": "2+2", "back": "4"}, ...]
//	{"cards": [{"front": "2+2", "back": "4"}, ...]}
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vytor/flashquiz/internal/errors"
	"github.com/vytor/flashquiz/internal/logger"
	"github.com/vytor/flashquiz/internal/models"
	"github.com/vytor/flashquiz/internal/repository"
)

type deckRepository struct {
	path string
}

// NewDeckRepository creates a DeckRepository reading the JSON file at path
func NewDeckRepository(path string) repository.DeckRepository {
	return &deckRepository{path: path}
}

// LoadCards reads the whole file. The filter name is ignored: a JSON file holds one deck.
func (r *deckRepository) LoadCards(ctx context.Context, filter repository.DeckFilter) ([]models.RawCard, error) {
	log := logger.FromContext(ctx).WithPrefix("json_deck_repo")
	log.Debug("reading deck file: path=%s", r.path)
	if filter.Name != "" {
		log.Warn("deck name %q ignored for JSON deck %s", filter.Name, r.path)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		log.Error("failed to read deck file: %v", err)
		return nil, errors.NewDeckSourceError(r.path, err)
	}
	raw, err := decode(r.path, data)
	if err != nil {
		log.Error("invalid deck file: %v", err)
		return nil, err
	}
	log.Debug("read %d cards", len(raw))
	return raw, nil
}

// Decode parses deck JSON into raw cards.
func Decode(data []byte) ([]models.RawCard, error) {
	return decode("input", data)
}

func decode(source string, data []byte) ([]models.RawCard, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.NewDeckSourceError(source, err)
	}

	entries, err := extractCards(doc)
	if err != nil {
		return nil, err
	}

	raw := make([]models.RawCard, 0, len(entries))
	for i, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, errors.NewInvalidDeckError(fmt.Sprintf("card %d: expected an object, got %s", i+1, jsonType(entry)))
		}
		front, ok := obj["front"]
		if !ok {
			return nil, errors.NewInvalidDeckError(fmt.Sprintf("card %d: missing required field 'front'", i+1))
		}
		back, ok := obj["back"]
		if !ok {
			return nil, errors.NewInvalidDeckError(fmt.Sprintf("card %d: missing required field 'back'", i+1))
		}
		raw = append(raw, models.RawCard{Front: text(front), Back: text(back)})
	}
	return raw, nil
}

func extractCards(doc any) ([]any, error) {
	switch v := doc.(type) {
	case []any:
		return v, nil
	case map[string]any:
		if len(v) == 0 {
			return nil, errors.NewInvalidDeckError("file is empty or contains no flashcard data")
		}
		if cards, ok := v["cards"].([]any); ok {
			return cards, nil
		}
		return nil, errors.NewInvalidDeckError("object format must contain a 'cards' key with a list of cards")
	default:
		return nil, errors.NewInvalidDeckError(fmt.Sprintf("unexpected JSON structure: expected list or object, got %s", jsonType(doc)))
	}
}

// text renders a scalar field as the deck author wrote it; null becomes empty.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
