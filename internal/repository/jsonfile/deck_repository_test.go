package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vytor/flashquiz/internal/errors"
	"github.com/vytor/flashquiz/internal/models"
	"github.com/vytor/flashquiz/internal/repository"
	"github.com/vytor/flashquiz/internal/repository/jsonfile"
)

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCards_ArrayFormat(t *testing.T) {
	path := writeDeck(t, `[{"front":"2+2","back":"4"},{"front":"3+3","back":"6"}]`)
	repo := jsonfile.NewDeckRepository(path)

	cards, err := repo.LoadCards(context.Background(), repository.DeckFilter{})

	require.NoError(t, err)
	assert.Equal(t, []models.RawCard{
		{Front: "2+2", Back: "4"},
		{Front: "3+3", Back: "6"},
	}, cards)
}

func TestLoadCards_ObjectFormat(t *testing.T) {
	path := writeDeck(t, `{"name":"math","cards":[{"front":"2+2","back":"4","hint":"even"}]}`)
	repo := jsonfile.NewDeckRepository(path)

	cards, err := repo.LoadCards(context.Background(), repository.DeckFilter{Name: "ignored"})

	require.NoError(t, err)
	assert.Equal(t, []models.RawCard{{Front: "2+2", Back: "4"}}, cards)
}

func TestLoadCards_MissingFile(t *testing.T) {
	repo := jsonfile.NewDeckRepository(filepath.Join(t.TempDir(), "nope.json"))

	_, err := repo.LoadCards(context.Background(), repository.DeckFilter{})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeDeckSource))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_ScalarsAreStringified(t *testing.T) {
	cards, err := jsonfile.Decode([]byte(`[{"front":"2+2","back":4},{"front":"pi","back":3.14},{"front":"t","back":true},{"front":"n","back":null}]`))

	require.NoError(t, err)
	assert.Equal(t, "4", cards[0].Back)
	assert.Equal(t, "3.14", cards[1].Back)
	assert.Equal(t, "true", cards[2].Back)
	assert.Equal(t, "", cards[3].Back)
}

func TestDecode_StructureErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		code    string
		message string
	}{
		{"malformed", `[{"front":`, apperrors.ErrCodeDeckSource, "failed to load deck"},
		{"empty input", ``, apperrors.ErrCodeDeckSource, "failed to load deck"},
		{"empty object", `{}`, apperrors.ErrCodeInvalidDeck, "file is empty or contains no flashcard data"},
		{"object without cards", `{"deck":[]}`, apperrors.ErrCodeInvalidDeck, "must contain a 'cards' key"},
		{"cards not a list", `{"cards":"x"}`, apperrors.ErrCodeInvalidDeck, "must contain a 'cards' key"},
		{"scalar document", `42`, apperrors.ErrCodeInvalidDeck, "got number"},
		{"card not object", `["2+2"]`, apperrors.ErrCodeInvalidDeck, "card 1: expected an object, got string"},
		{"missing front", `[{"back":"4"}]`, apperrors.ErrCodeInvalidDeck, "card 1: missing required field 'front'"},
		{"missing back", `[{"front":"a","back":"b"},{"front":"2+2"}]`, apperrors.ErrCodeInvalidDeck, "card 2: missing required field 'back'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jsonfile.Decode([]byte(tt.input))

			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, tt.code), "unexpected error: %v", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestDecode_EmptyArrayIsNotAnError(t *testing.T) {
	cards, err := jsonfile.Decode([]byte(`[]`))

	require.NoError(t, err)
	assert.Empty(t, cards)
}
