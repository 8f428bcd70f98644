package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashquiz/internal/models"
	"github.com/vytor/flashquiz/internal/repository/sqlite"
)

// NewTestDB creates an in-memory SQLite deck database with the cards schema applied.
func NewTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(sqlite.Schema)
	require.NoError(t, err, "failed to apply deck schema")

	return db
}

// NewDeckFile writes a deck database file under t.TempDir and returns its path.
func NewDeckFile(t *testing.T, deck string, cards ...models.RawCard) string {
	path := filepath.Join(t.TempDir(), "deck.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer MustClose(t, db)

	_, err = db.Exec(sqlite.Schema)
	require.NoError(t, err)
	for i, c := range cards {
		InsertCard(t, db, deck, i, c)
	}
	return path
}

// InsertCard adds one card row at the given position.
func InsertCard(t *testing.T, db *sql.DB, deck string, position int, card models.RawCard) {
	_, err := db.Exec(`INSERT INTO cards (deck, front, back, position) VALUES (?, ?, ?, ?)`,
		deck, card.Front, card.Back, position)
	require.NoError(t, err)
}

// Cards builds fresh cards from front/back pairs.
func Cards(pairs ...string) []*models.Card {
	if len(pairs)%2 != 0 {
		panic("testutil.Cards: odd number of arguments")
	}
	cards := make([]*models.Card, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		cards = append(cards, &models.Card{Front: pairs[i], Back: pairs[i+1]})
	}
	return cards
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
