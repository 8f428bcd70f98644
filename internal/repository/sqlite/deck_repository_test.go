package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/flashquiz/internal/models"
	"github.com/vytor/flashquiz/internal/repository"
	"github.com/vytor/flashquiz/internal/repository/sqlite"
	"github.com/vytor/flashquiz/internal/testutil"
)

type DeckRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.DeckRepository
}

func (s *DeckRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewDeckRepository(s.db)
}

func (s *DeckRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *DeckRepositorySuite) TestLoadCards_OrderedByPosition() {
	testutil.InsertCard(s.T(), s.db, "math", 2, models.RawCard{Front: "3+3", Back: "6"})
	testutil.InsertCard(s.T(), s.db, "math", 1, models.RawCard{Front: "2+2", Back: "4"})
	testutil.InsertCard(s.T(), s.db, "math", 2, models.RawCard{Front: "4+4", Back: "8"})

	cards, err := s.repo.LoadCards(context.Background(), repository.DeckFilter{})

	s.Require().NoError(err)
	s.Equal([]models.RawCard{
		{Front: "2+2", Back: "4"},
		{Front: "3+3", Back: "6"},
		{Front: "4+4", Back: "8"},
	}, cards)
}

func (s *DeckRepositorySuite) TestLoadCards_FilterByDeck() {
	testutil.InsertCard(s.T(), s.db, "math", 0, models.RawCard{Front: "2+2", Back: "4"})
	testutil.InsertCard(s.T(), s.db, "capitals", 0, models.RawCard{Front: "France", Back: "Paris"})

	cards, err := s.repo.LoadCards(context.Background(), repository.DeckFilter{Name: "capitals"})

	s.Require().NoError(err)
	s.Equal([]models.RawCard{{Front: "France", Back: "Paris"}}, cards)
}

func (s *DeckRepositorySuite) TestLoadCards_NullColumnsBecomeEmpty() {
	_, err := s.db.Exec(`INSERT INTO cards (deck, front, back) VALUES ('', NULL, 'x')`)
	s.Require().NoError(err)

	cards, err := s.repo.LoadCards(context.Background(), repository.DeckFilter{})

	s.Require().NoError(err)
	s.Equal([]models.RawCard{{Front: "", Back: "x"}}, cards)
}

func (s *DeckRepositorySuite) TestLoadCards_UnknownDeckIsEmpty() {
	testutil.InsertCard(s.T(), s.db, "math", 0, models.RawCard{Front: "2+2", Back: "4"})

	cards, err := s.repo.LoadCards(context.Background(), repository.DeckFilter{Name: "history"})

	s.Require().NoError(err)
	s.Empty(cards)
}

func (s *DeckRepositorySuite) TestDeckNames() {
	testutil.InsertCard(s.T(), s.db, "math", 0, models.RawCard{Front: "2+2", Back: "4"})
	testutil.InsertCard(s.T(), s.db, "capitals", 0, models.RawCard{Front: "France", Back: "Paris"})
	testutil.InsertCard(s.T(), s.db, "math", 1, models.RawCard{Front: "3+3", Back: "6"})

	names, err := sqlite.DeckNames(context.Background(), s.db)

	s.Require().NoError(err)
	s.Equal([]string{"capitals", "math"}, names)
}

func TestDeckRepositorySuite(t *testing.T) {
	suite.Run(t, new(DeckRepositorySuite))
}

func TestOpenReadOnly(t *testing.T) {
	path := testutil.NewDeckFile(t, "", models.RawCard{Front: "2+2", Back: "4"})
	ctx := context.Background()

	db, err := sqlite.OpenReadOnly(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer testutil.MustClose(t, db)

	cards, err := sqlite.NewDeckRepository(db).LoadCards(ctx, repository.DeckFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}

	if _, err := db.Exec(`DELETE FROM cards`); err == nil {
		t.Error("expected write to a read-only deck database to fail")
	}
}

func TestOpenReadOnly_MissingFile(t *testing.T) {
	_, err := sqlite.OpenReadOnly(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	if err == nil {
		t.Error("expected error opening a missing deck database")
	}
}
