package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/flashquiz/internal/logger"
	"github.com/vytor/flashquiz/internal/models"
	"github.com/vytor/flashquiz/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type deckRepository struct {
	db *sql.DB
}

// NewDeckRepository creates a DeckRepository reading the cards table of db
func NewDeckRepository(db *sql.DB) repository.DeckRepository {
	return &deckRepository{db: db}
}

func (r *deckRepository) LoadCards(ctx context.Context, filter repository.DeckFilter) ([]models.RawCard, error) {
	log := logger.FromContext(ctx).WithPrefix("sqlite_deck_repo")
	log.Debug("loading cards: deck=%q", filter.Name)

	query := sqlBuilder.Select("front", "back").From("cards")
	if filter.Name != "" {
		query = query.Where(squirrel.Eq{"deck": filter.Name})
	}
	query = query.OrderBy("position ASC", "id ASC")

	stmt, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Error("failed to query cards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.RawCard
	for rows.Next() {
		var front, back sql.NullString
		if err := rows.Scan(&front, &back); err != nil {
			log.Error("failed to scan card row: %v", err)
			return nil, err
		}
		cards = append(cards, models.RawCard{Front: front.String, Back: back.String})
	}
	if err := rows.Err(); err != nil {
		log.Error("failed to iterate card rows: %v", err)
		return nil, err
	}
	log.Debug("found %d cards", len(cards))
	return cards, nil
}

// DeckNames lists the distinct deck names stored in db, sorted.
func DeckNames(ctx context.Context, db *sql.DB) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("sqlite_deck_repo")

	stmt, args, err := sqlBuilder.Select("DISTINCT deck").From("cards").OrderBy("deck ASC").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Error("failed to list decks: %v", err)
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
