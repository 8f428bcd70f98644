package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/vytor/flashquiz/internal/logger"
)

// Schema is the layout a deck database must provide.
const Schema = `
CREATE TABLE IF NOT EXISTS cards (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    deck     TEXT NOT NULL DEFAULT '',
    front    TEXT,
    back     TEXT,
    position INTEGER NOT NULL DEFAULT 0
);
`

// OpenReadOnly opens a deck database without write access. Quiz progress is never stored.
func OpenReadOnly(ctx context.Context, path string) (*sql.DB, error) {
	log := logger.FromContext(ctx).WithPrefix("sqlite")

	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path)
	log.Debug("opening deck database: %s", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Error("failed to open deck database: %v", err)
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		log.Error("failed to connect to deck database: %v", err)
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
