package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"fishing-finder/internal/domain/fish"

	_ "modernc.org/sqlite" // driver sqlite en Go puro
)

// Schema equivalente al de postgres; lure y spots como JSON en TEXT.
const Schema = `
CREATE TABLE IF NOT EXISTS fish (
	id         INTEGER PRIMARY KEY,
	position   INTEGER NOT NULL,
	name       TEXT    NOT NULL,
	lure       TEXT    NOT NULL,
	spots      TEXT    NOT NULL,
	circle     TEXT    NOT NULL DEFAULT '',
	event_only INTEGER NOT NULL DEFAULT 0
)`

// Open abre (o crea) el archivo sqlite. Una sola conexión alcanza.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

type FishSource struct {
	db   *sql.DB
	path string
}

func NewFishSource(db *sql.DB, path string) *FishSource {
	return &FishSource{db: db, path: path}
}

func (s *FishSource) Name() string { return "sqlite:" + s.path }

func (s *FishSource) Load(ctx context.Context) ([]fish.Fish, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, lure, spots, circle, event_only
		FROM fish
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select fish: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]fish.Fish, 0)
	for rows.Next() {
		var (
			id        int
			name      string
			lure      string
			spots     string
			circle    string
			eventOnly bool
		)
		if err := rows.Scan(&id, &name, &lure, &spots, &circle, &eventOnly); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		f, err := fish.FromColumns(id, name, []byte(lure), []byte(spots), circle, eventOnly)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Seed escribe un catálogo completo (usado por el CLI "import" y los tests).
func Seed(ctx context.Context, db *sql.DB, records []fish.Fish) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create fish table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM fish`); err != nil {
		return fmt.Errorf("clear fish table: %w", err)
	}

	for i, f := range records {
		lure, err := json.Marshal(f.Lure)
		if err != nil {
			return err
		}
		spots, err := json.Marshal(f.Spots)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO fish (id, position, name, lure, spots, circle, event_only) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			f.ID, i, f.Name, string(lure), string(spots), f.Circle, f.EventOnly,
		); err != nil {
			return fmt.Errorf("insert fish %d: %w", f.ID, err)
		}
	}
	return tx.Commit()
}
