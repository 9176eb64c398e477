package postgres

import (
	"context"
	"database/sql"

	"fishing-finder/internal/domain/fish"
)

// Schema de la tabla fish. lure y spots guardan el mismo JSON que el documento
// ("any" o [1,2]); position conserva el orden del catálogo.
const Schema = `
CREATE TABLE IF NOT EXISTS fish (
	id         INTEGER PRIMARY KEY,
	position   INTEGER NOT NULL,
	name       TEXT    NOT NULL,
	lure       JSONB   NOT NULL,
	spots      JSONB   NOT NULL,
	circle     TEXT    NOT NULL DEFAULT '',
	event_only BOOLEAN NOT NULL DEFAULT FALSE
)`

type FishSource struct {
	db *sql.DB
}

func NewFishSource(db *sql.DB) *FishSource {
	return &FishSource{db: db}
}

func (s *FishSource) Name() string { return "postgres" }

func (s *FishSource) Load(ctx context.Context) ([]fish.Fish, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			id, name,
			lure::text, spots::text,
			circle, event_only
		FROM fish
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]fish.Fish, 0)
	for rows.Next() {
		var (
			id        int
			name      string
			lure      []byte
			spots     []byte
			circle    string
			eventOnly bool
		)
		if err := rows.Scan(&id, &name, &lure, &spots, &circle, &eventOnly); err != nil {
			return nil, err
		}

		f, err := fish.FromColumns(id, name, lure, spots, circle, eventOnly)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, rows.Err()
}
