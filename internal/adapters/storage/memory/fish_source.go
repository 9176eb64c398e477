package memory

import (
	"context"

	"fishing-finder/internal/domain/fish"
)

// fishSource sirve un catálogo armado en código (tests, modo dev, embebido).
// records no cambia después de NewFishSource.
type fishSource struct {
	records []fish.Fish
}

func NewFishSource(records ...fish.Fish) fish.Source {
	cp := make([]fish.Fish, len(records))
	copy(cp, records)
	return &fishSource{records: cp}
}

func (s *fishSource) Name() string { return "memory" }

func (s *fishSource) Load(ctx context.Context) ([]fish.Fish, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]fish.Fish, len(s.records))
	copy(out, s.records)
	return out, nil
}
