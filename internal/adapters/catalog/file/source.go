package file

import (
	"context"
	"fmt"
	"os"

	"fishing-finder/internal/domain/fish"
)

// Source lee el documento del catálogo desde disco ({"fish": [...]}).
type Source struct {
	path string
}

func New(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Name() string { return "file:" + s.path }

func (s *Source) Load(ctx context.Context) ([]fish.Fish, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return fish.DecodeDocument(raw)
}
