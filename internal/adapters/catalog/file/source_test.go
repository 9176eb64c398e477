package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"fishing-finder/internal/domain/fish"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fish.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fish":[
		{"id":1,"name":"Golden Carp","lure":["Red"],"spots":"any","circle":"slow","eventOnly":false}
	]}`), 0o600))

	got, err := New(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Golden Carp", got[0].Name)
	assert.True(t, got[0].Spots.IsAny())
}

func TestSource_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestSource_InvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fish.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fish": "lots"}`), 0o600))

	_, err := New(path).Load(context.Background())
	assert.ErrorIs(t, err, fish.ErrInvalidDocument)
}
