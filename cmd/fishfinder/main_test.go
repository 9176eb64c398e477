package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogDoc = `{"fish":[
	{"id":1,"name":"Golden Carp","lure":["Red","Yellow"],"spots":"any","circle":"slow"},
	{"id":2,"name":"Silver Carp","lure":["Blue"],"spots":[3,4],"circle":"fast","eventOnly":true},
	{"id":3,"name":"Pike","lure":["Green"],"spots":[2]}
]}`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fish.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogDoc), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CATALOG_DRIVER", "file")
	t.Setenv("CONFIG_FILE", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearch_ByName(t *testing.T) {
	path := writeCatalog(t)

	out, err := execute(t, "search", "carp", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Golden Carp")
	assert.Contains(t, out, "Silver Carp")
	assert.NotContains(t, out, "Pike")
	assert.Contains(t, out, "2 result(s)")
}

func TestSearch_SpotPolicies(t *testing.T) {
	path := writeCatalog(t)

	out, err := execute(t, "search", "3", "--mode", "spot", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Golden Carp")
	assert.Contains(t, out, "Silver Carp")

	out, err = execute(t, "search", "3", "--mode", "spot", "--policy", "specific-only", "--catalog", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "Golden Carp")
	assert.Contains(t, out, "1 result(s)")

	out, err = execute(t, "search", "0", "--mode", "spot", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No fish found.")
}

func TestSearch_InvalidMode(t *testing.T) {
	path := writeCatalog(t)

	_, err := execute(t, "search", "red", "--mode", "color", "--catalog", path)
	assert.Error(t, err)
}

func TestSearch_MissingCatalogDegradesToEmpty(t *testing.T) {
	out, err := execute(t, "search", "carp", "--catalog", filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "No fish found.")
}

func TestTable(t *testing.T) {
	path := writeCatalog(t)

	out, err := execute(t, "table", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 fish")
	assert.Less(t, strings.Index(out, "Golden Carp"), strings.Index(out, "Pike"))
}

func TestRefs(t *testing.T) {
	out, err := execute(t, "refs", "map")
	require.NoError(t, err)
	assert.Contains(t, out, "/FishingMap_Names.png")
	assert.NotContains(t, out, "/lures.png")

	out, err = execute(t, "refs")
	require.NoError(t, err)
	assert.Contains(t, out, "/rarity.jpg")

	_, err = execute(t, "refs", "weather")
	assert.Error(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	path := writeCatalog(t)
	dir := t.TempDir()
	exported := filepath.Join(dir, "export.json")
	dbPath := filepath.Join(dir, "fish.db")

	_, err := execute(t, "export", "--catalog", path, "--out", exported)
	require.NoError(t, err)

	out, err := execute(t, "import", "--catalog", exported, "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 3 fish")

	out, err = execute(t, "search", "blue", "--mode", "lure", "--driver", "sqlite", "--catalog", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Silver Carp")
}

func TestExport_FailsWhenNotLoaded(t *testing.T) {
	_, err := execute(t, "export", "--catalog", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSearch_SQLiteWithoutPathFails(t *testing.T) {
	_, err := execute(t, "--driver", "sqlite", "search", "carp")
	assert.Error(t, err)
}

func TestCatalogConfig_FlagMapping(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("CATALOG_DRIVER", "file")
	t.Setenv("CATALOG_S3_BUCKET", "env-bucket")

	tests := []struct {
		name       string
		opts       rootOptions
		wantBucket string
		wantKey    string
		wantPath   string
		wantErr    bool
	}{
		{name: "s3 url", opts: rootOptions{driver: "s3", catalog: "s3://fish/data/fish.json"}, wantBucket: "fish", wantKey: "data/fish.json"},
		{name: "s3 bare key keeps env bucket", opts: rootOptions{driver: "S3", catalog: "fish.json"}, wantBucket: "env-bucket", wantKey: "fish.json"},
		{name: "sqlite path", opts: rootOptions{driver: "sqlite", catalog: "fish.db"}, wantBucket: "env-bucket", wantPath: "fish.db"},
		{name: "memory rejects catalog", opts: rootOptions{driver: "memory", catalog: "fish.json"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.opts.catalogConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, c.S3.Bucket)
			assert.Equal(t, tt.wantKey, c.S3.Key)
			assert.Equal(t, tt.wantPath, c.Path)
		})
	}
}
