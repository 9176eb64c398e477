package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp evita que un .env real del repo se cuele en los tests.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverFile, cfg.Catalog.Driver)
	assert.Equal(t, DefaultCatalogPath, cfg.Catalog.Path)
	assert.Equal(t, DefaultLoadTimeout, cfg.Catalog.Timeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yml := []byte(`
port: "9000"
log:
  level: debug
catalog:
  driver: s3
  timeout: 3s
  s3:
    bucket: from-file
    key: fish.json
    path_style: true
`)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, yml, 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("CATALOG_S3_BUCKET", "from-env")
	t.Setenv("PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DriverS3, cfg.Catalog.Driver)
	assert.Equal(t, "from-env", cfg.Catalog.S3.Bucket)
	assert.Equal(t, "fish.json", cfg.Catalog.S3.Key)
	assert.True(t, cfg.Catalog.S3.PathStyle)
	assert.Equal(t, 3*time.Second, cfg.Catalog.Timeout)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CATALOG_DRIVER=HTTP\nCATALOG_URL=http://example.test/fish.json\n"), 0o600))

	// godotenv escribe en el entorno del proceso; limpiamos al terminar
	t.Cleanup(func() {
		_ = os.Unsetenv("CATALOG_DRIVER")
		_ = os.Unsetenv("CATALOG_URL")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverHTTP, cfg.Catalog.Driver)
	assert.Equal(t, "http://example.test/fish.json", cfg.Catalog.URL)
}

func TestLoad_InvalidValues(t *testing.T) {
	chdirTemp(t)

	t.Setenv("CATALOG_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]Config{
		"unknown driver": {Catalog: Catalog{Driver: "ftp"}},
		"http no url":    {Catalog: Catalog{Driver: DriverHTTP}},
		"s3 no key":      {Catalog: Catalog{Driver: DriverS3, S3: S3{Bucket: "b"}}},
		"postgres no dsn": {Catalog: Catalog{Driver: DriverPostgres}},
		"sqlite no path": {Catalog: Catalog{Driver: DriverSQLite}},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Config{Catalog: Catalog{Driver: DriverMemory}}.Validate())
}

func TestLoad_SQLiteRequiresExplicitPath(t *testing.T) {
	chdirTemp(t)

	t.Setenv("CATALOG_DRIVER", "sqlite")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CATALOG_PATH", "fish.db")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fish.db", cfg.Catalog.Path)
}

func TestLoadWith_OverrideBeforeDefaults(t *testing.T) {
	chdirTemp(t)

	// el override cambia el driver: el path por defecto del documento JSON no aplica
	_, err := LoadWith(func(c *Config) error {
		c.Catalog.Driver = DriverSQLite
		return nil
	})
	assert.Error(t, err)

	cfg, err := LoadWith(func(c *Config) error {
		c.Catalog.Driver = "FILE"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalogPath, cfg.Catalog.Path)
}
