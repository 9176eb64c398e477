package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fishing-finder/internal/domain/fish"
	"fishing-finder/internal/platform/config"
	"fishing-finder/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadService_FileLoaded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fish.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fish":[
		{"id":1,"name":"Golden Carp","lure":["Red"],"spots":"any"},
		{"id":2,"name":"Pike","lure":["Green"],"spots":[2]}
	]}`), 0o600))

	core, logs := observer.New(zapcore.InfoLevel)
	svc, closeFn, err := LoadService(context.Background(),
		config.Catalog{Driver: config.DriverFile, Path: path}, logger.FromZap(zap.New(core)))
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	assert.True(t, svc.Loaded())
	assert.Len(t, svc.Table(), 2)
	require.Equal(t, 1, logs.FilterMessage("catalog loaded").Len())
}

func TestLoadService_MissingFileDegradesToEmpty(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc, closeFn, err := LoadService(context.Background(),
		config.Catalog{Driver: config.DriverFile, Path: filepath.Join(t.TempDir(), "nope.json")},
		logger.FromZap(zap.New(core)))
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	assert.False(t, svc.Loaded())
	assert.Empty(t, svc.ByName("carp"))
	assert.Error(t, svc.LoadErr())

	entries := logs.FilterMessage("catalog load failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestLoadService_UnknownDriverIsFatal(t *testing.T) {
	svc, closeFn, err := LoadService(context.Background(), config.Catalog{Driver: "ftp"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
	assert.Nil(t, svc)
	assert.NotNil(t, closeFn)
}

// Una fuente que no se puede abrir es un fallo de carga, no un error fatal.
func TestLoadService_UnopenableSourceDegradesToEmpty(t *testing.T) {
	cases := map[string]struct {
		cfg        config.Catalog
		wantSource string
	}{
		"postgres unreachable": {
			cfg:        config.Catalog{Driver: config.DriverPostgres, DSN: "postgres://u:p@127.0.0.1:1/db?connect_timeout=2"},
			wantSource: "postgres",
		},
		"s3 without key": {
			cfg:        config.Catalog{Driver: config.DriverS3, S3: config.S3{Bucket: "fish"}},
			wantSource: "s3://fish/",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			svc, closeFn, err := LoadService(context.Background(), tc.cfg, logger.FromZap(zap.New(core)))
			require.NoError(t, err)
			require.NotNil(t, svc)
			defer func() { _ = closeFn() }()

			assert.False(t, svc.Loaded())
			assert.Empty(t, svc.Table())

			var le *fish.LoadError
			require.True(t, errors.As(svc.LoadErr(), &le), "got %v", svc.LoadErr())
			assert.Equal(t, tc.wantSource, le.Source)

			entries := logs.FilterMessage("catalog load failed").All()
			require.Len(t, entries, 1)
			assert.Equal(t, tc.wantSource, entries[0].ContextMap()["source"])
		})
	}
}
