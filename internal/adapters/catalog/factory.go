package catalog

import (
	"context"
	"errors"
	"fmt"

	"fishing-finder/internal/adapters/catalog/file"
	"fishing-finder/internal/adapters/catalog/httpsource"
	"fishing-finder/internal/adapters/catalog/s3source"
	"fishing-finder/internal/adapters/storage/memory"
	"fishing-finder/internal/adapters/storage/postgres"
	"fishing-finder/internal/adapters/storage/sqlite"
	"fishing-finder/internal/domain/fish"
	"fishing-finder/internal/platform/config"
)

var ErrUnknownDriver = errors.New("unknown catalog driver")

// Open elige la fuente del catálogo según cfg.Driver:
//
//	file:     cfg.Path (documento JSON)
//	http:     cfg.URL  (documento JSON)
//	s3:       cfg.S3.Bucket + cfg.S3.Key (documento JSON)
//	postgres: cfg.DSN  (tabla fish)
//	sqlite:   cfg.Path (tabla fish)
//	memory:   catálogo vacío (los tests arman el suyo)
//
// closeFn libera conexiones (db) y nunca es nil.
func Open(ctx context.Context, cfg config.Catalog) (src fish.Source, closeFn func() error, err error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverFile, "":
		return file.New(cfg.Path), noop, nil

	case config.DriverHTTP:
		return httpsource.New(cfg.URL, cfg.Timeout), noop, nil

	case config.DriverS3:
		s, err := s3source.New(ctx, s3source.Config{
			Bucket:    cfg.S3.Bucket,
			Key:       cfg.S3.Key,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			PathStyle: cfg.S3.PathStyle,
		})
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, noop, fmt.Errorf("open postgres: %w", err)
		}
		return postgres.NewFishSource(db), db.Close, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		return sqlite.NewFishSource(db, cfg.Path), db.Close, nil

	case config.DriverMemory:
		return memory.NewFishSource(), noop, nil

	default:
		return nil, noop, fmt.Errorf("%w %q", ErrUnknownDriver, cfg.Driver)
	}
}

// sourceName nombra la fuente sin abrirla (para fuentes que no se pudieron abrir).
func sourceName(cfg config.Catalog) string {
	switch cfg.Driver {
	case config.DriverFile, "":
		return "file:" + cfg.Path
	case config.DriverHTTP:
		return "http:" + cfg.URL
	case config.DriverS3:
		return "s3://" + cfg.S3.Bucket + "/" + cfg.S3.Key
	case config.DriverSQLite:
		return "sqlite:" + cfg.Path
	default:
		return cfg.Driver
	}
}

// unavailableSource reemplaza a una fuente que no se pudo abrir (db caída,
// config de AWS inválida): su Load devuelve ese error y el servicio lo
// trata como cualquier otro fallo de carga.
type unavailableSource struct {
	name string
	err  error
}

func (s unavailableSource) Name() string { return s.name }

func (s unavailableSource) Load(context.Context) ([]fish.Fish, error) {
	return nil, s.err
}
