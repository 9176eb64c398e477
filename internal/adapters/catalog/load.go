package catalog

import (
	"context"
	"errors"

	"fishing-finder/internal/domain/fish"
	"fishing-finder/internal/platform/config"
	"fishing-finder/internal/platform/logger"
)

// LoadService abre la fuente y carga el catálogo una vez, con cfg.Timeout.
//
// Solo devuelve error con un driver desconocido (ErrUnknownDriver).
// Si la fuente no se puede abrir (db caída, config de AWS) o falla la carga,
// queda un *fish.LoadError logueado y el servicio sigue con catálogo vacío:
// las búsquedas devuelven cero resultados.
func LoadService(ctx context.Context, cfg config.Catalog, log logger.Logger) (*fish.Service, func() error, error) {
	src, closeFn, err := Open(ctx, cfg)
	if err != nil {
		if errors.Is(err, ErrUnknownDriver) {
			return nil, closeFn, err
		}
		src = unavailableSource{name: sourceName(cfg), err: err}
	}

	svc := fish.NewService(src)

	loadCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if err := svc.Load(loadCtx); err != nil {
		var le *fish.LoadError
		if errors.As(err, &le) {
			log.Error("catalog load failed", map[string]any{
				"source": le.Source,
				"error":  le.Err,
			})
		} else {
			log.Error("catalog load failed", map[string]any{"error": err})
		}
		return svc, closeFn, nil
	}

	snap, _ := svc.Snapshot()
	log.Info("catalog loaded", map[string]any{
		"source":      src.Name(),
		"records":     snap.Records,
		"snapshot_id": snap.ID,
	})
	return svc, closeFn, nil
}
