package router

import (
	"encoding/json"
	"net/http"
	"time"

	_ "fishing-finder/docs" // registra la documentación de swagger

	mem "fishing-finder/internal/adapters/storage/memory"
	"fishing-finder/internal/domain/fish"
	"fishing-finder/internal/domain/references"
	"fishing-finder/internal/middleware"
	"fishing-finder/internal/platform/logger"
	"fishing-finder/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Servicio ya cargado (o con la carga fallida). Si es nil, se usa un
	// catálogo vacío sin cargar.
	Fish *fish.Service

	Logger  logger.Logger    // puede ser nil
	Metrics *metrics.Metrics // puede ser nil; se crea uno propio
}

func NewRouter(opts Options) http.Handler {
	svc := opts.Fish
	if svc == nil {
		svc = fish.NewService(mem.NewFishSource())
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	if snap, ok := svc.Snapshot(); ok {
		m.SetCatalog(true, snap.Records)
	} else {
		m.SetCatalog(false, 0)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Metrics(m))

	r.Get("/health", healthHandler(svc))
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	fish.RegisterRoutes(r, svc, m)
	references.RegisterRoutes(r)

	return r
}

type healthResponse struct {
	Status        string     `json:"status"`
	CatalogLoaded bool       `json:"catalog_loaded"`
	Records       int        `json:"records"`
	SnapshotID    string     `json:"snapshot_id,omitempty"`
	LoadedAt      *time.Time `json:"loaded_at,omitempty"`
}

// healthHandler godoc
// @Summary Estado del servicio
// @Description Siempre 200. catalog_loaded=false si la carga falló (el servicio sigue respondiendo con resultados vacíos).
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func healthHandler(svc *fish.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		resp := healthResponse{Status: "ok"}
		if snap, ok := svc.Snapshot(); ok {
			resp.CatalogLoaded = true
			resp.Records = snap.Records
			resp.SnapshotID = snap.ID
			loadedAt := snap.LoadedAt
			resp.LoadedAt = &loadedAt
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
