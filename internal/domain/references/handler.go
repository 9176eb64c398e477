package references

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Route("/references", func(rr chi.Router) {
		rr.Get("/", listHandler())
		rr.Get("/toggles/{toggle}", toggleHandler())
		rr.Get("/{kind}", getHandler())
	})
}

// imageResponse es una imagen de referencia (mapa, señuelos, rarezas).
type imageResponse struct {
	Kind Kind   `json:"kind"`
	Path string `json:"path"`
	Alt  string `json:"alt"`
}

// listHandler godoc
// @Summary Listar imágenes de referencia
// @Tags references
// @Produce json
// @Success 200 {array} imageResponse
// @Router /references [get]
func listHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, toImageResponses(All()))
	}
}

// getHandler godoc
// @Summary Obtener imagen de referencia
// @Tags references
// @Produce json
// @Param kind path string true "Tipo de imagen" Enums(map, lures, rarity)
// @Success 200 {object} imageResponse
// @Failure 404 {string} string "unknown reference kind"
// @Router /references/{kind} [get]
func getHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, err := Get(Kind(chi.URLParam(r, "kind")))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toImageResponse(img))
	}
}

// toggleHandler godoc
// @Summary Imágenes de un toggle
// @Description Devuelve las imágenes que muestra el botón "map" o "info".
// @Tags references
// @Produce json
// @Param toggle path string true "Toggle" Enums(map, info)
// @Success 200 {array} imageResponse
// @Failure 404 {string} string "unknown reference toggle"
// @Router /references/toggles/{toggle} [get]
func toggleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imgs, err := ForToggle(Toggle(chi.URLParam(r, "toggle")))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toImageResponses(imgs))
	}
}

func toImageResponse(img Image) imageResponse {
	return imageResponse{Kind: img.Kind, Path: img.Path, Alt: img.Alt}
}

func toImageResponses(imgs []Image) []imageResponse {
	out := make([]imageResponse, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, toImageResponse(img))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
