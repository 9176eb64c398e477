package fish

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// SearchObserver recibe cada búsqueda resuelta (métricas). Puede ser nil.
type SearchObserver interface {
	ObserveSearch(mode string, results int)
}

func RegisterRoutes(r chi.Router, svc *Service, obs SearchObserver) {
	r.Route("/fish", func(fr chi.Router) {
		// Vista de tabla: catálogo completo
		fr.Get("/", tableHandler(svc))

		fr.Get("/search", searchHandler(svc, obs))

		fr.Get("/{fishID}", getFishHandler(svc))
	})
}

// fishResponse representa un pez del catálogo devuelto por la API.
type fishResponse struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Lure       []string `json:"lure"`
	LureLabel  string   `json:"lure_label"`
	Spots      Spots    `json:"spots" swaggertype:"object"`
	SpotsLabel string   `json:"spots_label"`
	Circle     string   `json:"circle"`
	EventOnly  bool     `json:"event_only"`
	Image      string   `json:"image"`
}

// tableResponse es la vista de tabla.
type tableResponse struct {
	Count int            `json:"count"`
	Fish  []fishResponse `json:"fish"`
}

// searchResponse devuelve la consulta normalizada y los resultados en orden de catálogo.
type searchResponse struct {
	Mode    Mode           `json:"mode"`
	Query   string         `json:"query"`
	Policy  SpotPolicy     `json:"policy,omitempty"`
	Count   int            `json:"count"`
	Results []fishResponse `json:"results"`
}

// tableHandler godoc
// @Summary Vista de tabla
// @Description Devuelve el catálogo completo, en su orden. Si el catálogo no se pudo cargar, devuelve una lista vacía.
// @Tags fish
// @Produce json
// @Success 200 {object} tableResponse
// @Router /fish [get]
func tableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.Table()
		writeJSON(w, http.StatusOK, tableResponse{
			Count: len(items),
			Fish:  toFishResponses(items),
		})
	}
}

// searchHandler godoc
// @Summary Buscar peces
// @Description Busca por nombre, spot o señuelo. La consulta vacía devuelve cero resultados. En modo spot, una consulta no numérica o 0 también devuelve cero resultados (no es un error).
// @Tags fish
// @Produce json
// @Param mode query string false "Modo de búsqueda" Enums(name, spot, lure) default(name)
// @Param q query string false "Texto de búsqueda"
// @Param policy query string false "Política para modo spot" Enums(include-any, specific-only) default(include-any)
// @Success 200 {object} searchResponse
// @Failure 400 {string} string "invalid mode / invalid policy"
// @Router /fish/search [get]
func searchHandler(svc *Service, obs SearchObserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qs := r.URL.Query()

		mode, err := ParseMode(qs.Get("mode"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var policy SpotPolicy
		if mode == ModeSpot {
			policy, err = ParsePolicy(qs.Get("policy"))
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		q := Query{Mode: mode, Text: qs.Get("q"), Policy: policy}
		items := svc.Search(q)

		if obs != nil {
			obs.ObserveSearch(string(mode), len(items))
		}

		writeJSON(w, http.StatusOK, searchResponse{
			Mode:    mode,
			Query:   q.Text,
			Policy:  policy,
			Count:   len(items),
			Results: toFishResponses(items),
		})
	}
}

// getFishHandler godoc
// @Summary Obtener pez por ID
// @Tags fish
// @Produce json
// @Param fishID path int true "ID del pez"
// @Success 200 {object} fishResponse
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "fish not found"
// @Router /fish/{fishID} [get]
func getFishHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "fishID"))
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		f, err := svc.GetByID(id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "fish not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toFishResponse(f))
	}
}

func toFishResponse(f Fish) fishResponse {
	return fishResponse{
		ID:         f.ID,
		Name:       f.Name,
		Lure:       f.Lure,
		LureLabel:  f.LureLabel(),
		Spots:      f.Spots,
		SpotsLabel: f.SpotsLabel(),
		Circle:     f.Circle,
		EventOnly:  f.EventOnly,
		Image:      f.ImagePath(),
	}
}

func toFishResponses(items []Fish) []fishResponse {
	out := make([]fishResponse, 0, len(items))
	for _, f := range items {
		out = append(out, toFishResponse(f))
	}
	return out
}

// writeJSON está duplicado en fish y references para no crear
// un paquete de helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
