package fish

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Motor de filtros: funciones puras sobre el catálogo.
// Todas conservan el orden del catálogo y devuelven un slice nuevo
// (nunca nil) aunque no haya resultados. Cada resultado es una copia:
// modificarlo no toca el catálogo.

// FilterByName: substring case-insensitive sobre el nombre.
func FilterByName(catalog []Fish, query string) []Fish {
	needle, ok := normalizeQuery(query)
	if !ok {
		return []Fish{}
	}
	lower := newLower()
	return filter(catalog, func(f Fish) bool {
		return strings.Contains(lower.String(f.Name), needle)
	})
}

// FilterByLure: substring case-insensitive sobre cualquiera de los señuelos.
func FilterByLure(catalog []Fish, query string) []Fish {
	needle, ok := normalizeQuery(query)
	if !ok {
		return []Fish{}
	}
	lower := newLower()
	return filter(catalog, func(f Fish) bool {
		for _, l := range f.Lure {
			if strings.Contains(lower.String(l), needle) {
				return true
			}
		}
		return false
	})
}

// FilterBySpot parsea el spot y aplica la política.
// Consulta no numérica o 0 => vacío.
func FilterBySpot(catalog []Fish, query string, policy SpotPolicy) []Fish {
	spot, ok, err := ParseSpot(query)
	if err != nil || !ok {
		return []Fish{}
	}

	switch policy {
	case PolicySpecificOnly:
		return filter(catalog, func(f Fish) bool {
			return f.Spots.Contains(spot)
		})
	default:
		return filter(catalog, func(f Fish) bool {
			return f.Spots.IsAny() || f.Spots.Contains(spot)
		})
	}
}

// Table es la vista de tabla: todo el catálogo, en orden.
func Table(catalog []Fish) []Fish {
	out := make([]Fish, 0, len(catalog))
	for _, f := range catalog {
		out = append(out, f.clone())
	}
	return out
}

// Search despacha según el modo. Un modo desconocido no matchea nada.
func Search(catalog []Fish, q Query) []Fish {
	switch q.Mode {
	case ModeName:
		return FilterByName(catalog, q.Text)
	case ModeLure:
		return FilterByLure(catalog, q.Text)
	case ModeSpot:
		return FilterBySpot(catalog, q.Text, q.Policy)
	default:
		return []Fish{}
	}
}

func filter(catalog []Fish, keep func(Fish) bool) []Fish {
	out := make([]Fish, 0)
	for _, f := range catalog {
		if keep(f) {
			out = append(out, f.clone())
		}
	}
	return out
}

// normalizeQuery recorta y pasa a minúsculas; false si queda vacía.
func normalizeQuery(query string) (string, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", false
	}
	return newLower().String(q), true
}

// cases.Caser no es seguro para uso concurrente: uno por llamada.
func newLower() cases.Caser {
	return cases.Lower(language.Und)
}
