package fish

import (
	"strconv"
	"strings"
)

// Fish representa un pez del catálogo. Se carga una sola vez y nunca se modifica.
type Fish struct {
	ID   int
	Name string

	Lure   []string // colores de señuelo, en orden; nunca vacío
	Spots  Spots    // "any" o un conjunto de spots concretos
	Circle string   // etiqueta libre de comportamiento

	EventOnly bool // solo disponible en eventos
}

// clone copia Lure. Los ids de Spots solo salen copiados (IDs).
func (f Fish) clone() Fish {
	f.Lure = append([]string(nil), f.Lure...)
	return f
}

// Spots es la variante etiquetada Any | Specific(ids).
// El valor cero es Specific sin ids, que el loader rechaza.
type Spots struct {
	any bool
	ids []int
}

// AnySpot devuelve la variante "se pesca en cualquier spot".
func AnySpot() Spots {
	return Spots{any: true}
}

// SpecificSpots arma la variante concreta. Los duplicados se colapsan
// conservando el orden de primera aparición.
func SpecificSpots(ids ...int) Spots {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return Spots{ids: out}
}

func (s Spots) IsAny() bool { return s.any }

// Contains solo mira el conjunto concreto; Any no contiene ningún spot
// en particular (la política de búsqueda decide qué hacer con Any).
func (s Spots) Contains(spot int) bool {
	if s.any {
		return false
	}
	for _, id := range s.ids {
		if id == spot {
			return true
		}
	}
	return false
}

// IDs devuelve una copia de los spots concretos (nil si es Any).
func (s Spots) IDs() []int {
	if s.any || len(s.ids) == 0 {
		return nil
	}
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s Spots) String() string {
	if s.any {
		return spotsAny
	}
	parts := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ", ")
}

// Labels de presentación (tabla, tarjetas y API).

func (f Fish) LureLabel() string {
	return strings.Join(f.Lure, " / ")
}

func (f Fish) SpotsLabel() string {
	if f.Spots.IsAny() {
		return "Any spot"
	}
	return f.Spots.String()
}

func (f Fish) EventLabel() string {
	if f.EventOnly {
		return "Yes"
	}
	return "No"
}

// ImagePath es la key del asset de imagen: /fish/<Nombre_Con_Guiones>.webp
func (f Fish) ImagePath() string {
	return ImagePath(f.Name)
}

func ImagePath(name string) string {
	return "/fish/" + strings.Join(strings.Split(name, " "), "_") + ".webp"
}
