package references

import (
	"errors"
	"strings"
)

var (
	ErrUnknownKind   = errors.New("unknown reference kind")
	ErrUnknownToggle = errors.New("unknown reference toggle")
)

// Kind identifica una imagen de referencia.
// @Enum map, lures, rarity
type Kind string

const (
	KindMap    Kind = "map"
	KindLures  Kind = "lures"
	KindRarity Kind = "rarity"
)

// Toggle es un botón de la vista que muestra un grupo de imágenes.
// @Enum map, info
type Toggle string

const (
	ToggleMap  Toggle = "map"
	ToggleInfo Toggle = "info"
)

// Image es una imagen de referencia de solo lectura.
type Image struct {
	Kind Kind
	Path string
	Alt  string
}

var images = []Image{
	{Kind: KindMap, Path: "/FishingMap_Names.png", Alt: "Hay Day Fishing Map"},
	{Kind: KindLures, Path: "/lures.png", Alt: "Fish Lures"},
	{Kind: KindRarity, Path: "/rarity.jpg", Alt: "Fish Rarity"},
}

// qué imágenes muestra cada toggle (info = lures a la izquierda, mapa, rarity a la derecha)
var toggles = map[Toggle][]Kind{
	ToggleMap:  {KindMap},
	ToggleInfo: {KindLures, KindMap, KindRarity},
}

// All devuelve todas las imágenes en orden fijo.
func All() []Image {
	out := make([]Image, len(images))
	copy(out, images)
	return out
}

func Get(kind Kind) (Image, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(string(kind))))
	for _, img := range images {
		if img.Kind == k {
			return img, nil
		}
	}
	return Image{}, ErrUnknownKind
}

// ForToggle devuelve las imágenes que se ven con el toggle activo.
func ForToggle(t Toggle) ([]Image, error) {
	kinds, ok := toggles[Toggle(strings.ToLower(strings.TrimSpace(string(t))))]
	if !ok {
		return nil, ErrUnknownToggle
	}
	out := make([]Image, 0, len(kinds))
	for _, k := range kinds {
		img, err := Get(k)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}
