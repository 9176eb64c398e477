package fish

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const spotsAny = "any"

var (
	ErrInvalidDocument = errors.New("invalid catalog document")
)

// fishJSON es la forma de cada registro en el documento del catálogo.
type fishJSON struct {
	ID        *int     `json:"id"`
	Name      string   `json:"name"`
	Lure      []string `json:"lure"`
	Spots     *Spots   `json:"spots"`
	Circle    string   `json:"circle"`
	EventOnly bool     `json:"eventOnly"`
}

// document es el contrato de wire: { "fish": [...] }
type document struct {
	Fish []fishJSON `json:"fish"`
}

// DecodeDocument parsea el documento del catálogo y valida los invariantes
// (id único, lure no vacío, spots "any" o ids positivos).
func DecodeDocument(raw []byte) ([]Fish, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidDocument)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.Fish == nil {
		return nil, fmt.Errorf("%w: missing \"fish\" field", ErrInvalidDocument)
	}

	out := make([]Fish, 0, len(doc.Fish))
	for i, fj := range doc.Fish {
		if fj.ID == nil {
			return nil, fmt.Errorf("%w: missing id at index %d", ErrInvalidDocument, i)
		}
		if fj.Spots == nil {
			return nil, fmt.Errorf("%w: missing spots at id %d", ErrInvalidDocument, *fj.ID)
		}
		out = append(out, Fish{
			ID:        *fj.ID,
			Name:      fj.Name,
			Lure:      fj.Lure,
			Spots:     *fj.Spots,
			Circle:    fj.Circle,
			EventOnly: fj.EventOnly,
		})
	}

	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate revisa los invariantes del catálogo completo.
// Lo usan también las fuentes relacionales (postgres/sqlite).
func Validate(records []Fish) error {
	seen := make(map[int]struct{}, len(records))
	for i, f := range records {
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidDocument, f.ID)
		}
		seen[f.ID] = struct{}{}

		if len(f.Lure) == 0 {
			return fmt.Errorf("%w: empty lure at id %d", ErrInvalidDocument, f.ID)
		}
		for _, l := range f.Lure {
			if strings.TrimSpace(l) == "" {
				return fmt.Errorf("%w: blank lure at id %d", ErrInvalidDocument, f.ID)
			}
		}

		if !f.Spots.IsAny() {
			ids := f.Spots.IDs()
			if len(ids) == 0 {
				return fmt.Errorf("%w: empty spots at index %d (id %d)", ErrInvalidDocument, i, f.ID)
			}
			for _, id := range ids {
				if id <= 0 {
					return fmt.Errorf("%w: non-positive spot %d at id %d", ErrInvalidDocument, id, f.ID)
				}
			}
		}
	}
	return nil
}

// FromColumns arma un Fish desde una fila relacional donde lure y spots
// se guardan como JSON (mismo formato que el documento).
func FromColumns(id int, name string, lureJSON, spotsJSON []byte, circle string, eventOnly bool) (Fish, error) {
	var lure []string
	if err := json.Unmarshal(lureJSON, &lure); err != nil {
		return Fish{}, fmt.Errorf("%w: lure at id %d: %v", ErrInvalidDocument, id, err)
	}
	var spots Spots
	if err := json.Unmarshal(spotsJSON, &spots); err != nil {
		return Fish{}, fmt.Errorf("%w: spots at id %d: %v", ErrInvalidDocument, id, err)
	}
	return Fish{
		ID:        id,
		Name:      name,
		Lure:      lure,
		Spots:     spots,
		Circle:    circle,
		EventOnly: eventOnly,
	}, nil
}

// MarshalJSON emite "any" o el arreglo de ids.
func (s Spots) MarshalJSON() ([]byte, error) {
	if s.any {
		return json.Marshal(spotsAny)
	}
	ids := s.ids
	if ids == nil {
		ids = []int{}
	}
	return json.Marshal(ids)
}

// UnmarshalJSON acepta "any" o un arreglo de enteros.
// La validación de positividad queda en Validate.
func (s *Spots) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return errors.New("spots: null")
	}

	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return fmt.Errorf("spots: %w", err)
		}
		if v != spotsAny {
			return fmt.Errorf("spots: unknown sentinel %q", v)
		}
		*s = AnySpot()
		return nil
	}

	var ids []int
	if err := json.Unmarshal(b, &ids); err != nil {
		return fmt.Errorf("spots: %w", err)
	}
	*s = SpecificSpots(ids...)
	return nil
}

// EncodeDocument es la inversa de DecodeDocument (export desde el CLI).
func EncodeDocument(records []Fish) ([]byte, error) {
	doc := document{Fish: make([]fishJSON, 0, len(records))}
	for _, f := range records {
		id := f.ID
		spots := f.Spots
		doc.Fish = append(doc.Fish, fishJSON{
			ID:        &id,
			Name:      f.Name,
			Lure:      f.Lure,
			Spots:     &spots,
			Circle:    f.Circle,
			EventOnly: f.EventOnly,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}
