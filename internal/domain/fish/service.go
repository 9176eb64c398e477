package fish

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("fish not found")
)

// LoadError: falló el fetch o el parseo del catálogo. No se reintenta.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Snapshot describe el catálogo cargado.
type Snapshot struct {
	ID       string
	LoadedAt time.Time
	Records  int
}

type catalogState struct {
	records  []Fish
	byID     map[int]int // id -> índice en records
	snapshot Snapshot
}

// Service carga el catálogo una sola vez y expone el motor de filtros
// sobre esa copia inmutable.
type Service struct {
	src Source
	now func() time.Time

	once   sync.Once
	failed atomic.Pointer[LoadError]
	state  atomic.Pointer[catalogState]
}

func NewService(src Source) *Service {
	return &Service{
		src: src,
		now: time.Now,
	}
}

// Load ejecuta la fuente exactamente una vez. Llamadas posteriores
// devuelven el mismo resultado sin volver a tocar la fuente.
// Si falla, el catálogo queda vacío y las búsquedas devuelven vacío.
func (s *Service) Load(ctx context.Context) error {
	s.once.Do(func() {
		if le := s.load(ctx); le != nil {
			s.failed.Store(le)
		}
	})
	return s.LoadErr()
}

func (s *Service) load(ctx context.Context) *LoadError {
	if s.src == nil {
		return &LoadError{Source: "none", Err: errors.New("no catalog source configured")}
	}

	records, err := s.src.Load(ctx)
	if err != nil {
		return &LoadError{Source: s.src.Name(), Err: err}
	}
	if err := Validate(records); err != nil {
		return &LoadError{Source: s.src.Name(), Err: err}
	}

	// copia propia: nadie fuera del servicio puede mutar el catálogo
	owned := make([]Fish, len(records))
	for i, f := range records {
		owned[i] = f.clone()
	}

	byID := make(map[int]int, len(owned))
	for i, f := range owned {
		byID[f.ID] = i
	}

	s.state.Store(&catalogState{
		records: owned,
		byID:    byID,
		snapshot: Snapshot{
			ID:       uuid.NewString(),
			LoadedAt: s.now(),
			Records:  len(owned),
		},
	})
	return nil
}

// Loaded indica si hay catálogo disponible.
func (s *Service) Loaded() bool {
	return s.state.Load() != nil
}

// Snapshot devuelve los datos de la carga (false si no hay catálogo).
func (s *Service) Snapshot() (Snapshot, bool) {
	st := s.state.Load()
	if st == nil {
		return Snapshot{}, false
	}
	return st.snapshot, true
}

// LoadErr devuelve el error de la carga, si hubo. Se puede llamar en
// cualquier momento, también mientras Load está corriendo (nil hasta que falle).
func (s *Service) LoadErr() error {
	if le := s.failed.Load(); le != nil {
		return le
	}
	return nil
}

func (s *Service) catalog() []Fish {
	st := s.state.Load()
	if st == nil {
		return nil
	}
	return st.records
}

// Search aplica el motor de filtros al catálogo cargado.
func (s *Service) Search(q Query) []Fish {
	return Search(s.catalog(), q)
}

func (s *Service) ByName(query string) []Fish {
	return FilterByName(s.catalog(), query)
}

func (s *Service) ByLure(query string) []Fish {
	return FilterByLure(s.catalog(), query)
}

func (s *Service) BySpot(query string, policy SpotPolicy) []Fish {
	return FilterBySpot(s.catalog(), query, policy)
}

// Table devuelve el catálogo completo (vista de tabla).
func (s *Service) Table() []Fish {
	return Table(s.catalog())
}

func (s *Service) GetByID(id int) (Fish, error) {
	st := s.state.Load()
	if st == nil {
		return Fish{}, ErrNotFound
	}
	i, ok := st.byID[id]
	if !ok {
		return Fish{}, ErrNotFound
	}
	return st.records[i].clone(), nil
}
