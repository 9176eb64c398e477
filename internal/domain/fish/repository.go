package fish

import "context"

// Source es el puerto del loader: devuelve el catálogo completo una vez.
// Implementaciones en internal/adapters (file, http, s3, postgres, sqlite, memory).
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Fish, error)
}
