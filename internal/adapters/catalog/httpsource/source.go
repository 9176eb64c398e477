package httpsource

import (
	"context"
	"time"

	"fishing-finder/internal/domain/fish"
	"fishing-finder/internal/platform/httpclient"
)

// Source baja el documento del catálogo por HTTP (p. ej. el /fish.json del sitio).
type Source struct {
	client *httpclient.Client
	url    string
}

func New(url string, timeout time.Duration) *Source {
	return &Source{client: httpclient.New(timeout), url: url}
}

// NewWithClient permite inyectar el cliente (BaseURL + path relativo, tests).
func NewWithClient(c *httpclient.Client, pathOrURL string) *Source {
	return &Source{client: c, url: pathOrURL}
}

func (s *Source) Name() string { return "http:" + s.url }

func (s *Source) Load(ctx context.Context) ([]fish.Fish, error) {
	raw, err := s.client.Get(ctx, s.url)
	if err != nil {
		return nil, err
	}
	return fish.DecodeDocument(raw)
}
