package fish

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// -------------------------
// Test sources
// -------------------------

type stubSource struct {
	records []Fish
	err     error
	calls   atomic.Int32
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Load(ctx context.Context) ([]Fish, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Load_OnlyOnce(t *testing.T) {
	src := &stubSource{records: scenarioCatalog()}
	svc := NewService(src)

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if err := svc.Load(context.Background()); err != nil {
			t.Fatalf("Load #%d error: %v", i+1, err)
		}
	}
	if got := src.calls.Load(); got != 1 {
		t.Fatalf("expected source to be called once, got %d", got)
	}

	snap, ok := svc.Snapshot()
	if !ok {
		t.Fatalf("expected snapshot after load")
	}
	if snap.ID == "" || snap.Records != 2 || !snap.LoadedAt.Equal(now) {
		t.Fatalf("unexpected snapshot: %#v", snap)
	}
}

func TestService_Load_FailureDegradesToEmpty(t *testing.T) {
	boom := errors.New("boom")
	src := &stubSource{err: boom}
	svc := NewService(src)

	err := svc.Load(context.Background())
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if le.Source != "stub" || !errors.Is(err, boom) {
		t.Fatalf("unexpected load error: %#v", le)
	}

	// no reintenta
	_ = svc.Load(context.Background())
	if got := src.calls.Load(); got != 1 {
		t.Fatalf("expected no retry, got %d calls", got)
	}

	if svc.Loaded() {
		t.Fatalf("expected catalog not loaded")
	}
	if got := svc.ByName("carp"); len(got) != 0 {
		t.Fatalf("expected empty name results")
	}
	if got := svc.BySpot("3", PolicyIncludeAny); len(got) != 0 {
		t.Fatalf("expected empty spot results")
	}
	if got := svc.Table(); len(got) != 0 {
		t.Fatalf("expected empty table")
	}
	if _, err := svc.GetByID(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Load_InvalidRecordsIsLoadError(t *testing.T) {
	src := &stubSource{records: []Fish{
		{ID: 1, Name: "A", Lure: []string{"Red"}, Spots: AnySpot()},
		{ID: 1, Name: "B", Lure: []string{"Red"}, Spots: AnySpot()},
	}}
	svc := NewService(src)

	err := svc.Load(context.Background())
	if !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
	if svc.Loaded() {
		t.Fatalf("invalid catalog must not be published")
	}
}

func TestService_NilSource(t *testing.T) {
	svc := NewService(nil)
	var le *LoadError
	if err := svc.Load(context.Background()); !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
}

func TestService_CatalogIsolatedFromSource(t *testing.T) {
	records := scenarioCatalog()
	svc := NewService(&stubSource{records: records})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	records[0].Name = "Mutated"
	records[1].Lure[0] = "Mutated"

	f, err := svc.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if f.Name != "Golden Carp" {
		t.Fatalf("catalog aliased source slice")
	}
	f2, _ := svc.GetByID(2)
	if f2.Lure[0] != "Blue" {
		t.Fatalf("catalog aliased lure slice")
	}
}

func TestService_ConcurrentSearches(t *testing.T) {
	svc := NewService(&stubSource{records: scenarioCatalog()})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.Load(context.Background())
			for j := 0; j < 50; j++ {
				if got := svc.Search(Query{Mode: ModeSpot, Text: "3", Policy: PolicySpecificOnly}); len(got) != 1 {
					t.Errorf("expected 1 result, got %d", len(got))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestService_ResultsDoNotAliasCatalog(t *testing.T) {
	svc := NewService(&stubSource{records: scenarioCatalog()})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	svc.Table()[0].Lure[0] = "Purple"
	svc.ByName("golden")[0].Lure[0] = "Purple"
	svc.BySpot("3", PolicyIncludeAny)[0].Lure[0] = "Purple"
	if f, err := svc.GetByID(1); err == nil {
		f.Lure[0] = "Purple"
	}

	if got := svc.ByLure("purple"); len(got) != 0 {
		t.Fatalf("catalog mutated through a result: %v", ids(got))
	}
	if got := svc.ByLure("red"); len(got) != 1 {
		t.Fatalf("expected red lure intact, got %d results", len(got))
	}
}

// gateSource bloquea Load hasta que se cierre release.
type gateSource struct {
	started chan struct{}
	release chan struct{}
}

func (s *gateSource) Name() string { return "gate" }

func (s *gateSource) Load(ctx context.Context) ([]Fish, error) {
	close(s.started)
	<-s.release
	return nil, errors.New("unreachable")
}

func TestService_LoadErrDuringLoad(t *testing.T) {
	src := &gateSource{started: make(chan struct{}), release: make(chan struct{})}
	svc := NewService(src)

	done := make(chan error, 1)
	go func() { done <- svc.Load(context.Background()) }()

	<-src.started
	if err := svc.LoadErr(); err != nil {
		t.Fatalf("expected nil LoadErr while loading, got %v", err)
	}
	close(src.release)

	err := <-done
	var le *LoadError
	if !errors.As(err, &le) || le.Source != "gate" {
		t.Fatalf("expected *LoadError from gate, got %v", err)
	}
	if !errors.As(svc.LoadErr(), &le) {
		t.Fatalf("expected LoadErr after failed load, got %v", svc.LoadErr())
	}
}
