package app

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/monplan/muse/internal/config"
)

type fakeCatalog struct {
	err   error
	calls int
}

func (f *fakeCatalog) FetchAllUnits(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestStartCatalogFetch_ReportsResultOnce(t *testing.T) {
	for _, want := range []error{nil, errors.New("boom")} {
		f := &fakeCatalog{err: want}
		done := StartCatalogFetch(context.Background(), f)

		select {
		case got := <-done:
			if got != want {
				t.Fatalf("result = %v, want %v", got, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("catalog fetch never finished")
		}
		if _, ok := <-done; ok {
			t.Fatalf("done channel not closed")
		}
		if f.calls != 1 {
			t.Fatalf("calls = %d, want 1", f.calls)
		}
	}
}

func TestServeMetrics_ExposesRegistryUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "muse_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := ServeMetrics(ctx, addr, reg); err != nil {
		t.Fatalf("ServeMetrics returned error: %v", err)
	}

	resp, err := http.Get("http://" + addr + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(body), "muse_test_total 1") {
		t.Fatalf("metrics body missing counter:\n%s", body)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	applyOverrides(&cfg, Options{APIRoot: " http://localhost:8080 ", LogLevel: "DEBUG"})
	if cfg.APIRoot != "http://localhost:8080" || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %#v, want overrides applied", cfg)
	}

	cfg = config.Default()
	applyOverrides(&cfg, Options{})
	if cfg.APIRoot != config.Default().APIRoot {
		t.Fatalf("APIRoot = %q, want default", cfg.APIRoot)
	}
}
