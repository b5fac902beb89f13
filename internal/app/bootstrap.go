package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownGrace = 2 * time.Second

// CatalogFetcher is the part of actions.Actions the bootstrap needs.
type CatalogFetcher interface {
	FetchAllUnits(ctx context.Context) error
}

// StartCatalogFetch launches the one-shot catalog fetch in the background
// and returns a channel that receives its result. Failures are not retried;
// the store is left invalidated.
func StartCatalogFetch(ctx context.Context, fetcher CatalogFetcher) <-chan error {
	done := make(chan error, 1)
	go func() {
		err := fetcher.FetchAllUnits(ctx)
		if err != nil {
			log.WithError(err).Error("initial catalog fetch failed")
		}
		done <- err
		close(done)
	}()
	return done
}

// ServeMetrics exposes reg on addr at /metrics until ctx is cancelled.
// It returns once the listener is bound.
func ServeMetrics(ctx context.Context, addr string, reg *prometheus.Registry) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics server stopped")
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.WithField("addr", ln.Addr().String()).Info("serving metrics")
	return nil
}
