package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/monplan/muse/internal/actions"
	"github.com/monplan/muse/internal/config"
	muselog "github.com/monplan/muse/internal/log"
	"github.com/monplan/muse/internal/monplan"
	"github.com/monplan/muse/internal/state"
	"github.com/monplan/muse/internal/ui"
)

const journalSize = 256

// Options configure the MUSE application.
type Options struct {
	ConfigPath string
	APIRoot    string // overrides api_root when set
	LogLevel   string // overrides log_level when set
}

// Run boots MUSE until the UI exits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load muse config: %w", err)
	}
	applyOverrides(&cfg, opts)

	logOut, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := muselog.Init(logOut, cfg.LogLevel); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	reg := prometheus.NewRegistry()
	client, err := monplan.NewClient(cfg.APIRoot,
		monplan.WithTimeout(cfg.RequestTimeout),
		monplan.WithUserAgent(cfg.UserAgent),
		monplan.WithMetrics(monplan.NewMetrics(reg)),
		monplan.WithLogger(log.Log),
	)
	if err != nil {
		return fmt.Errorf("init monplan client: %w", err)
	}

	if cfg.MetricsAddr != "" {
		if err := ServeMetrics(ctx, cfg.MetricsAddr, reg); err != nil {
			return fmt.Errorf("serve metrics: %w", err)
		}
	}

	store := state.NewStore(journalSize, log.Log)
	acts := actions.New(store, client, log.Log)

	// The catalog is fetched once per session.
	StartCatalogFetch(ctx, acts)

	return ui.Run(ui.Options{
		Context: ctx,
		Actions: acts,
		Store:   store,
		Config:  &cfg,
	})
}

func applyOverrides(cfg *config.Config, opts Options) {
	if v := strings.TrimSpace(opts.APIRoot); v != "" {
		cfg.APIRoot = v
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}

func openLog(cfg config.Config) (io.Writer, func(), error) {
	if cfg.LogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := muselog.OpenFile(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
