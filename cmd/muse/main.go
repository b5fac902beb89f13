package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/monplan/muse/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts app.Options

	flagSet := pflag.NewFlagSet("muse", pflag.ContinueOnError)
	flagSet.StringVar(&opts.ConfigPath, "config", "", "config file path (default: ~/.config/muse/config.toml)")
	flagSet.StringVar(&opts.APIRoot, "api-root", "", "MonPlan API root, overrides api_root")
	flagSet.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error), overrides log_level")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "MUSE: browse Monash units from the terminal.\n\nUsage:\n  muse [flags]\n\nFlags:\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "muse: %v\n", err)
		return 2
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		fmt.Fprintf(os.Stderr, "muse: unexpected argument: %s\n", rest[0])
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "muse: %v\n", err)
		return 1
	}
	return 0
}
