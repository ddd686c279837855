package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/discstats/nationals/internal/config"
	"github.com/discstats/nationals/internal/pipeline"
	"github.com/discstats/nationals/internal/scrape"
	"github.com/discstats/nationals/pkg/logger"
)

// Default CLI constants.
const (
	defaultRunTimeout = 2 * time.Hour
)

func main() {
	defaults := config.New()

	var (
		baseURL     = flag.String("base-url", defaults.ArchiveBaseURL, "Base URL of the archive site")
		startYear   = flag.Int("start", defaults.StartYear, "First championship year to fetch")
		endYear     = flag.Int("end", defaults.EndYear, "Last championship year to fetch")
		divisions   = flag.String("divisions", "Club,College", "Comma-separated competitive divisions to fetch")
		output      = flag.String("out", defaults.DataPath, "Output CSV path")
		forwardFill = flag.Bool("forward-fill", defaults.ForwardFillRegions, "Rewrite historical regions to each team's latest")
		timeout     = flag.Duration("timeout", time.Duration(defaults.FetchTimeoutMS)*time.Millisecond, "HTTP request timeout")
		retries     = flag.Int("retries", defaults.FetchRetries, "Retry count for a failed page fetch")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	comps, err := parseDivisions(*divisions)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, defaultRunTimeout)
	defer cancel()

	client := scrape.New(
		scrape.WithBaseURL(*baseURL),
		scrape.WithTimeout(*timeout),
		scrape.WithRetries(*retries),
	)

	cfg := pipeline.NewConfig()
	cfg.StartYear = *startYear
	cfg.EndYear = *endYear
	cfg.CompDivisions = comps
	cfg.OutputPath = *output
	cfg.ForwardFill = *forwardFill
	cfg.Verbose = *verbose

	if _, err := pipeline.Run(ctx, client, cfg); err != nil {
		os.Stderr.WriteString("dataset build failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
