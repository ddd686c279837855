// Package pipeline drives the full dataset build: fetch every archive
// year, clean each division's table into records, assemble the dataset
// and write it to CSV. Years and slices that cannot be parsed are
// skipped with a warning so one bad page never sinks a run.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/discstats/nationals/internal/dataset"
	"github.com/discstats/nationals/internal/domain/clean"
	"github.com/discstats/nationals/internal/domain/record"
	"github.com/discstats/nationals/internal/scrape"
	"github.com/discstats/nationals/pkg/logger"
	"github.com/discstats/nationals/pkg/metrics"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Fetcher fetches one year of one competitive division from the archive.
type Fetcher interface {
	FetchYear(ctx context.Context, year int, comp record.CompDivision) ([]scrape.Slice, error)
}

// Stats holds build run statistics.
type Stats struct {
	YearsFetched  int
	YearsSkipped  int
	SlicesCleaned int
	SlicesSkipped int
	RecordsKept   int
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
}

// Run executes a complete dataset build and returns its statistics.
func Run(ctx context.Context, fetcher Fetcher, cfg *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	runID := uuid.NewString()
	log := logger.Named("pipeline")

	log.Info(ctx, "starting dataset build",
		logger.String("runID", runID),
		logger.Int("startYear", cfg.StartYear),
		logger.Int("endYear", cfg.EndYear),
		logger.String("output", cfg.OutputPath),
		logger.Any("forwardFill", cfg.ForwardFill))

	if cfg.StartYear > cfg.EndYear {
		return nil, fmt.Errorf("%w: start year %d after end year %d", ErrBadConfig, cfg.StartYear, cfg.EndYear)
	}
	if len(cfg.CompDivisions) == 0 {
		return nil, fmt.Errorf("%w: no competitive divisions", ErrBadConfig)
	}

	cleaner := clean.New(nil)
	var slices [][]record.Record

	for _, comp := range cfg.CompDivisions {
		for year := cfg.StartYear; year <= cfg.EndYear; year++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("dataset build interrupted: %w", err)
			}
			cleaned, err := buildYear(ctx, fetcher, cleaner, year, comp, stats)
			if err != nil {
				stats.YearsSkipped++
				log.Warn(ctx, "skipping year",
					logger.Int("year", year),
					logger.String("compDivision", string(comp)),
					logger.Error(err))
				continue
			}
			stats.YearsFetched++
			slices = append(slices, cleaned...)
		}
	}

	var opts []dataset.Option
	if cfg.ForwardFill {
		opts = append(opts, dataset.WithForwardFillRegions())
	}
	records := dataset.Build(slices, opts...)
	stats.RecordsKept = len(records)

	if err := writeDataset(cfg.OutputPath, records); err != nil {
		return nil, err
	}
	updateDatasetMetrics(records)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	log.Info(ctx, "dataset build complete",
		logger.String("runID", runID),
		logger.Int("yearsFetched", stats.YearsFetched),
		logger.Int("yearsSkipped", stats.YearsSkipped),
		logger.Int("slicesCleaned", stats.SlicesCleaned),
		logger.Int("slicesSkipped", stats.SlicesSkipped),
		logger.Int("records", stats.RecordsKept),
		logger.String("duration", stats.Duration.String()))

	return stats, nil
}

// buildYear fetches one year's page and cleans every division table on
// it. A slice that fails cleaning is skipped; a fetch or structural
// failure fails the whole year.
func buildYear(ctx context.Context, fetcher Fetcher, cleaner *clean.Cleaner, year int, comp record.CompDivision, stats *Stats) ([][]record.Record, error) {
	start := time.Now()
	raw, err := fetcher.FetchYear(ctx, year, comp)
	if err != nil {
		return nil, err
	}
	metrics.RecordScrapeYearDuration(float64(time.Since(start).Milliseconds()))

	log := logger.Named("pipeline")
	var cleaned [][]record.Record
	for _, slice := range raw {
		records, err := cleaner.Records(slice.Table, year, comp, slice.Division)
		if err != nil {
			stats.SlicesSkipped++
			metrics.RecordSliceSkipped()
			log.Warn(ctx, "skipping division table",
				logger.Int("year", year),
				logger.String("compDivision", string(comp)),
				logger.String("division", slice.Division),
				logger.Error(err))
			continue
		}
		stats.SlicesCleaned++
		metrics.AddRowsKept(len(records))
		metrics.AddRowsDropped(len(slice.Table.Rows) - len(records))
		cleaned = append(cleaned, records)
	}
	return cleaned, nil
}

func writeDataset(path string, records []record.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := dataset.WriteCSV(path, records); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}

func updateDatasetMetrics(records []record.Record) {
	teams := make(map[string]struct{})
	years := make(map[int]struct{})
	for _, r := range records {
		teams[r.Team] = struct{}{}
		years[r.Year] = struct{}{}
	}
	metrics.UpdateDatasetRows(len(records))
	metrics.UpdateDatasetTeams(len(teams))
	metrics.UpdateDatasetYears(len(years))
}
