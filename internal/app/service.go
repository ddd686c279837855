// Package service provides the core business service that implements
// the dependencies required by the HTTP API. It holds the cleaned
// championship dataset in memory and answers filter and view queries
// against it.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/discstats/nationals/internal/dataset"
	"github.com/discstats/nationals/internal/domain/record"
	"github.com/discstats/nationals/internal/query"
	"github.com/discstats/nationals/pkg/logger"
	"github.com/discstats/nationals/pkg/metrics"
)

// Service implements the API dependencies for the championship results
// system. The dataset is loaded once at start and never mutated, so
// reads after Start need no locking.
type Service struct {
	mu sync.RWMutex

	// Dataset
	records  []record.Record
	dataPath string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataPath sets the CSV file the dataset is loaded from at start.
func WithDataPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataPath = path
		}
	}
}

// WithRecords preloads the dataset, bypassing the CSV load at start.
func WithRecords(records []record.Record) Option {
	return func(s *Service) {
		s.records = records
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataPath: "data/national_data.csv",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the dataset and marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting results service...")

	if s.records == nil {
		records, err := dataset.ReadCSV(s.dataPath)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrLoadDataset, s.dataPath, err)
		}
		s.records = records
	}

	s.updateDatasetMetrics()
	s.started = true

	s.logger.Info(ctx, "results service started",
		logger.Int("records", len(s.records)),
		logger.String("dataPath", s.dataPath),
	)

	return nil
}

// Stop marks the service stopped. The in-memory dataset needs no
// teardown.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "results service stopped")
}

// Divisions lists the division choices for one competitive division,
// in dropdown order.
func (s *Service) Divisions(ctx context.Context, comp string) ([]query.Choice, error) {
	c, err := s.parseComp(comp)
	if err != nil {
		return nil, err
	}
	defer s.observe("divisions", time.Now())
	return query.ListDivisions(s.records, c), nil
}

// Regions lists the region choices for one division, in dropdown order
// with the all-regions choice first.
func (s *Service) Regions(ctx context.Context, comp, division string) ([]query.Choice, error) {
	c, err := s.parseComp(comp)
	if err != nil {
		return nil, err
	}
	defer s.observe("regions", time.Now())
	return query.ListRegions(s.records, c, division), nil
}

// Rankings returns the year-by-year placement series for the filtered
// subset, with the given teams highlighted.
func (s *Service) Rankings(ctx context.Context, comp, division, region string, highlight []string) (query.RankingView, error) {
	c, err := s.parseComp(comp)
	if err != nil {
		return query.RankingView{}, err
	}
	defer s.observe("rankings", time.Now())
	subset := query.Subset(s.records, c, division, region)
	return query.RankingSeries(subset, highlight), nil
}

// Summary returns the per-team appearance summary for the filtered
// subset.
func (s *Service) Summary(ctx context.Context, comp, division, region string) (query.SummaryView, error) {
	c, err := s.parseComp(comp)
	if err != nil {
		return query.SummaryView{}, err
	}
	defer s.observe("summary", time.Now())
	subset := query.Subset(s.records, c, division, region)
	return query.TeamSummary(subset), nil
}

// Spirit returns the spirit-versus-placement scatter for the filtered
// subset, with the given teams highlighted.
func (s *Service) Spirit(ctx context.Context, comp, division, region string, highlight []string) (query.SpiritView, error) {
	c, err := s.parseComp(comp)
	if err != nil {
		return query.SpiritView{}, err
	}
	defer s.observe("spirit", time.Now())
	subset := query.Subset(s.records, c, division, region)
	return query.SpiritVsPlacement(subset, highlight), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make(map[string]struct{})
	years := make(map[int]struct{})
	for _, r := range s.records {
		teams[r.Team] = struct{}{}
		years[r.Year] = struct{}{}
	}

	return map[string]interface{}{
		"started":  s.started,
		"records":  len(s.records),
		"teams":    len(teams),
		"years":    len(years),
		"dataPath": s.dataPath,
	}
}

func (s *Service) parseComp(comp string) (record.CompDivision, error) {
	c, ok := record.ParseCompDivision(comp)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBadCompDivision, comp)
	}
	return c, nil
}

// observe records latency and view metrics for one served query.
func (s *Service) observe(view string, start time.Time) {
	metrics.RecordQueryLatency(float64(time.Since(start).Milliseconds()))
	metrics.RecordViewServed(view)
}

func (s *Service) updateDatasetMetrics() {
	teams := make(map[string]struct{})
	years := make(map[int]struct{})
	for _, r := range s.records {
		teams[r.Team] = struct{}{}
		years[r.Year] = struct{}{}
	}
	metrics.UpdateDatasetRows(len(s.records))
	metrics.UpdateDatasetTeams(len(teams))
	metrics.UpdateDatasetYears(len(years))
}
