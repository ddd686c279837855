package pipeline

import "github.com/discstats/nationals/internal/domain/record"

// Default run settings.
const (
	defaultStartYear = 1979
	defaultEndYear   = 2019
	defaultOutput    = "data/national_data.csv"
)

// Config holds configuration for one dataset build run.
type Config struct {
	StartYear     int                   // First championship year to fetch (inclusive)
	EndYear       int                   // Last championship year to fetch (inclusive)
	CompDivisions []record.CompDivision // Competitive divisions to fetch per year
	OutputPath    string                // Destination CSV file
	ForwardFill   bool                  // Rewrite historical regions to each team's latest
	Verbose       bool                  // Enable debug logging
}

// NewConfig returns a Config covering the full archive range for both
// competitive divisions.
func NewConfig() *Config {
	return &Config{
		StartYear:     defaultStartYear,
		EndYear:       defaultEndYear,
		CompDivisions: []record.CompDivision{record.Club, record.College},
		OutputPath:    defaultOutput,
		ForwardFill:   true,
	}
}
