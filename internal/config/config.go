// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer file/env on top via Load.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration for both the dashboard server and
// the scrape pipeline.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataPath locates the dataset CSV artifact. The server reads it once
	// at startup; the pipeline writes it.
	DataPath string `koanf:"data_path"`

	// ArchiveBaseURL is the root of the archival web source.
	ArchiveBaseURL string `koanf:"archive_base_url"`

	// StartYear and EndYear bound the scrape, inclusive.
	StartYear int `koanf:"start_year"`
	EndYear   int `koanf:"end_year"`

	// CompDivisions lists the competitive divisions to scrape.
	CompDivisions []string `koanf:"comp_divisions"`

	// ForwardFillRegions rewrites each team's history to its most recent
	// region during the dataset build.
	ForwardFillRegions bool `koanf:"forward_fill_regions"`

	// FetchTimeoutMS bounds a single archive page fetch.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// FetchRetries is the retry count for a failed page fetch.
	FetchRetries int `koanf:"fetch_retries"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		DataPath:           "data/national_data.csv",
		ArchiveBaseURL:     "https://www.usaultimate.org",
		StartYear:          1979,
		EndYear:            2019,
		CompDivisions:      []string{"Club", "College"},
		ForwardFillRegions: true,
		FetchTimeoutMS:     30_000,
		FetchRetries:       2,
	}
}
