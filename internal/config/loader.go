package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/discstats/nationals/internal/domain/record"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if NATIONALS_CONFIG is set
//  3. env (prefix NATIONALS_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("NATIONALS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: NATIONALS_ADDR, NATIONALS_DATA_PATH, ...
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("NATIONALS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "nationals_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DataPath == "":
		return fmt.Errorf("%w: data_path must not be empty", ErrInvalidConfig)
	case c.StartYear > c.EndYear:
		return fmt.Errorf("%w: start_year %d after end_year %d", ErrInvalidConfig, c.StartYear, c.EndYear)
	case c.FetchTimeoutMS <= 0:
		return fmt.Errorf("%w: fetch_timeout_ms must be positive", ErrInvalidConfig)
	}
	for _, d := range c.CompDivisions {
		if _, ok := record.ParseCompDivision(d); !ok {
			return fmt.Errorf("%w: unknown comp_division %q", ErrInvalidConfig, d)
		}
	}
	return nil
}
