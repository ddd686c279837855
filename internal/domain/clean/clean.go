// Package clean validates and coerces raw scraped result tables into typed
// records. The raw dynamic shape never propagates past this boundary.
package clean

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/discstats/nationals/internal/domain/normalize"
	"github.com/discstats/nationals/internal/domain/record"
	"github.com/discstats/nationals/internal/domain/spirit"
)

// Table is one raw result table as delivered by the scraping collaborator:
// a column-heading list and raw string rows.
type Table struct {
	Headings []string
	Rows     [][]string
}

// standingDrops are the known non-numeric standings whose rows are excluded
// from the dataset entirely. Keys are upper-case.
var standingDrops = map[string]struct{}{
	"DQ":      {},
	"DNF":     {},
	"UNKNOWN": {},
	"?":       {},
}

// Cleaner turns raw tables into normalized records.
type Cleaner struct {
	norm *normalize.Normalizer
}

// New creates a Cleaner. A nil normalizer means the built-in tables.
func New(norm *normalize.Normalizer) *Cleaner {
	if norm == nil {
		norm = normalize.New()
	}
	return &Cleaner{norm: norm}
}

// Records converts one raw table into typed records. Year, competitive
// division, and division label are supplied by the caller, not parsed from
// the table. Rows missing a team or standing are dropped; standings in the
// known drop list are dropped; any other non-numeric standing aborts the
// whole table with ErrUnknownStanding.
func (c *Cleaner) Records(t Table, year int, comp record.CompDivision, division string) ([]record.Record, error) {
	cols, err := resolveColumns(t.Headings)
	if err != nil {
		return nil, err
	}

	var out []record.Record
	for _, row := range t.Rows {
		team := cell(row, cols.team)
		rawStanding := strings.TrimSpace(cell(row, cols.standing))
		if strings.TrimSpace(team) == "" || rawStanding == "" {
			continue
		}
		if _, dropped := standingDrops[strings.ToUpper(rawStanding)]; dropped {
			continue
		}
		standing, err := parseStanding(rawStanding)
		if err != nil {
			return nil, err
		}

		rec := record.Record{
			Year:         year,
			CompDivision: comp,
			Division:     division,
			Team:         c.norm.Team(team, comp),
			Region:       c.norm.Region(cell(row, cols.region)),
			Standing:     standing,
		}
		rec.Spirit, rec.SpiritKnown = spirit.Parse(cell(row, cols.spirit), year)
		out = append(out, rec)
	}
	return out, nil
}

// parseStanding strips the tie marker and parses the placement. A value
// that still fails to parse indicates an unmodeled sentinel.
func parseStanding(raw string) (int, error) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "T", ""))
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStanding, raw)
	}
	return n, nil
}

// columns holds resolved column indexes; -1 means absent.
type columns struct {
	team     int
	standing int
	region   int
	spirit   int
}

// resolveColumns locates the needed columns by heading. Team/School and
// Standing are required; Region and SpiritScores are optional.
func resolveColumns(headings []string) (columns, error) {
	cols := columns{team: -1, standing: -1, region: -1, spirit: -1}
	for i, h := range headings {
		switch h := strings.ToLower(strings.TrimSpace(h)); {
		case strings.Contains(h, "team"), strings.Contains(h, "school"):
			cols.team = i
		case strings.Contains(h, "standing"), strings.Contains(h, "place"):
			cols.standing = i
		case strings.Contains(h, "region"):
			cols.region = i
		case strings.Contains(h, "spirit"):
			cols.spirit = i
		}
	}
	if cols.team < 0 {
		return cols, fmt.Errorf("%w: team", ErrMissingColumn)
	}
	if cols.standing < 0 {
		return cols, fmt.Errorf("%w: standing", ErrMissingColumn)
	}
	return cols, nil
}

// cell returns the trimmed value at index i, or "" when the column is
// absent or the row is short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
