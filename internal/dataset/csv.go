package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/discstats/nationals/internal/domain/record"
)

// header is the fixed column set of the dataset artifact. This file is the
// durable boundary between the build pipeline and the dashboard.
var header = []string{"year", "comp_division", "division", "Team", "Region", "Standing", "SpiritScores"}

// WriteCSV persists records as the canonical dataset artifact. The output
// is byte-identical for identical input.
func WriteCSV(path string, records []record.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		spiritCell := ""
		if r.SpiritKnown {
			spiritCell = strconv.FormatFloat(r.Spirit, 'g', -1, 64)
		}
		row := []string{
			strconv.Itoa(r.Year),
			string(r.CompDivision),
			r.Division,
			r.Team,
			r.Region,
			strconv.Itoa(r.Standing),
			spiritCell,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush dataset: %w", err)
	}
	return nil
}

// ReadCSV loads the dataset artifact. Spirit scores are already on the
// unified scale in the artifact, so no rescaling happens here.
func ReadCSV(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArtifact, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrBadArtifact)
	}
	if len(rows[0]) != len(header) {
		return nil, fmt.Errorf("%w: expected %d columns, got %d", ErrBadArtifact, len(header), len(rows[0]))
	}

	records := make([]record.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		year, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: bad year %q", ErrBadArtifact, row[0])
		}
		comp, ok := record.ParseCompDivision(row[1])
		if !ok {
			return nil, fmt.Errorf("%w: bad comp_division %q", ErrBadArtifact, row[1])
		}
		standing, err := strconv.Atoi(row[5])
		if err != nil {
			return nil, fmt.Errorf("%w: bad standing %q", ErrBadArtifact, row[5])
		}
		rec := record.Record{
			Year:         year,
			CompDivision: comp,
			Division:     row[2],
			Team:         row[3],
			Region:       row[4],
			Standing:     standing,
		}
		if row[6] != "" {
			v, err := strconv.ParseFloat(row[6], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad spirit score %q", ErrBadArtifact, row[6])
			}
			rec.Spirit, rec.SpiritKnown = v, true
		}
		records = append(records, rec)
	}
	return records, nil
}
