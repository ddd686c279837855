package main

import (
	"fmt"
	"strings"

	"github.com/discstats/nationals/internal/domain/record"
)

// parseDivisions turns a comma-separated flag value into competitive
// divisions, rejecting unknown names.
func parseDivisions(raw string) ([]record.CompDivision, error) {
	var comps []record.CompDivision
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		comp, ok := record.ParseCompDivision(part)
		if !ok {
			return nil, fmt.Errorf("unknown competitive division: %q", part)
		}
		comps = append(comps, comp)
	}
	if len(comps) == 0 {
		return nil, fmt.Errorf("no competitive divisions given")
	}
	return comps, nil
}
