package query

import (
	"math"
	"sort"

	"github.com/discstats/nationals/internal/domain/record"
)

// Messages shown by the presentation layer on empty views.
const (
	msgNoData       = "No data found"
	msgNoSpiritData = "No Spirit data found"
)

// Marker sizing for the spirit scatter. Both are monotonic in appearance
// count; the background partition is drawn smaller.
const (
	highlightMarkerScale = 1.5
	highlightMarkerBase  = 10.0
	backgroundMarkerBase = 6.0
)

// RankTick is one entry of the inverted placement axis.
type RankTick struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// TeamSeries is one team's standings over the view's full year range.
// Standings is aligned with the view's Years; nil marks a year the team
// did not appear, and the line must break there rather than interpolate.
type TeamSeries struct {
	Team        string `json:"team"`
	Highlighted bool   `json:"highlighted"`
	Standings   []*int `json:"standings"`
}

// RankingView is the placement-over-time view.
type RankingView struct {
	NoData  bool         `json:"no_data"`
	Message string       `json:"message,omitempty"`
	Years   []int        `json:"years,omitempty"`
	Teams   []TeamSeries `json:"teams,omitempty"`
	Ticks   []RankTick   `json:"ticks,omitempty"`
}

// RankingSeries builds one series per team over the inclusive year range
// observed across the whole subset. A nil highlight list means every team
// is highlighted; the flag is presentation metadata only and does not
// change the series computation.
func RankingSeries(subset []record.Record, highlight []string) RankingView {
	if len(subset) == 0 {
		return RankingView{NoData: true, Message: msgNoData}
	}

	minYear, maxYear := subset[0].Year, subset[0].Year
	maxStanding := 0
	for _, r := range subset {
		if r.Year < minYear {
			minYear = r.Year
		}
		if r.Year > maxYear {
			maxYear = r.Year
		}
		if r.Standing > maxStanding {
			maxStanding = r.Standing
		}
	}

	years := make([]int, 0, maxYear-minYear+1)
	for y := minYear; y <= maxYear; y++ {
		years = append(years, y)
	}

	highlighted := highlightSet(subset, highlight)

	teams := teamOrder(subset)
	series := make([]TeamSeries, 0, len(teams))
	for _, team := range teams {
		s := TeamSeries{
			Team:        team,
			Highlighted: highlighted[team],
			Standings:   make([]*int, len(years)),
		}
		for _, r := range subset {
			if r.Team != team {
				continue
			}
			standing := r.Standing
			s.Standings[r.Year-minYear] = &standing
		}
		series = append(series, s)
	}

	return RankingView{
		Years: years,
		Teams: series,
		Ticks: rankTicks(maxStanding, 1),
	}
}

// SummaryRow is one team's aggregate line in the summary table.
type SummaryRow struct {
	Team         string   `json:"team"`
	Appearances  int      `json:"appearances"`
	AvgPlacement float64  `json:"avg_placement"`
	AvgSpirit    *float64 `json:"avg_spirit"`
}

// SummaryView is the per-team summary table.
type SummaryView struct {
	NoData bool         `json:"no_data"`
	Rows   []SummaryRow `json:"rows,omitempty"`
}

// TeamSummary aggregates appearances, mean standing, and mean spirit per
// team. Teams with no spirit data ever reported get a missing mean, not
// zero. Rows sort by appearance count descending; ties keep input order.
func TeamSummary(subset []record.Record) SummaryView {
	if len(subset) == 0 {
		return SummaryView{NoData: true}
	}

	aggs := aggregate(subset)
	rows := make([]SummaryRow, 0, len(aggs))
	for _, a := range aggs {
		row := SummaryRow{
			Team:         a.team,
			Appearances:  a.count,
			AvgPlacement: round2(a.meanStanding()),
		}
		if a.spiritCount > 0 {
			avg := round2(a.meanSpirit())
			row.AvgSpirit = &avg
		}
		rows = append(rows, row)
	}

	// stable: ties keep first-appearance order
	sortRowsByAppearances(rows)
	return SummaryView{Rows: rows}
}

// SpiritPoint is one team's marker on the spirit/placement scatter.
type SpiritPoint struct {
	Team         string  `json:"team"`
	Appearances  int     `json:"appearances"`
	AvgSpirit    float64 `json:"avg_spirit"`
	AvgPlacement float64 `json:"avg_placement"`
	MarkerSize   float64 `json:"marker_size"`
}

// SpiritView is the spirit-vs-placement correlation view. The background
// partition carries the same statistics as the highlighted one and is
// only visually de-emphasized.
type SpiritView struct {
	NoData      bool          `json:"no_data"`
	Message     string        `json:"message,omitempty"`
	Highlighted []SpiritPoint `json:"highlighted,omitempty"`
	Background  []SpiritPoint `json:"background,omitempty"`
	Ticks       []RankTick    `json:"ticks,omitempty"`
}

// SpiritVsPlacement aggregates count, mean spirit, and mean placement per
// team, drops teams that never reported a spirit score, and partitions the
// rest by the highlight list. An empty highlighted partition yields an
// explicit no-data view.
func SpiritVsPlacement(subset []record.Record, highlight []string) SpiritView {
	if len(subset) == 0 {
		return SpiritView{NoData: true, Message: msgNoData}
	}

	highlighted := highlightSet(subset, highlight)
	aggs := aggregate(subset)

	minRank, maxRank := aggs[0].meanStanding(), aggs[0].meanStanding()
	var hi, bg []SpiritPoint
	for _, a := range aggs {
		rank := a.meanStanding()
		minRank = math.Min(minRank, rank)
		maxRank = math.Max(maxRank, rank)
		if a.spiritCount == 0 {
			continue
		}
		p := SpiritPoint{
			Team:         a.team,
			Appearances:  a.count,
			AvgSpirit:    round2(a.meanSpirit()),
			AvgPlacement: round2(rank),
		}
		if highlighted[a.team] {
			p.MarkerSize = float64(a.count)*highlightMarkerScale + highlightMarkerBase
			hi = append(hi, p)
		} else {
			p.MarkerSize = float64(a.count) + backgroundMarkerBase
			bg = append(bg, p)
		}
	}

	if len(hi) == 0 {
		return SpiritView{NoData: true, Message: msgNoSpiritData}
	}

	high := int(math.Floor(minRank))
	low := int(math.Ceil(maxRank)) + 1
	return SpiritView{
		Highlighted: hi,
		Background:  bg,
		Ticks:       rankTicks(low-1, high),
	}
}

// teamAgg accumulates per-team aggregates in first-appearance order.
type teamAgg struct {
	team        string
	count       int
	standingSum int
	spiritSum   float64
	spiritCount int
}

func (a *teamAgg) meanStanding() float64 { return float64(a.standingSum) / float64(a.count) }
func (a *teamAgg) meanSpirit() float64   { return a.spiritSum / float64(a.spiritCount) }

func aggregate(subset []record.Record) []*teamAgg {
	index := make(map[string]*teamAgg)
	var aggs []*teamAgg
	for _, r := range subset {
		a, ok := index[r.Team]
		if !ok {
			a = &teamAgg{team: r.Team}
			index[r.Team] = a
			aggs = append(aggs, a)
		}
		a.count++
		a.standingSum += r.Standing
		if r.SpiritKnown {
			a.spiritSum += r.Spirit
			a.spiritCount++
		}
	}
	return aggs
}

// teamOrder returns distinct teams in first-appearance order.
func teamOrder(subset []record.Record) []string {
	seen := make(map[string]struct{})
	var teams []string
	for _, r := range subset {
		if _, ok := seen[r.Team]; ok {
			continue
		}
		seen[r.Team] = struct{}{}
		teams = append(teams, r.Team)
	}
	return teams
}

// highlightSet resolves the highlight list: nil means every team in the
// subset is highlighted.
func highlightSet(subset []record.Record, highlight []string) map[string]bool {
	set := make(map[string]bool)
	if highlight == nil {
		for _, r := range subset {
			set[r.Team] = true
		}
		return set
	}
	for _, t := range highlight {
		set[t] = true
	}
	return set
}

// rankTicks builds the inverted placement axis: worst rank first, ordinal
// labels, down to best.
func rankTicks(from, to int) []RankTick {
	if from < to {
		return nil
	}
	ticks := make([]RankTick, 0, from-to+1)
	for v := from; v >= to; v-- {
		ticks = append(ticks, RankTick{Value: v, Label: Ordinal(v)})
	}
	return ticks
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sortRowsByAppearances(rows []SummaryRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Appearances > rows[j].Appearances
	})
}
