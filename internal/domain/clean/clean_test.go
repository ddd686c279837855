package clean_test

import (
	"errors"
	"testing"

	"github.com/discstats/nationals/internal/domain/clean"
	"github.com/discstats/nationals/internal/domain/record"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecords(t *testing.T) {
	Convey("Given a cleaner with the built-in normalizer", t, func() {
		c := clean.New(nil)
		headings := []string{"Standing", "Team", "Region", "SpiritScores"}

		Convey("Raw rows become typed, normalized records", func() {
			table := clean.Table{
				Headings: headings,
				Rows: [][]string{
					{"1", "BOHDI", "Sothwest", "4,5"},
					{"2T", "shame", "", ""},
				},
			}
			recs, err := c.Records(table, 2010, record.Club, "MIXED")
			So(err, ShouldBeNil)
			So(recs, ShouldHaveLength, 2)

			So(recs[0].Team, ShouldEqual, "BODHI")
			So(recs[0].Standing, ShouldEqual, 1)
			So(recs[0].Region, ShouldEqual, "Southwest")
			So(recs[0].SpiritKnown, ShouldBeTrue)
			So(recs[0].Spirit, ShouldEqual, 17.5)
			So(recs[0].Year, ShouldEqual, 2010)
			So(recs[0].CompDivision, ShouldEqual, record.Club)
			So(recs[0].Division, ShouldEqual, "MIXED")

			So(recs[1].Team, ShouldEqual, "SHAME.")
			So(recs[1].Standing, ShouldEqual, 2)
			So(recs[1].Region, ShouldEqual, record.RegionUnknown)
			So(recs[1].SpiritKnown, ShouldBeFalse)
		})

		Convey("Tie markers are stripped from standings", func() {
			table := clean.Table{Headings: headings, Rows: [][]string{{"3T", "FURY", "Southwest", ""}}}
			recs, err := c.Records(table, 2015, record.Club, "WOMENS")
			So(err, ShouldBeNil)
			So(recs[0].Standing, ShouldEqual, 3)
		})

		Convey("Known sentinel standings drop the row entirely", func() {
			table := clean.Table{
				Headings: headings,
				Rows: [][]string{
					{"DQ", "CHEATERS", "Northeast", ""},
					{"dnf", "TIRED", "Northeast", ""},
					{"4", "RIOT", "Northwest", "11.1"},
				},
			}
			recs, err := c.Records(table, 2016, record.Club, "WOMENS")
			So(err, ShouldBeNil)
			So(recs, ShouldHaveLength, 1)
			So(recs[0].Team, ShouldEqual, "RIOT")
		})

		Convey("Rows missing team or standing are dropped", func() {
			table := clean.Table{
				Headings: headings,
				Rows: [][]string{
					{"", "SOCKEYE", "Northwest", ""},
					{"2", "", "Northwest", ""},
					{"3", "RING OF FIRE", "Southeast", ""},
				},
			}
			recs, err := c.Records(table, 2012, record.Club, "MENS")
			So(err, ShouldBeNil)
			So(recs, ShouldHaveLength, 1)
			So(recs[0].Team, ShouldEqual, "RING OF FIRE")
		})

		Convey("An unmodeled standing sentinel is a loud error", func() {
			table := clean.Table{Headings: headings, Rows: [][]string{{"FORFEIT", "BODHI", "Southwest", ""}}}
			_, err := c.Records(table, 2010, record.Club, "MIXED")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, clean.ErrUnknownStanding), ShouldBeTrue)
		})

		Convey("Missing required columns are an error", func() {
			table := clean.Table{Headings: []string{"Standing", "Region"}, Rows: nil}
			_, err := c.Records(table, 2010, record.Club, "MIXED")
			So(errors.Is(err, clean.ErrMissingColumn), ShouldBeTrue)

			table = clean.Table{Headings: []string{"Team"}, Rows: nil}
			_, err = c.Records(table, 2010, record.Club, "MIXED")
			So(errors.Is(err, clean.ErrMissingColumn), ShouldBeTrue)
		})

		Convey("School headings resolve the team column for College", func() {
			table := clean.Table{
				Headings: []string{"Standing", "School", "Region"},
				Rows:     [][]string{{"1", "Carleton College", "North Central"}},
			}
			recs, err := c.Records(table, 2017, record.College, "D-I Men's")
			So(err, ShouldBeNil)
			So(recs[0].Team, ShouldEqual, "Carleton")
		})
	})
}
