package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/discstats/nationals/internal/dataset"
	"github.com/discstats/nationals/internal/domain/record"
	. "github.com/smartystreets/goconvey/convey"
)

func row(year int, team, region string, standing int) record.Record {
	return record.Record{
		Year:         year,
		CompDivision: record.Club,
		Division:     "WOMENS",
		Team:         team,
		Region:       region,
		Standing:     standing,
	}
}

func TestBuild(t *testing.T) {
	Convey("Given cleaned per-year slices", t, func() {
		slices := [][]record.Record{
			{row(2005, "BENT", "East", 5)},
			{row(2010, "BENT", "Northeast", 7), row(2010, "FURY", "Southwest", 1)},
			{row(2015, "BENT", "Northeast", 9)},
		}

		Convey("Build concatenates them in input order", func() {
			out := dataset.Build(slices)
			So(out, ShouldHaveLength, 4)
			So(out[0].Year, ShouldEqual, 2005)
			So(out[0].Region, ShouldEqual, "East")
			So(out[3].Year, ShouldEqual, 2015)
		})

		Convey("Forward fill rewrites a team's history to its latest region", func() {
			out := dataset.Build(slices, dataset.WithForwardFillRegions())
			So(out[0].Team, ShouldEqual, "BENT")
			So(out[0].Region, ShouldEqual, "Northeast")
			So(out[1].Region, ShouldEqual, "Northeast")
			So(out[3].Region, ShouldEqual, "Northeast")
			// single-region groups are untouched
			So(out[2].Team, ShouldEqual, "FURY")
			So(out[2].Region, ShouldEqual, "Southwest")
		})

		Convey("Ties on standing survive the build untouched", func() {
			tied := [][]record.Record{{
				row(2019, "A", "Northeast", 3),
				row(2019, "B", "Northeast", 3),
			}}
			out := dataset.Build(tied)
			So(out[0].Standing, ShouldEqual, 3)
			So(out[1].Standing, ShouldEqual, 3)
		})
	})
}

func TestCSVRoundTrip(t *testing.T) {
	Convey("Given a built dataset", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "national_data.csv")

		records := []record.Record{
			{Year: 2010, CompDivision: record.Club, Division: "MIXED", Team: "BODHI", Region: "Southwest", Standing: 1, Spirit: 17.5, SpiritKnown: true},
			{Year: 2010, CompDivision: record.Club, Division: "MIXED", Team: "SHAME.", Region: record.RegionUnknown, Standing: 2},
			{Year: 2017, CompDivision: record.College, Division: "D-I Men's", Team: "Carleton", Region: "North Central", Standing: 1, Spirit: 13, SpiritKnown: true},
		}

		Convey("Write then read restores every field", func() {
			So(dataset.WriteCSV(path, records), ShouldBeNil)
			got, err := dataset.ReadCSV(path)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, records)
		})

		Convey("Writing twice yields byte-identical artifacts", func() {
			So(dataset.WriteCSV(path, records), ShouldBeNil)
			first, err := os.ReadFile(path)
			So(err, ShouldBeNil)

			So(dataset.WriteCSV(path, records), ShouldBeNil)
			second, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(second), ShouldEqual, string(first))
		})

		Convey("Missing spirit scores stay missing, not zero", func() {
			So(dataset.WriteCSV(path, records), ShouldBeNil)
			got, err := dataset.ReadCSV(path)
			So(err, ShouldBeNil)
			So(got[1].SpiritKnown, ShouldBeFalse)
			So(got[0].SpiritKnown, ShouldBeTrue)
		})

		Convey("A malformed artifact is rejected", func() {
			So(os.WriteFile(path, []byte("year,nope\n"), 0o600), ShouldBeNil)
			_, err := dataset.ReadCSV(path)
			So(err, ShouldNotBeNil)
		})
	})
}
