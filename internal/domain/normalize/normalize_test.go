package normalize_test

import (
	"testing"

	"github.com/discstats/nationals/internal/domain/normalize"
	"github.com/discstats/nationals/internal/domain/record"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTeam(t *testing.T) {
	Convey("Given a normalizer with the built-in tables", t, func() {
		n := normalize.New()

		Convey("Club names are uppercased and trimmed", func() {
			So(n.Team("  sockeye ", record.Club), ShouldEqual, "SOCKEYE")
			So(n.Team("shame", record.Club), ShouldEqual, "SHAME.")
		})

		Convey("Known misspellings map to the canonical name", func() {
			So(n.Team("BOHDI", record.Club), ShouldEqual, "BODHI")
			So(n.Team("bohdi", record.Club), ShouldEqual, "BODHI")
		})

		Convey("College names keep their casing", func() {
			So(n.Team("Carleton College", record.College), ShouldEqual, "Carleton")
			So(n.Team("Texas", record.College), ShouldEqual, "Texas")
		})

		Convey("Non-printable characters are stripped", func() {
			So(n.Team("FURY\u0000\u200b", record.Club), ShouldEqual, "FURY")
			So(n.Team("\u00adRiot\u0007", record.Club), ShouldEqual, "RIOT")
		})

		Convey("Unlisted names pass through unchanged", func() {
			So(n.Team("RING OF FIRE", record.Club), ShouldEqual, "RING OF FIRE")
		})

		Convey("Extra fixes can be layered on top", func() {
			n2 := normalize.New(normalize.WithTeamFixes(map[string]string{"TRAFFIC": "TRAFFIK"}))
			So(n2.Team("traffic", record.Club), ShouldEqual, "TRAFFIK")
			So(n2.Team("BOHDI", record.Club), ShouldEqual, "BODHI")
		})
	})
}

func TestRegion(t *testing.T) {
	Convey("Given a normalizer with the built-in tables", t, func() {
		n := normalize.New()

		Convey("Known misspellings are corrected", func() {
			So(n.Region("Sothwest"), ShouldEqual, "Southwest")
			So(n.Region("Mid Atlantic"), ShouldEqual, "Mid-Atlantic")
		})

		Convey("Empty input maps to the Unknown sentinel", func() {
			So(n.Region(""), ShouldEqual, record.RegionUnknown)
			So(n.Region("   "), ShouldEqual, record.RegionUnknown)
		})

		Convey("Unlisted regions pass through", func() {
			So(n.Region("Northeast"), ShouldEqual, "Northeast")
			So(n.Region("West (pre-1988)"), ShouldEqual, "West (pre-1988)")
		})
	})
}

func TestDivisions(t *testing.T) {
	Convey("Given a normalizer", t, func() {
		n := normalize.New()

		Convey("Club headings match substring markers", func() {
			labels := n.Divisions([]string{
				"National Championships - Mixed Division",
				"National Championships - Open Division",
				"National Championships - Women's Division",
			}, record.Club, 2005)
			So(labels, ShouldResemble, []string{"MIXED", "MENS", "WOMENS"})
		})

		Convey("Unmatched Club headings are dropped, not guessed", func() {
			labels := n.Divisions([]string{
				"Mixed Division",
				"Hall of Fame Inductees",
			}, record.Club, 2010)
			So(labels, ShouldResemble, []string{"MIXED"})
		})

		Convey("Post-split College headings need tier and gender", func() {
			labels := n.Divisions([]string{
				"D-I Men's College Championships",
				"D-I Women's College Championships",
				"D-III Men's College Championships",
			}, record.College, 2015)
			So(labels, ShouldResemble, []string{"D-I Men's", "D-I Women's", "D-III Men's"})
		})

		Convey("Pre-split College headings fall back to whole phrases", func() {
			labels := n.Divisions([]string{"Open", "Women's"}, record.College, 2004)
			So(labels, ShouldResemble, []string{"Men's (pre-2010)", "Women's (pre-2010)"})
		})

		Convey("The schemes are never mixed within one year", func() {
			// one post-split match means the pre-split phrases are ignored
			labels := n.Divisions([]string{"D-I Men's", "Open"}, record.College, 2015)
			So(labels, ShouldResemble, []string{"D-I Men's"})
		})

		Convey("Nothing matching yields no labels", func() {
			So(n.Divisions([]string{"Spirit Winners"}, record.College, 2015), ShouldBeNil)
		})
	})
}
