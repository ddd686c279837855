package spirit_test

import (
	"testing"

	"github.com/discstats/nationals/internal/domain/spirit"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given raw spirit score strings", t, func() {
		Convey("Legacy-scale years are rescaled linearly", func() {
			v, ok := spirit.Parse("3.0", 2010)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 10.0)

			v, ok = spirit.Parse("1", 2013)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 0.0)

			v, ok = spirit.Parse("5", 2001)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 20.0)
		})

		Convey("Modern-scale years pass through unchanged", func() {
			v, ok := spirit.Parse("15.0", 2016)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 15.0)
		})

		Convey("Comma decimal separators are normalized", func() {
			v, ok := spirit.Parse("4,5", 2010)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 17.5)
		})

		Convey("Footnote markers and whitespace are stripped", func() {
			v, ok := spirit.Parse(" 12.3* ", 2018)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 12.3)
		})

		Convey("Absent or unparsable values are missing, not zero", func() {
			_, ok := spirit.Parse("", 2018)
			So(ok, ShouldBeFalse)

			_, ok = spirit.Parse("  ", 2018)
			So(ok, ShouldBeFalse)

			_, ok = spirit.Parse("n/a", 2018)
			So(ok, ShouldBeFalse)
		})
	})
}
