package service_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	service "github.com/discstats/nationals/internal/app"
	"github.com/discstats/nationals/internal/domain/record"
	"github.com/discstats/nationals/internal/pipeline"
	"github.com/discstats/nationals/internal/query"
	"github.com/discstats/nationals/internal/scrape"
	. "github.com/smartystreets/goconvey/convey"
)

// archivePage renders a minimal yearly archive page with one division
// per (heading, rows) pair.
func archivePage(divisions map[string][][]string, order []string) string {
	page := "<html><body>"
	for _, heading := range order {
		page += fmt.Sprintf(`<h3><a name="nats_%s"></a>%s</h3>`, heading, heading)
		page += `<table class="tablesorter"><thead><tr><th>Standing</th><th>Team</th><th>Region</th><th>SpiritScores</th></tr></thead><tbody>`
		for _, row := range divisions[heading] {
			page += "<tr>"
			for _, cell := range row {
				page += "<td>" + cell + "</td>"
			}
			page += "</tr>"
		}
		page += "</tbody></table>"
	}
	return page + "</body></html>"
}

func TestServiceIntegration(t *testing.T) {
	Convey("Given an archive with two club years", t, func() {
		pages := map[string]string{
			"/archives/2015_club.aspx": archivePage(map[string][][]string{
				"Open Division": {
					{"1", "Revolver", "Southwest", "13.5"},
					{"2", "Sock eye", "Northwest", "14.2"},
				},
				"Women's Division": {
					{"1", "FURY", "Southwest", "15.0"},
				},
			}, []string{"Open Division", "Women's Division"}),
			"/archives/2016_club.aspx": archivePage(map[string][][]string{
				"Open Division": {
					{"1T", "Sockeye", "Nothwest", "13.0"},
					{"1T", "Revolver", "Southwest", ""},
				},
			}, []string{"Open Division"}),
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			page, ok := pages[r.URL.Path]
			if !ok {
				http.NotFound(w, r)
				return
			}
			fmt.Fprint(w, page)
		}))
		defer srv.Close()

		ctx := context.Background()
		out := filepath.Join(t.TempDir(), "national_data.csv")

		client := scrape.New(scrape.WithBaseURL(srv.URL), scrape.WithRetries(0))
		cfg := pipeline.NewConfig()
		cfg.StartYear = 2015
		cfg.EndYear = 2016
		cfg.CompDivisions = []record.CompDivision{record.Club}
		cfg.OutputPath = out

		Convey("The built dataset serves coherent queries", func() {
			stats, err := pipeline.Run(ctx, client, cfg)
			So(err, ShouldBeNil)
			So(stats.RecordsKept, ShouldEqual, 5)

			svc := service.New(service.WithDataPath(out))
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()

			Convey("Team names are normalized across years", func() {
				view, err := svc.Rankings(ctx, "Club", "MENS", "all", nil)

				So(err, ShouldBeNil)
				So(view.Teams, ShouldHaveLength, 2)
				So(view.Teams[0].Team, ShouldEqual, "REVOLVER")
				So(view.Teams[1].Team, ShouldEqual, "SOCKEYE")
			})

			Convey("Tied standings count as the same placement", func() {
				view, err := svc.Rankings(ctx, "Club", "MENS", "all", nil)

				So(err, ShouldBeNil)
				// 2016 is the second year of the axis for both teams.
				So(*view.Teams[0].Standings[1], ShouldEqual, 1)
				So(*view.Teams[1].Standings[1], ShouldEqual, 1)
			})

			Convey("Region typos are corrected and forward-filled", func() {
				choices, err := svc.Regions(ctx, "Club", "MENS")

				So(err, ShouldBeNil)
				So(choices, ShouldResemble, []query.Choice{
					{Label: "All Regions", Value: "all"},
					{Label: "Southwest", Value: "Southwest"},
					{Label: "Northwest", Value: "Northwest"},
				})
			})

			Convey("Summary ranks teams by appearances", func() {
				view, err := svc.Summary(ctx, "Club", "MENS", "all")

				So(err, ShouldBeNil)
				So(view.Rows, ShouldHaveLength, 2)
				So(view.Rows[0].Appearances, ShouldEqual, 2)
			})
		})
	})
}
