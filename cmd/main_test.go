package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/discstats/nationals/internal/adapters/http/api"
	"github.com/discstats/nationals/internal/adapters/http/site"
	"github.com/discstats/nationals/internal/adapters/http/swagger"
	app "github.com/discstats/nationals/internal/app"
	"github.com/discstats/nationals/internal/config"
	"github.com/discstats/nationals/internal/domain/record"
	"github.com/discstats/nationals/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("NATIONALS_ADDR", ":8080")
			_ = os.Setenv("NATIONALS_DATA_PATH", "testdata/results.csv")
			defer func() {
				_ = os.Unsetenv("NATIONALS_ADDR")
				_ = os.Unsetenv("NATIONALS_DATA_PATH")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DataPath, convey.ShouldEqual, "testdata/results.csv")
			})
		})

		convey.Convey("When wiring the full route surface", func() {
			ctx := context.Background()
			svc := app.New(app.WithRecords([]record.Record{
				{Year: 2014, CompDivision: record.Club, Division: "MENS", Team: "SOCKEYE", Region: "Northwest", Standing: 1},
			}))
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			mux := http.NewServeMux()
			site.Register(ctx, mux)
			swagger.Register(ctx, mux)
			api.NewServer(svc, svc).Register(ctx, mux)

			get := func(path string) int {
				req := httptest.NewRequest("GET", path, http.NoBody)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				return w.Code
			}

			convey.Convey("Then every route should answer", func() {
				convey.So(get("/"), convey.ShouldEqual, http.StatusOK)
				convey.So(get("/api-docs"), convey.ShouldEqual, http.StatusOK)
				convey.So(get("/openapi.yaml"), convey.ShouldEqual, http.StatusOK)
				convey.So(get("/healthz"), convey.ShouldEqual, http.StatusOK)
				convey.So(get("/stats"), convey.ShouldEqual, http.StatusOK)
				convey.So(get("/divisions?comp=Club"), convey.ShouldEqual, http.StatusOK)
				convey.So(get("/rankings?comp=Club&division=MENS"), convey.ShouldEqual, http.StatusOK)
			})
		})
	})
}
