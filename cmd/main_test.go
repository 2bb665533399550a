package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	app "github.com/okian/lineup/internal/app"
	"github.com/okian/lineup/internal/config"
	"github.com/okian/lineup/internal/domain/types"
	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	if err := logger.Init(logger.WithOutput(io.Discard)); err != nil {
		t.Fatal(err)
	}

	convey.Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := app.New(app.WithWorkerCount(2))
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		mux := newMux(ctx, svc, logger.Get())

		convey.Convey("When posting a roster through the full route stack", func() {
			body := `{"activity_id":"rally-boss","roster":[{"id":"aldric","expedition_skills":[5,5,5]},{"id":"ivo"}]}`
			req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.Convey("Then a recommendation is returned", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				var res types.RecommendationResult
				convey.So(json.Unmarshal(w.Body.Bytes(), &res), convey.ShouldBeNil)
				convey.So(res.ActivityID, convey.ShouldEqual, "rally-boss")
				convey.So(res.BySlot, convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("When requesting an unknown activity", func() {
			req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(`{"activity_id":"nope","roster":[]}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.Convey("Then it is not found", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusNotFound)
			})
		})

		convey.Convey("When requesting the docs", func() {
			req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.Convey("Then the OpenAPI spec is served", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestRun(t *testing.T) {
	if err := logger.Init(logger.WithOutput(io.Discard)); err != nil {
		t.Fatal(err)
	}

	convey.Convey("Given a config bound to an ephemeral port", t, func() {
		cfg := config.New()
		cfg.Addr = "127.0.0.1:0"

		convey.Convey("When the context is cancelled", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.Convey("Then run shuts down cleanly", func() {
				convey.So(run(ctx, cfg, logger.Get()), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the catalog file is missing", func() {
			cfg.CatalogFile = "/non/existent/catalog.yaml"

			convey.Convey("Then run fails before serving", func() {
				convey.So(run(context.Background(), cfg, logger.Get()), convey.ShouldNotBeNil)
			})
		})
	})
}

func TestUpdateSystemMetrics(t *testing.T) {
	convey.Convey("Given the metrics registry", t, func() {
		convey.Convey("When system metrics are refreshed", func() {
			updateSystemMetrics()

			convey.Convey("Then the runtime gauges are populated", func() {
				n, err := testutil.GatherAndCount(metrics.GetRegistry(), "lineup_engine_system_goroutine_count")
				convey.So(err, convey.ShouldBeNil)
				convey.So(n, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When the updater is started with a cancelled context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			convey.Convey("Then it returns", func() {
				done := make(chan struct{})
				go func() {
					startSystemMetricsUpdater(ctx, time.Millisecond)
					close(done)
				}()
				select {
				case <-done:
				case <-time.After(time.Second):
				}
				convey.So(ctx.Err(), convey.ShouldNotBeNil)
			})
		})
	})
}
