package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			manager := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

			Convey("Then defaults are applied", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "lineup")
				So(manager.subsystem, ShouldEqual, "engine")
				So(manager.enabled, ShouldBeTrue)
				So(manager.RefreshInterval(), ShouldEqual, defaultRefreshInterval)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRefreshInterval(5*time.Second),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.RecordRecommendation("rally-boss", OutcomeOK, time.Millisecond)

			Convey("Then metric names and labels follow the options", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := map[string]bool{}
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["test_namespace_test_subsystem_recommendations_total"], ShouldBeTrue)
				So(manager.RefreshInterval(), ShouldEqual, 5*time.Second)
			})
		})

		Convey("When options carry empty values", func() {
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithRefreshInterval(0),
				WithConstLabels(nil),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "lineup")
				So(manager.subsystem, ShouldEqual, "engine")
				So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
				So(manager.RefreshInterval(), ShouldEqual, defaultRefreshInterval)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("When recording recommendations", func() {
			m.RecordRecommendation("rally-boss", OutcomeOK, 2*time.Millisecond)
			m.RecordRecommendation("rally-boss", OutcomeOK, 3*time.Millisecond)
			m.RecordRecommendation("nope", OutcomeUnknownActivity, time.Millisecond)
			m.RecordAssignment("rally-boss", 2, 4)
			m.RecordAssignment("rally-boss", 0, 1)

			Convey("Then counters reflect activity and outcome", func() {
				So(testutil.ToFloat64(m.recommendations.WithLabelValues("rally-boss", OutcomeOK)), ShouldEqual, 2)
				So(testutil.ToFloat64(m.recommendations.WithLabelValues("nope", OutcomeUnknownActivity)), ShouldEqual, 1)
				So(testutil.ToFloat64(m.unfilledSlots.WithLabelValues("rally-boss")), ShouldEqual, 2)
				So(testutil.CollectAndCount(m.recommendationLatency), ShouldEqual, 2)
			})
		})

		Convey("When updating gauges", func() {
			m.UpdateTables(6, 12)
			m.UpdateWorkerCount(4)
			m.UpdateSystem(1024, 10, 0.5)
			m.RecordRosterSize(30)

			Convey("Then they hold the last value", func() {
				So(testutil.ToFloat64(m.activitiesRegistered), ShouldEqual, 6)
				So(testutil.ToFloat64(m.catalogHeroes), ShouldEqual, 12)
				So(testutil.ToFloat64(m.workerCount), ShouldEqual, 4)
				So(testutil.ToFloat64(m.systemMemoryUsage), ShouldEqual, 1024)
				So(testutil.ToFloat64(m.systemGoroutineCount), ShouldEqual, 10)
			})
		})

		Convey("When recording HTTP traffic and errors", func() {
			m.RecordHTTPRequest("/recommendations", "POST", "200", 4)
			m.RecordHTTPRequest("/recommendations", "POST", "404", 1)
			m.RecordError("api", "unknown_activity", "warning")
			m.RecordErrorByEndpoint("/recommendations", "POST", "unknown_activity")

			Convey("Then each label set is counted", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("/recommendations", "POST", "200")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("/recommendations", "POST", "404")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.errorRateByComponent.WithLabelValues("api", "unknown_activity")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.errorRateByType.WithLabelValues("unknown_activity", "warning")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.errorRateByEndpoint.WithLabelValues("/recommendations", "POST", "unknown_activity")), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a disabled manager", t, func() {
		m := NewManager(WithMetricsEnabled(false), WithPrometheusRegistry(prometheus.NewRegistry()))
		m.RecordRecommendation("rally-boss", OutcomeOK, time.Millisecond)
		m.UpdateTables(6, 12)

		Convey("Then observations are ignored", func() {
			So(testutil.CollectAndCount(m.recommendations), ShouldEqual, 0)
			So(testutil.ToFloat64(m.activitiesRegistered), ShouldEqual, 0)
		})
	})
}

func TestGlobalMetrics(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then package helpers record without panicking", func() {
			So(func() {
				RecordRecommendation("rally-boss", OutcomeOK, time.Millisecond)
				RecordAssignment("rally-boss", 1, 2)
				RecordRosterSize(12)
				UpdateTables(6, 12)
				UpdateWorkerCount(2)
				RecordHTTPRequest("/healthz", "GET", "200", 1)
				RecordError("service", "invalid_roster", "warning")
				RecordErrorByEndpoint("/recommendations", "POST", "invalid_roster")
				UpdateSystem(1, 1, 0)
			}, ShouldNotPanic)
		})

		Convey("Then the custom registry exposes lineup metrics", func() {
			So(Default(), ShouldNotBeNil)
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
