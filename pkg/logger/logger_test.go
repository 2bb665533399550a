package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/okian/lineup/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When initialized with defaults", func() {
			So(logger.Init(), ShouldBeNil)

			Convey("Then it is available", func() {
				So(logger.Get(), ShouldNotBeNil)
				So(logger.Named("test"), ShouldNotBeNil)
				So(logger.Sync(), ShouldBeNil)
			})
		})

		Convey("When initialized with an unknown format", func() {
			err := logger.Init(logger.WithFormat("xml"))

			Convey("Then it fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestLoggerJSON(t *testing.T) {
	Convey("Given a JSON logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(logger.Init(logger.WithFormat("json"), logger.WithOutput(&buf)), ShouldBeNil)
		So(logger.SetLevelString("info"), ShouldBeNil)

		Convey("When logging with fields and a request id", func() {
			ctx := logger.WithRequestID(context.Background(), "req-1")
			logger.Named("api").With(logger.String("activity", "rally-boss")).Info(ctx, "recommended",
				logger.Int("unfilled", 1),
				logger.Bool("ok", true),
				logger.Duration("took", time.Millisecond),
				logger.Error(errors.New("boom")),
			)

			Convey("Then one structured line is written", func() {
				var line map[string]any
				So(json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line), ShouldBeNil)
				So(line["msg"], ShouldEqual, "recommended")
				So(line["logger"], ShouldEqual, "api")
				So(line["activity"], ShouldEqual, "rally-boss")
				So(line["request_id"], ShouldEqual, "req-1")
				So(line["unfilled"], ShouldEqual, float64(1))
				So(line["ok"], ShouldEqual, true)
				So(line["source"], ShouldContainSubstring, "logger_test.go")
			})
		})

		Convey("When logging below the level", func() {
			So(logger.SetLevelString("warn"), ShouldBeNil)
			logger.Get().Info(context.Background(), "hidden")
			logger.Get().Debug(context.Background(), "hidden too")

			Convey("Then nothing is written", func() {
				So(buf.Len(), ShouldEqual, 0)
			})
		})

		Convey("When raising the level to debug", func() {
			So(logger.SetLevelString("DEBUG"), ShouldBeNil)
			logger.Get().Debug(context.Background(), "visible")

			Convey("Then debug lines are written", func() {
				So(strings.Contains(buf.String(), "visible"), ShouldBeTrue)
			})
		})

		Convey("Then unknown levels are rejected", func() {
			So(logger.SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}

func TestRequestID(t *testing.T) {
	Convey("Given contexts with and without a request id", t, func() {
		So(logger.RequestID(context.Background()), ShouldBeEmpty)
		So(logger.RequestID(logger.WithRequestID(context.Background(), "abc")), ShouldEqual, "abc")
	})
}
