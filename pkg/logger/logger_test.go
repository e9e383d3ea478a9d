package logger_test

import (
	"context"
	"testing"

	"github.com/chaithu10000/Nirmaan-AI-Scorer/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		err := logger.Init()
		So(err, ShouldBeNil)

		Convey("When fetching the global logger", func() {
			l := logger.Get()

			Convey("Then it should not be nil and accept all levels", func() {
				So(l, ShouldNotBeNil)
				ctx := context.Background()
				l.Debug(ctx, "debug message", logger.String("k", "v"))
				l.Info(ctx, "info message", logger.Int("n", 1))
				l.Warn(ctx, "warn message", logger.Float64("f", 1.5))
				l.Error(ctx, "error message", logger.Bool("b", true))
			})
		})

		Convey("When creating a named logger", func() {
			named := logger.Named("scoring")

			Convey("Then it should be usable", func() {
				So(named, ShouldNotBeNil)
				named.Info(context.Background(), "named message")
			})
		})

		Convey("When setting log levels from strings", func() {
			Convey("Then known levels should parse", func() {
				So(logger.SetLevelString("debug"), ShouldBeNil)
				So(logger.SetLevelString("info"), ShouldBeNil)
				So(logger.SetLevelString("WARN"), ShouldBeNil)
				So(logger.SetLevelString("warning"), ShouldBeNil)
				So(logger.SetLevelString("error"), ShouldBeNil)
				So(logger.SetLevelString(""), ShouldBeNil)
			})

			Convey("And unknown levels should error", func() {
				So(logger.SetLevelString("verbose"), ShouldNotBeNil)
			})
		})

		Convey("When syncing", func() {
			Convey("Then it should be a no-op", func() {
				So(logger.Sync(), ShouldBeNil)
			})
		})
	})
}
