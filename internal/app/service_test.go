package service_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	service "github.com/chaithu10000/Nirmaan-AI-Scorer/internal/app"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/lexical"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/rubric"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/pkg/logger"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithNeutralSemanticScore(0.4),
			service.WithEmbedTimeout(500*time.Millisecond),
			service.WithPrecision(2),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})
}

func TestService_Start(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()
		defer svc.Stop()

		Convey("When starting the service", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := svc.Start(ctx)

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)
			})

			Convey("And it should be marked as started with a rubric", func() {
				stats := svc.GetStats()
				So(stats.Started, ShouldBeTrue)
				So(svc.Rubric(), ShouldNotBeNil)
			})
		})
	})

	Convey("Given a service with an invalid rubric", t, func() {
		svc := service.New(service.WithRubric(&rubric.Rubric{Name: "broken"}))

		Convey("When starting the service", func() {
			err := svc.Start(context.Background())

			Convey("Then it should refuse to start", func() {
				So(err, ShouldWrap, rubric.ErrMisconfigured)
			})
		})
	})
}

func TestService_Score(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := svc.Start(ctx)
		So(err, ShouldBeNil)
		defer svc.Stop()

		Convey("When scoring a transcript", func() {
			report, err := svc.Score(ctx, "Hello my name is Priya and I love reading books", 0.5)

			Convey("Then a complete report is returned", func() {
				So(err, ShouldBeNil)
				So(report.OverallScore, ShouldBeGreaterThanOrEqualTo, 0)
				So(report.OverallScore, ShouldBeLessThanOrEqualTo, 100)
				So(len(report.Criteria), ShouldEqual, len(svc.Rubric().Criteria))
			})

			Convey("And the stats reflect the scored transcript", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(stats.TotalScored, ShouldBeGreaterThanOrEqualTo, 1)
			})
		})

		Convey("When scoring with an invalid duration", func() {
			_, err := svc.Score(ctx, "hello", 0)

			Convey("Then the error propagates", func() {
				So(err, ShouldWrap, lexical.ErrInvalidDuration)
			})
		})
	})

	Convey("Given a service that was never started", t, func() {
		svc := service.New()

		Convey("When scoring a transcript", func() {
			_, err := svc.Score(context.Background(), "hello", 1.0)

			Convey("Then it should report ErrNotStarted", func() {
				So(err, ShouldWrap, service.ErrNotStarted)
			})
		})
	})
}

func TestService_Stop(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := svc.Start(ctx)
		So(err, ShouldBeNil)

		Convey("When stopping the service", func() {
			svc.Stop()

			Convey("Then it should be marked as stopped", func() {
				stats := svc.GetStats()
				So(stats.Started, ShouldBeFalse)
			})
		})
	})
}

func TestService_GetStats(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()

		Convey("When getting stats before starting", func() {
			stats := svc.GetStats()

			Convey("Then the counters are zeroed and unstarted", func() {
				So(stats.Started, ShouldBeFalse)
				So(stats.TotalScored, ShouldEqual, 0)
				So(stats.CriteriaCount, ShouldEqual, 0)
			})
		})
	})
}
