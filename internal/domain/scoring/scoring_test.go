package scoring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/lexical"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/rubric"
)

// constantEmbedder returns the same vector for every text, so any pair of
// texts scores as identical.
type constantEmbedder struct{}

func (constantEmbedder) Embed(_ context.Context, _ string) ([]float64, error) {
	return []float64{0.5, 0.5, 0.5}, nil
}

type failingEmbedder struct{}

func (failingEmbedder) Embed(_ context.Context, _ string) ([]float64, error) {
	return nil, errors.New("service unavailable")
}

// blockingEmbedder imitates a remote service that never answers, returning
// only once its context is cancelled.
type blockingEmbedder struct{}

func (blockingEmbedder) Embed(ctx context.Context, _ string) ([]float64, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(5 * time.Second):
		return []float64{1, 0, 0}, nil
	}
}

// wordRun builds a transcript of n distinct non-filler words.
func wordRun(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	return strings.Join(words, " ")
}

func singleCriterionRubric(c rubric.Criterion) *rubric.Rubric {
	return &rubric.Rubric{Name: "test", Criteria: []rubric.Criterion{c}}
}

func TestEngineScore(t *testing.T) {
	Convey("Given an engine over the default rubric", t, func() {
		ctx := context.Background()
		engine := NewEngine(rubric.Default(), WithEmbedder(constantEmbedder{}))

		Convey("When scoring a normal transcript", func() {
			text := "Hello my name is Ravi and I am twenty years old. " +
				"I study at a college and I love cricket. " + wordRun(80)

			report, err := engine.Score(ctx, text, 1.0)

			Convey("Then the overall score is within range", func() {
				So(err, ShouldBeNil)
				So(report.OverallScore, ShouldBeGreaterThanOrEqualTo, 0)
				So(report.OverallScore, ShouldBeLessThanOrEqualTo, 100)
			})

			Convey("Then every rubric criterion appears once with its weight", func() {
				So(err, ShouldBeNil)
				So(len(report.Criteria), ShouldEqual, len(engine.Rubric().Criteria))
				var total float64
				for i, res := range report.Criteria {
					So(res.CriterionID, ShouldEqual, engine.Rubric().Criteria[i].ID)
					So(res.NormalizedScore, ShouldBeGreaterThanOrEqualTo, 0)
					So(res.NormalizedScore, ShouldBeLessThanOrEqualTo, 1)
					So(res.Feedback, ShouldNotBeBlank)
					total += res.Weight
				}
				So(total, ShouldEqual, engine.Rubric().TotalWeight())
			})
		})

		Convey("When scoring the same transcript twice", func() {
			text := "I am from Hyderabad and my hobby is painting " + wordRun(40)

			first, err1 := engine.Score(ctx, text, 1.5)
			second, err2 := engine.Score(ctx, text, 1.5)

			Convey("Then both reports are identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldResemble, first)
			})
		})

		Convey("When the transcript is empty", func() {
			report, err := engine.Score(ctx, "   ", 1.0)

			Convey("Then a report is still produced", func() {
				So(err, ShouldBeNil)
				So(report.WordCount, ShouldEqual, 0)
				So(report.OverallScore, ShouldBeGreaterThanOrEqualTo, 0)
				So(report.OverallScore, ShouldBeLessThanOrEqualTo, 100)
				So(len(report.Criteria), ShouldEqual, len(engine.Rubric().Criteria))
			})
		})

		Convey("When the duration is not positive", func() {
			_, err := engine.Score(ctx, "hello world", 0)

			Convey("Then scoring aborts with ErrInvalidDuration", func() {
				So(err, ShouldWrap, lexical.ErrInvalidDuration)
			})
		})
	})
}

func TestEngineRuleCriteria(t *testing.T) {
	Convey("Given single-criterion rubrics", t, func() {
		ctx := context.Background()

		Convey("When 120 words are spoken over one minute", func() {
			r := singleCriterionRubric(rubric.Criterion{
				ID: "speech_rate", DisplayName: "Speech Rate", Weight: 10,
				Kind: rubric.KindRule, Metric: rubric.MetricSpeechRate,
				Tiers: rubric.Default().Criteria[5].Tiers,
			})
			engine := NewEngine(r)

			report, err := engine.Score(ctx, wordRun(120), 1.0)

			Convey("Then the rate lands in the ideal tier", func() {
				So(err, ShouldBeNil)
				So(report.Criteria[0].RawMetric, ShouldEqual, 120)
				So(report.Criteria[0].NormalizedScore, ShouldEqual, 1.0)
				So(report.OverallScore, ShouldEqual, 100)
			})
		})

		Convey("When the rate sits exactly on a tier boundary", func() {
			r := singleCriterionRubric(rubric.Criterion{
				ID: "speech_rate", DisplayName: "Speech Rate", Weight: 10,
				Kind: rubric.KindRule, Metric: rubric.MetricSpeechRate,
				Tiers: rubric.Default().Criteria[5].Tiers,
			})
			engine := NewEngine(r)

			report, err := engine.Score(ctx, wordRun(150), 1.0)

			Convey("Then the higher tier wins", func() {
				So(err, ShouldBeNil)
				So(report.Criteria[0].RawMetric, ShouldEqual, 150)
				So(report.Criteria[0].NormalizedScore, ShouldEqual, 0.7)
			})
		})

		Convey("When 3 of 60 words are fillers", func() {
			r := singleCriterionRubric(rubric.Criterion{
				ID: "clarity", DisplayName: "Clarity", Weight: 5,
				Kind: rubric.KindRule, Metric: rubric.MetricFillerRate,
				Tiers: rubric.Default().Criteria[4].Tiers,
			})
			engine := NewEngine(r)
			text := wordRun(57) + " um uh like"

			report, err := engine.Score(ctx, text, 1.0)

			Convey("Then the filler rate is 0.05 in its tier", func() {
				So(err, ShouldBeNil)
				So(report.Criteria[0].RawMetric, ShouldAlmostEqual, 0.05, 1e-9)
				So(report.Criteria[0].NormalizedScore, ShouldEqual, 0.4)
				So(report.OverallScore, ShouldEqual, 40)
			})
		})

		Convey("When keyword topics are partially covered", func() {
			r := singleCriterionRubric(rubric.Criterion{
				ID: "content", DisplayName: "Content", Weight: 30,
				Kind: rubric.KindRule, Metric: rubric.MetricKeywordPresence,
				KeywordGroups: [][]string{
					{"name"}, {"school", "college"}, {"hobby", "hobbies"}, {"fun fact", "unique"},
				},
				Tiers: []rubric.Tier{
					{Low: 0, High: 0.5, Score: 0.2, Label: "poor"},
					{Low: 0.5, High: 1.1, Score: 1.0, Label: "good"},
				},
			})
			engine := NewEngine(r)

			report, err := engine.Score(ctx, "my name is Asha and I go to college", 1.0)

			Convey("Then half the topics count as present", func() {
				So(err, ShouldBeNil)
				So(report.Criteria[0].RawMetric, ShouldEqual, 0.5)
				So(report.Criteria[0].NormalizedScore, ShouldEqual, 1.0)
			})
		})
	})
}

func TestEngineSemanticCriteria(t *testing.T) {
	Convey("Given a rubric with one semantic criterion", t, func() {
		ctx := context.Background()
		base := rubric.Criterion{
			ID: "flow", DisplayName: "Flow", Weight: 5,
			Kind: rubric.KindSemantic, IdealText: "hello my name is",
			Tiers: []rubric.Tier{
				{Low: 0, High: 0.5, Score: 0.2, Label: "weak"},
				{Low: 0.5, High: 1.1, Score: 1.0, Label: "strong"},
			},
		}

		Convey("When the embedder treats the texts as identical", func() {
			engine := NewEngine(singleCriterionRubric(base), WithEmbedder(constantEmbedder{}))

			report, err := engine.Score(ctx, "hello my name is", 1.0)

			Convey("Then similarity is 1 and the top tier applies", func() {
				So(err, ShouldBeNil)
				So(report.Criteria[0].RawMetric, ShouldAlmostEqual, 1.0, 1e-6)
				So(report.Criteria[0].NormalizedScore, ShouldEqual, 1.0)
				So(report.Degraded, ShouldBeFalse)
			})
		})

		Convey("When the criterion remaps raw similarity", func() {
			c := base
			c.Remap = &rubric.Remap{Scale: 1.25, Offset: -0.5}
			engine := NewEngine(singleCriterionRubric(c), WithEmbedder(constantEmbedder{}))

			report, err := engine.Score(ctx, "anything at all", 1.0)

			Convey("Then the tier lookup uses the remapped value", func() {
				So(err, ShouldBeNil)
				So(report.Criteria[0].RawMetric, ShouldAlmostEqual, 1.0, 1e-6)
				// 1.0*1.25-0.5 = 0.75, strong tier
				So(report.Criteria[0].NormalizedScore, ShouldEqual, 1.0)
			})
		})

		Convey("When the criterion has no tiers", func() {
			c := base
			c.Tiers = nil
			c.Remap = &rubric.Remap{Scale: 1.25, Offset: -0.5}
			engine := NewEngine(singleCriterionRubric(c), WithEmbedder(constantEmbedder{}))

			report, err := engine.Score(ctx, "anything at all", 1.0)

			Convey("Then the remapped similarity is the normalized score", func() {
				So(err, ShouldBeNil)
				So(report.Criteria[0].NormalizedScore, ShouldAlmostEqual, 0.75, 1e-6)
			})
		})

		Convey("When the embedder fails", func() {
			engine := NewEngine(singleCriterionRubric(base), WithEmbedder(failingEmbedder{}))

			report, err := engine.Score(ctx, "hello my name is", 1.0)

			Convey("Then the criterion degrades to the neutral score", func() {
				So(err, ShouldBeNil)
				So(report.Criteria[0].NormalizedScore, ShouldEqual, 0.5)
				So(report.Criteria[0].Degraded, ShouldBeTrue)
				So(report.Degraded, ShouldBeTrue)
				So(report.Criteria[0].Feedback, ShouldContainSubstring, "unavailable")
			})
		})

		Convey("When the embedder exceeds the embed timeout", func() {
			engine := NewEngine(singleCriterionRubric(base),
				WithEmbedder(blockingEmbedder{}), WithEmbedTimeout(50*time.Millisecond))

			start := time.Now()
			report, err := engine.Score(ctx, "hello my name is", 1.0)

			Convey("Then the neutral fallback applies without waiting out the embedder", func() {
				So(err, ShouldBeNil)
				So(time.Since(start), ShouldBeLessThan, time.Second)
				So(report.Criteria[0].NormalizedScore, ShouldEqual, 0.5)
				So(report.Criteria[0].Degraded, ShouldBeTrue)
				So(report.Degraded, ShouldBeTrue)
			})
		})

		Convey("When a custom neutral score is configured", func() {
			engine := NewEngine(singleCriterionRubric(base),
				WithEmbedder(failingEmbedder{}), WithNeutralScore(0.3))

			report, err := engine.Score(ctx, "hello", 1.0)

			Convey("Then the fallback uses it", func() {
				So(err, ShouldBeNil)
				So(report.Criteria[0].NormalizedScore, ShouldEqual, 0.3)
			})
		})
	})
}

func TestEnginePrecision(t *testing.T) {
	Convey("Given an engine with two decimal places of precision", t, func() {
		r := singleCriterionRubric(rubric.Criterion{
			ID: "vocabulary", DisplayName: "Vocabulary", Weight: 10,
			Kind: rubric.KindRule, Metric: rubric.MetricTypeTokenRatio,
			Tiers: []rubric.Tier{
				{Low: 0, High: 1.1, Score: 1.0 / 3.0, Label: "flat"},
			},
		})
		engine := NewEngine(r, WithPrecision(2))

		Convey("When the weighted average is not exact", func() {
			report, err := engine.Score(context.Background(), "one two three", 1.0)

			Convey("Then the overall score is rounded to two decimals", func() {
				So(err, ShouldBeNil)
				So(report.OverallScore, ShouldEqual, 33.33)
			})
		})
	})
}
