package rubric_test

import (
	"os"
	"testing"

	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/rubric"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaultRubric(t *testing.T) {
	Convey("Given the built-in default rubric", t, func() {
		r := rubric.Default()

		Convey("Then it should pass its own validation", func() {
			So(r.Validate(), ShouldBeNil)
		})

		Convey("And its total weight should be 70", func() {
			So(r.TotalWeight(), ShouldEqual, 70)
		})

		Convey("And criterion ids should be unique and ordered", func() {
			ids := make([]string, 0, len(r.Criteria))
			for _, c := range r.Criteria {
				ids = append(ids, c.ID)
			}
			So(ids, ShouldResemble, []string{
				"content", "flow", "vocabulary", "grammar", "clarity", "speech_rate",
			})
		})
	})
}

func TestTierLookup(t *testing.T) {
	Convey("Given a criterion with contiguous tiers", t, func() {
		c := rubric.Criterion{
			ID:     "speech_rate",
			Kind:   rubric.KindRule,
			Metric: rubric.MetricSpeechRate,
			Tiers: []rubric.Tier{
				{Low: 0, High: 100, Score: 0.5, Label: "slow"},
				{Low: 100, High: 150, Score: 1.0, Label: "ideal"},
				{Low: 150, High: 200, Score: 0.7, Label: "fast"},
			},
		}

		Convey("When the value falls inside a tier", func() {
			Convey("Then the containing tier is returned", func() {
				So(c.TierFor(120).Score, ShouldEqual, 1.0)
				So(c.TierFor(99.99).Score, ShouldEqual, 0.5)
			})
		})

		Convey("When the value sits exactly on a boundary", func() {
			Convey("Then low is inclusive and high is exclusive", func() {
				So(c.TierFor(100).Score, ShouldEqual, 1.0)
				So(c.TierFor(150).Score, ShouldEqual, 0.7)
				So(c.TierFor(0).Score, ShouldEqual, 0.5)
			})
		})

		Convey("When the value is outside the covered range", func() {
			Convey("Then it clamps to the boundary tiers", func() {
				So(c.TierFor(-5).Score, ShouldEqual, 0.5)
				So(c.TierFor(500).Score, ShouldEqual, 0.7)
			})
		})
	})
}

func TestRubricValidation(t *testing.T) {
	Convey("Given rubric validation", t, func() {
		valid := func() *rubric.Rubric {
			return &rubric.Rubric{
				Criteria: []rubric.Criterion{
					{
						ID:          "rate",
						DisplayName: "Speech Rate",
						Weight:      10,
						Kind:        rubric.KindRule,
						Metric:      rubric.MetricSpeechRate,
						Tiers: []rubric.Tier{
							{Low: 0, High: 100, Score: 0.5},
							{Low: 100, High: 1e9, Score: 1.0},
						},
					},
					{
						ID:          "flow",
						DisplayName: "Flow",
						Weight:      5,
						Kind:        rubric.KindSemantic,
						IdealText:   "a well ordered introduction",
					},
				},
			}
		}

		Convey("When the rubric is well formed", func() {
			Convey("Then validation passes", func() {
				So(valid().Validate(), ShouldBeNil)
			})
		})

		Convey("When the rubric has no criteria", func() {
			r := &rubric.Rubric{}
			Convey("Then validation fails with ErrMisconfigured", func() {
				err := r.Validate()
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, rubric.ErrMisconfigured)
			})
		})

		Convey("When a weight is zero", func() {
			r := valid()
			r.Criteria[0].Weight = 0
			Convey("Then validation fails", func() {
				So(r.Validate(), ShouldWrap, rubric.ErrMisconfigured)
			})
		})

		Convey("When criterion ids collide", func() {
			r := valid()
			r.Criteria[1].ID = "rate"
			Convey("Then validation fails", func() {
				So(r.Validate(), ShouldWrap, rubric.ErrMisconfigured)
			})
		})

		Convey("When tiers have a gap", func() {
			r := valid()
			r.Criteria[0].Tiers = []rubric.Tier{
				{Low: 0, High: 90, Score: 0.5},
				{Low: 100, High: 1e9, Score: 1.0},
			}
			Convey("Then validation fails", func() {
				So(r.Validate(), ShouldWrap, rubric.ErrMisconfigured)
			})
		})

		Convey("When tiers overlap", func() {
			r := valid()
			r.Criteria[0].Tiers = []rubric.Tier{
				{Low: 0, High: 120, Score: 0.5},
				{Low: 100, High: 1e9, Score: 1.0},
			}
			Convey("Then validation fails", func() {
				So(r.Validate(), ShouldWrap, rubric.ErrMisconfigured)
			})
		})

		Convey("When a tier score is outside the unit interval", func() {
			r := valid()
			r.Criteria[0].Tiers[0].Score = 1.5
			Convey("Then validation fails", func() {
				So(r.Validate(), ShouldWrap, rubric.ErrMisconfigured)
			})
		})

		Convey("When a semantic criterion carries malformed tiers", func() {
			r := valid()
			r.Criteria[1].Tiers = []rubric.Tier{
				{Low: 0.9, High: 0.1, Score: 7},
				{Low: 0.5, High: 0.4, Score: -3},
			}
			Convey("Then validation fails", func() {
				So(r.Criteria[1].Kind, ShouldEqual, rubric.KindSemantic)
				So(r.Validate(), ShouldWrap, rubric.ErrMisconfigured)
			})
		})

		Convey("When a semantic criterion carries well-formed tiers", func() {
			r := valid()
			r.Criteria[1].Tiers = []rubric.Tier{
				{Low: 0, High: 0.5, Score: 0.3},
				{Low: 0.5, High: 1.1, Score: 1.0},
			}
			Convey("Then validation passes", func() {
				So(r.Validate(), ShouldBeNil)
			})
		})

		Convey("When a semantic criterion lacks ideal text", func() {
			r := valid()
			r.Criteria[1].IdealText = "  "
			Convey("Then validation fails", func() {
				So(r.Validate(), ShouldWrap, rubric.ErrMisconfigured)
			})
		})

		Convey("When the kind is unknown", func() {
			r := valid()
			r.Criteria[0].Kind = "llm"
			Convey("Then validation fails", func() {
				So(r.Validate(), ShouldWrap, rubric.ErrMisconfigured)
			})
		})

		Convey("When a keyword criterion has no groups", func() {
			r := valid()
			r.Criteria[0].Metric = rubric.MetricKeywordPresence
			Convey("Then validation fails", func() {
				So(r.Validate(), ShouldWrap, rubric.ErrMisconfigured)
			})
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a rubric YAML file", t, func() {
		yamlContent := `
name: interview
criteria:
  - id: rate
    display_name: Speech Rate
    weight: 10
    kind: rule
    metric: speech_rate
    tiers:
      - {low: 0, high: 100, score: 0.5, label: slow}
      - {low: 100, high: 150, score: 1.0, label: ideal}
      - {low: 150, high: 1000000000, score: 0.6, label: fast}
  - id: topic
    display_name: Topic Fit
    weight: 20
    kind: semantic
    ideal_text: "An answer describing the candidate's background"
    remap: {scale: 1.25, offset: -0.5}
  - id: content
    display_name: Content
    weight: 15
    kind: rule
    metric: keyword_presence
    keyword_groups:
      - [name]
      - [school, college]
    tiers:
      - {low: 0, high: 0.5, score: 0.2, label: low}
      - {low: 0.5, high: 1.1, score: 1.0, label: high}
`
		path := writeTempRubric(yamlContent)
		defer func() { _ = os.Remove(path) }()

		Convey("When loading it", func() {
			r, err := rubric.LoadFile(path)

			Convey("Then it should parse and validate", func() {
				So(err, ShouldBeNil)
				So(r, ShouldNotBeNil)
				So(r.Name, ShouldEqual, "interview")
				So(len(r.Criteria), ShouldEqual, 3)
				So(r.Criteria[1].Kind, ShouldEqual, rubric.KindSemantic)
				So(r.Criteria[1].Remap.Scale, ShouldEqual, 1.25)
				So(r.Criteria[2].KeywordGroups, ShouldResemble, [][]string{{"name"}, {"school", "college"}})
				So(r.TotalWeight(), ShouldEqual, 45)
			})
		})

		Convey("When loading a file with an invalid rubric", func() {
			bad := writeTempRubric("criteria:\n  - id: x\n    weight: 0\n    kind: rule\n    metric: speech_rate\n")
			defer func() { _ = os.Remove(bad) }()

			_, err := rubric.LoadFile(bad)

			Convey("Then it should fail with ErrMisconfigured", func() {
				So(err, ShouldWrap, rubric.ErrMisconfigured)
			})
		})

		Convey("When the file does not exist", func() {
			_, err := rubric.LoadFile("/nonexistent/rubric.yaml")

			Convey("Then it should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func writeTempRubric(content string) string {
	f, err := os.CreateTemp("", "rubric-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := f.WriteString(content); err != nil {
		panic(err)
	}
	_ = f.Close()
	return f.Name()
}
