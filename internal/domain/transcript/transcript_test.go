package transcript_test

import (
	"testing"

	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/transcript"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given the text normalizer", t, func() {
		Convey("When normalizing ordinary text", func() {
			n := transcript.Normalize("Hello, my name is Priya! I study at Green Valley School.")

			Convey("Then tokens are lowercase with punctuation stripped", func() {
				So(n.Tokens, ShouldResemble, []string{
					"hello", "my", "name", "is", "priya",
					"i", "study", "at", "green", "valley", "school",
				})
				So(n.WordCount, ShouldEqual, 11)
			})
		})

		Convey("When the input is empty", func() {
			n := transcript.Normalize("")

			Convey("Then the result is a valid zero value", func() {
				So(n.WordCount, ShouldEqual, 0)
				So(len(n.Tokens), ShouldEqual, 0)
			})
		})

		Convey("When the input is whitespace only", func() {
			n := transcript.Normalize("   \n\t  ")

			Convey("Then the word count is zero", func() {
				So(n.WordCount, ShouldEqual, 0)
				So(len(n.Tokens), ShouldEqual, 0)
			})
		})

		Convey("When the input contains digits", func() {
			n := transcript.Normalize("I am 12 years old, in grade 7.")

			Convey("Then numeric tokens survive", func() {
				So(n.Tokens, ShouldContain, "12")
				So(n.Tokens, ShouldContain, "7")
			})
		})

		Convey("When the input contains contractions", func() {
			n := transcript.Normalize("I don't think it's hard.")

			Convey("Then contractions stay single tokens", func() {
				So(n.Tokens, ShouldContain, "don't")
				So(n.Tokens, ShouldContain, "it's")
			})
		})

		Convey("When counting distinct tokens", func() {
			n := transcript.Normalize("the cat and the dog and the bird")

			Convey("Then repeats collapse", func() {
				So(n.WordCount, ShouldEqual, 8)
				So(n.DistinctCount(), ShouldEqual, 5)
			})
		})

		Convey("When scoring the same text twice", func() {
			a := transcript.Normalize("Um, so I like cricket.")
			b := transcript.Normalize("Um, so I like cricket.")

			Convey("Then the results are identical", func() {
				So(a, ShouldResemble, b)
			})
		})
	})
}
