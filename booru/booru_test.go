package booru

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseRating(t *testing.T) {
	Convey("ParseRating", t, func() {
		Convey("Known codes map to display labels", func() {
			So(ParseRating("g"), ShouldEqual, RatingGeneral)
			So(ParseRating("s"), ShouldEqual, RatingSensitive)
			So(ParseRating("q"), ShouldEqual, RatingQuestionable)
			So(ParseRating("e"), ShouldEqual, RatingExplicit)
		})

		Convey("Anything else maps to Unknown", func() {
			So(ParseRating(""), ShouldEqual, RatingUnknown)
			So(ParseRating("x"), ShouldEqual, RatingUnknown)
		})
	})
}

func TestParseCategory(t *testing.T) {
	Convey("ParseCategory", t, func() {
		Convey("Mapped codes", func() {
			So(ParseCategory(0), ShouldEqual, CategoryGeneral)
			So(ParseCategory(1), ShouldEqual, CategoryArtist)
			So(ParseCategory(3), ShouldEqual, CategoryCopyright)
			So(ParseCategory(4), ShouldEqual, CategoryCharacter)
			So(ParseCategory(5), ShouldEqual, CategoryMeta)
		})

		Convey("Unmapped codes fall to general, including 2", func() {
			So(ParseCategory(2), ShouldEqual, CategoryGeneral)
			So(ParseCategory(-1), ShouldEqual, CategoryGeneral)
			So(ParseCategory(42), ShouldEqual, CategoryGeneral)
		})
	})
}

func TestQueryDefaults(t *testing.T) {
	Convey("Query defaults", t, func() {
		So(NewPostQuery().Limit, ShouldEqual, 20)
		So(NewPostQuery().Page, ShouldEqual, 0)
		So(NewTagQuery().Limit, ShouldEqual, 100)
		So(NewCommentQuery().Limit, ShouldEqual, 20)
	})
}

func TestPostString(t *testing.T) {
	Convey("Post String", t, func() {
		p := &Post{ID: "42", Width: 800, Height: 600, Score: -3}
		So(p.String(), ShouldEqual, "#42 (800x600, score -3)")
	})
}
