package booru

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseSuggestions(t *testing.T) {
	Convey("Given heterogeneous autocomplete payloads", t, func() {
		Convey("Bare strings pass through", func() {
			got, err := ParseSuggestions([]byte(`["landscape", "long_hair"]`))
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []string{"landscape", "long_hair"})
		})

		Convey("Objects prefer value, then label, then name", func() {
			got, err := ParseSuggestions([]byte(`[
  {"label": "blue sky (100)", "value": "blue_sky"},
  {"label": "red sky (5)"},
  {"name": "night_sky"}
]`))
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []string{"blue_sky", "red sky", "night_sky"})
		})

		Convey("Trailing post counts are stripped", func() {
			got, err := ParseSuggestions([]byte(`["long_hair (123456)"]`))
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []string{"long_hair"})
		})

		Convey("Undecodable entries are dropped, empty results omitted", func() {
			got, err := ParseSuggestions([]byte(`[42, {"label": ""}, "ok"]`))
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []string{"ok"})
		})

		Convey("A non-array body is an error", func() {
			_, err := ParseSuggestions([]byte(`{"oops": true}`))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCleanSuggestion(t *testing.T) {
	Convey("Parenthetical counts are stripped from labels", t, func() {
		So(CleanSuggestion("tag (42)"), ShouldEqual, "tag")
		So(CleanSuggestion("tag"), ShouldEqual, "tag")
		So(CleanSuggestion(""), ShouldEqual, "")
	})
}
