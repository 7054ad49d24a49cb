package cookies

import (
	"testing"

	"github.com/boorusan-cli/boorusan/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHeaderJSON(t *testing.T) {
	Convey("JSON cookie export", t, func() {
		Convey("Matching domain yields name=value", func() {
			content := `[{"domain":"sub.allthefallen.moe","name":"session","value":"abc"}]`
			So(Header(content, "allthefallen.moe"), ShouldEqual, "session=abc")
		})

		Convey("Non-matching domain yields empty string", func() {
			content := `[{"domain":"example.com","name":"session","value":"abc"}]`
			So(Header(content, "allthefallen.moe"), ShouldEqual, "")
		})

		Convey("Multiple cookies join with semicolons", func() {
			content := `[
				{"domain":".allthefallen.moe","name":"a","value":"1"},
				{"domain":"booru.allthefallen.moe","name":"b","value":"2"},
				{"domain":"elsewhere.net","name":"c","value":"3"}
			]`
			So(Header(content, "allthefallen.moe"), ShouldEqual, "a=1; b=2")
		})

		Convey("Malformed JSON yields empty string, no panic", func() {
			So(Header(`[{"domain":`, "allthefallen.moe"), ShouldEqual, "")
		})
	})
}

func TestHeaderNetscape(t *testing.T) {
	Convey("Netscape cookie jar", t, func() {
		Convey("A valid 7-field line yields its pair", func() {
			line := "allthefallen.moe\tTRUE\t/\tFALSE\t0\tuid\t42"
			So(Header(line, "allthefallen.moe"), ShouldEqual, "uid=42")
		})

		Convey("Short lines are ignored without error", func() {
			line := "allthefallen.moe\tTRUE\t/\tFALSE"
			So(Header(line, "allthefallen.moe"), ShouldEqual, "")
		})

		Convey("Comments and blank lines are skipped", func() {
			content := "# Netscape HTTP Cookie File\n\nallthefallen.moe\tTRUE\t/\tFALSE\t0\tuid\t42\n"
			So(Header(content, "allthefallen.moe"), ShouldEqual, "uid=42")
		})

		Convey("Foreign domains are filtered out", func() {
			content := "example.com\tTRUE\t/\tFALSE\t0\tuid\t42"
			So(Header(content, "allthefallen.moe"), ShouldEqual, "")
		})
	})
}

func TestHeaderEmpty(t *testing.T) {
	Convey("Empty input", t, func() {
		So(Header("", "allthefallen.moe"), ShouldEqual, "")
		So(Header("   \n  ", "allthefallen.moe"), ShouldEqual, "")
	})
}

func TestHeaderFromFile(t *testing.T) {
	Convey("HeaderFromFile", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		Convey("Reads and parses an existing file", func() {
			err := filesystem.API().WriteFile(
				"/cookies.json",
				[]byte(`[{"domain":"allthefallen.moe","name":"s","value":"v"}]`),
				0644,
			)
			So(err, ShouldBeNil)
			So(HeaderFromFile("/cookies.json", "allthefallen.moe"), ShouldEqual, "s=v")
		})

		Convey("Missing file yields empty string", func() {
			So(HeaderFromFile("/nope.txt", "allthefallen.moe"), ShouldEqual, "")
		})

		Convey("Empty path yields empty string", func() {
			So(HeaderFromFile("", "allthefallen.moe"), ShouldEqual, "")
		})
	})
}
