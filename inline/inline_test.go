package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/boorusan-cli/boorusan/booru"
)

func TestWriteJson(t *testing.T) {
	Convey("writeJson", t, func() {
		Convey("Produces valid JSON for an empty result", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "solo", Json: true}

			So(writeJson(&buf, nil, opts), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Query, ShouldEqual, "solo")
			So(output.Result, ShouldHaveLength, 0)
		})

		Convey("Classifies media per post", func() {
			var buf bytes.Buffer
			posts := []*booru.Post{
				{ID: "1", FileURL: "https://cdn.example.com/a.webm"},
				{ID: "2", FileURL: "https://cdn.example.com/b.png"},
			}

			So(writeJson(&buf, posts, &Options{Query: "q"}), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 2)
			So(output.Result[0].Media, ShouldEqual, "Video")
			So(output.Result[1].Media, ShouldEqual, "Image")
		})
	})
}

func TestParsePostPicker(t *testing.T) {
	posts := []*booru.Post{{ID: "10"}, {ID: "20"}, {ID: "30"}}

	Convey("Post pickers", t, func() {
		Convey("first and last", func() {
			first, err := ParsePostPicker("first", "")
			So(err, ShouldBeNil)
			So(first(posts).ID, ShouldEqual, "10")

			last, err := ParsePostPicker("last", "")
			So(err, ShouldBeNil)
			So(last(posts).ID, ShouldEqual, "30")
		})

		Convey("id matches exactly or yields nil", func() {
			byID, err := ParsePostPicker("id", "20")
			So(err, ShouldBeNil)
			So(byID(posts).ID, ShouldEqual, "20")

			missing, _ := ParsePostPicker("id", "99")
			So(missing(posts), ShouldBeNil)
		})

		Convey("index is clamped to the result bounds", func() {
			byIndex, err := ParsePostPicker("index", "100")
			So(err, ShouldBeNil)
			So(byIndex(posts).ID, ShouldEqual, "30")
		})

		Convey("unknown kinds are an error", func() {
			_, err := ParsePostPicker("median", "")
			So(err, ShouldNotBeNil)
		})
	})
}
