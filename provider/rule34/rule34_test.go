package rule34

import (
	"net/url"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/key"
	"github.com/boorusan-cli/boorusan/network"
)

func TestNew(t *testing.T) {
	Convey("A fresh adapter uses the shared HTTP client", t, func() {
		So(New().client, ShouldEqual, network.Client)
	})
}

func TestPostsURL(t *testing.T) {
	r := New()

	Convey("Given a post query", t, func() {
		viper.Set(key.Rule34JSONAPI, false)

		Convey("The dapi selectors are always present", func() {
			u, err := url.Parse(r.postsURL(booru.NewPostQuery()))
			So(err, ShouldBeNil)

			q := u.Query()
			So(q.Get("page"), ShouldEqual, "dapi")
			So(q.Get("s"), ShouldEqual, "post")
			So(q.Get("q"), ShouldEqual, "index")
		})

		Convey("Limit is clamped to 1000", func() {
			query := booru.NewPostQuery()
			query.Limit = 5000

			u, _ := url.Parse(r.postsURL(query))
			So(u.Query().Get("limit"), ShouldEqual, "1000")
		})

		Convey("Page zero omits the pid parameter", func() {
			u, _ := url.Parse(r.postsURL(booru.NewPostQuery()))
			So(u.Query().Has("pid"), ShouldBeFalse)
		})

		Convey("A positive page sets pid", func() {
			query := booru.NewPostQuery()
			query.Page = 3

			u, _ := url.Parse(r.postsURL(query))
			So(u.Query().Get("pid"), ShouldEqual, "3")
		})

		Convey("The json flag adds json=1", func() {
			viper.Set(key.Rule34JSONAPI, true)
			defer viper.Set(key.Rule34JSONAPI, false)

			u, _ := url.Parse(r.postsURL(booru.NewPostQuery()))
			So(u.Query().Get("json"), ShouldEqual, "1")
		})
	})
}

func TestParsePostsXML(t *testing.T) {
	Convey("Given a dapi XML posts document", t, func() {
		body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<posts count="1" offset="0">
  <post id="42" file_url="https://img.rule34.xxx/images/1/a.mp4"
        sample_url="https://img.rule34.xxx/samples/1/a.jpg"
        preview_url="https://img.rule34.xxx/thumbnails/1/a.jpg"
        width="1920" height="1080" tags="tag_a tag_b" score="-3"
        md5="d41d8cd98f00b204e9800998ecf8427e" rating="explicit"
        source="https://example.com/art/1"/>
</posts>`)

		posts, err := parsePostsXML(body)
		So(err, ShouldBeNil)
		So(posts, ShouldHaveLength, 1)

		Convey("Fields are mapped and normalized", func() {
			p := posts[0]
			So(p.ID, ShouldEqual, "42")
			So(p.Width, ShouldEqual, 1920)
			So(p.Height, ShouldEqual, 1080)
			So(p.Tags, ShouldEqual, "tag_a tag_b")
			So(p.Score, ShouldEqual, -3)
			So(p.Rating, ShouldEqual, booru.RatingExplicit)
		})
	})

	Convey("A malformed document is a parse error", t, func() {
		_, err := parsePostsXML([]byte(`{"not": "xml"}`))
		So(err, ShouldNotBeNil)
	})
}

func TestParsePostsJSON(t *testing.T) {
	Convey("Given a dapi json=1 posts response", t, func() {
		body := []byte(`[
  {"id": 42, "file_url": "https://img.rule34.xxx/images/1/a.jpg",
   "width": 800, "height": 600, "tags": "solo", "score": 10,
   "hash": "abc", "rating": "questionable", "source": ""},
  {"id": "not-a-record", "width": "broken"}
]`)

		posts, err := parsePostsJSON(body)
		So(err, ShouldBeNil)

		Convey("Malformed records are skipped, valid ones kept", func() {
			So(posts, ShouldHaveLength, 1)
			So(posts[0].ID, ShouldEqual, "42")
			So(posts[0].Rating, ShouldEqual, booru.RatingQuestionable)
		})
	})

	Convey("An XML body under the json flag is a parse error", t, func() {
		_, err := parsePostsJSON([]byte(`<posts></posts>`))
		So(err, ShouldNotBeNil)
	})
}

func TestParsePostsCrossFormat(t *testing.T) {
	Convey("Equivalent XML and JSON posts parse to equal values", t, func() {
		xmlBody := []byte(`<posts count="1" offset="0">
  <post id="7077" file_url="https://img.rule34.xxx/images/2/b.png"
        sample_url="https://img.rule34.xxx/samples/2/b.jpg"
        preview_url="https://img.rule34.xxx/thumbnails/2/b.jpg"
        width="1280" height="720" tags="1girl sky" score="15"
        created_at="Mon Jan 01 00:00:00 +0000 2024"
        md5="9e107d9d372bb6826bd81d3542a419d6" rating="safe"
        source="https://example.com/art/2"/>
</posts>`)

		jsonBody := []byte(`[
  {"id": 7077, "file_url": "https://img.rule34.xxx/images/2/b.png",
   "sample_url": "https://img.rule34.xxx/samples/2/b.jpg",
   "preview_url": "https://img.rule34.xxx/thumbnails/2/b.jpg",
   "width": 1280, "height": 720, "tags": "1girl sky", "score": 15,
   "created_at": "Mon Jan 01 00:00:00 +0000 2024",
   "hash": "9e107d9d372bb6826bd81d3542a419d6", "rating": "safe",
   "source": "https://example.com/art/2"}
]`)

		fromXML, err := parsePostsXML(xmlBody)
		So(err, ShouldBeNil)
		fromJSON, err := parsePostsJSON(jsonBody)
		So(err, ShouldBeNil)

		So(fromXML, ShouldHaveLength, 1)
		So(fromJSON, ShouldHaveLength, 1)
		So(fromXML[0], ShouldResemble, fromJSON[0])
	})
}

func TestParseTagsXML(t *testing.T) {
	Convey("Given a dapi XML tags document", t, func() {
		body := []byte(`<tags type="array">
  <tag id="7" name="landscape" count="1234" type="0" ambiguous="false"/>
  <tag id="8" name="some_artist" count="56" type="1" ambiguous="true"/>
</tags>`)

		tags, err := parseTagsXML(body)
		So(err, ShouldBeNil)
		So(tags, ShouldHaveLength, 2)

		Convey("Numeric categories are normalized", func() {
			So(tags[0].Category, ShouldEqual, booru.CategoryGeneral)
			So(tags[1].Category, ShouldEqual, booru.CategoryArtist)
			So(tags[0].Count, ShouldEqual, 1234)
		})

		Convey("The ambiguous attribute is carried over", func() {
			So(tags[0].Ambiguous, ShouldBeFalse)
			So(tags[1].Ambiguous, ShouldBeTrue)
		})
	})
}

func TestParseCommentsXML(t *testing.T) {
	Convey("Given a dapi XML comments document", t, func() {
		body := []byte(`<comments type="array">
  <comment id="1" post_id="42" creator="someone" body="nice" created_at="2024-01-01 00:00"/>
  <comment id="2" post_id="42" creator="" body="hello" created_at="2024-01-02 00:00"/>
</comments>`)

		comments, err := parseCommentsXML(body)
		So(err, ShouldBeNil)
		So(comments, ShouldHaveLength, 2)

		Convey("An empty creator falls back to Anonymous", func() {
			So(comments[0].Creator, ShouldEqual, "someone")
			So(comments[1].Creator, ShouldEqual, booru.AnonymousCreator)
		})
	})
}

func TestParseRating(t *testing.T) {
	Convey("Full-word dapi ratings reduce to their letter code", t, func() {
		So(parseRating("explicit"), ShouldEqual, booru.RatingExplicit)
		So(parseRating("questionable"), ShouldEqual, booru.RatingQuestionable)
		So(parseRating("sensitive"), ShouldEqual, booru.RatingSensitive)
		So(parseRating(""), ShouldEqual, booru.RatingUnknown)
	})

	Convey("The old-scheme safe label is the General tier", t, func() {
		So(parseRating("safe"), ShouldEqual, booru.RatingGeneral)
	})
}
