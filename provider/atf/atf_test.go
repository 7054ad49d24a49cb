package atf

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/filesystem"
)

func TestFailClosed(t *testing.T) {
	Convey("Given an adapter without cookies", t, func() {
		a := New()

		Convey("Every fetch fails closed", func() {
			_, err := a.Posts(booru.NewPostQuery())
			So(errors.Is(err, ErrNoCookies), ShouldBeTrue)

			_, err = a.Tags(booru.NewTagQuery())
			So(errors.Is(err, ErrNoCookies), ShouldBeTrue)

			_, err = a.Autocomplete("tag")
			So(errors.Is(err, ErrNoCookies), ShouldBeTrue)
		})

		Convey("Status reports the missing authentication", func() {
			status := a.Status()
			So(status.OK, ShouldBeFalse)
			So(status.Message, ShouldContainSubstring, "no cookie file")
		})
	})
}

func TestSetCookieFile(t *testing.T) {
	Convey("Given a cookie export on disk", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		fs := filesystem.API()

		Convey("Matching cookies are loaded", func() {
			path := "/cookies.json"
			content := `[{"domain": ".allthefallen.moe", "name": "session", "value": "abc"}]`
			So(fs.WriteFile(path, []byte(content), 0o644), ShouldBeNil)

			a := New()
			So(a.SetCookieFile(path), ShouldBeNil)
			So(a.cookieHeader(), ShouldEqual, "session=abc")
		})

		Convey("An export without matching cookies is rejected", func() {
			path := "/other.json"
			content := `[{"domain": ".example.com", "name": "session", "value": "abc"}]`
			So(fs.WriteFile(path, []byte(content), 0o644), ShouldBeNil)

			a := New()
			So(a.SetCookieFile(path), ShouldNotBeNil)
			So(a.cookieHeader(), ShouldEqual, "")
		})
	})
}

func TestParsePostsVariants(t *testing.T) {
	Convey("Given a posts response with hidden top-level URLs", t, func() {
		body := []byte(`[
  {"id": 9, "image_width": 2000, "image_height": 1500, "tag_string": "solo",
   "score": 1, "rating": "e", "md5": "ff00",
   "media_asset": {"variants": [
     {"type": "180x180", "url": "/variants/ff/00/180.jpg", "width": 180},
     {"type": "sample", "url": "/variants/ff/00/sample.jpg", "width": 850},
     {"type": "original", "url": "/variants/ff/00/orig.png", "width": 2000}
   ]}}
]`)

		posts, err := parsePosts(body)
		So(err, ShouldBeNil)
		So(posts, ShouldHaveLength, 1)

		Convey("URLs fall back to the matching variants", func() {
			p := posts[0]
			So(p.FileURL, ShouldEqual, baseURL+"/variants/ff/00/orig.png")
			So(p.SampleURL, ShouldEqual, baseURL+"/variants/ff/00/sample.jpg")
			So(p.PreviewURL, ShouldEqual, baseURL+"/variants/ff/00/180.jpg")
		})
	})

	Convey("Without an original variant the widest one wins", t, func() {
		body := []byte(`[
  {"id": 10, "media_asset": {"variants": [
    {"type": "180x180", "url": "/v/180.jpg", "width": 180},
    {"type": "720x720", "url": "/v/720.jpg", "width": 720}
  ]}}
]`)

		posts, err := parsePosts(body)
		So(err, ShouldBeNil)
		So(posts[0].FileURL, ShouldEqual, baseURL+"/v/720.jpg")
	})

	Convey("Without a sample variant the best file URL is reused", t, func() {
		body := []byte(`[
  {"id": 12, "media_asset": {"variants": [
    {"type": "180x180", "url": "/v/180.jpg", "width": 180},
    {"type": "original", "url": "/v/orig.png", "width": 2000}
  ]}}
]`)

		posts, err := parsePosts(body)
		So(err, ShouldBeNil)
		So(posts[0].SampleURL, ShouldEqual, baseURL+"/v/orig.png")
		So(posts[0].SampleURL, ShouldEqual, posts[0].FileURL)
	})

	Convey("Top-level URLs take precedence over variants", t, func() {
		body := []byte(`[
  {"id": 11, "file_url": "https://cdn.allthefallen.moe/orig.png",
   "media_asset": {"variants": [
     {"type": "original", "url": "/v/other.png", "width": 100}
   ]}}
]`)

		posts, err := parsePosts(body)
		So(err, ShouldBeNil)
		So(posts[0].FileURL, ShouldEqual, "https://cdn.allthefallen.moe/orig.png")
	})
}
