package danbooru

import (
	"net/url"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/boorusan-cli/boorusan/booru"
)

func TestPostsURL(t *testing.T) {
	d := New()

	Convey("Given a post query", t, func() {
		Convey("Limit is clamped to 200", func() {
			query := booru.NewPostQuery()
			query.Limit = 500

			u, err := url.Parse(d.postsURL(query))
			So(err, ShouldBeNil)
			So(u.Query().Get("limit"), ShouldEqual, "200")
		})

		Convey("Pagination is translated to 1-based", func() {
			query := booru.NewPostQuery()
			query.Page = 0

			u, _ := url.Parse(d.postsURL(query))
			So(u.Query().Get("page"), ShouldEqual, "1")
		})

		Convey("A post ID routes to the single-post endpoint", func() {
			query := booru.NewPostQuery()
			query.ID = "123"

			So(d.postsURL(query), ShouldEqual, baseURL+"/posts/123.json")
		})
	})
}

func TestSignedRequests(t *testing.T) {
	Convey("Given an adapter with credentials", t, func() {
		d := New()
		d.SetCredentials("alice", "k3y")

		Convey("Endpoints carry login and api_key", func() {
			signed := d.sign(baseURL + "/posts.json?limit=1")
			u, err := url.Parse(signed)
			So(err, ShouldBeNil)
			So(u.Query().Get("login"), ShouldEqual, "alice")
			So(u.Query().Get("api_key"), ShouldEqual, "k3y")
		})

		Convey("Clearing credentials reverts to anonymous", func() {
			d.SetCredentials("", "")
			signed := d.sign(baseURL + "/posts.json?limit=1")
			So(signed, ShouldEqual, baseURL+"/posts.json?limit=1")
			So(d.authenticated(), ShouldBeFalse)
		})
	})
}

func TestParsePosts(t *testing.T) {
	Convey("Given a posts.json response", t, func() {
		body := []byte(`[
  {"id": 7, "file_url": "/data/original/ab/cd/abcd.webm",
   "large_file_url": "//cdn.donmai.us/sample/ab/cd/abcd.jpg",
   "preview_file_url": "https://cdn.donmai.us/180x180/ab/cd/abcd.jpg",
   "image_width": 1280, "image_height": 720, "tag_string": "animated solo",
   "score": 55, "md5": "abcd", "rating": "s", "source": "https://example.com"},
  {"id": [], "score": "broken"}
]`)

		posts, err := parsePosts(body, baseURL)
		So(err, ShouldBeNil)

		Convey("Malformed records are skipped", func() {
			So(posts, ShouldHaveLength, 1)
		})

		Convey("Asset URLs are made absolute", func() {
			p := posts[0]
			So(p.FileURL, ShouldEqual, baseURL+"/data/original/ab/cd/abcd.webm")
			So(p.SampleURL, ShouldEqual, "https://cdn.donmai.us/sample/ab/cd/abcd.jpg")
			So(p.PreviewURL, ShouldEqual, "https://cdn.donmai.us/180x180/ab/cd/abcd.jpg")
		})

		Convey("Fields are mapped and the rating normalized", func() {
			p := posts[0]
			So(p.ID, ShouldEqual, "7")
			So(p.Width, ShouldEqual, 1280)
			So(p.Tags, ShouldEqual, "animated solo")
			So(p.Rating, ShouldEqual, booru.RatingSensitive)
		})
	})
}

func TestParseTags(t *testing.T) {
	Convey("Given a tags.json response", t, func() {
		body := []byte(`[
  {"id": 1, "name": "original", "post_count": 99, "category": 3},
  {"id": 2, "name": "weird", "post_count": 5, "category": 2}
]`)

		tags, err := ParseTags(body)
		So(err, ShouldBeNil)
		So(tags, ShouldHaveLength, 2)

		Convey("Categories are normalized, unassigned codes go to general", func() {
			So(tags[0].Category, ShouldEqual, booru.CategoryCopyright)
			So(tags[1].Category, ShouldEqual, booru.CategoryGeneral)
		})
	})
}

func TestParseComments(t *testing.T) {
	Convey("Given a comments.json response", t, func() {
		body := []byte(`[
  {"id": 10, "post_id": 7, "creator_name": "bob", "body": "great"},
  {"id": 11, "post_id": 7, "body": "no name"}
]`)

		comments, err := ParseComments(body)
		So(err, ShouldBeNil)
		So(comments, ShouldHaveLength, 2)

		Convey("A missing creator name falls back to Anonymous", func() {
			So(comments[0].Creator, ShouldEqual, "bob")
			So(comments[1].Creator, ShouldEqual, booru.AnonymousCreator)
		})
	})
}

func TestEnsureAbsoluteURL(t *testing.T) {
	Convey("URL normalization", t, func() {
		So(EnsureAbsoluteURL("", baseURL), ShouldEqual, "")
		So(EnsureAbsoluteURL("//cdn.donmai.us/a.jpg", baseURL), ShouldEqual, "https://cdn.donmai.us/a.jpg")
		So(EnsureAbsoluteURL("/data/a.jpg", baseURL), ShouldEqual, baseURL+"/data/a.jpg")
		So(EnsureAbsoluteURL("https://cdn.donmai.us/a.jpg", baseURL), ShouldEqual, "https://cdn.donmai.us/a.jpg")
	})
}
