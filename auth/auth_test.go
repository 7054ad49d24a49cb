package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSignURL(t *testing.T) {
	Convey("SignURL", t, func() {
		Convey("Uses '?' when the URL has no query string", func() {
			signed := SignURL("https://danbooru.donmai.us/posts.json", "user", "key")
			So(signed, ShouldEqual, "https://danbooru.donmai.us/posts.json?login=user&api_key=key")
		})

		Convey("Uses '&' when the URL already has a query string", func() {
			signed := SignURL("https://danbooru.donmai.us/posts.json?limit=1", "user", "key")
			So(signed, ShouldEqual, "https://danbooru.donmai.us/posts.json?limit=1&login=user&api_key=key")
		})

		Convey("URL-encodes credentials", func() {
			signed := SignURL("https://x/posts.json", "a b", "k&y")
			So(signed, ShouldEqual, "https://x/posts.json?login=a+b&api_key=k%26y")
		})

		Convey("Empty credentials leave the URL unchanged", func() {
			So(SignURL("https://x/posts.json", "", "key"), ShouldEqual, "https://x/posts.json")
			So(SignURL("https://x/posts.json", "user", ""), ShouldEqual, "https://x/posts.json")
		})
	})
}
