package save

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/filesystem"
	"github.com/boorusan-cli/boorusan/key"
)

func TestFilename(t *testing.T) {
	Convey("Filenames are stable and sanitized", t, func() {
		post := &booru.Post{
			ID:      "42",
			MD5:     "abcd",
			FileURL: "https://cdn.example.com/images/a.jpg",
		}

		So(Filename("Rule34", post), ShouldEqual, "Rule34_42_abcd.jpg")

		Convey("A missing checksum is omitted", func() {
			post.MD5 = ""
			So(Filename("Rule34", post), ShouldEqual, "Rule34_42.jpg")
		})
	})
}

func TestPost(t *testing.T) {
	Convey("Given a media server and an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		payload := []byte("fake image bytes")
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(payload)
		}))
		defer server.Close()

		viper.Set(key.DownloadsDir, "/downloads")
		defer viper.Set(key.DownloadsDir, "")

		post := &booru.Post{ID: "7", FileURL: server.URL + "/a.png"}

		Convey("The media is downloaded to the configured directory", func() {
			path, err := Post("Danbooru", post)
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/downloads/Danbooru_7.png")

			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(data, ShouldResemble, payload)
		})

		Convey("A post without media is an error", func() {
			_, err := Post("Danbooru", &booru.Post{ID: "8"})
			So(err, ShouldNotBeNil)
		})
	})
}
