package media

import (
	"testing"

	"github.com/boorusan-cli/boorusan/booru"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTypeOf(t *testing.T) {
	Convey("TypeOf", t, func() {
		Convey("Video extension on file URL", func() {
			p := &booru.Post{FileURL: "https://x/a.webm"}
			So(TypeOf(p), ShouldEqual, Video)
		})

		Convey("Falls back to sample URL when file URL is empty", func() {
			p := &booru.Post{SampleURL: "https://x/b.png"}
			So(TypeOf(p), ShouldEqual, Image)
		})

		Convey("Preview URL is the last resort", func() {
			p := &booru.Post{PreviewURL: "https://x/c.jpg"}
			So(TypeOf(p), ShouldEqual, Image)
		})

		Convey("Nil and empty posts are Unknown", func() {
			So(TypeOf(nil), ShouldEqual, Unknown)
			So(TypeOf(&booru.Post{}), ShouldEqual, Unknown)
		})
	})
}

func TestTypeOfURL(t *testing.T) {
	Convey("TypeOfURL", t, func() {
		Convey("Extension match is case-insensitive", func() {
			So(TypeOfURL("https://x/a.MP4"), ShouldEqual, Video)
			So(TypeOfURL("https://x/a.GIF"), ShouldEqual, Image)
		})

		Convey("Query strings do not confuse the extension check", func() {
			So(TypeOfURL("https://x/a.webm?token=abc.def"), ShouldEqual, Video)
		})

		Convey("Extensionless URLs use substring heuristics", func() {
			So(TypeOfURL("https://cdn.x/video/12345?fmt=stream"), ShouldEqual, Video)
			So(TypeOfURL("https://cdn.x/image/12345"), ShouldEqual, Image)
			So(TypeOfURL("https://cdn.x/asset/12345"), ShouldEqual, Unknown)
		})

		Convey("Unrecognized extensions are Unknown", func() {
			So(TypeOfURL("https://x/a.swf"), ShouldEqual, Unknown)
		})
	})
}

func TestBestURL(t *testing.T) {
	Convey("BestURL", t, func() {
		Convey("Videos prefer file over sample", func() {
			p := &booru.Post{FileURL: "https://x/a.mp4", SampleURL: "https://x/a_s.mp4"}
			So(BestURL(p, Video), ShouldEqual, "https://x/a.mp4")
		})

		Convey("Images prefer sample over file", func() {
			p := &booru.Post{FileURL: "https://x/a.png", SampleURL: "https://x/a_s.jpg"}
			So(BestURL(p, Image), ShouldEqual, "https://x/a_s.jpg")
		})

		Convey("Never returns a missing signal: preview-only post yields preview for any type", func() {
			p := &booru.Post{PreviewURL: "https://x/a_p.jpg"}
			So(BestURL(p, Video), ShouldEqual, "https://x/a_p.jpg")
			So(BestURL(p, Image), ShouldEqual, "https://x/a_p.jpg")
			So(BestURL(p, Unknown), ShouldEqual, "https://x/a_p.jpg")
		})

		Convey("Empty post yields empty string", func() {
			So(BestURL(&booru.Post{}, Unknown), ShouldEqual, "")
			So(BestURL(nil, Unknown), ShouldEqual, "")
		})
	})
}

func TestPreviewURL(t *testing.T) {
	Convey("PreviewURL", t, func() {
		Convey("Explicit preview wins", func() {
			p := &booru.Post{PreviewURL: "https://x/p.jpg", FileURL: "https://x/a.mp4"}
			So(PreviewURL(p), ShouldEqual, "https://x/p.jpg")
		})

		Convey("Images fall back to sample then file", func() {
			p := &booru.Post{SampleURL: "https://x/s.jpg", FileURL: "https://x/a.png"}
			So(PreviewURL(p), ShouldEqual, "https://x/s.jpg")

			p = &booru.Post{FileURL: "https://x/a.png"}
			So(PreviewURL(p), ShouldEqual, "https://x/a.png")
		})

		Convey("Videos without preview yield empty", func() {
			p := &booru.Post{FileURL: "https://x/a.webm"}
			So(PreviewURL(p), ShouldEqual, "")
		})
	})
}

func TestExtension(t *testing.T) {
	Convey("Extension", t, func() {
		p := &booru.Post{FileURL: "https://x/a.WEBM?sig=1"}
		So(Extension(p), ShouldEqual, ".webm")
		So(Extension(&booru.Post{}), ShouldEqual, "")
	})
}
