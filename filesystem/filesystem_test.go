package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackendSwap(t *testing.T) {
	Convey("Filesystem backend", t, func() {
		SetMemMapFs()
		defer SetOsFs()

		Convey("MemMapFs should be writable without touching disk", func() {
			err := API().WriteFile("/probe.txt", []byte("ok"), 0644)
			So(err, ShouldBeNil)

			content, err := API().ReadFile("/probe.txt")
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, "ok")
		})

		Convey("SetOsFs should replace the backend", func() {
			SetOsFs()
			exists, err := API().Exists("/probe.txt")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}
