package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Semantic version comparison", t, func() {
		Convey("Equal versions compare to 0", func() {
			c, err := Compare("1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 0)
		})

		Convey("A leading v prefix is ignored", func() {
			c, err := Compare("v1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 0)
		})

		Convey("Higher components win in order", func() {
			for _, pair := range [][2]string{
				{"2.0.0", "1.9.9"},
				{"1.3.0", "1.2.9"},
				{"1.2.4", "1.2.3"},
			} {
				c, err := Compare(pair[0], pair[1])
				So(err, ShouldBeNil)
				So(c, ShouldEqual, 1)

				c, err = Compare(pair[1], pair[0])
				So(err, ShouldBeNil)
				So(c, ShouldEqual, -1)
			}
		})

		Convey("Malformed versions are an error", func() {
			_, err := Compare("abc", "1.2.3")
			So(err, ShouldNotBeNil)
		})
	})
}
