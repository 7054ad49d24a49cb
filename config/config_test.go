package config

import (
	"testing"

	"github.com/boorusan-cli/boorusan/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("danbooru.api.key")
			So(result, ShouldEqual, "danbooru_api_key")
		})

		Convey("Env names should carry the application prefix", func() {
			field := Default["provider.default"]
			So(field.Env(), ShouldEqual, "BOORUSAN_PROVIDER_DEFAULT")
		})
	})
}
