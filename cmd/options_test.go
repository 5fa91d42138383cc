package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/curtain-cli/curtain/config"
	"github.com/curtain-cli/curtain/filesystem"
	"github.com/curtain-cli/curtain/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

func TestPlayOptions(t *testing.T) {
	Convey("Given videos on a memory filesystem", t, func() {
		So(filesystem.API().WriteFile("/videos/workout.mp4", []byte{0}, 0644), ShouldBeNil)
		So(filesystem.API().WriteFile("/videos/workout.png", []byte{0}, 0644), ShouldBeNil)
		So(filesystem.API().WriteFile("/videos/intro.webm", []byte{0}, 0644), ShouldBeNil)

		Convey("A missing video is rejected", func() {
			_, err := playOptions("/videos/missing.mp4", playFlags{})
			So(errors.Is(err, errNoVideo), ShouldBeTrue)
		})

		Convey("A sibling image becomes the thumbnail", func() {
			options, err := playOptions("/videos/workout.mp4", playFlags{})
			So(err, ShouldBeNil)
			So(options.Session.VideoSource, ShouldEqual, "/videos/workout.mp4")
			So(options.Session.ThumbnailSource, ShouldEqual, "/videos/workout.png")
			So(options.Title, ShouldEqual, "workout")
			So(options.Player, ShouldEqual, "mpv")
			So(options.Session.ControlsEnabled, ShouldBeTrue)
			So(options.Session.LaunchOnMount, ShouldBeTrue)
			So(options.Session.AutoHideInterval, ShouldEqual, 8*time.Second)
		})

		Convey("Without a sibling image there is no thumbnail", func() {
			options, err := playOptions("file:///videos/intro.webm", playFlags{})
			So(err, ShouldBeNil)
			So(options.Session.VideoSource, ShouldEqual, "/videos/intro.webm")
			So(options.Session.ThumbnailSource, ShouldBeEmpty)
		})

		Convey("URLs pass through untouched", func() {
			options, err := playOptions("https://example.com/trailer.mp4", playFlags{title: "Trailer"})
			So(err, ShouldBeNil)
			So(options.Session.VideoSource, ShouldEqual, "https://example.com/trailer.mp4")
			So(options.Session.ThumbnailSource, ShouldBeEmpty)
			So(options.Title, ShouldEqual, "Trailer")
		})

		Convey("Flags override the configuration", func() {
			viper.Set(key.ControlsAutoHideSeconds, 3)
			viper.Set(key.PlayerLoop, true)
			defer func() {
				viper.Set(key.ControlsAutoHideSeconds, 8)
				viper.Set(key.PlayerLoop, false)
			}()

			options, err := playOptions("/videos/workout.mp4", playFlags{noControls: true, noLaunch: true})
			So(err, ShouldBeNil)
			So(options.Session.AutoHideInterval, ShouldEqual, 3*time.Second)
			So(options.Session.Loop, ShouldBeTrue)
			So(options.Session.ControlsEnabled, ShouldBeFalse)
			So(options.Session.LaunchOnMount, ShouldBeFalse)
		})
	})
}
