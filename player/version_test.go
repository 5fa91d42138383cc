package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseMPVVersion(t *testing.T) {
	Convey("Reads the version from mpv --version", t, func() {
		v, err := parseMPVVersion("mpv 0.37.0 Copyright © 2000-2023 mpv/MPlayer/mplayer2 projects\n built on Sat Nov 18 2023\nFFmpeg version: 6.1\n")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "0.37.0")

		v, err = parseMPVVersion("mpv v0.38.0-dirty Copyright © 2000-2024 mpv/MPlayer/mplayer2 projects\n")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "0.38.0-dirty")
	})

	Convey("Rejects other output", t, func() {
		_, err := parseMPVVersion("command not found")
		So(err, ShouldNotBeNil)
	})
}
