package ui

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		m := &Model{}

		Convey("It shows a notification until it expires", func() {
			cmd := m.Update(Notify("Speed 1.5x")())
			So(cmd, ShouldNotBeNil)

			n, ok := m.Current()
			So(ok, ShouldBeTrue)
			So(n.Text, ShouldEqual, "Speed 1.5x")
			So(m.View("main"), ShouldContainSubstring, "Speed 1.5x")

			m.Update(clearMsg{gen: 1})
			_, ok = m.Current()
			So(ok, ShouldBeFalse)
			So(m.View("main"), ShouldEqual, "main")
		})

		Convey("An older expiry does not clear a newer notification", func() {
			m.Update(Notify("first")())
			m.Update(NotifyError(errors.New("second"))())
			m.Update(clearMsg{gen: 1})

			n, ok := m.Current()
			So(ok, ShouldBeTrue)
			So(n.Text, ShouldEqual, "second")
			So(n.Error, ShouldBeTrue)
		})
	})
}
