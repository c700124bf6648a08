package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		var m Model

		Convey("Nothing is shown initially", func() {
			So(m.View("body"), ShouldEqual, "body")
		})

		Convey("A notification is shown and cleared", func() {
			cmd := m.Update(Notify("cleared 3 elements")())
			So(cmd, ShouldNotBeNil)
			So(m.Current(), ShouldEqual, "cleared 3 elements")
			So(m.View("a\nb"), ShouldStartWith, "a\nb  ")
			So(m.View("a\nb"), ShouldContainSubstring, "cleared 3 elements")

			m.Update(ClearNotificationMsg{seq: m.seq})
			So(m.Current(), ShouldBeEmpty)
		})

		Convey("A stale timer does not clear a newer notification", func() {
			m.Update(NotificationMsg{Text: "first"})
			stale := ClearNotificationMsg{seq: m.seq}
			m.Update(NotificationMsg{Text: "second"})

			m.Update(stale)
			So(m.Current(), ShouldEqual, "second")
		})

		Convey("Other messages are ignored", func() {
			So(m.Update("text"), ShouldBeNil)
		})
	})
}
