package util

import (
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "element", "elements"), ShouldEqual, "1 element")
		So(Quantify(0, "element", "elements"), ShouldEqual, "0 elements")
		So(Quantify(2, "element", "elements"), ShouldEqual, "2 elements")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("logs"), ShouldEqual, "Logs")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()

		Convey("Removes directories recursively", func() {
			lo.Must0(fs.MkdirAll("/logs/old", 0755))
			lo.Must0(fs.WriteFile("/logs/old/a.log", []byte("x"), 0644))
			So(Delete("/logs"), ShouldBeNil)
			So(lo.Must(fs.Exists("/logs")), ShouldBeFalse)
		})

		Convey("Fails on a missing path", func() {
			So(Delete("/missing"), ShouldNotBeNil)
		})
	})
}
