package filesystem

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAPI(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")

			Convey("Writes stay in memory", func() {
				lo.Must0(API().WriteFile("/script.lifo", []byte("push 1\n"), 0644))
				So(lo.Must(API().Exists("/script.lifo")), ShouldBeTrue)

				SetMemMapFs()
				So(lo.Must(API().Exists("/script.lifo")), ShouldBeFalse)
			})
		})
	})
}
