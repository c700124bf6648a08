package log

import (
	"path/filepath"
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging configuration", t, func() {
		Convey("When writing is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
		})

		Convey("When writing is enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			viper.Set(key.LogsJson, true)
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			WithOp("push").Info("pushed")
			Info("session started")

			entries := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(entries, ShouldHaveLength, 1)

			data := lo.Must(filesystem.API().ReadFile(filepath.Join(where.Logs(), entries[0].Name())))
			So(string(data), ShouldContainSubstring, `"op":"push"`)
			So(string(data), ShouldContainSubstring, "session started")

			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
		})
	})
}
