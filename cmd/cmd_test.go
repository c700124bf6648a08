package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/where"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestEnvVariables(t *testing.T) {
	Convey("envVariables", t, func() {
		vars := envVariables()
		So(vars, ShouldContain, "LIFO_STACK_CAPACITY")
		So(vars, ShouldContain, "LIFO_SHELL_PROMPT")
		So(vars, ShouldContain, where.EnvConfigPath)
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("errUnknownKey suggests the closest key", t, func() {
		So(errUnknownKey("stack.capacty").Error(), ShouldContainSubstring, "stack.capacity")
	})
}

func TestVersionCmd(t *testing.T) {
	Convey("version --short prints the bare version", t, func() {
		var buf bytes.Buffer
		versionCmd.SetOut(&buf)
		defer versionCmd.SetOut(os.Stdout)

		So(versionCmd.Flags().Set("short", "true"), ShouldBeNil)
		versionCmd.Run(versionCmd, nil)
		So(buf.String(), ShouldEqual, constant.Version+"\n")
	})
}

func TestCommandTree(t *testing.T) {
	Convey("Every subcommand is registered on the root", t, func() {
		for _, name := range []string{"shell", "inline", "config", "env", "where", "version", "clear"} {
			found, _, err := rootCmd.Find([]string{name})
			So(err, ShouldBeNil)
			So(found.Name(), ShouldEqual, name)
		}
	})
}
