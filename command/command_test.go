package command

import (
	"errors"
	"testing"

	"github.com/lifo-cli/lifo/stack"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Push keeps the rest of the line", func() {
			c, err := Parse("  push   hello world  ")
			So(err, ShouldBeNil)
			So(c.Op, ShouldEqual, Push)
			So(c.Arg.MustGet(), ShouldEqual, "hello world")
			So(c.String(), ShouldEqual, "push hello world")
		})

		Convey("Push accepts tab separators", func() {
			c, err := Parse("push\t7")
			So(err, ShouldBeNil)
			So(c.Arg.MustGet(), ShouldEqual, "7")
		})

		Convey("Push without a value fails", func() {
			_, err := Parse("push")
			So(err, ShouldNotBeNil)
		})

		Convey("Operations are case-insensitive and aliased", func() {
			So(MustParse("POP").Op, ShouldEqual, Pop)
			So(MustParse("top").Op, ShouldEqual, Peek)
			So(MustParse("isEmpty").Op, ShouldEqual, Empty)
			So(MustParse("len").Op, ShouldEqual, Size)
			So(MustParse("ls").Op, ShouldEqual, Show)
			So(MustParse("?").Op, ShouldEqual, Help)
		})

		Convey("Argument-less operations reject arguments", func() {
			_, err := Parse("pop 3")
			So(err, ShouldNotBeNil)
		})

		Convey("Blank lines and comments", func() {
			_, err := Parse("   ")
			So(errors.Is(err, ErrBlank), ShouldBeTrue)
			_, err = Parse("# setup")
			So(errors.Is(err, ErrBlank), ShouldBeTrue)
		})

		Convey("Unknown operations carry a suggestion", func() {
			_, err := Parse("puhs 1")

			var unknown *UnknownOpError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Name, ShouldEqual, "puhs")
			So(unknown.Suggestion.MustGet(), ShouldEqual, Push)
			So(err.Error(), ShouldContainSubstring, "did you mean push")
		})

		Convey("Far-off names get no suggestion", func() {
			_, err := Parse("reticulate")

			var unknown *UnknownOpError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Suggestion.IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestComplete(t *testing.T) {
	Convey("Complete", t, func() {
		So(Complete(""), ShouldHaveLength, len(Ops))
		So(Complete("pu"), ShouldResemble, []string{"push"})
		So(Complete("pe"), ShouldContain, "peek")
		So(Complete("zzz"), ShouldBeEmpty)
	})
}

func TestSession(t *testing.T) {
	Convey("Given a session", t, func() {
		s := NewSession(4)

		run := func(line string) Result {
			r, err := s.ExecLine(line)
			So(err, ShouldBeNil)
			return r
		}

		Convey("Pop on an empty stack reports underflow", func() {
			r := run("pop")
			So(r.Failed(), ShouldBeTrue)
			So(errors.Is(r.Err, stack.ErrEmpty), ShouldBeTrue)
			So(r.Value, ShouldBeEmpty)
			So(r.Size, ShouldEqual, 0)
		})

		Convey("Operations follow LIFO order", func() {
			run("push a")
			run("push b")
			r := run("push c")
			So(r.Size, ShouldEqual, 3)

			So(run("peek").Value, ShouldEqual, "c")
			So(run("size").Value, ShouldEqual, "3")
			So(run("show").Values, ShouldResemble, []string{"c", "b", "a"})

			So(run("pop").Value, ShouldEqual, "c")
			So(run("pop").Value, ShouldEqual, "b")
			So(run("empty").Value, ShouldEqual, "false")
			So(run("pop").Value, ShouldEqual, "a")
			So(run("empty").Value, ShouldEqual, "true")
		})

		Convey("Clear resets the stack", func() {
			run("push 1")
			run("push 2")
			r := run("clear")
			So(r.Failed(), ShouldBeFalse)
			So(r.Size, ShouldEqual, 0)
			So(s.Size(), ShouldEqual, 0)
			So(run("clear").Failed(), ShouldBeFalse)
			So(run("peek").Failed(), ShouldBeTrue)
		})

		Convey("Help lists every operation", func() {
			r := run("help")
			for _, op := range Ops {
				So(r.Value, ShouldContainSubstring, string(op))
			}
		})

		Convey("Parse errors are returned before execution", func() {
			_, err := s.ExecLine("pusj 1")
			So(err, ShouldNotBeNil)
			So(s.Size(), ShouldEqual, 0)
		})
	})
}
