package stack

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStack(t *testing.T) {
	Convey("Given a new stack", t, func() {
		s := New[int](4)

		Convey("It is empty", func() {
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Size(), ShouldEqual, 0)
		})

		Convey("Pop fails with EmptyStackError", func() {
			item, err := s.Pop()
			So(item, ShouldEqual, 0)
			So(err, ShouldNotBeNil)

			var target *EmptyStackError
			So(errors.As(err, &target), ShouldBeTrue)
			So(target.Op, ShouldEqual, OpPop)
			So(errors.Is(err, ErrEmpty), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "empty")
		})

		Convey("Peek fails with EmptyStackError", func() {
			_, err := s.Peek()

			var target *EmptyStackError
			So(errors.As(err, &target), ShouldBeTrue)
			So(target.Op, ShouldEqual, OpPeek)
		})

		Convey("Clear does not fail", func() {
			s.Clear()
			s.Clear()
			So(s.Size(), ShouldEqual, 0)
		})

		Convey("When items are pushed", func() {
			pushed := []int{3, 1, 4, 1, 5, 9}
			for _, p := range pushed {
				s.Push(p)
			}

			Convey("Peek returns the last one and Size counts all", func() {
				top, err := s.Peek()
				So(err, ShouldBeNil)
				So(top, ShouldEqual, 9)
				So(s.Size(), ShouldEqual, len(pushed))
			})

			Convey("Peek does not mutate", func() {
				for range 3 {
					top, err := s.Peek()
					So(err, ShouldBeNil)
					So(top, ShouldEqual, 9)
				}
				So(s.Size(), ShouldEqual, len(pushed))
				So(s.Values(), ShouldResemble, []int{9, 5, 1, 4, 1, 3})
			})

			Convey("Pop returns what Peek saw and shrinks by one", func() {
				for i := len(pushed); i > 0; i-- {
					peeked, err := s.Peek()
					So(err, ShouldBeNil)

					popped, err := s.Pop()
					So(err, ShouldBeNil)
					So(popped, ShouldEqual, peeked)
					So(popped, ShouldEqual, pushed[i-1])
					So(s.Size(), ShouldEqual, i-1)
				}

				So(s.IsEmpty(), ShouldBeTrue)
				_, err := s.Pop()
				So(errors.Is(err, ErrEmpty), ShouldBeTrue)
			})

			Convey("Clear empties it", func() {
				s.Clear()
				So(s.Size(), ShouldEqual, 0)
				So(s.IsEmpty(), ShouldBeTrue)

				_, err := s.Peek()
				So(errors.Is(err, ErrEmpty), ShouldBeTrue)

				Convey("And it can be reused", func() {
					s.Push(7)
					top, err := s.Peek()
					So(err, ShouldBeNil)
					So(top, ShouldEqual, 7)
					So(s.Size(), ShouldEqual, 1)
				})
			})
		})
	})
}

func TestStackZeroValue(t *testing.T) {
	Convey("The zero value is usable", t, func() {
		var s Stack[string]
		So(s.IsEmpty(), ShouldBeTrue)

		s.Push("a")
		s.Push("b")
		s.Push("c")

		var order []string
		for !s.IsEmpty() {
			item, err := s.Pop()
			So(err, ShouldBeNil)
			order = append(order, item)
		}
		So(order, ShouldResemble, []string{"c", "b", "a"})
	})
}

func TestStackScenario(t *testing.T) {
	Convey("push, pop, peek and clear in sequence", t, func() {
		var s Stack[int]

		s.Push(1)
		So(s.Size(), ShouldEqual, 1)
		s.Push(2)
		So(s.Size(), ShouldEqual, 2)

		item, err := s.Pop()
		So(err, ShouldBeNil)
		So(item, ShouldEqual, 2)
		So(s.Size(), ShouldEqual, 1)

		item, err = s.Peek()
		So(err, ShouldBeNil)
		So(item, ShouldEqual, 1)
		So(s.Size(), ShouldEqual, 1)

		s.Clear()
		So(s.Size(), ShouldEqual, 0)

		_, err = s.Pop()
		So(errors.Is(err, ErrEmpty), ShouldBeTrue)
	})

	Convey("IsEmpty follows a single push and pop", t, func() {
		var s Stack[int]
		So(s.IsEmpty(), ShouldBeTrue)
		s.Push(42)
		So(s.IsEmpty(), ShouldBeFalse)
		_, err := s.Pop()
		So(err, ShouldBeNil)
		So(s.IsEmpty(), ShouldBeTrue)
	})
}

func TestStackOptions(t *testing.T) {
	Convey("TryPop and TryPeek", t, func() {
		s := New[string](0)

		So(s.TryPeek().IsAbsent(), ShouldBeTrue)
		So(s.TryPop().IsAbsent(), ShouldBeTrue)

		s.Push("x")
		So(s.TryPeek().MustGet(), ShouldEqual, "x")
		So(s.Size(), ShouldEqual, 1)
		So(s.TryPop().MustGet(), ShouldEqual, "x")
		So(s.IsEmpty(), ShouldBeTrue)
	})

	Convey("New tolerates a negative capacity", t, func() {
		s := New[int](-1)
		So(s.IsEmpty(), ShouldBeTrue)
	})
}

func TestStackValues(t *testing.T) {
	Convey("Values is a top-first copy", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)

		values := s.Values()
		So(values, ShouldResemble, []int{2, 1})

		values[0] = 100
		top, _ := s.Peek()
		So(top, ShouldEqual, 2)
		So(s.String(), ShouldEqual, "[1 2]")
	})
}
