package command

import (
	"strconv"
	"strings"

	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/stack"
)

// Result is the outcome of a single executed command.
type Result struct {
	Command Command
	// Value holds the popped or peeked element, the size, the emptiness flag, or the listing.
	Value string
	// Values is the top-first listing for Show.
	Values []string
	// Size is the stack size after the command ran.
	Size int
	// Err is non-nil when the command failed, e.g. wraps *stack.EmptyStackError on underflow.
	Err error
}

// Failed reports whether the command returned an error.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Session owns a string stack and executes commands against it.
type Session struct {
	stack *stack.Stack[string]
}

// NewSession returns a session over a new empty stack preallocated for capacity elements.
func NewSession(capacity int) *Session {
	return &Session{stack: stack.New[string](capacity)}
}

// Size returns the number of elements on the session's stack.
func (s *Session) Size() int {
	return s.stack.Size()
}

// Values returns the session's elements ordered from top to bottom.
func (s *Session) Values() []string {
	return s.stack.Values()
}

// Exec runs c and reports what happened. Underflow is reported in Result.Err, never panics.
func (s *Session) Exec(c Command) Result {
	result := Result{Command: c}
	entry := log.WithOp(string(c.Op))

	switch c.Op {
	case Push:
		s.stack.Push(c.Arg.OrEmpty())
	case Pop:
		result.Value, result.Err = s.stack.Pop()
	case Peek:
		result.Value, result.Err = s.stack.Peek()
	case Size:
		result.Value = strconv.Itoa(s.stack.Size())
	case Empty:
		result.Value = strconv.FormatBool(s.stack.IsEmpty())
	case Clear:
		s.stack.Clear()
	case Show:
		result.Values = s.stack.Values()
		result.Value = strings.Join(result.Values, " ")
	case Help:
		result.Value = HelpText()
	}

	result.Size = s.stack.Size()
	if result.Err != nil {
		entry.WithError(result.Err).Debug("rejected")
	} else {
		entry.WithField("size", result.Size).Debug("ok")
	}
	return result
}

// ExecLine parses and runs a single line.
func (s *Session) ExecLine(line string) (Result, error) {
	c, err := Parse(line)
	if err != nil {
		return Result{}, err
	}
	return s.Exec(c), nil
}

// HelpText lists every operation with its usage.
func HelpText() string {
	var b strings.Builder
	for i, op := range Ops {
		b.WriteString(op.Describe())
		if i < len(Ops)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
