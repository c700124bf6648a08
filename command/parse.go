package command

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/mo"
)

// ErrBlank is returned by Parse for lines holding only whitespace or a comment.
var ErrBlank = errors.New("blank line")

// UnknownOpError is returned by Parse when the first word names no operation.
type UnknownOpError struct {
	Name       string
	Suggestion mo.Option[Op]
}

func (e *UnknownOpError) Error() string {
	if s, ok := e.Suggestion.Get(); ok {
		return fmt.Sprintf("unknown operation %q, did you mean %s?", e.Name, s)
	}
	return fmt.Sprintf("unknown operation %q", e.Name)
}

// Command is a parsed operation with its argument.
type Command struct {
	Op Op
	// Arg is only present for Push.
	Arg mo.Option[string]
}

func (c Command) String() string {
	if arg, ok := c.Arg.Get(); ok {
		return fmt.Sprintf("%s %s", c.Op, arg)
	}
	return string(c.Op)
}

// Parse reads a single line such as "push hello world" or "pop".
// The push value is the remainder of the line with surrounding whitespace trimmed.
// Lines starting with '#' are treated as blank.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, ErrBlank
	}

	name, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		name, rest = line[:i], strings.TrimSpace(line[i:])
	}

	op, ok := lookup(name).Get()
	if !ok {
		return Command{}, &UnknownOpError{Name: name, Suggestion: Suggest(name)}
	}

	if op == Push {
		if rest == "" {
			return Command{}, errors.New("push: missing value")
		}
		return Command{Op: op, Arg: mo.Some(rest)}, nil
	}

	if rest != "" {
		return Command{}, fmt.Errorf("%s: unexpected argument %q", op, rest)
	}
	return Command{Op: op, Arg: mo.None[string]()}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(line string) Command {
	c, err := Parse(line)
	if err != nil {
		panic(err)
	}
	return c
}
