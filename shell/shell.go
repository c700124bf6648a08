// Package shell implements a line-based interactive mode for driving a stack from a terminal or a pipe.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/command"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Options configures the shell's input and output.
type Options struct {
	In  io.Reader
	Out io.Writer
	// Interactive enables the prompt and the greeting.
	Interactive bool
}

type shell struct {
	out     io.Writer
	session *command.Session
	width   int
}

// Run reads commands until EOF, "quit" or "exit".
func Run(options *Options) error {
	if options.In == nil {
		options.In = os.Stdin
		options.Interactive = util.IsTerminal(os.Stdin)
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}

	s := &shell{
		out:     options.Out,
		session: command.NewSession(viper.GetInt(key.StackCapacity)),
		width:   80,
	}
	if w, _, err := util.TerminalSize(); err == nil && w > 0 {
		s.width = w
	}

	prompt := viper.GetString(key.ShellPrompt)
	if options.Interactive {
		s.println(style.Faint(`Type "help" for the list of operations, "quit" to leave.`))
	}

	log.Info("shell started")
	scanner := bufio.NewScanner(options.In)
	for {
		if options.Interactive {
			fmt.Fprint(s.out, style.Fg(color.Purple)(prompt))
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if lo.Contains([]string{"quit", "exit"}, strings.ToLower(line)) {
			break
		}

		s.handle(line)
	}

	log.Infof("shell finished with %s", util.Quantify(s.session.Size(), "element", "elements"))
	return scanner.Err()
}

func (s *shell) handle(line string) {
	result, err := s.session.ExecLine(line)
	switch {
	case errors.Is(err, command.ErrBlank):
		return
	case err != nil:
		s.fail(s.describeParseError(err))
		return
	case result.Failed():
		s.fail(result.Err.Error())
		return
	}

	s.render(result)
}

func (s *shell) describeParseError(err error) string {
	var unknown *command.UnknownOpError
	if errors.As(err, &unknown) && !viper.GetBool(key.ShellSuggest) {
		return fmt.Sprintf("unknown operation %q", unknown.Name)
	}
	return err.Error()
}

func (s *shell) render(r command.Result) {
	switch r.Command.Op {
	case command.Push:
		s.println(fmt.Sprintf(
			"%s pushed %s %s",
			icon.Get(icon.Push),
			style.Fg(color.Yellow)(r.Command.Arg.OrEmpty()),
			style.Faint(fmt.Sprintf("(%s)", util.Quantify(r.Size, "element", "elements"))),
		))
	case command.Pop:
		s.println(fmt.Sprintf("%s %s", icon.Get(icon.Pop), style.Fg(color.Yellow)(r.Value)))
	case command.Peek:
		s.println(fmt.Sprintf("%s %s", icon.Get(icon.Peek), style.Fg(color.Yellow)(r.Value)))
	case command.Clear:
		s.println(fmt.Sprintf("%s cleared", icon.Get(icon.Success)))
	case command.Show:
		if len(r.Values) == 0 {
			s.println(fmt.Sprintf("%s empty", icon.Get(icon.Empty)))
			return
		}
		for i, v := range r.Values {
			marker := "  "
			if i == 0 {
				marker = style.Fg(color.Purple)("→ ")
			}
			s.println(marker + v)
		}
	case command.Help:
		s.println(wordwrap.String(r.Value, s.width))
	default:
		s.println(r.Value)
	}
}

func (s *shell) fail(msg string) {
	s.println(fmt.Sprintf("%s %s", style.Fg(color.Red)(icon.Get(icon.Fail)), msg))
}

func (s *shell) println(line string) {
	fmt.Fprintln(s.out, line)
}
