package inline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lifo-cli/lifo/command"
	"github.com/lifo-cli/lifo/log"
)

// Run executes options.Steps against a fresh stack and reports each step.
//
// Text mode prints one line per step that produces a value; failures print "error: ...".
// JSON mode writes a single Output document after all steps ran.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	var (
		session = command.NewSession(options.Capacity)
		output  = &Output{Steps: []*Step{}}
		failure error
	)

	for i, line := range options.Steps {
		c, err := command.Parse(line)
		if errors.Is(err, command.ErrBlank) {
			continue
		}

		var result command.Result
		if err == nil {
			result = session.Exec(c)
			err = result.Err
		} else {
			result.Size = session.Size()
		}

		if err != nil {
			log.Warnf("line %d: %v", i+1, err)
		}

		if options.Json {
			output.Steps = append(output.Steps, newStep(i+1, line, c, result, err))
		} else if werr := writeText(options.Out, c, result, err); werr != nil {
			return werr
		}

		if err != nil && options.Strict {
			failure = fmt.Errorf("line %d: %w", i+1, err)
			break
		}
	}

	if options.Json {
		output.Final = session.Values()
		output.Size = session.Size()
		if err := writeJson(options.Out, output); err != nil {
			return err
		}
	}

	return failure
}

func writeText(out io.Writer, c command.Command, r command.Result, err error) error {
	if err != nil {
		_, werr := fmt.Fprintf(out, "error: %v\n", err)
		return werr
	}

	switch c.Op {
	case command.Push, command.Clear:
		return nil
	case command.Show:
		for _, v := range r.Values {
			if _, werr := fmt.Fprintln(out, v); werr != nil {
				return werr
			}
		}
		return nil
	default:
		_, werr := fmt.Fprintln(out, r.Value)
		return werr
	}
}
