package inline

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lifo-cli/lifo/command"
)

// Step is the JSON record of one executed line.
type Step struct {
	// Line is the 1-based script line number.
	Line int `json:"line"`
	// Command is the normalized command, e.g. "push 1".
	Command string `json:"command"`
	// Value is the popped/peeked element, size or emptiness flag.
	Value string `json:"value,omitempty"`
	// Values is the top-first listing produced by show.
	Values []string `json:"values,omitempty"`
	// Size is the stack size after the step.
	Size  int    `json:"size"`
	Error string `json:"error,omitempty"`
}

// Output is the JSON document written by Run in JSON mode.
type Output struct {
	Steps []*Step `json:"steps"`
	// Final lists the remaining elements from top to bottom.
	Final []string `json:"final"`
	Size  int      `json:"size"`
}

func newStep(line int, raw string, c command.Command, r command.Result, err error) *Step {
	step := &Step{Line: line, Command: c.String(), Size: r.Size}
	if c.Op == "" {
		step.Command = strings.TrimSpace(raw)
	}
	if err != nil {
		step.Error = err.Error()
		return step
	}

	step.Values = r.Values
	if c.Op != command.Show && c.Op != command.Help {
		step.Value = r.Value
	}
	return step
}

func writeJson(out io.Writer, output *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
