// Package inline implements the non-interactive, scriptable execution mode.
package inline

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/util"
)

// Options configures a single inline run.
type Options struct {
	Out io.Writer
	// Steps are command lines, e.g. "push 1", executed in order.
	Steps []string
	// Capacity is the preallocation hint for the run's stack.
	Capacity int
	Json     bool
	// Strict stops at the first failing step and makes Run return its error.
	Strict bool
}

// ReadScript reads one step per line from path, or from stdin when path is "-".
// Blank lines and '#' comments are kept and skipped later by the parser.
func ReadScript(path string) ([]string, error) {
	if path == "-" {
		return readLines(os.Stdin)
	}

	f, err := filesystem.API().Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer util.Ignore(f.Close)

	return readLines(f)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
