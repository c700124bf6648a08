// Package tui provides the full-screen terminal user interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Capacity is the preallocation hint for the session's stack.
	Capacity int
	// Preload is pushed onto the stack, in order, before the UI starts.
	Preload []string
}

// Run initializes and executes the Bubble Tea application loop.
func Run(options *Options) error {
	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}
