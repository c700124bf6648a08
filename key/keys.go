// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Stack Allocation - these keys tune the stacks created by the application.
const (
	StackCapacity = "stack.capacity"
)

// Interactive Shell - these keys configure the line-based interactive mode.
const (
	ShellPrompt  = "shell.prompt"
	ShellSuggest = "shell.suggest"
)

// Inline Mode - these keys configure non-interactive script execution.
const (
	InlineStrict = "inline.strict"
)

// Terminal User Interface (TUI) - these keys define the full-screen interface's rendering.
const (
	TUIShowHelp    = "tui.show_help"
	TUIMaxRendered = "tui.max_rendered"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment
const (
	CliColored = "cli.colored"
)
