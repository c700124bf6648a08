package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifo-cli/lifo/command"
	"github.com/lifo-cli/lifo/internal/ui"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

func (b *statefulBubble) Init() tea.Cmd {
	return textinput.Blink
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case ui.NotificationMsg, ui.ClearNotificationMsg:
		return b, b.notifier.Update(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.back):
			if b.state == inputState {
				b.inputC.SetValue("")
				b.suggestion = mo.None[string]()
				return b, nil
			}
			b.previousState()
			return b, nil
		case key.Matches(msg, b.keymap.help):
			b.newState(helpState)
			return b, nil
		}
	}

	switch b.state {
	case inputState:
		return b.updateInput(msg)
	default:
		return b, nil
	}
}

func (b *statefulBubble) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.confirm):
			return b, b.run(b.inputC.Value())
		case key.Matches(msg, b.keymap.complete):
			if s, ok := b.suggestion.Get(); ok {
				b.inputC.SetValue(s + " ")
				b.inputC.CursorEnd()
				b.suggestion = mo.None[string]()
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	b.suggest()
	return b, cmd
}

// suggest offers completion of the first word while it is still being typed.
func (b *statefulBubble) suggest() {
	value := b.inputC.Value()
	if value == "" || strings.ContainsRune(value, ' ') {
		b.suggestion = mo.None[string]()
		return
	}

	matches := lo.Filter(command.Complete(value), func(s string, _ int) bool {
		return s != strings.ToLower(value)
	})
	if len(matches) == 0 {
		b.suggestion = mo.None[string]()
		return
	}
	b.suggestion = mo.Some(matches[0])
}

func (b *statefulBubble) run(line string) tea.Cmd {
	before := b.session.Size()
	result, err := b.session.ExecLine(line)
	if errors.Is(err, command.ErrBlank) {
		return nil
	}

	b.inputC.SetValue("")
	b.suggestion = mo.None[string]()

	if err != nil {
		log.Warn(err)
		b.raiseError(err)
		return nil
	}

	if result.Failed() {
		b.raiseError(result.Err)
		return nil
	}

	if result.Command.Op == command.Help {
		b.newState(helpState)
		return nil
	}

	b.lastResult = mo.Some(result)
	if result.Command.Op == command.Clear && before > 0 {
		return ui.Notify("removed " + util.Quantify(before, "element", "elements"))
	}
	return nil
}
