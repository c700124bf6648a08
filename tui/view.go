package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/command"
	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

const cellWidth = 24

func (b *statefulBubble) View() string {
	switch b.state {
	case inputState:
		return b.viewInput()
	case helpState:
		return b.viewHelp()
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewInput() string {
	left := []string{
		style.Title(fmt.Sprintf("%s v%s", constant.Lifo, constant.Version)),
		"",
		b.inputC.View(),
	}

	if s, ok := b.suggestion.Get(); ok {
		left = append(left, style.Faint("tab: "+s))
	} else {
		left = append(left, "")
	}

	left = append(left, "", b.viewStatus())

	column := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(util.Max(b.width-cellWidth-4, 20)).Render(strings.Join(left, "\n")),
		b.viewStack(),
	)

	return b.renderLines(true, strings.Split(column, "\n"))
}

func (b *statefulBubble) viewStatus() string {
	result, ok := b.lastResult.Get()
	if !ok {
		return style.Faint(fmt.Sprintf("%s elements: %d", icon.Get(icon.Empty), b.session.Size()))
	}

	var msg string
	switch result.Command.Op {
	case command.Push:
		msg = fmt.Sprintf("%s pushed %s", icon.Get(icon.Push), result.Command.Arg.OrEmpty())
	case command.Pop:
		msg = fmt.Sprintf("%s popped %s", icon.Get(icon.Pop), result.Value)
	case command.Peek:
		msg = fmt.Sprintf("%s top is %s", icon.Get(icon.Peek), result.Value)
	case command.Clear:
		msg = fmt.Sprintf("%s cleared", icon.Get(icon.Success))
	case command.Empty:
		msg = fmt.Sprintf("%s empty: %s", icon.Get(icon.Question), result.Value)
	case command.Show:
		msg = fmt.Sprintf("%s %s", icon.Get(icon.Success), strings.Join(result.Values, ", "))
	default:
		msg = result.Value
	}

	return style.Fg(color.Green)(msg) + "\n" + style.Faint(fmt.Sprintf("elements: %d", result.Size))
}

// viewStack draws the stack as a column of cells, top first, capped by tui.max_rendered.
func (b *statefulBubble) viewStack() string {
	values := b.session.Values()
	if len(values) == 0 {
		return style.Cell(cellWidth, false)(style.Faint("empty"))
	}

	limit := util.Min(len(values), util.Max(viper.GetInt(key.TUIMaxRendered), 1))
	cells := make([]string, 0, limit+1)
	for i, v := range values[:limit] {
		cells = append(cells, style.Cell(cellWidth, i == 0)(style.Truncate(cellWidth-2)(v)))
	}

	if rest := len(values) - limit; rest > 0 {
		cells = append(cells, style.Faint(fmt.Sprintf("  … %s", util.Quantify(rest, "more element", "more elements"))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cells...)
}

func (b *statefulBubble) viewHelp() string {
	return b.renderLines(true, append([]string{style.Title("Operations"), ""}, strings.Split(command.HelpText(), "\n")...))
}

func (b *statefulBubble) viewError() string {
	body := lipgloss.NewStyle().Foreground(color.HiRed).Bold(true).Render(b.lastError.Error())
	return b.renderLines(true, []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " The operation was rejected:",
		"",
		wrap.String(body, util.Max(b.width, 10)),
	})
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp && viper.GetBool(key.TUIShowHelp) {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(b.notifier.View(l))
}
