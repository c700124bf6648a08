package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/lifo-cli/lifo/command"
	"github.com/lifo-cli/lifo/internal/ui"
	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/util"
	"github.com/samber/mo"
)

// statefulBubble holds the session, the input components and the navigation history.
type statefulBubble struct {
	state         state
	statesHistory stack.Stack[state]

	keymap *keymap

	inputC textinput.Model
	helpC  help.Model

	session    *command.Session
	lastResult mo.Option[command.Result]
	lastError  error
	suggestion mo.Option[string]
	notifier   *ui.Model

	width, height int
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s and remembers the current state for previousState.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

// previousState returns to the state that preceded the current one, if any.
func (b *statefulBubble) previousState() {
	if s, ok := b.statesHistory.TryPop().Get(); ok {
		b.setState(s)
	}
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
	b.inputC.Width = util.Max(b.width/2-4, 10)
}

func newBubble(options *Options) *statefulBubble {
	bubble := &statefulBubble{
		keymap:   newKeymap(),
		session:  command.NewSession(options.Capacity),
		helpC:    help.New(),
		notifier: &ui.Model{},
	}

	for _, v := range options.Preload {
		bubble.session.Exec(command.Command{Op: command.Push, Arg: mo.Some(v)})
	}

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "push 42"
	bubble.inputC.Prompt = "> "
	bubble.inputC.CharLimit = 256
	bubble.inputC.Focus()

	bubble.setState(inputState)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	} else {
		bubble.resize(80, 24)
	}

	return bubble
}
