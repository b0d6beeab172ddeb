package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

//nolint:gochecknoglobals
var (
	// screenStyle frames the character grid.
	screenStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// helpStyle renders the key hints under the frame.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// LineHandler consumes submitted lines. *shell.Shell satisfies it.
type LineHandler interface {
	HandleLine(line string)
	Prompt()
}

type keyMap struct {
	Submit key.Binding
	Erase  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Erase:  key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "erase")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) help() string {
	var s string
	for i, b := range []key.Binding{k.Submit, k.Erase, k.Quit} {
		if i > 0 {
			s += " • "
		}
		h := b.Help()
		s += h.Key + ": " + h.Desc
	}
	return s
}

// Terminal is the [tea.Model] of the interactive front end. Keystrokes go
// through a LineEditor echoing onto the Screen; a submitted line is handed to
// the LineHandler from within Update, so the screen and everything behind the
// handler are only touched on the program's goroutine.
type Terminal struct {
	screen  *Screen
	editor  *LineEditor
	handler LineHandler
	keys    keyMap
}

var _ tea.Model = (*Terminal)(nil)

// NewTerminal returns a model editing lines of at most maxLine bytes on
// screen. handler should already render to screen.
func NewTerminal(screen *Screen, handler LineHandler, maxLine int) *Terminal {
	return &Terminal{
		screen:  screen,
		editor:  NewLineEditor(maxLine, screen),
		handler: handler,
		keys:    defaultKeyMap(),
	}
}

// Screen returns the grid the terminal renders.
func (t *Terminal) Screen() *Screen {
	return t.screen
}

// Init initializes the model within a [tea.Program].
func (t *Terminal) Init() tea.Cmd {
	return nil
}

// Update applies one key press.
//
//nolint:ireturn
func (t *Terminal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch {
	case key.Matches(km, t.keys.Quit):
		return t, tea.Quit
	case key.Matches(km, t.keys.Submit):
		line := t.editor.Submit()
		t.handler.HandleLine(line)
		t.handler.Prompt()
	case key.Matches(km, t.keys.Erase):
		t.editor.Backspace()
	case km.Type == tea.KeySpace:
		t.editor.Insert(' ')
	case km.Type == tea.KeyRunes:
		for _, r := range km.Runes {
			if r < 0x80 {
				t.editor.Insert(byte(r))
			}
		}
	}
	return t, nil
}

// View renders the framed screen and the key hints.
func (t *Terminal) View() string {
	cols, rows := t.screen.Size()
	return lipgloss.JoinVertical(
		lipgloss.Left,
		screenStyle.Width(cols).Height(rows).Render(t.screen.String()),
		helpStyle.Render(t.keys.help()),
	)
}

// RunTerminal runs t as a full-screen program until the user quits or ctx is
// done. Extra options are passed to [tea.NewProgram].
func RunTerminal(ctx context.Context, t *Terminal, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(t, opts...)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("(terminal) %w", err)
	}
	return nil
}
