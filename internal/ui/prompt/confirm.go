// Package prompt asks the user short interactive questions.
package prompt

import (
	"context"
	"fmt"
	"io"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gitdojo/internal/ui/theme"
)

type keyMap struct {
	Yes  key.Binding
	No   key.Binding
	Quit key.Binding
}

var defaultKeys = keyMap{
	Yes:  key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:   key.NewBinding(key.WithKeys("n", "N", "enter"), key.WithHelp("n", "no")),
	Quit: key.NewBinding(key.WithKeys("esc", "ctrl+c", "q")),
}

// Confirm is a yes/no question model.
type Confirm struct {
	question string
	keys     keyMap
	answer   bool
	done     bool
}

var _ tea.Model = Confirm{}

// NewConfirm creates a yes/no question.
func NewConfirm(question string) Confirm {
	return Confirm{question: question, keys: defaultKeys}
}

func (c Confirm) Init() tea.Cmd {
	return nil
}

func (c Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}
	switch {
	case key.Matches(kmsg, c.keys.Yes):
		c.answer, c.done = true, true
		return c, tea.Quit
	case key.Matches(kmsg, c.keys.No), key.Matches(kmsg, c.keys.Quit):
		c.answer, c.done = false, true
		return c, tea.Quit
	}
	return c, nil
}

func (c Confirm) View() tea.View {
	if c.done {
		return tea.NewView("")
	}
	return tea.NewView(theme.Body.Render(c.question) + theme.Dim.Render(" (y/N) "))
}

// Answer reports whether the user said yes.
func (c Confirm) Answer() bool {
	return c.answer
}

// Done reports whether the user has answered.
func (c Confirm) Done() bool {
	return c.done
}

// Ask runs a Confirm on in/out and returns the answer.
func Ask(ctx context.Context, question string, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(NewConfirm(question),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("run prompt: %w", err)
	}
	c, ok := final.(Confirm)
	if !ok {
		return false, fmt.Errorf("unexpected prompt model %T", final)
	}
	return c.Answer(), nil
}
