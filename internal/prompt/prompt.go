// Package prompt asks the user interactive yes/no questions.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/lvenv/internal/messages"
	"github.com/conn-castle/lvenv/internal/terminal"
)

var (
	// ErrNotInteractive is returned when a prompt is attempted without a terminal.
	ErrNotInteractive = errors.New(messages.PromptRequiresTerminal)
	// ErrCancelled is returned when the user presses Esc or Ctrl+C.
	ErrCancelled = errors.New(messages.PromptCancelled)
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(title string, value *bool) error
}

// HuhConfirmer implements Confirmer using charmbracelet/huh.
type HuhConfirmer struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhConfirmer returns a HuhConfirmer that requires an interactive terminal.
func NewHuhConfirmer() *HuhConfirmer {
	return &HuhConfirmer{isTerminal: terminal.IsInteractive}
}

// keyMap binds both Esc and Ctrl+C to abort.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	return km
}

// formFilter converts InterruptMsg (huh's CancelCmd or an external SIGINT)
// to QuitMsg so bubbletea clears the form before returning.
func formFilter() func(tea.Model, tea.Msg) tea.Msg {
	return func(_ tea.Model, msg tea.Msg) tea.Msg {
		if _, ok := msg.(tea.InterruptMsg); ok {
			return tea.QuitMsg{}
		}
		return msg
	}
}

// Confirm renders a yes/no prompt. value holds the default on entry and the answer on return.
func (c *HuhConfirmer) Confirm(title string, value *bool) error {
	checker := c.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if !checker() {
		return ErrNotInteractive
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(value),
		),
	)
	form.WithKeyMap(keyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(formFilter()),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}
