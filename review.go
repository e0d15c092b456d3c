package renamer

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

type promptKeyMap struct {
	Confirm key.Binding
	Edit    key.Binding
	Abort   key.Binding
}

func reviewKeyMap() promptKeyMap {
	return promptKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "apply"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit again"),
		),
		Abort: key.NewBinding(
			key.WithKeys("n", "q", "esc", "ctrl+c"),
			key.WithHelp("n", "abort"),
		),
	}
}

func retryKeyMap() promptKeyMap {
	return promptKeyMap{
		Edit: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "edit again"),
		),
		Abort: key.NewBinding(
			key.WithKeys("n", "q", "esc", "ctrl+c"),
			key.WithHelp("n", "abort"),
		),
	}
}

func (k promptKeyMap) ShortHelp() []key.Binding {
	var bindings []key.Binding
	for _, b := range []key.Binding{k.Confirm, k.Edit, k.Abort} {
		if b.Enabled() {
			bindings = append(bindings, b)
		}
	}
	return bindings
}

func (k promptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// promptModel is a single-keystroke inline prompt. It renders a body above a
// help line and quits on the first bound key.
type promptModel struct {
	body    string
	keys    promptKeyMap
	help    help.Model
	choice  Choice
	decided bool
}

func newPromptModel(body string, keys promptKeyMap) promptModel {
	return promptModel{body: body, keys: keys, help: help.New(), choice: ChoiceAbort}
}

func (m promptModel) Init() tea.Cmd { return nil }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.keys.Confirm):
		m.choice = ChoiceApply
	case key.Matches(kmsg, m.keys.Edit):
		m.choice = ChoiceEdit
	case key.Matches(kmsg, m.keys.Abort):
		m.choice = ChoiceAbort
	default:
		return m, nil
	}
	m.decided = true
	return m, tea.Quit
}

func (m promptModel) View() string {
	if m.decided {
		return m.body + "\n"
	}
	return m.body + "\n" + m.help.View(m.keys)
}

// TerminalPrompter runs the inline prompts on the controlling terminal.
type TerminalPrompter struct{}

func (TerminalPrompter) Review(actions []Action) (Choice, error) {
	return runPrompt(FormatActions(actions), reviewKeyMap())
}

func (TerminalPrompter) RetryParse(parseErr error) (bool, error) {
	body := errorStyle.Render(fmt.Sprintf("Cannot pair the edited names with the listing: %v", parseErr))
	choice, err := runPrompt(body, retryKeyMap())
	if err != nil {
		return false, err
	}
	return choice == ChoiceEdit, nil
}

func runPrompt(body string, keys promptKeyMap) (Choice, error) {
	p := tea.NewProgram(newPromptModel(body, keys))
	final, err := p.Run()
	if err != nil {
		return ChoiceAbort, fmt.Errorf("prompt failed: %w", err)
	}
	return final.(promptModel).choice, nil
}

// interactive reports whether stdout is attached to a terminal.
func interactive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
