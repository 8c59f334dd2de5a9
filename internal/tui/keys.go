package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Stop       key.Binding
	NewPhrase  key.Binding
	Difficulty key.Binding
	Backspace  key.Binding
	Quit       key.Binding
	Retry      key.Binding
	Next       key.Binding
	Continue   key.Binding
	QuitResult key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Stop: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "stop"),
		),
		NewPhrase: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "new phrase"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "difficulty"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next phrase"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		QuitResult: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) typingHelp() []key.Binding {
	return []key.Binding{k.Stop, k.NewPhrase, k.Difficulty, k.Quit}
}

func (k keyMap) resultHelp(mustRetry bool) []key.Binding {
	if mustRetry {
		return []key.Binding{k.Continue, k.Retry, k.Difficulty, k.QuitResult}
	}
	return []key.Binding{k.Continue, k.Retry, k.Next, k.Difficulty, k.QuitResult}
}
