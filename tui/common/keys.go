package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit        key.Binding // q — quit (ignored while the input field is focused)
	ForceQuit   key.Binding // ctrl+c — quit from anywhere
	Fetch       key.Binding // enter — fetch the thread for the current input
	EditInput   key.Binding // i or / — focus the thread input field
	Refetch     key.Binding // r — fetch the same input again
	ModeNext    key.Binding // tab — next output format
	ModePrev    key.Binding // shift+tab — previous output format
	ModeLLM     key.Binding // 1 — LLM text
	ModeCompact key.Binding // 2 — compact text
	ModeJSON    key.Binding // 3 — JSON
	Copy        key.Binding // c — copy the active output to the clipboard
	Up          key.Binding
	Down        key.Binding
	ToggleHints key.Binding // ? — full key dialog
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Fetch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "fetch"),
		),
		EditInput: key.NewBinding(
			key.WithKeys("i", "/"),
			key.WithHelp("i", "edit input"),
		),
		Refetch: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refetch"),
		),
		ModeNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next format"),
		),
		ModePrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev format"),
		),
		ModeLLM: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "llm"),
		),
		ModeCompact: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "compact"),
		),
		ModeJSON: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "json"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		ToggleHints: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "all keys"),
		),
	}
}
