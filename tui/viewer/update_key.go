package viewer

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jervi-sir/reddit-to-llm/render"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.showAllHints {
		if key.Matches(msg, m.keys.ToggleHints) || msg.String() == "esc" || msg.String() == "q" || msg.String() == "enter" {
			m.showAllHints = false
		}
		return m, nil
	}

	if m.input.Focused() {
		switch {
		case key.Matches(msg, m.keys.Fetch):
			return m.startFetch()
		case msg.String() == "esc":
			m.input.Blur()
			return m, nil
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.ToggleHints):
		m.showAllHints = true
		return m, nil

	case key.Matches(msg, m.keys.EditInput):
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Fetch), key.Matches(msg, m.keys.Refetch):
		return m.startFetch()

	case key.Matches(msg, m.keys.ModeNext):
		return m.switchMode(m.mode.Next()), nil

	case key.Matches(msg, m.keys.ModePrev):
		return m.switchMode(m.mode.Prev()), nil

	case key.Matches(msg, m.keys.ModeLLM):
		return m.switchMode(render.ModeLLMText), nil

	case key.Matches(msg, m.keys.ModeCompact):
		return m.switchMode(render.ModeCompactText), nil

	case key.Matches(msg, m.keys.ModeJSON):
		return m.switchMode(render.ModeJSON), nil

	case key.Matches(msg, m.keys.Copy):
		if !m.hasOutputs {
			return m, nil
		}
		return m, m.copyOutput()
	}

	// Remaining keys scroll the preview.
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// switchMode changes the selected rendering and rewraps the preview from
// the top. The stored outputs are untouched; only the viewport content
// changes.
func (m Model) switchMode(mode render.Mode) Model {
	if mode == m.mode {
		return m
	}
	m.mode = mode
	m.refreshViewport()
	m.viewport.GotoTop()
	return m
}
