package viewer

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jervi-sir/reddit-to-llm/domain"
	"github.com/Jervi-sir/reddit-to-llm/render"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case autoFetchMsg:
		return m.startFetch()

	case threadLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.thread = msg.Thread
		m.outputs = render.BuildOutputs(msg.Thread.Post, msg.Thread.Comments)
		m.hasOutputs = true
		m.phase = phaseSuccess
		m.failure = ""
		m.refreshViewport()
		m.viewport.GotoTop()
		return m, nil

	case threadErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.phase = phaseFailed
		m.failure = failureMessage(msg.Err)
		slog.Warn("thread fetch failed", "error", msg.Err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Everything else (blink ticks, mouse wheel) belongs to the focused
	// widget.
	if m.input.Focused() {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// startFetch runs the front half of the pipeline: reject re-entry while a
// fetch is in flight, wipe every previous result so nothing stale can
// show, validate the input, and only then go to the network.
func (m Model) startFetch() (Model, tea.Cmd) {
	if m.phase == phaseFetching {
		return m, nil
	}

	m.thread = domain.Thread{}
	m.outputs = render.Outputs{}
	m.hasOutputs = false
	m.failure = ""
	m.refreshViewport()

	raw := m.input.Value()
	if strings.TrimSpace(raw) == "" {
		m.phase = phaseFailed
		m.failure = emptyInputMessage
		return m, nil
	}

	id, err := domain.ParseThreadID(raw)
	if err != nil {
		m.phase = phaseFailed
		m.failure = failureMessage(err)
		return m, nil
	}

	m.phase = phaseFetching
	m.reqSeq++
	m.input.Blur()
	return m, m.fetchThread(id, m.reqSeq)
}

// failureMessage maps an error to one of the four user-facing messages.
// Anything that is not an input error or an HTTP status counts as a
// network failure.
func failureMessage(err error) string {
	var fetchErr *domain.FetchFailedError
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return emptyInputMessage
	case errors.Is(err, domain.ErrInvalidInput):
		return invalidInputMessage
	case errors.As(err, &fetchErr):
		return fmt.Sprintf("The thread could not be loaded (HTTP %d).", fetchErr.StatusCode)
	default:
		return networkErrorMessage
	}
}
