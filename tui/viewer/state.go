// Package viewer drives one thread through the pipeline: normalize the
// input, fetch the thread, build the three renderings, and show whichever
// one is selected. It owns the fetch lifecycle; at most one request is in
// flight, and every result is replaced wholesale on the next fetch.
package viewer

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jervi-sir/reddit-to-llm/app"
	"github.com/Jervi-sir/reddit-to-llm/domain"
	"github.com/Jervi-sir/reddit-to-llm/render"
	"github.com/Jervi-sir/reddit-to-llm/tui/common"
)

// phase is the fetch lifecycle state. idle only exists before the first
// fetch; after that the model rests in success or failed, both of which
// accept a new fetch immediately.
type phase int

const (
	phaseIdle phase = iota
	phaseFetching
	phaseSuccess
	phaseFailed
)

// The four user-facing failure messages. Every failed fetch surfaces
// exactly one of these; raw errors only go to the log.
const (
	emptyInputMessage   = "Enter a thread URL or ID first."
	invalidInputMessage = "That is neither a thread ID nor a thread URL with a /comments/ segment."
	networkErrorMessage = "Could not load the thread. Check your connection and try again."
)

// --- Messages ---

// threadLoadedMsg is sent when a thread fetch completes successfully.
type threadLoadedMsg struct {
	Thread domain.Thread
	ReqSeq int
}

// threadErrorMsg is sent when a thread fetch fails anywhere in the
// pipeline past input validation.
type threadErrorMsg struct {
	Err    error
	ReqSeq int
}

// autoFetchMsg triggers the single startup fetch when an input was given
// on the command line. It goes through the exact same path as the enter
// key so validation is not skipped.
type autoFetchMsg struct{}

// CopyResultMsg reports a clipboard copy attempt. The root model turns it
// into a status line.
type CopyResultMsg struct {
	Mode render.Mode
	Err  error
}

// --- Model ---

type services struct {
	threads   app.ThreadService
	clipboard app.Clipboard
}

type fetchState struct {
	phase      phase
	reqSeq     int
	failure    string // one of the user-facing messages, set iff phase == phaseFailed
	thread     domain.Thread
	outputs    render.Outputs
	hasOutputs bool
}

type uiState struct {
	keys         common.KeyMap
	input        textinput.Model
	spinner      spinner.Model
	viewport     viewport.Model
	mode         render.Mode
	width        int // Terminal width
	height       int // Terminal height
	ready        bool
	showAllHints bool
}

// Model holds the state for the thread viewer.
type Model struct {
	services
	fetchState
	uiState
	autoFetch bool
}

// New creates a viewer model with injected dependencies. initialInput
// seeds the thread input field; when autoFetch is set, Init schedules one
// fetch for it.
func New(thread app.ThreadService, clip app.Clipboard, initialInput string, autoFetch bool) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	ti := textinput.New()
	ti.Placeholder = "https://www.reddit.com/r/.../comments/<id>/... or bare ID"
	ti.Prompt = ""
	ti.SetValue(initialInput)
	if !autoFetch {
		ti.Focus()
	}

	return Model{
		services: services{
			threads:   thread,
			clipboard: clip,
		},
		uiState: uiState{
			keys:    common.DefaultKeyMap(),
			input:   ti,
			spinner: s,
			mode:    render.ModeLLMText,
		},
		autoFetch: autoFetch,
	}
}

// Init starts the cursor blink, the spinner, and the startup fetch if an
// input was supplied on the command line.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.autoFetch {
		cmds = append(cmds, func() tea.Msg { return autoFetchMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the viewer.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// InputFocused reports whether keystrokes currently go to the input
// field. The root model uses it to keep plain q from quitting mid-typing.
func (m Model) InputFocused() bool {
	return m.input.Focused()
}

// Fetching reports whether a fetch is in flight.
func (m Model) Fetching() bool {
	return m.phase == phaseFetching
}

// DialogOpen reports whether an overlay should capture quit/back keys.
func (m Model) DialogOpen() bool {
	return m.showAllHints
}

// activeOutput returns the stored rendering for the selected mode, or ""
// before the first successful fetch.
func (m Model) activeOutput() string {
	if !m.hasOutputs {
		return ""
	}
	return m.outputs.For(m.mode)
}
