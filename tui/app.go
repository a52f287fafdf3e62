package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jervi-sir/reddit-to-llm/app"
	"github.com/Jervi-sir/reddit-to-llm/tui/common"
	"github.com/Jervi-sir/reddit-to-llm/tui/viewer"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Thread    app.ThreadService
	Clipboard app.Clipboard
	Input     string // Startup value for the thread input; may be empty
	AutoFetch bool   // Fetch Input right after startup
}

// App is the root Bubble Tea model. It wraps the thread viewer, owns the
// quit keys, and renders the transient status line.
type App struct {
	keys     common.KeyMap
	viewer   viewer.Model
	status   string // Transient status message (e.g. "Copied llm output to clipboard.")
	statusOK bool
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		keys:   common.DefaultKeyMap(),
		viewer: viewer.New(deps.Thread, deps.Clipboard, deps.Input, deps.AutoFetch),
	}
}

// Init delegates to the viewer.
func (a App) Init() tea.Cmd {
	return a.viewer.Init()
}

// Update handles global keys and routes everything else to the viewer.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Quit) && !a.viewer.InputFocused() && !a.viewer.DialogOpen() {
			return a, tea.Quit
		}
		// Any other keypress retires the previous status.
		a.status = ""

	case viewer.CopyResultMsg:
		if msg.Err != nil {
			a.status = "Copy failed: " + msg.Err.Error()
			a.statusOK = false
		} else {
			a.status = fmt.Sprintf("Copied %s output to clipboard.", msg.Mode)
			a.statusOK = true
		}
		return a, nil
	}

	updated, cmd := a.viewer.Update(msg)
	a.viewer = updated
	return a, cmd
}

// View renders the viewer plus the transient status line, if any.
func (a App) View() string {
	s := a.viewer.View()

	if a.status != "" {
		style := common.ErrorStyle
		if a.statusOK {
			style = common.SuccessStyle
		}
		s += "\n" + common.StatusBarStyle.Render("  "+style.Render(a.status))
	}

	return s
}
