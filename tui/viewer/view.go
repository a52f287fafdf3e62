package viewer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Jervi-sir/reddit-to-llm/render"
	"github.com/Jervi-sir/reddit-to-llm/tui/common"
)

// reservedLines is the vertical space around the preview viewport: title,
// input row, tabs, status area, the viewport frame, and the hint bar.
const reservedLines = 13

// View renders the viewer as a string.
func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.showAllHints {
		return m.renderKeyDialog()
	}

	var b strings.Builder

	title := common.AppTitleStyle.Render("🧵 reddit-to-llm")
	tagline := common.TaglineStyle.Render("<one thread, prompt-ready>")
	b.WriteString(title + tagline + "\n\n")

	b.WriteString("  " + common.InputLabelStyle.Render("Thread:") + " " + m.input.View() + "\n\n")

	b.WriteString(m.renderModeTabs() + "\n\n")

	switch m.phase {
	case phaseFetching:
		b.WriteString(fmt.Sprintf("  %s Fetching thread...\n", m.spinner.View()))
	case phaseFailed:
		b.WriteString("  " + common.ErrorStyle.Render(m.failure) + "\n")
	case phaseSuccess:
		b.WriteString(m.renderStats() + "\n")
	default:
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Render("  Paste a thread URL or ID and press enter.") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(common.OutputStyle.Render(m.viewport.View()) + "\n")

	b.WriteString(m.helpView())

	return b.String()
}

func (m Model) renderModeTabs() string {
	modes := []render.Mode{render.ModeLLMText, render.ModeCompactText, render.ModeJSON}
	tabs := make([]string, 0, len(modes))
	for _, mode := range modes {
		style := common.ModeInactiveStyle
		if mode == m.mode {
			style = common.ModeActiveStyle
		}
		tabs = append(tabs, style.Render(mode.String()))
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderStats is the one-line metrics panel shown after a successful
// fetch. The token figure is the four-chars-per-token estimate of the
// llm rendering, whatever mode is selected.
func (m Model) renderStats() string {
	s := m.outputs.Stats
	pairs := []string{
		statPair("post score", strconv.Itoa(s.PostScore)),
		statPair("comments", strconv.Itoa(s.TotalComments)),
		statPair("score sum", strconv.Itoa(s.TotalCommentScore)),
		statPair("avg score", fmt.Sprintf("%.1f", s.AvgCommentScore)),
		statPair("comments/point", fmt.Sprintf("%.2f", s.CommentsPerScorePoint)),
		statPair("tokens", fmt.Sprintf("≈%d", common.ApproxTokens(m.outputs.LLMText))),
	}
	return common.ClampWidth("  "+strings.Join(pairs, "   "), max(m.width-2, 20))
}

func statPair(label, value string) string {
	return common.StatLabelStyle.Render(label+" ") + common.StatValueStyle.Render(value)
}

func (m Model) helpView() string {
	var items []string

	if m.input.Focused() {
		items = []string{
			"enter: fetch",
			"esc: leave input",
			"ctrl+c: quit",
		}
	} else if m.hasOutputs {
		items = []string{
			"tab: format",
			"1/2/3: format",
			"c: copy",
			"j/k: scroll",
			"i: edit input",
			"r: refetch",
			"q: quit",
			"?: all keys",
		}
	} else {
		items = []string{
			"i: edit input",
			"enter: fetch",
			"q: quit",
			"?: all keys",
		}
	}

	wrapWidth := max(m.width-2, 16)
	return common.StatusBarStyle.
		Width(wrapWidth).
		Render("  " + strings.Join(items, " • "))
}

func (m Model) renderKeyDialog() string {
	lines := []string{
		"i or /           edit the thread input",
		"enter            fetch the entered thread",
		"r                fetch the same input again",
		"tab / shift+tab  next / previous format",
		"1 / 2 / 3        llm / compact / json format",
		"c                copy the shown format",
		"j/k or up/down   scroll the preview",
		"pgup/pgdn        page the preview",
		"q                quit",
		"ctrl+c           force quit",
		"?                toggle this dialog",
	}

	body := "Keyboard Shortcuts\n\n" + strings.Join(lines, "\n") + "\n\nPress ?, esc, q, or enter to close."
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF8700")).
		Padding(1, 2).
		Margin(1, 2).
		Render(body)
}

// resizeViewport sizes the preview to the terminal, creating it on the
// first WindowSizeMsg. Width subtracts the frame OutputStyle adds.
func (m *Model) resizeViewport() {
	width := max(20, m.width-7)
	height := max(3, m.height-reservedLines)
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
		return
	}
	m.viewport.Width = width
	m.viewport.Height = height
}

// refreshViewport rewraps the active rendering into the preview. Scroll
// position is preserved; callers that change content semantics call
// GotoTop themselves.
func (m *Model) refreshViewport() {
	if !m.ready || m.viewport.Width <= 0 {
		return
	}
	out := m.activeOutput()
	if out == "" {
		m.viewport.SetContent(lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Italic(true).
			Render("Nothing fetched yet. The rendered thread appears here."))
		m.viewport.GotoTop()
		return
	}
	m.viewport.SetContent(wordwrap.String(out, m.viewport.Width))
}
