package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6600")).
			Padding(1, 2, 0, 1)

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")). // Dimmed grey
			Italic(true).
			MarginLeft(1)

	// InputLabelStyle styles the label in front of the thread input field.
	InputLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// ModeActiveStyle highlights the selected output format tab.
	ModeActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#111111")).
			Background(lipgloss.Color("#FFB454")).
			Bold(true).
			Padding(0, 1)

	// ModeInactiveStyle styles the unselected output format tabs.
	ModeInactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B3B3B3")).
			Background(lipgloss.Color("#2B2B2B")).
			Padding(0, 1)

	// StatLabelStyle styles the metric names in the stats panel.
	StatLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// StatValueStyle styles the metric values in the stats panel.
	StatValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6DA95"))

	// OutputStyle frames the rendered output viewport.
	OutputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1).
			MarginLeft(1)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)
)
