package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Java-inspired palette
var (
	Primary   = lipgloss.Color("#f89820") // Java orange
	Secondary = lipgloss.Color("#5382a1") // Java blue

	Error   = lipgloss.Color("#ff3b30")
	Warning = lipgloss.Color("#ffcc00")
	Info    = lipgloss.Color("#5ac8fa")

	TextFaint = lipgloss.Color("#8e8e93")
)

var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Info)

	Faint = lipgloss.NewStyle().
		Foreground(TextFaint).
		Faint(true)

	PrefixStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary)
)

// LogStyles returns the console styles for the launcher log.
// Important messages are logged at warn level and labelled accordingly.
func LogStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Prefix = PrefixStyle
	styles.Key = KeyStyle
	styles.Levels[log.DebugLevel] = Faint.SetString("DEBUG")
	styles.Levels[log.InfoLevel] = InfoStyle.SetString("INFO")
	styles.Levels[log.WarnLevel] = WarningStyle.SetString("IMPORTANT")
	styles.Levels[log.ErrorLevel] = ErrorStyle.SetString("ERROR")
	return styles
}

// ErrorMessage returns a formatted error message
func ErrorMessage(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

// WarningMessage returns a formatted warning message
func WarningMessage(msg string) string {
	return WarningStyle.Render("⚠ " + msg)
}
