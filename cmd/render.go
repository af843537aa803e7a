package cmd

import "github.com/charmbracelet/lipgloss"

// Styles for status/report output.
var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true) // bright-magenta
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))            // bright-blue
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))            // bright-green
	alertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // bright-yellow
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // bright-black
)

// render applies a style unless colors are disabled.
func render(style lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
