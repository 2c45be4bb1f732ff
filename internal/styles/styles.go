// Package styles centralizes lipgloss styling for terminal output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// BannerStyle renders the session banner.
	BannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

	// PromptStyle renders input prompts.
	PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))

	// WarningStyle renders recoverable input warnings.
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// ErrorStyle renders run-aborting error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

	// ResultStyle renders the final result line.
	ResultStyle = lipgloss.NewStyle().Bold(true)

	// FaintStyle renders secondary text such as the farewell line.
	FaintStyle = lipgloss.NewStyle().Faint(true)
)

// RenderBanner renders the session banner.
func RenderBanner(text string) string {
	return BannerStyle.Render(text)
}

// RenderWarning renders a recoverable input warning.
func RenderWarning(text string) string {
	return WarningStyle.Render(text)
}

// RenderError renders a run-aborting error message.
func RenderError(text string) string {
	return ErrorStyle.Render(text)
}

// RenderResult renders the final result line.
func RenderResult(text string) string {
	return ResultStyle.Render(text)
}
