package message

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Category styles. One fixed color/weight pair per category, applied to
// the whole line (timestamp, tag, and body) with a reset at the end.
var (
	debugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Faint(true)

	verboseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)
)

// styleFor returns the lipgloss style for a category.
func styleFor(c Category) lipgloss.Style {
	switch c {
	case Debug:
		return debugStyle
	case Verbose:
		return verboseStyle
	case Success:
		return successStyle
	case Warning:
		return warningStyle
	case Error:
		return errorStyle
	default:
		return infoStyle
	}
}

// ansiRenderer is pinned to the basic ANSI profile so that styled output
// carries escape sequences regardless of the terminal lipgloss would
// otherwise detect. Tests and piped output stay deterministic.
var ansiRenderer = newRenderer(termenv.ANSI)

func newRenderer(profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return r
}

// render applies the category style to s using the pinned ANSI profile.
func render(c Category, s string) string {
	return styleFor(c).Renderer(ansiRenderer).Render(s)
}
