package lintfmt

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for the colour scheme. Lipgloss automatically degrades
// colors based on terminal capabilities.
var (
	// StyleBold is used for the report header, rule identifiers and
	// per-occurrence message lines.
	StyleBold = lipgloss.NewStyle().Bold(true)
	// StyleErrorHeading is used for the blocking-errors section title.
	StyleErrorHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleStyleHeading is used for the style-issues section title.
	StyleStyleHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	// StyleHighlight marks the offending span within an error line.
	StyleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	// StyleDim is used for context lines and their gutters.
	StyleDim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	// StyleErrorGutter marks line numbers of error lines.
	StyleErrorGutter = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// Scheme is the set of text decorators one renderer variant applies per
// line role. The plain scheme leaves text untouched; the colour scheme
// applies the lipgloss styles above.
type Scheme struct {
	Bold          func(string) string
	ErrorHeading  func(string) string
	StyleHeading  func(string) string
	Highlight     func(string) string
	Context       func(string) string
	Plain         func(string) string
	ErrorGutter   func(string) string
	ContextGutter func(string) string
	PlainGutter   func(string) string

	// Underline adds the secondary overline pass beneath highlighted
	// spans; the colour scheme relies on the highlight instead.
	Underline bool
}

// PlainScheme returns the scheme used for uncolored text reports.
func PlainScheme() Scheme {
	id := func(s string) string { return s }
	return Scheme{
		Bold:          id,
		ErrorHeading:  id,
		StyleHeading:  id,
		Highlight:     id,
		Context:       id,
		Plain:         id,
		ErrorGutter:   id,
		ContextGutter: id,
		PlainGutter:   id,
		Underline:     true,
	}
}

// ColorScheme returns the scheme used for terminal reports.
func ColorScheme() Scheme {
	render := func(st lipgloss.Style) func(string) string {
		return func(s string) string { return st.Render(s) }
	}
	return Scheme{
		Bold:          render(StyleBold),
		ErrorHeading:  render(StyleErrorHeading),
		StyleHeading:  render(StyleStyleHeading),
		Highlight:     render(StyleHighlight),
		Context:       render(StyleDim),
		Plain:         func(s string) string { return s },
		ErrorGutter:   render(StyleErrorGutter),
		ContextGutter: render(StyleDim),
		PlainGutter:   func(s string) string { return s },
	}
}

// ShouldUseColors determines whether colour output is appropriate: an
// explicit flag wins, then CI environment hints, then TTY detection.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}
