package lintfmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// Level selects how much of a report is shown.
type Level string

const (
	// LevelAll renders both the errors and the style sections.
	LevelAll Level = "all"
	// LevelErrors omits the style section entirely.
	LevelErrors Level = "errors"
)

// Rendering constants. The gutter is two leading spaces, a three-wide
// right-aligned line number, and two trailing spaces.
const (
	preLineNumSpaces = 2
	lineNumWidth     = 3
	afterNumSpaces   = 2

	errorSectionTitle = "=== Code errors/forbidden usage (fix: high priority) ==="
	styleSectionTitle = "=== Style/convention errors (fix: before submission) ==="
	noProblemsMessage = "No problems detected, good job!"

	// Generated: ShortDay. ShortMonth. PaddedDay LongYear, 12h time
	reportTimeLayout = "Mon. Jan. 02 2006, 03:04:05 PM"
)

// overlineRune is drawn beneath highlighted spans in plain reports (U+203E).
const overlineRune = "‾"

// Reporter renders aggregated diagnostics into per-file text reports.
// One Reporter owns one output destination for the lifetime of a run.
type Reporter struct {
	out    *Destination
	scheme Scheme

	// maxOccurrences caps how many diagnostics of one rule group are
	// rendered; zero or negative disables truncation.
	maxOccurrences int

	// now is stubbed in tests for stable report headers.
	now func() time.Time
}

// NewReporter builds a Reporter writing to out with the given scheme.
func NewReporter(out *Destination, scheme Scheme, maxOccurrences int) *Reporter {
	return &Reporter{
		out:            out,
		scheme:         scheme,
		maxOccurrences: maxOccurrences,
		now:            time.Now,
	}
}

// PrintReport renders and writes the report for one file: header and
// timestamp, the blocking-errors section, and (at LevelAll) the style
// section. Empty sections show a fixed no-problems message instead of an
// empty list. The destination is flushed afterwards so partial runs still
// leave readable output.
func (r *Reporter) PrintReport(a *Aggregator, file string, level Level) error {
	errGroups, styleGroups := a.Partition(file)

	var b strings.Builder
	b.WriteString("Report for: " + r.scheme.Bold(file) + "\n")
	b.WriteString(r.now().Format(reportTimeLayout) + "\n")

	b.WriteString(r.scheme.ErrorHeading(errorSectionTitle) + "\n")
	if body := r.renderGroups(errGroups); body != "" {
		b.WriteString(body)
	} else {
		b.WriteString(noProblemsMessage + "\n\n")
	}

	if level == LevelAll {
		b.WriteString(r.scheme.StyleHeading(styleSectionTitle) + "\n")
		if body := r.renderGroups(styleGroups); body != "" {
			b.WriteString(body)
		} else {
			b.WriteString(noProblemsMessage + "\n\n")
		}
	}

	if _, err := fmt.Fprintln(r.out, b.String()); err != nil {
		return err
	}
	return r.out.Flush()
}

// renderGroups renders every rule group of one bucket. Each group shows the
// rule identifier, its symbolic name and occurrence count; when truncation
// applies, a note names how many occurrences are shown. The truncation note
// appears only when the group is strictly larger than the cap, so a group
// exactly at the cap renders in full with no note.
func (r *Reporter) renderGroups(groups *Groups) string {
	max := r.maxOccurrences
	if max < 0 {
		max = 0
	}

	var b strings.Builder
	for _, id := range groups.IDs() {
		msgs := groups.Get(id)
		b.WriteString(r.scheme.Bold(id))
		b.WriteString(r.scheme.Bold(fmt.Sprintf(" (%s)  ", msgs[0].Symbol)))
		b.WriteString(fmt.Sprintf("Number of occurrences: %d.", len(msgs)))
		if max != 0 && max < len(msgs) {
			b.WriteString(fmt.Sprintf(" (First %d shown).", max))
		}
		b.WriteString("\n")

		for i, m := range msgs {
			if max != 0 && i == max {
				break
			}
			// Only the first line of the message text; anything after a
			// line break is accessory detail.
			text, _, _ := strings.Cut(m.Message, "\n")
			b.WriteString("  ")
			b.WriteString(r.scheme.Bold(fmt.Sprintf("[Line %d] %s", m.Line, text)))
			b.WriteString("\n")
			b.WriteString(m.Snippet)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderSnippet turns a snippet plan into its final string form using this
// reporter's scheme. Suitable as the Aggregator's SnippetRenderer.
func (r *Reporter) RenderSnippet(plan []SnippetLine) string {
	var b strings.Builder
	for _, rec := range plan {
		b.WriteString(r.renderLine(rec))
	}
	return b.String()
}

// renderLine formats one snippet row: gutter, role-styled text, and (for
// plain reports) the overline pass beneath the highlighted span.
func (r *Reporter) renderLine(rec SnippetLine) string {
	var b strings.Builder
	b.WriteString(r.gutter(rec.Number, rec.Role))

	switch rec.Role {
	case RoleError:
		start, end := rec.Span.Clamp(rec.Text)
		if rec.Text[:start] != "" {
			b.WriteString(r.scheme.Plain(rec.Text[:start]))
		}
		b.WriteString(r.scheme.Highlight(rec.Text[start:end]))
		if rec.Text[end:] != "" {
			b.WriteString(r.scheme.Plain(rec.Text[end:]))
		}
		b.WriteString("\n")
		if r.scheme.Underline {
			b.WriteString(overline(gutterWidth()+start, rec.Text[start:end]))
		}

	case RoleContext:
		b.WriteString(r.scheme.Context(rec.Text))
		b.WriteString("\n")

	case RoleDocstring:
		lead := len(rec.Text) - len(strings.TrimLeft(rec.Text, " "))
		trimmed := rec.Text[lead:]
		b.WriteString(strings.Repeat(" ", lead))
		b.WriteString(r.scheme.Highlight(trimmed))
		b.WriteString("\n")
		if r.scheme.Underline {
			b.WriteString(overline(gutterWidth()+lead, trimmed))
		}

	default:
		b.WriteString(rec.Text)
		b.WriteString("\n")
	}
	return b.String()
}

// gutter formats the line-number column. NoLine rows get blank padding of
// the same fixed width rather than a number.
func (r *Reporter) gutter(number int, role LineRole) string {
	pre := strings.Repeat(" ", preLineNumSpaces)
	post := strings.Repeat(" ", afterNumSpaces)

	num := strings.Repeat(" ", lineNumWidth)
	if number != NoLine {
		num = fmt.Sprintf("%*d", lineNumWidth, number)
	}

	switch role {
	case RoleError:
		return pre + r.scheme.ErrorGutter(num) + post
	case RoleContext, RoleOther:
		return pre + r.scheme.ContextGutter(num) + post
	case RoleDocstring:
		return pre + r.scheme.PlainGutter(num) + post
	}
	return pre + num + post
}

// overline draws the secondary pass under a highlighted span, matching its
// display width so wide runes stay covered.
func overline(prespace int, text string) string {
	return strings.Repeat(" ", prespace) + strings.Repeat(overlineRune, runewidth.StringWidth(text)) + "\n"
}

func gutterWidth() int {
	return preLineNumSpaces + lineNumWidth + afterNumSpaces
}

// plainSnippetRenderer is the fallback snippet renderer used when an
// Aggregator is built without a Reporter.
func plainSnippetRenderer(plan []SnippetLine) string {
	r := &Reporter{scheme: PlainScheme()}
	return r.RenderSnippet(plan)
}
