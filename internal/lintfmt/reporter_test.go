package lintfmt

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReporter(buf *bytes.Buffer, maxOccurrences int) *Reporter {
	r := NewReporter(FromWriter(buf), PlainScheme(), maxOccurrences)
	r.now = func() time.Time {
		return time.Date(2009, time.November, 10, 23, 0, 0, 0, time.UTC)
	}
	return r
}

func TestRenderSnippet_ErrorLine(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReporter(&buf, 0)

	got := r.RenderSnippet([]SnippetLine{
		{Number: 5, Role: RoleError, Span: ColSpan{Start: 2, End: 4}, Text: "abcdef"},
	})

	want := "    5  abcdef\n" +
		strings.Repeat(" ", 9) + strings.Repeat("‾", 2) + "\n"
	assert.Equal(t, want, got)
}

func TestRenderSnippet_BlankGutterForSyntheticRow(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReporter(&buf, 0)

	got := r.RenderSnippet([]SnippetLine{
		{Number: NoLine, Role: RoleDocstring, Span: WholeLine, Text: `"""Docstring here."""`},
	})

	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	// Seven blank columns of gutter, never "0".
	assert.Equal(t, strings.Repeat(" ", 7)+`"""Docstring here."""`, lines[0])
	assert.NotContains(t, lines[0], "0")
	// Overline pass matches the text width.
	assert.Equal(t, strings.Repeat(" ", 7)+strings.Repeat("‾", 21), lines[1])
}

func TestRenderSnippet_DocstringKeepsIndentation(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReporter(&buf, 0)

	got := r.RenderSnippet([]SnippetLine{
		{Number: 2, Role: RoleDocstring, Span: WholeLine, Text: `    """Doc."""`},
	})

	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, `    2      """Doc."""`, lines[0])
	assert.Equal(t, strings.Repeat(" ", 11)+strings.Repeat("‾", 10), lines[1])
}

func TestRenderSnippet_ContextAndOtherHaveNoOverline(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReporter(&buf, 0)

	got := r.RenderSnippet([]SnippetLine{
		{Number: 1, Role: RoleContext, Span: WholeLine, Text: "while condition:"},
		{Number: 2, Role: RoleOther, Span: WholeLine, Text: "    pass"},
	})

	assert.Equal(t, "    1  while condition:\n    2      pass\n", got)
	assert.NotContains(t, got, "‾")
}

// reportScenario builds the two-diagnostic scenario: an undefined-variable
// error at line 3 (cols 4-12) and trailing whitespace at line 7.
func reportScenario(t *testing.T, r *Reporter) (*Aggregator, string) {
	t.Helper()
	path := writeSource(t, strings.Join([]string{
		"def process(data):",
		"    total = 0",
		"    y = spam_value + 1",
		"    return total",
		"",
		"x = 1",
		"value = 42   ",
	}, "\n")+"\n")

	a := NewAggregator(DefaultClassification(), DefaultPlanTable(), r.RenderSnippet)
	a.SwitchFile("example", path)
	a.Record(Diagnostic{
		ID: "E0602", Symbol: "undefined-variable",
		Message: "Undefined variable 'spam_value'",
		Path:    path, Line: 3, Column: 4, EndColumn: 12,
	})
	a.BindContext("E0602", &Node{Kind: "name", Line: 3})
	a.Record(Diagnostic{
		ID: "C0303", Symbol: "trailing-whitespace",
		Message: "Trailing whitespace",
		Path:    path, Line: 7,
	})
	a.BindContext("C0303", &Node{Kind: "line", Line: 7})
	return a, path
}

func TestPrintReport_AllLevel(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReporter(&buf, 0)
	a, path := reportScenario(t, r)

	require.NoError(t, r.PrintReport(a, path, LevelAll))
	out := buf.String()

	assert.Contains(t, out, "Report for: "+path)
	assert.Contains(t, out, "Tue. Nov. 10 2009, 11:00:00 PM")
	assert.Contains(t, out, errorSectionTitle)
	assert.Contains(t, out, styleSectionTitle)

	assert.Contains(t, out, "E0602 (undefined-variable)  Number of occurrences: 1.")
	assert.Contains(t, out, "[Line 3] Undefined variable 'spam_value'")
	assert.Contains(t, out, "    3      y = spam_value + 1")
	// Overline beneath columns 4-12 of line 3.
	assert.Contains(t, out, strings.Repeat(" ", 11)+strings.Repeat("‾", 8))

	assert.Contains(t, out, "C0303 (trailing-whitespace)  Number of occurrences: 1.")
	assert.Contains(t, out, "[Line 7] Trailing whitespace")
	assert.Contains(t, out, "    7  value = 42   ")
}

func TestPrintReport_ErrorsOnlyOmitsStyleSection(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReporter(&buf, 0)
	a, path := reportScenario(t, r)

	require.NoError(t, r.PrintReport(a, path, LevelErrors))
	out := buf.String()

	assert.Contains(t, out, errorSectionTitle)
	assert.NotContains(t, out, styleSectionTitle)
	assert.NotContains(t, out, "C0303")
}

func TestPrintReport_MessageTruncatedAtFirstLineBreak(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReporter(&buf, 0)
	path := writeSource(t, "x = 1\n")

	a := NewAggregator(DefaultClassification(), DefaultPlanTable(), r.RenderSnippet)
	a.SwitchFile("example", path)
	a.Record(Diagnostic{
		ID: "C0303", Symbol: "trailing-whitespace",
		Message: "Trailing whitespace\nRemove the spaces at the end of the line.",
		Line:    1,
	})

	require.NoError(t, r.PrintReport(a, path, LevelAll))
	out := buf.String()
	assert.Contains(t, out, "[Line 1] Trailing whitespace")
	assert.NotContains(t, out, "Remove the spaces")
}

func TestPrintReport_EmptyFile(t *testing.T) {
	path := writeSource(t, "x = 1\n")

	t.Run("level all shows no-problems twice", func(t *testing.T) {
		var buf bytes.Buffer
		r := newTestReporter(&buf, 0)
		a := NewAggregator(DefaultClassification(), DefaultPlanTable(), r.RenderSnippet)
		a.SwitchFile("example", path)

		require.NoError(t, r.PrintReport(a, path, LevelAll))
		assert.Equal(t, 2, strings.Count(buf.String(), noProblemsMessage))
		assert.NotContains(t, buf.String(), "Number of occurrences")
	})

	t.Run("errors-only shows it once", func(t *testing.T) {
		var buf bytes.Buffer
		r := newTestReporter(&buf, 0)
		a := NewAggregator(DefaultClassification(), DefaultPlanTable(), r.RenderSnippet)
		a.SwitchFile("example", path)

		require.NoError(t, r.PrintReport(a, path, LevelErrors))
		assert.Equal(t, 1, strings.Count(buf.String(), noProblemsMessage))
		assert.NotContains(t, buf.String(), styleSectionTitle)
	})
}

func truncationAggregator(t *testing.T, r *Reporter, occurrences int) (*Aggregator, string) {
	t.Helper()
	path := writeSource(t, "a = 1\nb = 2\nc = 3\nd = 4\n")
	a := NewAggregator(DefaultClassification(), DefaultPlanTable(), r.RenderSnippet)
	a.SwitchFile("example", path)
	for i := 1; i <= occurrences; i++ {
		a.Record(Diagnostic{
			ID: "E0602", Symbol: "undefined-variable",
			Message: "Undefined variable", Line: i,
		})
	}
	return a, path
}

func TestPrintReport_Truncation(t *testing.T) {
	tests := []struct {
		name        string
		occurrences int
		max         int
		wantShown   int
		wantNote    string
	}{
		{
			name:        "over the cap truncates with note",
			occurrences: 3,
			max:         2,
			wantShown:   2,
			wantNote:    "(First 2 shown).",
		},
		{
			name:        "exactly at the cap renders all without note",
			occurrences: 2,
			max:         2,
			wantShown:   2,
		},
		{
			name:        "zero cap disables truncation",
			occurrences: 4,
			max:         0,
			wantShown:   4,
		},
		{
			name:        "cap above count renders all without note",
			occurrences: 2,
			max:         10,
			wantShown:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := newTestReporter(&buf, tt.max)
			a, path := truncationAggregator(t, r, tt.occurrences)

			require.NoError(t, r.PrintReport(a, path, LevelErrors))
			out := buf.String()

			assert.Equal(t, tt.wantShown, strings.Count(out, "[Line "))
			if tt.wantNote != "" {
				assert.Contains(t, out, tt.wantNote)
			} else {
				assert.NotContains(t, out, "shown).")
			}
		})
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReporter(&buf, 0)
	a, _ := reportScenario(t, r)

	require.NoError(t, r.PrintSummary(a))
	out := buf.String()

	assert.Contains(t, out, "Run summary")
	assert.Contains(t, out, "Files checked:   1")
	assert.Contains(t, out, "Files flagged:   1")
	assert.Contains(t, out, "Code errors:     1")
	assert.Contains(t, out, "Style issues:    1")
	assert.Contains(t, out, "* E0602: 1")
	assert.Contains(t, out, "* C0303: 1")
}

func TestColorSchemeHighlightsSpan(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(FromWriter(&buf), ColorScheme(), 0)

	got := r.RenderSnippet([]SnippetLine{
		{Number: 1, Role: RoleError, Span: ColSpan{Start: 0, End: 3}, Text: "abc def"},
	})

	// The colour scheme replaces the overline pass with the highlight.
	assert.NotContains(t, got, "‾")
	assert.Contains(t, got, "abc")
	assert.Contains(t, got, " def")
}
