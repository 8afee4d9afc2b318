package lintfmt

// LineRole classifies a snippet line and controls how the renderer styles
// it: the offending line itself, surrounding syntactic context, a docstring
// line, or extra lines included for readability.
type LineRole uint8

const (
	RoleError LineRole = iota
	RoleContext
	RoleDocstring
	RoleOther
)

func (r LineRole) String() string {
	switch r {
	case RoleError:
		return "error"
	case RoleContext:
		return "context"
	case RoleDocstring:
		return "docstring"
	case RoleOther:
		return "other"
	}
	return "unknown"
}

// EndOfLine marks a column span extending to the end of its line.
const EndOfLine = -1

// NoLine is the line number of synthetic rows that have no physical source
// line; the renderer shows blank gutter padding for them.
const NoLine = 0

// ColSpan is a half-open [Start, End) column slice within one line.
// End may be EndOfLine. Bounds are clamped against the actual line text at
// render time, so out-of-range values never fail.
type ColSpan struct {
	Start int
	End   int
}

// WholeLine spans an entire line.
var WholeLine = ColSpan{Start: 0, End: EndOfLine}

// Clamp resolves the span against text, guaranteeing
// 0 <= start <= end <= len(text).
func (s ColSpan) Clamp(text string) (start, end int) {
	start = s.Start
	if start < 0 {
		start = 0
	}
	if start > len(text) {
		start = len(text)
	}
	end = s.End
	if end == EndOfLine || end > len(text) {
		end = len(text)
	}
	if end < start {
		end = start
	}
	return start, end
}

// SnippetLine is one row of a snippet plan: which physical line to show
// (NoLine for synthetic rows), how to style it, and which column slice is
// the offending span. Plans are materialized fully before rendering and
// are not persisted; every call recomputes from the source buffer.
type SnippetLine struct {
	Number int
	Role   LineRole
	Span   ColSpan
	Text   string
}

// PlanFunc produces the snippet plan for one diagnostic. Implementations
// must emit records in ascending line-number order.
type PlanFunc func(d Diagnostic, n *Node, src *SourceBuffer) []SnippetLine

// PlanTable maps rule symbols to their snippet planners. Rules without an
// entry fall back to DefaultPlan. The table is a pluggable collaborator:
// hosts may register planners for their own rules.
type PlanTable map[string]PlanFunc

// Register adds (or replaces) the planner for a rule symbol.
func (t PlanTable) Register(symbol string, fn PlanFunc) {
	t[symbol] = fn
}

// Plan computes the snippet plan for d. Rules in the no-snippet set and
// engine-level module errors produce an empty plan.
func (t PlanTable) Plan(c Classification, d Diagnostic, n *Node, src *SourceBuffer) []SnippetLine {
	if c.SnippetSuppressed(d) {
		return nil
	}
	if fn, ok := t[d.Symbol]; ok {
		return fn(d, n, src)
	}
	return DefaultPlan(d, n, src)
}

// DefaultPlanTable returns the stock planner registry: docstring rules show
// the enclosing definition with a docstring placeholder, block-level rules
// show their enclosing header as context, and everything else takes the
// default single-span plan.
func DefaultPlanTable() PlanTable {
	t := PlanTable{}
	t.Register("missing-docstring", planMissingDocstring)
	t.Register("missing-module-docstring", planMissingDocstring)
	t.Register("pointless-string-statement", planDocstringBody)
	t.Register("unreachable", planWithEnclosingHeader)
	t.Register("one-iteration", planWithEnclosingHeader)
	t.Register("trailing-whitespace", planWholeLine)
	t.Register("trailing-newlines", planWholeLine)
	return t
}

// DefaultPlan renders the diagnostic's own span: its first line sliced at
// the reported columns, continuation lines in full. An absent end column
// extends the slice to the end of the line; an absent start begins at 0.
func DefaultPlan(d Diagnostic, n *Node, src *SourceBuffer) []SnippetLine {
	last := d.EndLine
	if last < d.Line {
		last = n.SpanEnd()
	}
	if last < d.Line {
		last = d.Line
	}

	var plan []SnippetLine
	for num := d.Line; num <= last; num++ {
		text, ok := src.Line(num)
		if !ok {
			continue
		}
		span := WholeLine
		if num == d.Line {
			span.Start = d.Column
		}
		if num == last && d.EndColumn > 0 {
			span.End = d.EndColumn
		}
		plan = append(plan, SnippetLine{Number: num, Role: RoleError, Span: span, Text: text})
	}
	return plan
}

// planWholeLine highlights the full offending line, ignoring any reported
// column information. Used for rules about the line as a whole.
func planWholeLine(d Diagnostic, _ *Node, src *SourceBuffer) []SnippetLine {
	text, ok := src.Line(d.Line)
	if !ok {
		return nil
	}
	return []SnippetLine{{Number: d.Line, Role: RoleError, Span: WholeLine, Text: text}}
}

// planMissingDocstring shows the definition header as context followed by a
// synthetic docstring row marking where the docstring belongs. The
// synthetic row has no physical line, so it renders with a blank gutter.
func planMissingDocstring(d Diagnostic, n *Node, src *SourceBuffer) []SnippetLine {
	line := d.Line
	if n != nil && n.Line > 0 {
		line = n.Line
	}
	var plan []SnippetLine
	if text, ok := src.Line(line); ok {
		plan = append(plan, SnippetLine{Number: line, Role: RoleContext, Span: WholeLine, Text: text})
	}
	plan = append(plan, SnippetLine{
		Number: NoLine,
		Role:   RoleDocstring,
		Span:   WholeLine,
		Text:   `"""Docstring here."""`,
	})
	return plan
}

// planDocstringBody renders the docstring lines of the resolved node with
// the docstring role, preserving their indentation. Falls back to the
// default plan when the node carries no docstring.
func planDocstringBody(d Diagnostic, n *Node, src *SourceBuffer) []SnippetLine {
	if n == nil || n.Doc == nil {
		return DefaultPlan(d, n, src)
	}
	last := n.Doc.EndLine
	if last < n.Doc.Line {
		last = n.Doc.Line
	}
	var plan []SnippetLine
	for num := n.Doc.Line; num <= last; num++ {
		text, ok := src.Line(num)
		if !ok {
			continue
		}
		plan = append(plan, SnippetLine{Number: num, Role: RoleDocstring, Span: WholeLine, Text: text})
	}
	return plan
}

// planWithEnclosingHeader prefixes the default plan with the header line of
// the enclosing construct rendered as context, when the node knows it.
func planWithEnclosingHeader(d Diagnostic, n *Node, src *SourceBuffer) []SnippetLine {
	body := DefaultPlan(d, n, src)
	if n == nil || n.Parent == nil || n.Parent.Line <= 0 || n.Parent.Line >= d.Line {
		return body
	}
	text, ok := src.Line(n.Parent.Line)
	if !ok {
		return body
	}
	header := SnippetLine{Number: n.Parent.Line, Role: RoleContext, Span: WholeLine, Text: text}
	return append([]SnippetLine{header}, body...)
}
