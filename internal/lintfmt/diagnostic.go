package lintfmt

// Diagnostic represents a single finding emitted by the host analysis engine.
// It is immutable once recorded; context (node + snippet) is attached by
// wrapping it in an Augmented value, never by mutating it.
type Diagnostic struct {
	ID        string // rule identifier, e.g. "E0602"
	Symbol    string // symbolic name, e.g. "undefined-variable"
	Message   string // human-readable message text
	Module    string // module name reported by the engine
	Path      string // file the finding belongs to
	Line      int    // 1-based line number
	Column    int    // 0-based column offset within the line
	EndLine   int    // 0 if the engine did not report an end line
	EndColumn int    // 0 if the engine did not report an end column
}

// Augmented pairs a Diagnostic with the syntax node it was resolved to and
// the rendered source snippet supporting it. The snippet may be empty for
// rules in the no-snippet set or when no source is available.
type Augmented struct {
	Diagnostic
	Node    *Node
	Snippet string

	bound bool // context already attached once
}

// Node is a read-only handle into the host engine's parsed syntax tree.
// The renderer never mutates it; it only reads position information to
// decide which source lines to show.
type Node struct {
	Kind    string
	Name    string
	Line    int // 1-based first line of the construct
	EndLine int // 1-based last line of the construct
	Col     int
	EndCol  int
	Doc     *DocSpan // docstring location, if the construct has one
	Parent  *Node    // enclosing construct, if known
}

// DocSpan is the line range of a docstring attached to a Node.
type DocSpan struct {
	Line    int
	EndLine int
}

// SpanEnd returns the last line covered by the node, falling back to the
// first line when the engine did not report a range.
func (n *Node) SpanEnd() int {
	if n == nil {
		return 0
	}
	if n.EndLine >= n.Line {
		return n.EndLine
	}
	return n.Line
}
