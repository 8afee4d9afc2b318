package lintfmt

import (
	"os"
	"path/filepath"
	"strings"
)

// SnippetRenderer turns a materialized snippet plan into its final string
// form. The Aggregator calls it at context-bind time so that an Augmented
// diagnostic always carries a ready-to-print snippet.
type SnippetRenderer func([]SnippetLine) string

// Aggregator collects diagnostics per file as the host engine streams them,
// attaches node and snippet context to the most recent diagnostic of a
// matching rule, and partitions a file's diagnostics into the errors and
// style buckets. It is driven single-threaded, one file at a time.
type Aggregator struct {
	checks  Classification
	plans   PlanTable
	snippet SnippetRenderer

	messages  map[string][]Augmented
	fileOrder []string

	moduleName  string
	currentFile string
	source      *SourceBuffer
}

// NewAggregator builds an Aggregator with the given classification, plan
// table and snippet renderer. A nil renderer falls back to plain rendering.
func NewAggregator(checks Classification, plans PlanTable, snippet SnippetRenderer) *Aggregator {
	if plans == nil {
		plans = DefaultPlanTable()
	}
	if snippet == nil {
		snippet = plainSnippetRenderer
	}
	return &Aggregator{
		checks:   checks,
		plans:    plans,
		snippet:  snippet,
		messages: make(map[string][]Augmented),
		source:   &SourceBuffer{},
	}
}

// SwitchFile begins a new file. module is the engine's module name, which
// for config-file findings may itself be a resolvable path; path is the
// on-disk location when the engine knows it. When no real target file can
// be resolved the call is a no-op and the previous file and source buffer
// are retained, which defends against spurious events. A file that resolves
// but cannot be read yields an empty buffer: its diagnostics keep flowing,
// they just render empty snippets.
func (a *Aggregator) SwitchFile(module, path string) {
	if path == "" {
		candidate := expandUser(os.ExpandEnv(module))
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path == "" {
		return
	}

	a.moduleName = module
	a.currentFile = path
	if _, ok := a.messages[path]; !ok {
		a.messages[path] = nil
		a.fileOrder = append(a.fileOrder, path)
	}

	buf, err := LoadSource(path)
	if err != nil {
		a.source = &SourceBuffer{path: path}
		return
	}
	a.source = buf
}

// Record appends a diagnostic to the current file's list. Lists are created
// lazily; detection order is preserved.
func (a *Aggregator) Record(d Diagnostic) {
	file := a.currentFile
	if file == "" {
		file = d.Path
	}
	if _, ok := a.messages[file]; !ok {
		a.fileOrder = append(a.fileOrder, file)
	}
	a.messages[file] = append(a.messages[file], Augmented{Diagnostic: d})
}

// BindContext attaches the resolved node and a rendered snippet to the most
// recently recorded diagnostic of the current file, provided its rule
// identifier matches. A mismatched rule or an empty list is a silent no-op.
// Binding the same rule again re-renders the snippet in place; it never
// appends a duplicate.
func (a *Aggregator) BindContext(ruleID string, node *Node) {
	file := a.currentFile
	if file == "" && len(a.fileOrder) > 0 {
		// No file switch succeeded yet; diagnostics were recorded under
		// their own reported path.
		file = a.fileOrder[len(a.fileOrder)-1]
	}
	msgs := a.messages[file]
	if len(msgs) == 0 {
		return
	}
	last := &msgs[len(msgs)-1]
	if last.ID != ruleID {
		return
	}

	last.Node = node
	last.bound = true
	if a.checks.SnippetSuppressed(last.Diagnostic) {
		last.Snippet = ""
		return
	}
	last.Snippet = a.snippet(a.plans.Plan(a.checks, last.Diagnostic, node, a.source))
}

// Groups is an insertion-ordered grouping of diagnostics by rule
// identifier. Iterate IDs() to walk groups in first-occurrence order.
type Groups struct {
	order []string
	byID  map[string][]Augmented
}

func newGroups() *Groups {
	return &Groups{byID: make(map[string][]Augmented)}
}

func (g *Groups) add(m Augmented) {
	if _, ok := g.byID[m.ID]; !ok {
		g.order = append(g.order, m.ID)
	}
	g.byID[m.ID] = append(g.byID[m.ID], m)
}

// IDs returns the rule identifiers in first-occurrence order.
func (g *Groups) IDs() []string { return g.order }

// Get returns the group for a rule identifier, in detection order.
func (g *Groups) Get(id string) []Augmented { return g.byID[id] }

// Empty reports whether no diagnostics were grouped.
func (g *Groups) Empty() bool { return len(g.order) == 0 }

// Total returns the number of diagnostics across all groups.
func (g *Groups) Total() int {
	n := 0
	for _, msgs := range g.byID {
		n += len(msgs)
	}
	return n
}

// Partition splits a file's diagnostics into the errors and style buckets,
// grouped by rule identifier. Every diagnostic lands in exactly one bucket;
// rules absent from the classification default to style. Order within each
// group is detection order.
func (a *Aggregator) Partition(file string) (errors, style *Groups) {
	errors, style = newGroups(), newGroups()
	for _, m := range a.messages[file] {
		if a.checks.Blocking(m.Diagnostic) {
			errors.add(m)
		} else {
			style.add(m)
		}
	}
	return errors, style
}

// HasPending reports whether any file has at least one recorded diagnostic.
func (a *Aggregator) HasPending() bool {
	for _, msgs := range a.messages {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

// CurrentFile returns the file currently being analyzed.
func (a *Aggregator) CurrentFile() string { return a.currentFile }

// ModuleName returns the engine's name for the current module.
func (a *Aggregator) ModuleName() string { return a.moduleName }

// Files returns every file seen this run, in first-seen order. Keys persist
// for the lifetime of the run, including files that ended up clean.
func (a *Aggregator) Files() []string { return a.fileOrder }

// Messages returns the recorded diagnostics for a file in detection order.
func (a *Aggregator) Messages(file string) []Augmented { return a.messages[file] }

// expandUser resolves a leading ~ against the current user's home
// directory, mirroring shell behavior for user-supplied paths.
func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
