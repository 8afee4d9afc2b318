// Package lintfmt renders static-analysis findings into human-readable
// reports with annotated source snippets.
//
// Findings are grouped per file, split into blocking errors and advisory
// style issues by a fixed rule classification, and each occurrence is shown
// with an excerpt of the offending source: a line-number gutter, the
// erroring span highlighted (or overlined in plain text), and surrounding
// context where the rule's snippet planner asks for it.
//
// # Rendering
//
// The core lives in internal/lintfmt. A host engine drives it one file at
// a time:
//
//	agg := lintfmt.NewAggregator(lintfmt.DefaultClassification(), nil, nil)
//	agg.SwitchFile("mymodule", "path/to/file.py")
//	agg.Record(diag)
//	agg.BindContext(diag.ID, node)
//	reporter.PrintReport(agg, "path/to/file.py", lintfmt.LevelAll)
//
// # CLI Tool
//
// lintfmt also ships a CLI that replays recorded finding files (JSON dumps
// from an analysis engine) into reports. Install with:
//
//	go install github.com/lintfmt/lintfmt/cmd/lintfmt@latest
package lintfmt
