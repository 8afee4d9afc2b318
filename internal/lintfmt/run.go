package lintfmt

import (
	"fmt"
	"io"
	"os"
)

// OutputFormat selects how a run's reports are rendered.
type OutputFormat string

const (
	// FormatPlain renders uncolored text reports with underline passes.
	FormatPlain OutputFormat = "plain"
	// FormatColor renders terminal reports with lipgloss styling.
	FormatColor OutputFormat = "color"
	// FormatJSON exports the aggregated diagnostics as JSON.
	FormatJSON OutputFormat = "json"
)

// DetermineOutputFormat resolves the requested format string. Quiet runs
// and unknown names fall back to plain.
func DetermineOutputFormat(requested string, useColors bool) OutputFormat {
	switch requested {
	case "plain", "":
		if requested == "" && useColors {
			return FormatColor
		}
		return FormatPlain
	case "color", "colour":
		return FormatColor
	case "json":
		return FormatJSON
	}
	return FormatPlain
}

// Config captures one rendering run over recorded finding files.
type Config struct {
	// Patterns are doublestar globs (or literal paths) of finding files.
	Patterns []string
	// Output is the destination path; "" or "-" means stdout.
	Output string
	// Writer, when non-nil, overrides Output with an already-open stream.
	Writer io.Writer

	Format OutputFormat
	Level  Level
	// MaxOccurrences caps rendered occurrences per rule group; 0 = all.
	MaxOccurrences int
	// ShowSummary appends the run statistics block after all reports.
	ShowSummary bool
	Verbose     bool
}

// Result summarizes a completed run.
type Result struct {
	FilesReported int
	ErrorCount    int
	StyleCount    int
}

// Run expands the configured patterns, replays every finding file through
// the aggregator, and renders one report per analyzed file. The output
// destination is closed exactly once, even when rendering fails partway.
func Run(cfg Config) (*Result, error) {
	files, err := ExpandGlobs(cfg.Patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no finding files matched %v", cfg.Patterns)
	}

	var out *Destination
	if cfg.Writer != nil {
		out = FromWriter(cfg.Writer)
	} else {
		out, err = OpenDestination(cfg.Output)
		if err != nil {
			return nil, err
		}
	}
	defer out.Close()

	scheme := PlainScheme()
	if cfg.Format == FormatColor {
		scheme = ColorScheme()
	}
	reporter := NewReporter(out, scheme, cfg.MaxOccurrences)
	agg := NewAggregator(DefaultClassification(), DefaultPlanTable(), reporter.RenderSnippet)

	for _, file := range files {
		findings, err := LoadFindings(file)
		if err != nil {
			// A single malformed finding file must not abort the run.
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "lintfmt: skipping %s: %v\n", file, err)
			}
			continue
		}
		Replay(agg, findings)
	}

	level := cfg.Level
	if level == "" {
		level = LevelAll
	}

	if cfg.Format == FormatJSON {
		if err := WriteJSON(out, agg); err != nil {
			return nil, err
		}
		return runResult(agg), out.Flush()
	}

	if !agg.HasPending() {
		PrintAllClear(out)
		return runResult(agg), out.Flush()
	}

	for _, file := range agg.Files() {
		if err := reporter.PrintReport(agg, file, level); err != nil {
			return nil, err
		}
	}
	if cfg.ShowSummary {
		if err := reporter.PrintSummary(agg); err != nil {
			return nil, err
		}
	}
	return runResult(agg), nil
}

func runResult(agg *Aggregator) *Result {
	stats := CollectStats(agg)
	return &Result{
		FilesReported: stats.FilesFlagged,
		ErrorCount:    stats.ErrorCount,
		StyleCount:    stats.StyleCount,
	}
}
