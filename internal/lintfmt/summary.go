package lintfmt

import (
	"fmt"
	"io"
)

// RunStats aggregates per-run counts across every file reported.
type RunStats struct {
	FilesSeen    int
	FilesFlagged int
	ErrorCount   int
	StyleCount   int
	CountsByRule map[string]int
	RuleOrder    []string
}

// CollectStats walks every file the aggregator has seen and tallies bucket
// and per-rule counts.
func CollectStats(a *Aggregator) RunStats {
	stats := RunStats{CountsByRule: make(map[string]int)}
	for _, file := range a.Files() {
		stats.FilesSeen++
		msgs := a.Messages(file)
		if len(msgs) > 0 {
			stats.FilesFlagged++
		}
		errGroups, styleGroups := a.Partition(file)
		stats.ErrorCount += errGroups.Total()
		stats.StyleCount += styleGroups.Total()
		for _, m := range msgs {
			if _, ok := stats.CountsByRule[m.ID]; !ok {
				stats.RuleOrder = append(stats.RuleOrder, m.ID)
			}
			stats.CountsByRule[m.ID]++
		}
	}
	return stats
}

// PrintSummary writes the run-level statistics block shown after all file
// reports at the full output level.
func (r *Reporter) PrintSummary(a *Aggregator) error {
	stats := CollectStats(a)

	fmt.Fprintln(r.out, r.scheme.Bold("Run summary"))
	fmt.Fprintln(r.out, "-----------")
	fmt.Fprintf(r.out, "Files checked:   %d\n", stats.FilesSeen)
	fmt.Fprintf(r.out, "Files flagged:   %d\n", stats.FilesFlagged)
	fmt.Fprintf(r.out, "Code errors:     %d\n", stats.ErrorCount)
	fmt.Fprintf(r.out, "Style issues:    %d\n", stats.StyleCount)

	if len(stats.RuleOrder) > 0 {
		fmt.Fprintln(r.out, "")
		for _, id := range stats.RuleOrder {
			fmt.Fprintf(r.out, "* %s: %d\n", id, stats.CountsByRule[id])
		}
	}
	return r.out.Flush()
}

// PrintAllClear writes the final no-issues note used when a run produced no
// diagnostics at all.
func PrintAllClear(w io.Writer) {
	fmt.Fprintln(w, noProblemsMessage)
}
