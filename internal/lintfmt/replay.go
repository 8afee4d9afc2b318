package lintfmt

import (
	"encoding/json"
	"fmt"
	"os"
)

// Finding is one record of a machine-readable finding file, the
// interchange format analysis engines dump per run. Field names follow the
// common engine JSON export convention.
type Finding struct {
	Type      string `json:"type"`
	MessageID string `json:"message-id"`
	Symbol    string `json:"symbol"`
	Message   string `json:"message"`
	Module    string `json:"module"`
	Obj       string `json:"obj"`
	Path      string `json:"path"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
}

// LoadFindings parses one finding file (a JSON array of findings).
func LoadFindings(path string) ([]Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading findings %s: %w", path, err)
	}
	var findings []Finding
	if err := json.Unmarshal(data, &findings); err != nil {
		return nil, fmt.Errorf("parsing findings %s: %w", path, err)
	}
	return findings, nil
}

// Diagnostic converts a finding to the core diagnostic type.
func (f Finding) Diagnostic() Diagnostic {
	return Diagnostic{
		ID:        f.MessageID,
		Symbol:    f.Symbol,
		Message:   f.Message,
		Module:    f.Module,
		Path:      f.Path,
		Line:      f.Line,
		Column:    f.Column,
		EndLine:   f.EndLine,
		EndColumn: f.EndColumn,
	}
}

// node synthesizes a syntax-node handle covering the finding's reported
// span. A replayed run has no live parse tree, so this stands in for the
// engine's node-resolution callback; the default planners only read
// position information from it.
func (f Finding) node() *Node {
	return &Node{
		Kind:    "finding",
		Name:    f.Obj,
		Line:    f.Line,
		EndLine: f.EndLine,
		Col:     f.Column,
		EndCol:  f.EndColumn,
	}
}

// Replay feeds recorded findings through the aggregator in engine order:
// a file-started event whenever the path changes, then record plus
// context-bind per finding. Findings keep their on-disk order, which is the
// engines' detection order.
func Replay(a *Aggregator, findings []Finding) {
	current := ""
	for _, f := range findings {
		if f.Path != current {
			a.SwitchFile(f.Module, f.Path)
			current = f.Path
		}
		a.Record(f.Diagnostic())
		a.BindContext(f.MessageID, f.node())
	}
}
