package lintfmt

import (
	"encoding/json"
	"io"
)

// MessageJSON is the machine-readable record for one augmented diagnostic.
type MessageJSON struct {
	ID        string `json:"id"`
	Symbol    string `json:"symbol"`
	Message   string `json:"message"`
	Module    string `json:"module,omitempty"`
	Path      string `json:"path"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"end_line,omitempty"`
	EndColumn int    `json:"end_column,omitempty"`
	Snippet   string `json:"snippet"`

	// DEPRECATED duplicates of end_line/end_column, kept until consumers
	// migrate. They always mirror the fields above.
	LineEnd   int `json:"line_end,omitempty"`
	ColumnEnd int `json:"column_end,omitempty"`
}

// FileJSON groups a file's messages for JSON export.
type FileJSON struct {
	Filename string        `json:"filename"`
	Messages []MessageJSON `json:"msgs"`
}

// ToJSON converts an augmented diagnostic to its export record.
func (m Augmented) ToJSON() MessageJSON {
	return MessageJSON{
		ID:        m.ID,
		Symbol:    m.Symbol,
		Message:   m.Message,
		Module:    m.Module,
		Path:      m.Path,
		Line:      m.Line,
		Column:    m.Column,
		EndLine:   m.EndLine,
		EndColumn: m.EndColumn,
		Snippet:   m.Snippet,
		LineEnd:   m.EndLine,
		ColumnEnd: m.EndColumn,
	}
}

// WriteJSON exports every file's aggregated diagnostics as indented JSON,
// one entry per file in first-seen order. It consumes the same augmented
// data as the text renderer; no re-analysis happens here.
func WriteJSON(w io.Writer, a *Aggregator) error {
	files := make([]FileJSON, 0, len(a.Files()))
	for _, file := range a.Files() {
		msgs := a.Messages(file)
		if len(msgs) == 0 {
			continue
		}
		entry := FileJSON{Filename: file, Messages: make([]MessageJSON, 0, len(msgs))}
		for _, m := range msgs {
			entry.Messages = append(entry.Messages, m.ToJSON())
		}
		files = append(files, entry)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(files)
}
