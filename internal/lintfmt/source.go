package lintfmt

import (
	"bufio"
	"os"
	"strings"
)

// SourceBuffer holds the raw source lines of the file currently under
// analysis. It is replaced wholesale on every file switch and is read-only
// during rendering. The zero value is an empty buffer; every lookup on it
// misses, which renders empty snippets rather than failing.
type SourceBuffer struct {
	path  string
	lines []string
}

// LoadSource reads the file at path into a SourceBuffer, stripping line
// endings (both \n and \r\n).
func LoadSource(path string) (*SourceBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := &SourceBuffer{path: path}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		buf.lines = append(buf.lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// Path returns the file this buffer was loaded from.
func (b *SourceBuffer) Path() string {
	if b == nil {
		return ""
	}
	return b.path
}

// Len returns the number of lines in the buffer.
func (b *SourceBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.lines)
}

// Line returns the 1-based line n, or ("", false) when n is out of range.
func (b *SourceBuffer) Line(n int) (string, bool) {
	if b == nil || n < 1 || n > len(b.lines) {
		return "", false
	}
	return b.lines[n-1], true
}
