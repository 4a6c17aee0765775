package document

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when a file's contents are not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 content")

// Document is the ordered list of lines read from a file.
// It is built once by Load and never mutated afterwards.
type Document struct {
	path  string
	lines []string
}

// New creates a document from already split lines.
func New(lines []string) Document {
	return Document{lines: lines}
}

// Load reads the file at path and splits it into lines.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return Document{}, fmt.Errorf("failed to decode %s: %w", path, ErrInvalidEncoding)
	}
	return Document{path: path, lines: Split(string(data))}, nil
}

// Split breaks content on "\n", dropping a trailing "\r" from each line.
// A final unterminated line is kept; the empty segment after a final line
// break is not.
func Split(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Path returns the file the document was loaded from, if any.
func (d Document) Path() string { return d.path }

// Len returns the number of lines.
func (d Document) Len() int { return len(d.lines) }

// Line returns the line at index i.
func (d Document) Line(i int) string { return d.lines[i] }

// Slice returns lines [from, to), clamped to the document bounds.
func (d Document) Slice(from, to int) []string {
	from = max(from, 0)
	to = min(to, len(d.lines))
	if from >= to {
		return nil
	}
	return d.lines[from:to]
}
