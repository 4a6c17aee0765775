// Package markup classifies outline lines and splits them into styled spans.
//
// A line starting with one to three asterisks is a heading and is rendered
// bold as a whole. Any other line is scanned for _underline_ and /italic/
// pairs. Lines are formatted independently, so emphasis never spans lines.
package markup

import "strings"

// Style is the emphasis applied to a span.
type Style int

const (
	Plain Style = iota
	Bold
	Underline
	Italic
)

func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Underline:
		return "underline"
	case Italic:
		return "italic"
	default:
		return "plain"
	}
}

// Span is a run of text sharing one style.
type Span struct {
	Text  string
	Style Style
}

// Line is a formatted document line.
type Line struct {
	// Level is the heading level (1-3), or 0 for body text.
	Level int
	Spans []Span
}

// IsHeading reports whether the line was classified as a heading.
func (l Line) IsHeading() bool { return l.Level > 0 }

// Text returns the concatenated span text, without markers.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// headingMarkers is ordered longest first; the first prefix match wins.
var headingMarkers = []string{"***", "**", "*"}

var emphasisStyles = map[byte]Style{
	'_': Underline,
	'/': Italic,
}

// Format classifies line and returns its spans. It accepts any input and
// always returns at least one span.
func Format(line string) Line {
	for _, marker := range headingMarkers {
		if rest, ok := strings.CutPrefix(line, marker); ok {
			return Line{
				Level: len(marker),
				Spans: []Span{{Text: rest, Style: Bold}},
			}
		}
	}
	return Line{Spans: inline(line)}
}

// inline scans s for emphasis pairs. An opening marker without a closing
// one emphasizes the rest of the line.
func inline(s string) []Span {
	var spans []Span
	add := func(text string, style Style) {
		if text != "" {
			spans = append(spans, Span{Text: text, Style: style})
		}
	}

	for {
		i := strings.IndexAny(s, "_/")
		if i < 0 {
			break
		}
		marker := s[i]
		add(s[:i], Plain)

		rest := s[i+1:]
		end := strings.IndexByte(rest, marker)
		if end < 0 {
			add(rest, emphasisStyles[marker])
			s = ""
			break
		}
		add(rest[:end], emphasisStyles[marker])
		s = rest[end+1:]
	}
	add(s, Plain)

	if len(spans) == 0 {
		spans = []Span{{Style: Plain}}
	}
	return spans
}
