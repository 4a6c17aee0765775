package main

import (
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"stet.codes/orgview/document"
	"stet.codes/orgview/markup"
)

// AppModel is the root Bubble Tea model. It pages through a document one
// line at a time.
type AppModel struct {
	doc    document.Document
	offset int
	width  int
	height int
	keys   keyMap
	style  lipgloss.Style
	logger *log.Logger
}

// NewAppModel creates a viewer positioned at the first line of doc.
func NewAppModel(doc document.Document, logger *log.Logger) AppModel {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return AppModel{
		doc:    doc,
		keys:   viewerKeys,
		style:  viewerStyle,
		logger: logger,
	}
}

// linesPerPage is derived from the latest known terminal height and is
// never less than one.
func (m AppModel) linesPerPage() int {
	return max(1, m.height)
}

// visibleRange returns the half-open range of document lines on screen.
func (m AppModel) visibleRange() (from, to int) {
	return m.offset, min(m.offset+m.linesPerPage(), m.doc.Len())
}

// lastOffset is the largest offset allowed: the last line may scroll to the
// top of the screen.
func (m AppModel) lastOffset() int {
	return max(0, m.doc.Len()-1)
}

func (m *AppModel) setOffset(n int) {
	m.offset = min(max(n, 0), m.lastOffset())
}

// frame formats the visible lines. Styled lines are rebuilt on every call.
func (m AppModel) frame() []markup.Line {
	from, to := m.visibleRange()
	lines := make([]markup.Line, 0, to-from)
	for _, l := range m.doc.Slice(from, to) {
		lines = append(lines, markup.Format(l))
	}
	return lines
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Printf("window resized to %dx%d", m.width, m.height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.logger.Printf("quit at offset %d of %d", m.offset, m.doc.Len())
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m.setOffset(m.offset + 1)
		case key.Matches(msg, m.keys.Up):
			m.setOffset(m.offset - 1)
		case key.Matches(msg, m.keys.PageDown):
			m.setOffset(m.offset + m.linesPerPage())
		case key.Matches(msg, m.keys.PageUp):
			m.setOffset(m.offset - m.linesPerPage())
		case key.Matches(msg, m.keys.Top):
			m.setOffset(0)
		case key.Matches(msg, m.keys.Bottom):
			m.setOffset(m.lastOffset())
		}
	}
	return m, nil
}

func (m AppModel) View() string {
	lines := m.frame()
	rows := make([]string, len(lines))
	for i, l := range lines {
		row := markup.Render(l, m.style)
		// One document line must stay one screen row.
		if m.width > 0 {
			row = ansi.Truncate(row, m.width, "")
		}
		rows[i] = row
	}

	s := m.style
	if m.width > 0 {
		s = s.Width(m.width)
	}
	if m.height > 0 {
		s = s.Height(m.height)
	}
	return s.Render(strings.Join(rows, "\n"))
}
