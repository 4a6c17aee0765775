package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"stet.codes/orgview/document"
)

func main() {
	os.Exit(run(os.Args, os.Stderr))
}

// run returns the process exit code. Everything that can fail before the
// terminal is taken over (arguments, config, the document itself) is checked
// first, so those errors never leave the terminal in raw mode.
func run(args []string, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintf(stderr, "Usage: %s <file-path>\n", programName(args))
		return 1
	}

	cfg := loadConfig()
	logger, closer := newLogger(cfg)
	defer closer.Close()

	doc, err := document.Load(args[1])
	if err != nil {
		fmt.Fprintln(stderr, "Error loading document:", err)
		return 1
	}
	logger.Printf("loaded %s (%d lines)", doc.Path(), doc.Len())

	// Alt-screen makes this a true full-window TUI (no scrollback spam).
	// Run restores the terminal on every exit path, errors included.
	p := tea.NewProgram(NewAppModel(doc, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Printf("program failed: %v", err)
		fmt.Fprintln(stderr, "Error running program:", err)
		return 1
	}
	return 0
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "orgview"
	}
	return filepath.Base(args[0])
}
