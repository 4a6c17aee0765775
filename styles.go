package main

import "github.com/charmbracelet/lipgloss"

// viewerStyle is the fixed color pair for the whole screen. Width and height
// are set in AppModel.View from the latest tea.WindowSizeMsg so the block
// always fills the terminal.
var viewerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("15")).
	Background(lipgloss.Color("0"))
