// Package style holds the colors and icons shared by the logger and the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Saffron = lipgloss.Color("#F4A300")
	Basil   = lipgloss.Color("#3C8D40")
	Paprika = lipgloss.Color("#C8102E")
	Pepper  = lipgloss.Color("#5F6368")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Bullet  = "•"
)

// Heading renders section titles in CLI output.
var Heading = lipgloss.NewStyle().Bold(true).Foreground(Saffron)

// Muted renders secondary details in CLI output.
var Muted = lipgloss.NewStyle().Foreground(Pepper)
