package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles of the terminal viewer.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Search      lipgloss.Style
	Placeholder lipgloss.Style
	Count       lipgloss.Style
	Help        lipgloss.Style

	Card        lipgloss.Style
	CardName    lipgloss.Style
	EntryNumber lipgloss.Style
	Verse       lipgloss.Style
	Heading     lipgloss.Style
	Label       lipgloss.Style
	Empty       lipgloss.Style
}

var DefaultTheme = Theme{
	Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E8A33D")),
	Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#B89B72")),
	Tab:         lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#B89B72")),
	ActiveTab:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#1E1A14")).Background(lipgloss.Color("#E8A33D")),
	Search:      lipgloss.NewStyle().Foreground(lipgloss.Color("#F2E6D0")),
	Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("#6F6352")),
	Count:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#B89B72")),
	Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("#6F6352")),

	Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#7A4B1F")).Padding(0, 1),
	CardName:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F2E6D0")),
	EntryNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("#8C7455")),
	Verse:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#C9B48F")),
	Heading:     lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#E8A33D")),
	Label:       lipgloss.NewStyle().Bold(true),
	Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("#8C7455")).Padding(1, 2),
}
