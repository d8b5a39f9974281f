package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusBar   lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Highlight   lipgloss.Style
	HighlightBg lipgloss.Style
	SectorBox   lipgloss.Style
	FocusBox    lipgloss.Style
	PickerBox   lipgloss.Style
	PaneActive  lipgloss.Style
	PaneIdle    lipgloss.Style
	Blocked     lipgloss.Style
	Input       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		SectorBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Margin(0, 1),
		FocusBox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 3).
			BorderForeground(lipgloss.Color("99")),
		PickerBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("214")),
		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("78")),
		PaneIdle: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		Blocked: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Input:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// SectorStyle returns the accent style for a sector's configured color
func (s *Styles) SectorStyle(color string) lipgloss.Style {
	if color == "" {
		color = "241"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}
