package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name           string
	Base           lipgloss.Style
	Border         lipgloss.Color
	Header         lipgloss.Style
	Banner         lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Row            lipgloss.Style
	OpenRow        lipgloss.Style
	Input          lipgloss.Style
	InputError     lipgloss.Style
	Error          lipgloss.Style
	Status         lipgloss.Style
	Focused        lipgloss.Style
	Dim            lipgloss.Style
	Highlight      lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:           "Default",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("63"),
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Banner:         lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Padding(0, 2).Bold(true),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("236")).Padding(0, 2),
		Row:            lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OpenRow:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(30),
		InputError:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("196")).Padding(0, 1).Width(30),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:           "Dracula",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("62"),
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Banner:         lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("141")).Padding(0, 2).Bold(true),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Background(lipgloss.Color("236")).Padding(0, 2),
		Row:            lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		OpenRow:        lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(30),
		InputError:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("203")).Padding(0, 1).Width(30),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// ThemeNames lists theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTheme returns the named theme, falling back to the default.
func LookupTheme(name string) (Theme, string) {
	if t, ok := Themes[name]; ok {
		return t, name
	}
	return Themes["default"], "default"
}
