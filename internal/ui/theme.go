package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors the UI draws with.
type Theme struct {
	Name string

	Background  string
	Surface     string
	SelectionBg string
	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	Header      lipgloss.Style
	Logo        lipgloss.Style
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	Selected    lipgloss.Style
	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	SectionHead lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Padding(0, 1)

	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),
		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Background(lipgloss.Color(t.Surface)).
			Bold(true),
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		Pane:        pane,
		PaneFocused: pane.BorderForeground(lipgloss.Color(t.BorderFocus)),
		SectionHead: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}

// defaultTheme is a night palette close to the terminal defaults most
// students run.
var defaultTheme = Theme{
	Name:        "Nightfox",
	Background:  "#131a24",
	Surface:     "#192330",
	SelectionBg: "#2b3b51",
	Border:      "#39506d",
	BorderFocus: "#719cd6",
	Text:        "#cdcecf",
	Muted:       "#738091",
	Faint:       "#71839b",
	Accent:      "#719cd6",
	Success:     "#81b29a",
	Warning:     "#dbc074",
	Danger:      "#c94f6d",
}
