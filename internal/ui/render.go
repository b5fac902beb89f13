package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/monplan/muse/internal/monplan"
	"github.com/monplan/muse/internal/state"
)

const (
	msgCatalogLoading = "MUSE is loading, we'll be ready in a moment!"
	msgCatalogFailed  = "Something went wrong while loading MUSE, please check back later!"
	msgNoResults      = "No units match your search."
	msgShortQuery     = "Type at least 3 characters to search."
	msgNoUnit         = "Search for a unit and press enter to open it."
)

// paneFrame is the width and height taken by a pane's border and padding.
const (
	paneFrameW = 4
	paneFrameH = 2
)

// layout returns the outer widths of the two panes and the body height.
func (m Model) layout() (left, right, body int) {
	left = max(m.width*2/5, 24)
	right = max(m.width-left, 20)
	body = max(m.height-2, 3) // header + footer
	return left, right, body
}

func (m *Model) resize() {
	left, right, body := m.layout()
	m.input.Width = max(left-paneFrameW-len(m.input.Prompt)-1, 1)
	m.unitViewport.Width = max(right-paneFrameW, 1)
	m.unitViewport.Height = max(body-paneFrameH, 1)
	m.help.Width = m.width
}

func (m *Model) updateUnitViewport() {
	m.unitViewport.SetContent(m.renderUnit(m.theme.Styles()))
}

func (m Model) renderMain() string {
	styles := m.theme.Styles()
	left, right, body := m.layout()

	searchPane := styles.Pane
	unitPane := styles.Pane
	if m.focus == FocusSearch {
		searchPane = styles.PaneFocused
	} else {
		unitPane = styles.PaneFocused
	}

	searchView := searchPane.
		Width(left - 2).
		Height(body - paneFrameH).
		Render(m.renderSearch(styles, body-paneFrameH))
	unitView := unitPane.
		Width(right - 2).
		Height(body - paneFrameH).
		Render(m.unitViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(styles),
		lipgloss.JoinHorizontal(lipgloss.Top, searchView, unitView),
		m.renderFooter(styles),
	)
}

func (m Model) renderHeader(styles Styles) string {
	logo := styles.Logo.Render(" MUSE ")

	var status string
	switch m.snapshot.CatalogStatus() {
	case state.StatusLoading:
		status = styles.WarningText.Render("catalog loading")
	case state.StatusInvalid:
		status = styles.DangerText.Render("catalog unavailable")
	default:
		status = styles.SuccessText.Render(fmt.Sprintf("%d units", len(m.snapshot.Catalog.Items)))
	}

	parts := []string{logo, status}
	if m.config != nil && m.config.APIRoot != "" {
		parts = append(parts, styles.FaintText.Render(m.config.APIRoot))
	}
	if m.lastErr != nil {
		parts = append(parts, styles.DangerText.Render(m.lastErr.Error()))
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) renderFooter(styles Styles) string {
	return styles.FaintText.Render(m.help.View(m.footerKeys()))
}

// footerKeys hides bindings that the focused pane does not handle. In the
// search pane ? is typed into the query.
func (m Model) footerKeys() keyMap {
	keys := m.keys
	if m.focus == FocusSearch {
		keys.Help.SetEnabled(false)
	}
	return keys
}

// renderSearch draws the query input and the result list, clipped to height
// lines.
func (m Model) renderSearch(styles Styles, height int) string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch m.snapshot.CatalogStatus() {
	case state.StatusLoading:
		b.WriteString(styles.WarningText.Render(msgCatalogLoading))
		return b.String()
	case state.StatusInvalid:
		b.WriteString(styles.DangerText.Render(msgCatalogFailed))
		return b.String()
	}

	search := m.snapshot.Search
	if search.AreResultsHidden {
		return b.String()
	}
	if strings.TrimSpace(m.input.Value()) == "" {
		return b.String()
	}
	if len(search.Results) == 0 {
		if len([]rune(search.Query)) < 3 {
			b.WriteString(styles.MutedText.Render(msgShortQuery))
		} else {
			b.WriteString(styles.MutedText.Render(msgNoResults))
		}
		return b.String()
	}

	rows := max(height-2, 1)
	start := 0
	if m.selected >= rows {
		start = m.selected - rows + 1
	}
	end := min(start+rows, len(search.Results))
	for i := start; i < end; i++ {
		r := search.Results[i]
		line := fmt.Sprintf("%-8s %s", r.UnitCode, r.UnitName)
		if i == m.selected {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderUnit draws the open unit's pane content.
func (m Model) renderUnit(styles Styles) string {
	view := m.snapshot.CurrentUnit()

	var b strings.Builder
	switch view.Status {
	case state.StatusIdle:
		b.WriteString(styles.MutedText.Render(msgNoUnit))
	case state.StatusLoading, state.StatusMissing:
		b.WriteString(styles.WarningText.Render("Loading " + view.UnitCode))
	case state.StatusInvalid:
		b.WriteString(styles.DangerText.Render("Could not load unit details for " + view.UnitCode))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Press r to try again."))
	case state.StatusReady:
		writeUnitDetail(&b, *view.Detail, styles)
	}

	if view.CanGoBack {
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("b: back to " + view.PreviousUnitCode))
	}
	return b.String()
}

func writeUnitDetail(b *strings.Builder, u monplan.Unit, styles Styles) {
	b.WriteString(styles.SectionHead.Render(u.UnitCode))
	b.WriteString("  ")
	b.WriteString(styles.Text.Bold(true).Render(u.UnitName))
	b.WriteString("\n")
	if u.Faculty != "" {
		b.WriteString(styles.MutedText.Render(u.Faculty))
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "%s %.1f   %s %.1f\n",
		styles.FaintText.Render("Learn"), u.LearnScore,
		styles.FaintText.Render("Enjoy"), u.EnjoyScore)

	if len(u.LocationAndTime) > 0 {
		writeSection(b, "Offered", styles)
		for _, lt := range u.LocationAndTime {
			b.WriteString("  " + lt + "\n")
		}
	}
	if u.Description != "" {
		writeSection(b, "Description", styles)
		b.WriteString(u.Description)
		b.WriteString("\n")
	}
	if u.Preqs != nil && *u.Preqs != "" {
		writeSection(b, "Prerequisites", styles)
		b.WriteString(*u.Preqs)
		b.WriteString("\n")
	}
	if u.Proh != nil && *u.Proh != "" {
		writeSection(b, "Prohibitions", styles)
		b.WriteString(*u.Proh)
		b.WriteString("\n")
	}

	codes := u.RequisiteCodes()
	if len(codes) == 0 {
		return
	}
	writeSection(b, "Related units", styles)
	for i, code := range codes {
		if i >= 9 {
			break
		}
		fmt.Fprintf(b, "  %s %s\n", styles.AccentText.Render(fmt.Sprintf("[%d]", i+1)), code)
	}
}

func writeSection(b *strings.Builder, title string, styles Styles) {
	b.WriteString("\n")
	b.WriteString(styles.SectionHead.Render(title))
	b.WriteString("\n")
}

func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	full := m.help
	full.ShowAll = true
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.SectionHead.Render("Keys"),
		"",
		full.View(m.keys),
		"",
		styles.FaintText.Render("Press any key to close"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		styles.PaneFocused.Render(body))
}
