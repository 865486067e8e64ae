package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the active pane between a header and a key help footer.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.mode == ViewDetail {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("Storyshelf")
	if m.mode == ViewDetail {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", m.selected.Title+" · "+m.selected.Name)
	} else {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", m.meter.View(m.healthy), " render")
	}

	bg := m.renderer.Presentation().ActiveBackground()
	line := title
	if bg.Name != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, title, backgroundStyle.Render("bg: "+bg.Name+" "+bg.Value))
	}
	return headerStyle.Width(m.width).Render(line)
}

func (m Model) renderFooter() string {
	help := "enter: open  /: filter  b: background  q: quit"
	if m.mode == ViewDetail {
		help = "↑/↓: scroll  b: background  esc/q: back"
	}
	if m.status != "" {
		help = m.status + "  " + help
	}
	return footerStyle.Width(m.width).Render(help)
}
