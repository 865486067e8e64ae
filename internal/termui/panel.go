package termui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel groups lines under an optional title inside a rounded border.
type Panel struct {
	title string
	lines []string
	width int
}

// NewPanel creates a panel holding lines.
func NewPanel(lines ...string) *Panel {
	return &Panel{lines: lines}
}

// WithTitle sets the header line.
func (p *Panel) WithTitle(title string) *Panel {
	p.title = title
	return p
}

// WithWidth fixes the outer width. Zero fits the content.
func (p *Panel) WithWidth(width int) *Panel {
	p.width = width
	return p
}

// Add appends lines to the body.
func (p *Panel) Add(lines ...string) *Panel {
	p.lines = append(p.lines, lines...)
	return p
}

// View renders the panel with t.
func (p *Panel) View(t Theme) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Palette.Border).
		Padding(0, 1)
	if p.width > 0 {
		style = style.Width(p.width - 2)
	}

	body := strings.Join(p.lines, "\n")
	if p.title != "" {
		header := t.Style(Foreground(SlotPrimary), Bold()).Render(p.title)
		body = lipgloss.JoinVertical(lipgloss.Left, header, body)
	}
	return style.Render(body)
}

// Header renders a title with an optional faint subtitle below it.
func (t Theme) Header(title, subtitle string) string {
	titleStyle := t.Style(Foreground(SlotPrimary), Bold())
	if subtitle == "" {
		return titleStyle.Render(title)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(title),
		titleStyle.UnsetBold().Faint(true).Render(subtitle),
	)
}
