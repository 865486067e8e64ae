package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/storyshelf/internal/termui"
)

var (
	theme   = termui.Default()
	palette = theme.Palette

	titleStyle = theme.Style(termui.Background(termui.SlotPrimary), termui.PaddingX(1), termui.Bold())

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(palette.Muted).
			MarginBottom(1)

	backgroundStyle = theme.Style(termui.Foreground(termui.SlotSecondary)).PaddingLeft(2)

	sectionStyle = theme.Style(termui.Foreground(termui.SlotSecondary), termui.Bold())

	argKeyStyle = theme.Style(termui.Foreground(termui.SlotSuccess))

	errorStyle = theme.Style(termui.Foreground(termui.SlotError), termui.Bold())

	footerStyle = lipgloss.NewStyle().
			Foreground(palette.Muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(palette.Muted)
)
