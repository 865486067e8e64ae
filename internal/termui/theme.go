// Package termui styles terminal output with colours taken from the design
// tokens, so the CLI and the browser match the catalog they present.
package termui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/storyshelf/internal/tokens"
)

// Palette holds the semantic colours used by terminal components.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Surface   lipgloss.Color
	Border    lipgloss.Color
	OnAccent  lipgloss.Color
}

// StyleFunc transforms a style using theme data.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Slot picks one palette colour.
type Slot func(Palette) lipgloss.Color

var (
	SlotPrimary   Slot = func(p Palette) lipgloss.Color { return p.Primary }
	SlotSecondary Slot = func(p Palette) lipgloss.Color { return p.Secondary }
	SlotSuccess   Slot = func(p Palette) lipgloss.Color { return p.Success }
	SlotWarning   Slot = func(p Palette) lipgloss.Color { return p.Warning }
	SlotError     Slot = func(p Palette) lipgloss.Color { return p.Error }
	SlotInfo      Slot = func(p Palette) lipgloss.Color { return p.Info }
	SlotMuted     Slot = func(p Palette) lipgloss.Color { return p.Muted }
	SlotBorder    Slot = func(p Palette) lipgloss.Color { return p.Border }
)

// Theme is immutable once built.
type Theme struct {
	Palette  Palette
	variants map[Variant][]StyleFunc
}

// tokenSlots maps palette fields to the semantic token that supplies them.
var tokenSlots = []struct {
	token string
	set   func(*Palette, lipgloss.Color)
}{
	{"primary", func(p *Palette, c lipgloss.Color) { p.Primary = c }},
	{"secondary", func(p *Palette, c lipgloss.Color) { p.Secondary = c }},
	{"success", func(p *Palette, c lipgloss.Color) { p.Success = c }},
	{"warning", func(p *Palette, c lipgloss.Color) { p.Warning = c }},
	{"error", func(p *Palette, c lipgloss.Color) { p.Error = c }},
	{"info", func(p *Palette, c lipgloss.Color) { p.Info = c }},
	{"text", func(p *Palette, c lipgloss.Color) { p.Text = c }},
	{"text-muted", func(p *Palette, c lipgloss.Color) { p.Muted = c }},
	{"surface", func(p *Palette, c lipgloss.Color) { p.Surface = c }},
	{"border", func(p *Palette, c lipgloss.Color) { p.Border = c }},
	{"background", func(p *Palette, c lipgloss.Color) { p.OnAccent = c }},
}

// FromTokens builds a theme from the semantic colour tokens of r.
func FromTokens(r *tokens.Resolver) (Theme, error) {
	var p Palette
	for _, slot := range tokenSlots {
		value, err := r.Value(slot.token)
		if err != nil {
			return Theme{}, err
		}
		slot.set(&p, lipgloss.Color(value))
	}
	return newTheme(p), nil
}

// Default is the theme of the built-in Nord tokens.
func Default() Theme {
	theme, err := FromTokens(tokens.Nord())
	if err != nil {
		panic(err)
	}
	return theme
}

func newTheme(p Palette) Theme {
	t := Theme{Palette: p, variants: map[Variant][]StyleFunc{}}
	registerBadgeVariants(t.variants)
	return t
}

// Style applies fns in order to a fresh style.
func (t Theme) Style(fns ...StyleFunc) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, fn := range fns {
		style = fn(style, t)
	}
	return style
}

// Background sets the background to slot and the foreground to the accent
// contrast colour.
func Background(slot Slot) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Background(slot(t.Palette)).Foreground(t.Palette.OnAccent)
	}
}

// Foreground sets the text colour to slot.
func Foreground(slot Slot) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Foreground(slot(t.Palette))
	}
}

// PaddingX pads both sides by n cells.
func PaddingX(n int) StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Padding(0, n)
	}
}

// Bold makes text bold.
func Bold() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Bold(true)
	}
}
