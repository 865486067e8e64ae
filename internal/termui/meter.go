package termui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Meter shows how many of total items are done, as a count and a bar.
type Meter struct {
	bar   progress.Model
	total int
}

// NewMeter creates a meter of the given bar width, filled with the theme's
// success colour.
func (t Theme) NewMeter(total, width int) Meter {
	bar := progress.New(
		progress.WithSolidFill(string(t.Palette.Success)),
		progress.WithoutPercentage(),
	)
	bar.Width = width
	return Meter{bar: bar, total: total}
}

// View renders the meter for done items.
func (m Meter) View(done int) string {
	ratio := 0.0
	if m.total > 0 {
		ratio = math.Min(1.0, float64(done)/float64(m.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", done, m.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", m.bar.ViewAs(ratio))
}
