package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		paneHeight := max(msg.Height-chromeHeight, 1)
		m.list.SetSize(msg.Width, paneHeight)
		m.viewport.Width = msg.Width
		m.viewport.Height = paneHeight
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Keys belong to the filter input while the user is typing.
	if m.mode == ViewList && m.list.FilterState() == list.Filtering {
		return m.forward(msg)
	}

	switch msg.String() {
	case "q":
		if m.mode == ViewDetail {
			m.mode = ViewList
			return m, nil
		}
		return m, tea.Quit
	case "esc":
		if m.mode == ViewDetail {
			m.mode = ViewList
			return m, nil
		}
	case "enter":
		if m.mode == ViewList {
			if item, ok := m.list.SelectedItem().(storyItem); ok {
				m.selected = item.ref
				m.mode = ViewDetail
				m.refreshDetail()
				m.viewport.GotoTop()
			}
			return m, nil
		}
	case "b":
		bg, err := m.renderer.Presentation().CycleBackground()
		if err != nil {
			m.status = "no background presets configured"
			return m, nil
		}
		m.status = "background: " + bg.Name
		if m.mode == ViewDetail {
			m.refreshDetail()
		}
		return m, nil
	}

	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.mode == ViewDetail {
		m.viewport, cmd = m.viewport.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m *Model) refreshDetail() {
	m.viewport.SetContent(m.detailContent())
}

func (m Model) detailContent() string {
	res, err := m.renderer.Preview(m.selected.Title, m.selected.Variant, nil)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("Failed to render: %s [%s]", storyerrors.CodeOf(err), storyerrors.KeyOf(err))) +
			"\n\n" + err.Error()
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Args"))
	b.WriteString("\n")
	if len(res.Args) == 0 {
		b.WriteString("  (explicit story, no args)\n")
	}
	for _, k := range res.Args.Keys() {
		fmt.Fprintf(&b, "  %s = %s\n", argKeyStyle.Render(k), res.Args.String(k))
	}
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Markup"))
	b.WriteString("\n")
	b.WriteString(string(res.Fragment))
	return b.String()
}
