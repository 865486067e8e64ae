package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storyshelf/internal/catalog"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/presentation"
	"github.com/alexisbeaulieu97/storyshelf/internal/stories"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
	"github.com/alexisbeaulieu97/storyshelf/internal/tokens"
)

func newModel(t *testing.T) Model {
	t.Helper()
	lib := components.MustNewLibrary(tokens.Nord())
	reg, err := stories.Build(lib, nil)
	require.NoError(t, err)

	pres := presentation.New(nil)
	require.NoError(t, pres.Configure([]presentation.Background{
		{Name: "nord", Value: "#ECEFF4"},
		{Name: "dark", Value: "#2E3440"},
	}, "nord", presentation.BackgroundFill()))

	m := NewModel(catalog.New(reg, pres, nil))
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWindowSizeResizesPanes(t *testing.T) {
	m := newModel(t)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 40-chromeHeight, m.viewport.Height)
}

func TestListViewShowsStories(t *testing.T) {
	m := newModel(t)

	view := m.View()
	assert.Contains(t, view, "Storyshelf")
	assert.Contains(t, view, "Components/Alert · Success")
	assert.Contains(t, view, "bg: nord")
	assert.Contains(t, view, "29/29")
}

func TestEnterOpensDetail(t *testing.T) {
	m := newModel(t)
	m = update(t, m, key("enter"))

	require.Equal(t, ViewDetail, m.Mode())
	assert.Equal(t, "components-alert--success", m.Selected().ID)

	view := m.View()
	assert.Contains(t, view, "variant")
	assert.Contains(t, view, "success")
	assert.Contains(t, view, `class="alert alert--success"`)
	assert.Contains(t, view, `data-background="nord"`)
}

func TestCursorMovesBeforeOpening(t *testing.T) {
	m := newModel(t)
	m = update(t, m, key("down"))
	m = update(t, m, key("enter"))

	assert.Equal(t, "components-alert--error", m.Selected().ID)
}

func TestBackgroundCycling(t *testing.T) {
	m := newModel(t)
	m = update(t, m, key("enter"))
	m = update(t, m, key("b"))

	assert.Equal(t, "background: dark", m.status)
	assert.Contains(t, m.View(), `data-background="dark"`)

	m = update(t, m, key("b"))
	assert.Equal(t, "background: nord", m.status)
}

func TestEscapeReturnsToList(t *testing.T) {
	m := newModel(t)
	m = update(t, m, key("enter"))
	m = update(t, m, key("esc"))
	assert.Equal(t, ViewList, m.Mode())

	m = update(t, m, key("enter"))
	m = update(t, m, key("q"))
	assert.Equal(t, ViewList, m.Mode())
}

func TestQuitFromList(t *testing.T) {
	m := newModel(t)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestExplicitStoryDetail(t *testing.T) {
	m := newModel(t)
	m.selected = story.Ref{Title: "Components/Button", Variant: "AllVariants", Name: "All Variants"}

	content := m.detailContent()
	assert.Contains(t, content, "explicit story, no args")
	assert.Contains(t, content, "btn btn--danger")
}

func TestDetailShowsRenderFailure(t *testing.T) {
	m := newModel(t)
	m.selected = story.Ref{Title: "Components/Button", Variant: "Missing"}

	assert.Contains(t, m.detailContent(), "Failed to render: NotFound [Missing]")
}
