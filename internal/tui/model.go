// Package tui is a terminal browser for the catalog: a filterable story
// list, a detail pane with resolved args and rendered markup, and background
// preset switching.
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/storyshelf/internal/catalog"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
	"github.com/alexisbeaulieu97/storyshelf/internal/termui"
)

// ViewMode selects the active pane.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// header and footer lines reserved around the panes
	chromeHeight = 6
	meterWidth   = 20
)

type storyItem struct {
	ref story.Ref
}

func (i storyItem) Title() string       { return i.ref.Title + " · " + i.ref.Name }
func (i storyItem) Description() string { return i.ref.ID }
func (i storyItem) FilterValue() string { return i.ref.Title + " " + i.ref.Name }

// Model is the Bubble Tea state of the browser.
type Model struct {
	renderer *catalog.Renderer

	list     list.Model
	viewport viewport.Model

	mode     ViewMode
	selected story.Ref
	status   string

	// stories that rendered without error when the browser opened
	healthy int
	meter   termui.Meter

	width  int
	height int
}

// NewModel lists every story of r's registry.
func NewModel(r *catalog.Renderer) Model {
	refs := r.Registry().Stories()
	items := make([]list.Item, len(refs))
	for i, ref := range refs {
		items[i] = storyItem{ref: ref}
	}

	l := list.New(items, list.NewDefaultDelegate(), defaultWidth, defaultHeight-chromeHeight)
	l.Title = "Stories"
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	healthy := 0
	for _, o := range r.RenderAll() {
		if o.Err == nil {
			healthy++
		}
	}

	return Model{
		renderer: r,
		healthy:  healthy,
		meter:    theme.NewMeter(len(refs), meterWidth),
		list:     l,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		mode:     ViewList,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode reports the active pane.
func (m Model) Mode() ViewMode {
	return m.mode
}

// Selected returns the story shown in the detail pane.
func (m Model) Selected() story.Ref {
	return m.selected
}

// Run starts the browser on the alternate screen.
func Run(r *catalog.Renderer) error {
	_, err := tea.NewProgram(NewModel(r), tea.WithAltScreen()).Run()
	return err
}
