package components

// PhotoGridProps configures the capture page's photo picker.
type PhotoGridProps struct {
	// Photos holds one entry per uploaded thumbnail.
	Photos   []string
	Max      int
	Compact  bool
	Upload   ButtonProps
	Helptext string
}

// ActionBarProps lays out the capture page's action buttons.
type ActionBarProps struct {
	Buttons []ButtonProps
	Stacked bool
}

// PhotoGrid renders the photo picker with thumbnails and the add tile.
func (l *Library) PhotoGrid(p PhotoGridProps) (Fragment, error) {
	if p.Max == 0 {
		p.Max = 20
	}
	p.Upload = p.Upload.withDefaults()
	return l.execute("photo-grid", p)
}

// ActionBar renders a row, or a stacked column, of buttons.
func (l *Library) ActionBar(p ActionBarProps) (Fragment, error) {
	p.Buttons = normalizeButtons(p.Buttons)
	return l.execute("action-bar", p)
}
