package components

import "html/template"

// DocumentProps wraps a fragment into a standalone HTML page.
type DocumentProps struct {
	Title string
	// Stylesheet is an optional href for a linked stylesheet.
	Stylesheet string
	Body       template.HTML
}

// Document renders a complete HTML document around a fragment.
func (l *Library) Document(p DocumentProps) (Fragment, error) {
	return l.execute("document", p)
}
