package components

import "html/template"

// NavProps configures the dark navigation bar.
type NavProps struct {
	Links []Link
}

// PageProps configures a full-page container.
type PageProps struct {
	Nav     NavProps
	Content template.HTML
	// Width names a size token used as max-width.
	Width string
}

// Nav renders the navigation bar.
func (l *Library) Nav(p NavProps) (Fragment, error) {
	return l.execute("nav", normalizeLinks(p))
}

// Page renders a container-card with navigation and content.
func (l *Library) Page(p PageProps) (Fragment, error) {
	p.Nav = normalizeLinks(p.Nav)
	return l.execute("page", p)
}

// NavLinks builds nav links from labels, marking active as the current page.
func NavLinks(active string, labels ...string) NavProps {
	links := make([]Link, len(labels))
	for i, label := range labels {
		links[i] = Link{Label: label, Active: label == active}
	}
	return NavProps{Links: links}
}

func normalizeLinks(p NavProps) NavProps {
	links := make([]Link, len(p.Links))
	for i, link := range p.Links {
		if link.Href == "" {
			link.Href = "#"
		}
		links[i] = link
	}
	return NavProps{Links: links}
}
