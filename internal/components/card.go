package components

import (
	"html/template"
	"time"
)

// CardProps configures a card container.
type CardProps struct {
	Title string
	// Heading is the heading class, heading-2 (default) or heading-3.
	Heading string
	Body    string
	// Width names a size token used as max-width.
	Width    string
	Centered bool
	Accent   template.CSS
	Alerts   []AlertProps
	Content  template.HTML
	Action   *ButtonProps
}

// Card renders a card.
func (l *Library) Card(p CardProps) (Fragment, error) {
	return l.execute("card", normalizeCard(p))
}

// CardGrid renders cards in an auto-fitting grid.
func (l *Library) CardGrid(cards ...CardProps) (Fragment, error) {
	out := make([]CardProps, len(cards))
	for i, c := range cards {
		out[i] = normalizeCard(c)
	}
	return l.execute("card-grid", out)
}

func normalizeCard(p CardProps) CardProps {
	if p.Heading == "" {
		p.Heading = "heading-2"
	}
	if p.Action != nil {
		action := p.Action.withDefaults()
		p.Action = &action
	}
	return p
}

// Link is an anchor with the link or nav__link class.
type Link struct {
	Label  string
	Href   string
	Active bool
}

// ProfileProps describes the account details block.
type ProfileProps struct {
	Username   string
	Email      string
	FirstName  string
	LastName   string
	DateJoined time.Time
	LastLogin  time.Time
	Link       *Link
}

// Profile renders the account details list.
func (l *Library) Profile(p ProfileProps) (Fragment, error) {
	return l.execute("profile", p)
}
