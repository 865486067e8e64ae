package components

// ButtonProps configures a btn element.
type ButtonProps struct {
	Variant string
	Label   string
	Type    string
	// Spaced adds top margin when the button follows card content.
	Spaced bool
	// Block stretches the button to the container width.
	Block bool
}

func (p ButtonProps) withDefaults() ButtonProps {
	if p.Type == "" {
		p.Type = "button"
	}
	if p.Variant == "" {
		p.Variant = "primary"
	}
	return p
}

// Button renders a single button.
func (l *Library) Button(p ButtonProps) (Fragment, error) {
	return l.execute("button", p.withDefaults())
}

// ButtonRow renders buttons side by side with wrapping.
func (l *Library) ButtonRow(buttons ...ButtonProps) (Fragment, error) {
	return l.execute("button-row", normalizeButtons(buttons))
}

func normalizeButtons(buttons []ButtonProps) []ButtonProps {
	out := make([]ButtonProps, len(buttons))
	for i, b := range buttons {
		out[i] = b.withDefaults()
	}
	return out
}
