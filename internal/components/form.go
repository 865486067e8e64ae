package components

// FormGroupProps configures one labelled form control.
type FormGroupProps struct {
	ID          string
	Label       string
	InputType   string
	Placeholder string
	Value       string
	Helptext    string
	// Errors are messages supplied by the host form; they are rendered as an errorlist, never computed here.
	Errors   []string
	Disabled bool
	Textarea bool
	Rows     int
	// MinHeight names a size token applied to textareas.
	MinHeight string
}

func (p FormGroupProps) withDefaults() FormGroupProps {
	if p.InputType == "" {
		p.InputType = "text"
	}
	if p.Textarea && p.Rows == 0 {
		p.Rows = 4
	}
	return p
}

// FormProps configures a form of groups followed by a submit button.
type FormProps struct {
	Groups []FormGroupProps
	Submit ButtonProps
}

// FormFooterProps is the prompt line under auth forms.
type FormFooterProps struct {
	Prompt string
	Link   Link
}

// FormGroup renders a single form group.
func (l *Library) FormGroup(p FormGroupProps) (Fragment, error) {
	return l.execute("form-group", p.withDefaults())
}

// FormStack renders form groups stacked in a narrow column.
func (l *Library) FormStack(groups ...FormGroupProps) (Fragment, error) {
	return l.execute("form-stack", normalizeGroups(groups))
}

// Form renders a form element.
func (l *Library) Form(p FormProps) (Fragment, error) {
	p.Groups = normalizeGroups(p.Groups)
	if p.Submit.Type == "" {
		p.Submit.Type = "submit"
	}
	p.Submit = p.Submit.withDefaults()
	return l.execute("form", p)
}

// FormFooter renders the prompt paragraph with a link.
func (l *Library) FormFooter(p FormFooterProps) (Fragment, error) {
	return l.execute("form-footer", p)
}

func normalizeGroups(groups []FormGroupProps) []FormGroupProps {
	out := make([]FormGroupProps, len(groups))
	for i, g := range groups {
		out[i] = g.withDefaults()
	}
	return out
}
