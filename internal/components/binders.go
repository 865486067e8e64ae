package components

import (
	"time"

	"github.com/alexisbeaulieu97/storyshelf/internal/argtypes"
)

// Binder maps a validated argument set to a fragment. Implementations are
// pure and may assume their input passed schema validation.
type Binder interface {
	Name() string
	Defaults() argtypes.Args
	Render(args argtypes.Args) (Fragment, error)
}

type binder struct {
	name     string
	defaults argtypes.Args
	render   func(argtypes.Args) (Fragment, error)
}

func (b binder) Name() string                               { return b.name }
func (b binder) Defaults() argtypes.Args                    { return b.defaults.Clone() }
func (b binder) Render(args argtypes.Args) (Fragment, error) { return b.render(args) }

// NewBinder wraps a render function as a Binder.
func NewBinder(name string, defaults argtypes.Args, render func(argtypes.Args) (Fragment, error)) Binder {
	return binder{name: name, defaults: defaults.Clone(), render: render}
}

var (
	ButtonVariants = []string{"primary", "secondary", "success", "danger"}
	ButtonTypes    = []string{"button", "submit", "reset"}
	AlertVariants  = []string{"success", "error", "info", "warning"}
	HeadingLevels  = []string{"heading-2", "heading-3"}
	InputTypes     = []string{"text", "email", "password"}
)

func ButtonSchema() *argtypes.Schema {
	return argtypes.MustSchema(
		argtypes.Arg("variant", argtypes.Select("Button style variant", ButtonVariants...)),
		argtypes.Arg("label", argtypes.Text("Button text")),
		argtypes.Arg("type", argtypes.Select("Button type attribute", ButtonTypes...)),
	)
}

// ButtonBinder binds {variant, label, type}.
func (l *Library) ButtonBinder() Binder {
	return NewBinder("button", argtypes.Args{"variant": "primary", "label": "Button", "type": "button"}, func(a argtypes.Args) (Fragment, error) {
		return l.Button(ButtonProps{Variant: a.String("variant"), Label: a.String("label"), Type: a.String("type")})
	})
}

func AlertSchema() *argtypes.Schema {
	return argtypes.MustSchema(
		argtypes.Arg("variant", argtypes.Select("Alert type", AlertVariants...)),
		argtypes.Arg("message", argtypes.Text("Alert message")),
	)
}

// AlertBinder binds {variant, message}.
func (l *Library) AlertBinder() Binder {
	return NewBinder("alert", argtypes.Args{"variant": "info", "message": "Alert message"}, func(a argtypes.Args) (Fragment, error) {
		return l.Alert(AlertProps{Variant: a.String("variant"), Message: a.String("message")})
	})
}

func CardSchema() *argtypes.Schema {
	return argtypes.MustSchema(
		argtypes.Arg("title", argtypes.Text("Card heading")),
		argtypes.Arg("body", argtypes.Text("Paragraph under the heading")),
		argtypes.Arg("heading", argtypes.Select("Heading style", HeadingLevels...)),
		argtypes.Arg("accent", argtypes.Color("Left border accent colour")),
	)
}

// CardBinder binds {title, body, heading, accent}. An unset accent draws no border.
func (l *Library) CardBinder() Binder {
	defaults := argtypes.Args{
		"title":   "Card Title",
		"body":    "This is a basic card component with some content inside.",
		"heading": "heading-2",
	}
	return NewBinder("card", defaults, func(a argtypes.Args) (Fragment, error) {
		accent, err := l.colorCSS(a.String("accent"))
		if err != nil {
			return "", err
		}
		return l.Card(CardProps{
			Title:   a.String("title"),
			Body:    a.String("body"),
			Heading: a.String("heading"),
			Width:   "width-card",
			Accent:  accent,
		})
	})
}

func FormGroupSchema() *argtypes.Schema {
	return argtypes.MustSchema(
		argtypes.Arg("label", argtypes.Text("Field label")),
		argtypes.Arg("inputType", argtypes.Select("Input type attribute", InputTypes...)),
		argtypes.Arg("placeholder", argtypes.Text("Placeholder text")),
		argtypes.Arg("value", argtypes.Text("Current value")),
		argtypes.Arg("helptext", argtypes.Text("Help text under the input")),
		argtypes.Arg("error", argtypes.Text("Validation message supplied by the host form")),
		argtypes.Arg("disabled", argtypes.Boolean("Disable the input")),
	)
}

// FormGroupBinder binds a single labelled input.
func (l *Library) FormGroupBinder() Binder {
	defaults := argtypes.Args{
		"label":     "Username",
		"inputType": "text",
		"disabled":  false,
	}
	return NewBinder("form-group", defaults, func(a argtypes.Args) (Fragment, error) {
		var errs []string
		if msg := a.String("error"); msg != "" {
			errs = []string{msg}
		}
		return l.FormGroup(FormGroupProps{
			Label:       a.String("label"),
			InputType:   a.String("inputType"),
			Placeholder: a.String("placeholder"),
			Value:       a.String("value"),
			Helptext:    a.String("helptext"),
			Errors:      errs,
			Disabled:    a.Bool("disabled"),
		})
	})
}

func ProfileSchema() *argtypes.Schema {
	return argtypes.MustSchema(
		argtypes.Arg("username", argtypes.Text("Account username")),
		argtypes.Arg("email", argtypes.Text("Account email")),
		argtypes.Arg("firstName", argtypes.Text("Given name")),
		argtypes.Arg("lastName", argtypes.Text("Family name")),
		argtypes.Arg("dateJoined", argtypes.Date("Registration date")),
		argtypes.Arg("lastLogin", argtypes.Date("Most recent sign-in")),
	)
}

// ProfileBinder binds the profile card shown on the account page.
func (l *Library) ProfileBinder() Binder {
	defaults := argtypes.Args{
		"username":   "johndoe",
		"email":      "john.doe@example.com",
		"firstName":  "John",
		"lastName":   "Doe",
		"dateJoined": "2025-11-24",
		"lastLogin":  time.Date(2025, time.November, 24, 14, 30, 0, 0, time.UTC),
	}
	return NewBinder("profile", defaults, func(a argtypes.Args) (Fragment, error) {
		details, err := l.Profile(ProfileProps{
			Username:   a.String("username"),
			Email:      a.String("email"),
			FirstName:  a.String("firstName"),
			LastName:   a.String("lastName"),
			DateJoined: a.Time("dateJoined"),
			LastLogin:  a.Time("lastLogin"),
			Link:       &Link{Label: "Edit Profile", Href: "#"},
		})
		if err != nil {
			return "", err
		}
		return l.Card(CardProps{Title: "User Profile", Width: "width-card-lg", Content: details.HTML()})
	})
}
