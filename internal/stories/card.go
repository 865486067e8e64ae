package stories

import (
	"github.com/alexisbeaulieu97/storyshelf/internal/argtypes"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
)

func cards(lib *components.Library) declaration {
	return declaration{
		group: story.Group{
			Title:       "Components/Card",
			Tags:        autodocs(),
			Description: "Surface container for headings, text, forms and actions.",
			Schema:      components.CardSchema(),
			Binder:      lib.CardBinder(),
		},
		variants: []story.Variant{
			bound("BasicCard", argtypes.Args{
				"title": "Card Title",
				"body":  "This is a basic card component with some content inside.",
			}),
			explicit("CardWithForm", func() (components.Fragment, error) {
				form, err := lib.Form(components.FormProps{
					Groups: []components.FormGroupProps{
						{Label: "Name", Placeholder: "Your name"},
						{Label: "Email", InputType: "email", Placeholder: "your@email.com"},
						{Label: "Message", Textarea: true, Rows: 4, Placeholder: "Your message"},
					},
					Submit: components.ButtonProps{Label: "Send Message"},
				})
				if err != nil {
					return "", err
				}
				return lib.Card(components.CardProps{Title: "Contact Us", Width: "width-card", Content: form.HTML()})
			}),
			explicit("ProfileCard", func() (components.Fragment, error) {
				return renderBound(lib.ProfileBinder(), components.ProfileSchema(), nil)
			}),
			explicit("MultipleCards", func() (components.Fragment, error) {
				return lib.CardGrid(
					gridCard("Card 1", "First card content goes here.", "primary"),
					gridCard("Card 2", "Second card content goes here.", "secondary"),
					gridCard("Card 3", "Third card content goes here.", "success"),
				)
			}),
		},
	}
}

func gridCard(title, body, action string) components.CardProps {
	return components.CardProps{
		Title:   title,
		Heading: "heading-3",
		Body:    body,
		Action:  &components.ButtonProps{Variant: action, Label: "Action", Spaced: true},
	}
}
