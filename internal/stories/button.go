package stories

import (
	"github.com/alexisbeaulieu97/storyshelf/internal/argtypes"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
)

func buttons(lib *components.Library) declaration {
	return declaration{
		group: story.Group{
			Title:       "Components/Button",
			Tags:        autodocs(),
			Description: "Action buttons in the four host variants.",
			Schema:      components.ButtonSchema(),
			Binder:      lib.ButtonBinder(),
		},
		variants: []story.Variant{
			bound("Primary", argtypes.Args{"variant": "primary", "label": "Primary Button"}),
			bound("Secondary", argtypes.Args{"variant": "secondary", "label": "Secondary Button"}),
			bound("Success", argtypes.Args{"variant": "success", "label": "Success Button"}),
			bound("Danger", argtypes.Args{"variant": "danger", "label": "Danger Button"}),
			explicit("AllVariants", func() (components.Fragment, error) {
				return lib.ButtonRow(
					components.ButtonProps{Variant: "primary", Label: "Primary"},
					components.ButtonProps{Variant: "secondary", Label: "Secondary"},
					components.ButtonProps{Variant: "success", Label: "Success"},
					components.ButtonProps{Variant: "danger", Label: "Danger"},
				)
			}),
		},
	}
}
