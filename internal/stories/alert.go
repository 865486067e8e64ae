package stories

import (
	"github.com/alexisbeaulieu97/storyshelf/internal/argtypes"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
)

func alerts(lib *components.Library) declaration {
	return declaration{
		group: story.Group{
			Title:       "Components/Alert",
			Tags:        autodocs(),
			Description: "Flash messages shown above page content.",
			Schema:      components.AlertSchema(),
			Binder:      lib.AlertBinder(),
		},
		variants: []story.Variant{
			bound("Success", argtypes.Args{"variant": "success", "message": "Your changes have been saved successfully!"}),
			bound("Error", argtypes.Args{"variant": "error", "message": "There was an error processing your request."}),
			bound("Info", argtypes.Args{"variant": "info", "message": "Please verify your email address to continue."}),
			bound("Warning", argtypes.Args{"variant": "warning", "message": "Your session will expire in 5 minutes."}),
			explicit("AllVariants", func() (components.Fragment, error) {
				return lib.AlertStack(
					components.AlertProps{Variant: "success", Message: "Successfully logged in! Welcome back."},
					components.AlertProps{Variant: "error", Message: "Invalid username or password. Please try again."},
					components.AlertProps{Variant: "info", Message: "A password reset link has been sent to your email."},
					components.AlertProps{Variant: "warning", Message: "Your password will expire in 7 days. Please update it."},
				)
			}),
			explicit("AlertList", func() (components.Fragment, error) {
				return lib.AlertList(
					components.AlertProps{Variant: "success", Message: "Profile updated successfully"},
					components.AlertProps{Variant: "info", Message: "Please check your email to verify changes"},
				)
			}),
		},
	}
}
