package stories

import (
	"time"

	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
)

func pageTemplates(lib *components.Library) declaration {
	return declaration{
		group: story.Group{
			Title:       "Layouts/Page Templates",
			Tags:        autodocs(),
			Description: "Full page mockups combining navigation, cards and messages.",
		},
		variants: []story.Variant{
			explicit("LoginPage", func() (components.Fragment, error) {
				card, err := loginCard(lib, true)
				if err != nil {
					return "", err
				}
				return lib.Page(components.PageProps{Nav: components.NavLinks("", unauthenticatedLinks...), Content: card.HTML()})
			}),
			explicit("ProfilePage", func() (components.Fragment, error) {
				details, err := lib.Profile(components.ProfileProps{
					Username:   "johndoe",
					Email:      "john.doe@example.com",
					FirstName:  "John",
					LastName:   "Doe",
					DateJoined: time.Date(2025, time.November, 24, 0, 0, 0, 0, time.UTC),
					LastLogin:  time.Date(2025, time.November, 24, 14, 30, 0, 0, time.UTC),
					Link:       &components.Link{Label: "Logout", Href: "#"},
				})
				if err != nil {
					return "", err
				}
				card, err := lib.Card(components.CardProps{
					Alerts:  []components.AlertProps{{Variant: "success", Message: "Profile loaded successfully"}},
					Title:   "User Profile",
					Content: details.HTML(),
				})
				if err != nil {
					return "", err
				}
				return lib.Page(components.PageProps{Nav: components.NavLinks("", authenticatedLinks...), Content: card.HTML()})
			}),
			explicit("PageWithMessages", func() (components.Fragment, error) {
				card, err := lib.Card(components.CardProps{
					Alerts: []components.AlertProps{
						{Variant: "success", Message: "Changes saved successfully"},
						{Variant: "info", Message: "Email verification sent"},
						{Variant: "warning", Message: "Session will expire in 5 minutes"},
					},
					Title: "Page Content",
					Body:  "Main page content goes here...",
				})
				if err != nil {
					return "", err
				}
				return lib.Page(components.PageProps{Nav: components.NavLinks("", authenticatedLinks...), Content: card.HTML()})
			}),
		},
	}
}
