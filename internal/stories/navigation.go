package stories

import (
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
)

var (
	authenticatedLinks   = []string{"Home", "Profile", "Logout"}
	unauthenticatedLinks = []string{"Home", "Login", "Sign Up"}
)

func navigation(lib *components.Library) declaration {
	nav := func(labels ...string) story.RenderFunc {
		return func() (components.Fragment, error) {
			return lib.Nav(components.NavLinks("", labels...))
		}
	}
	return declaration{
		group: story.Group{
			Title:       "Components/Navigation",
			Tags:        autodocs(),
			Description: "Dark top navigation bar.",
		},
		variants: []story.Variant{
			explicit("NavbarAuthenticated", nav(authenticatedLinks...)),
			explicit("NavbarUnauthenticated", nav(unauthenticatedLinks...)),
			explicit("NavbarWithManyLinks", nav("Home", "Dashboard", "Projects", "Team", "Settings", "Profile", "Logout")),
		},
	}
}
