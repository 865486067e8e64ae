package stories

import (
	"github.com/alexisbeaulieu97/storyshelf/internal/argtypes"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
)

func forms(lib *components.Library) declaration {
	return declaration{
		group: story.Group{
			Title:       "Components/Form",
			Tags:        autodocs(),
			Description: "Form groups with labels, help text and host-supplied error lists.",
			Schema:      components.FormGroupSchema(),
			Binder:      lib.FormGroupBinder(),
		},
		variants: []story.Variant{
			bound("FormGroup", argtypes.Args{
				"label":       "Username",
				"placeholder": "Enter username",
				"helptext":    "Your unique username for logging in",
			}),
			bound("FormGroupWithError", argtypes.Args{
				"label":     "Email",
				"inputType": "email",
				"value":     "invalid-email",
				"error":     "Enter a valid email address",
			}),
			explicit("LoginForm", func() (components.Fragment, error) {
				return loginCard(lib, false)
			}),
			explicit("SignupForm", func() (components.Fragment, error) {
				return signupCard(lib)
			}),
			explicit("AllInputStates", func() (components.Fragment, error) {
				return lib.FormStack(
					components.FormGroupProps{Label: "Normal Input", Placeholder: "Enter text"},
					components.FormGroupProps{Label: "Input with Value", Value: "Some text value"},
					components.FormGroupProps{Label: "Disabled Input", Value: "Disabled", Disabled: true},
					components.FormGroupProps{Label: "Input with Helptext", Placeholder: "example@email.com", Helptext: "We'll never share your email with anyone else."},
					components.FormGroupProps{Label: "Input with Error", Value: "invalid", Errors: []string{"This field is required"}},
				)
			}),
		},
	}
}

// loginCard is shared by the login form story and the login page layout.
func loginCard(lib *components.Library, centered bool) (components.Fragment, error) {
	form, err := lib.Form(components.FormProps{
		Groups: []components.FormGroupProps{
			{ID: "username", Label: "Username", Placeholder: "Enter username"},
			{ID: "password", Label: "Password", InputType: "password", Placeholder: "Enter password"},
		},
		Submit: components.ButtonProps{Label: "Login"},
	})
	if err != nil {
		return "", err
	}
	footer, err := lib.FormFooter(components.FormFooterProps{
		Prompt: "Don't have an account?",
		Link:   components.Link{Label: "Sign up here", Href: "#"},
	})
	if err != nil {
		return "", err
	}
	return lib.Card(components.CardProps{Title: "Login", Width: "width-card", Centered: centered, Content: join(form, footer)})
}

func signupCard(lib *components.Library) (components.Fragment, error) {
	form, err := lib.Form(components.FormProps{
		Groups: []components.FormGroupProps{
			{ID: "signup-username", Label: "Username", Helptext: "Required. 150 characters or fewer. Letters, digits and @/./+/-/_ only."},
			{ID: "signup-password1", Label: "Password", InputType: "password", Helptext: "Your password must contain at least 8 characters."},
			{ID: "signup-password2", Label: "Password confirmation", InputType: "password", Helptext: "Enter the same password as before, for verification."},
		},
		Submit: components.ButtonProps{Label: "Sign Up"},
	})
	if err != nil {
		return "", err
	}
	footer, err := lib.FormFooter(components.FormFooterProps{
		Prompt: "Already have an account?",
		Link:   components.Link{Label: "Login here", Href: "#"},
	})
	if err != nil {
		return "", err
	}
	return lib.Card(components.CardProps{Title: "Sign Up", Width: "width-card", Content: join(form, footer)})
}
