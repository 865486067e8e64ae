package presentation

import (
	"fmt"
	"html/template"

	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/tokens"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// Names of the built-in decorators accepted in configuration.
const (
	DecoratorPadded     = "padded"
	DecoratorCentered   = "centered"
	DecoratorBackground = "background"
	DecoratorStylesheet = "stylesheet"
)

// BuiltinNames lists the built-in decorator names.
var BuiltinNames = []string{DecoratorPadded, DecoratorCentered, DecoratorBackground, DecoratorStylesheet}

// Padded wraps the fragment in a div padded by the space-4 token.
func Padded() Decorator {
	return func(f components.Fragment, _ State) components.Fragment {
		return components.Fragment(fmt.Sprintf("<div style=\"padding: var(--space-4);\">\n%s\n</div>", f))
	}
}

// Centered centres the fragment in a full-height flex container.
func Centered() Decorator {
	return func(f components.Fragment, _ State) components.Fragment {
		return components.Fragment(fmt.Sprintf("<div style=\"display: flex; align-items: center; justify-content: center; min-height: 100vh;\">\n%s\n</div>", f))
	}
}

// BackgroundFill paints the active background preset behind the fragment.
func BackgroundFill() Decorator {
	return func(f components.Fragment, s State) components.Fragment {
		if s.Background.Value == "" {
			return f
		}
		return components.Fragment(fmt.Sprintf("<div data-background=\"%s\" style=\"background: %s;\">\n%s\n</div>",
			template.HTMLEscapeString(s.Background.Name), template.HTMLEscapeString(s.Background.Value), f))
	}
}

// Stylesheet prepends the token custom properties so fragments can be viewed
// outside the host application.
func Stylesheet(r *tokens.Resolver) Decorator {
	css := r.Stylesheet()
	return func(f components.Fragment, _ State) components.Fragment {
		return components.Fragment("<style>\n" + css + "\n</style>\n" + string(f))
	}
}

// Builtin returns the decorator registered under name.
func Builtin(name string, r *tokens.Resolver) (Decorator, error) {
	switch name {
	case DecoratorPadded:
		return Padded(), nil
	case DecoratorCentered:
		return Centered(), nil
	case DecoratorBackground:
		return BackgroundFill(), nil
	case DecoratorStylesheet:
		if r == nil {
			return nil, storyerrors.NewValidationError("decorators", "stylesheet decorator needs a token resolver", nil)
		}
		return Stylesheet(r), nil
	default:
		return nil, storyerrors.NewValidationError("decorators", fmt.Sprintf("unknown decorator %q (expected one of %v)", name, BuiltinNames), nil)
	}
}

// Builtins resolves an ordered list of decorator names.
func Builtins(names []string, r *tokens.Resolver) ([]Decorator, error) {
	out := make([]Decorator, 0, len(names))
	for _, name := range names {
		d, err := Builtin(name, r)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
