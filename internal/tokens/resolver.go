package tokens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/storyshelf/internal/config"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// Kind classifies a token's value.
type Kind string

const (
	KindColor  Kind = "color"
	KindLength Kind = "length"
	KindFont   Kind = "font"
	KindShadow Kind = "shadow"
)

// Layer tells whether a token holds a value or aliases one.
type Layer int

const (
	LayerRaw Layer = iota
	LayerSemantic
)

func (l Layer) String() string {
	if l == LayerSemantic {
		return "semantic"
	}
	return "raw"
}

// Token is a resolved design value. For semantic tokens Alias names the raw
// token that supplies Value.
type Token struct {
	Name  string
	Kind  Kind
	Layer Layer
	Alias string
	Value string
}

// Resolver answers token lookups. It is immutable once built and safe for
// concurrent readers.
type Resolver struct {
	raw     map[string]Token
	aliases map[string]string
	names   []string
}

// NewResolver validates defs and builds a Resolver. Aliases must point
// directly at a raw token; an alias of an alias is rejected with AliasChain.
func NewResolver(defs Definitions) (*Resolver, error) {
	r := &Resolver{
		raw:     make(map[string]Token),
		aliases: make(map[string]string, len(defs.Aliases)),
	}

	add := func(name string, kind Kind, value string) error {
		if !config.IsTokenName(name) {
			return storyerrors.NewValidationError("tokens."+name, "token names must be lowercase kebab-case", nil)
		}
		if _, exists := r.raw[name]; exists {
			return storyerrors.NewValidationError("tokens."+name, "token is defined more than once", nil)
		}
		if strings.TrimSpace(value) == "" {
			return storyerrors.NewValidationError("tokens."+name, "token value is empty", nil)
		}
		r.raw[name] = Token{Name: name, Kind: kind, Layer: LayerRaw, Value: value}
		return nil
	}

	for _, name := range sortedKeys(defs.Palette) {
		value := defs.Palette[name]
		if err := config.GetValidator().Var(value, "iscolor"); err != nil {
			return nil, storyerrors.NewValidationError("tokens."+name, fmt.Sprintf("%q is not a colour", value), err)
		}
		if err := add(name, KindColor, value); err != nil {
			return nil, err
		}
	}
	for _, name := range sortedKeys(defs.Fonts) {
		if err := add(name, KindFont, strings.Join(defs.Fonts[name], ", ")); err != nil {
			return nil, err
		}
	}
	for _, group := range []map[string]string{defs.Spacing, defs.Sizes, defs.Radii} {
		for _, name := range sortedKeys(group) {
			if err := add(name, KindLength, group[name]); err != nil {
				return nil, err
			}
		}
	}
	for _, name := range sortedKeys(defs.Shadows) {
		if err := add(name, KindShadow, defs.Shadows[name]); err != nil {
			return nil, err
		}
	}

	for _, name := range sortedKeys(defs.Aliases) {
		target := defs.Aliases[name]
		if !config.IsTokenName(name) {
			return nil, storyerrors.NewValidationError("tokens."+name, "token names must be lowercase kebab-case", nil)
		}
		if _, clash := r.raw[name]; clash {
			return nil, storyerrors.New(storyerrors.CodeAliasChain, name, "alias shadows a raw token of the same name")
		}
		if _, isAlias := defs.Aliases[target]; isAlias {
			return nil, storyerrors.New(storyerrors.CodeAliasChain, name, fmt.Sprintf("alias points at semantic token %q; aliases must reference raw tokens", target))
		}
		if _, ok := r.raw[target]; !ok {
			return nil, storyerrors.New(storyerrors.CodeAliasChain, name, fmt.Sprintf("alias points at unknown raw token %q", target))
		}
		r.aliases[name] = target
	}

	r.names = make([]string, 0, len(r.raw)+len(r.aliases))
	for name := range r.raw {
		r.names = append(r.names, name)
	}
	for name := range r.aliases {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	return r, nil
}

// MustNewResolver is NewResolver for definitions known to be valid.
func MustNewResolver(defs Definitions) *Resolver {
	r, err := NewResolver(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// Nord returns a resolver over NordDefinitions.
func Nord() *Resolver {
	return MustNewResolver(NordDefinitions())
}

// Resolve returns the token registered under name. Semantic tokens resolve
// through exactly one indirection.
func (r *Resolver) Resolve(name string) (Token, error) {
	if target, ok := r.aliases[name]; ok {
		raw := r.raw[target]
		return Token{Name: name, Kind: raw.Kind, Layer: LayerSemantic, Alias: target, Value: raw.Value}, nil
	}
	if tok, ok := r.raw[name]; ok {
		return tok, nil
	}
	return Token{}, storyerrors.New(storyerrors.CodeUnknownToken, name, "token is not registered")
}

// Value returns the concrete value of name.
func (r *Resolver) Value(name string) (string, error) {
	tok, err := r.Resolve(name)
	if err != nil {
		return "", err
	}
	return tok.Value, nil
}

// Var returns the custom-property reference for name, e.g. var(--primary).
func (r *Resolver) Var(name string) (string, error) {
	if _, err := r.Resolve(name); err != nil {
		return "", err
	}
	return "var(--" + name + ")", nil
}

// RefName extracts the token name from a var(--name) reference.
func RefName(value string) (string, bool) {
	name, ok := strings.CutPrefix(value, "var(--")
	if !ok {
		return "", false
	}
	name, ok = strings.CutSuffix(name, ")")
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Color checks a colour argument. A var(--name) reference must name a
// registered colour token; anything else is returned unchanged.
func (r *Resolver) Color(value string) (string, error) {
	name, ok := RefName(value)
	if !ok {
		return value, nil
	}
	tok, err := r.Resolve(name)
	if err != nil {
		return "", err
	}
	if tok.Kind != KindColor {
		return "", storyerrors.New(storyerrors.CodeInvalidValue, name, fmt.Sprintf("token is a %s, not a color", tok.Kind))
	}
	return "var(--" + name + ")", nil
}

// Hops reports how many indirections resolving name takes: 0 for raw tokens, 1 for aliases.
func (r *Resolver) Hops(name string) (int, error) {
	tok, err := r.Resolve(name)
	if err != nil {
		return 0, err
	}
	if tok.Layer == LayerSemantic {
		return 1, nil
	}
	return 0, nil
}

// Names returns every token name, sorted.
func (r *Resolver) Names() []string {
	return append([]string(nil), r.names...)
}

// Tokens returns every resolved token sorted by name.
func (r *Resolver) Tokens() []Token {
	out := make([]Token, 0, len(r.names))
	for _, name := range r.names {
		tok, _ := r.Resolve(name)
		out = append(out, tok)
	}
	return out
}

// Stylesheet emits the tokens as CSS custom properties on :root. Semantic
// tokens reference their raw token so overriding a palette entry cascades.
func (r *Resolver) Stylesheet() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, tok := range r.Tokens() {
		value := tok.Value
		if tok.Layer == LayerSemantic {
			value = "var(--" + tok.Alias + ")"
		}
		fmt.Fprintf(&b, "  --%s: %s;\n", tok.Name, value)
	}
	b.WriteString("}\n")
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
