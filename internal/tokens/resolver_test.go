package tokens

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

func TestSemanticTokenResolvesToRawValue(t *testing.T) {
	r := Nord()

	primary, err := r.Resolve("primary")
	require.NoError(t, err)
	raw, err := r.Resolve("nord10")
	require.NoError(t, err)

	assert.Equal(t, raw.Value, primary.Value)
	assert.Equal(t, "#5E81AC", primary.Value)
	assert.Equal(t, LayerSemantic, primary.Layer)
	assert.Equal(t, "nord10", primary.Alias)
	assert.Equal(t, KindColor, primary.Kind)
}

func TestEverySemanticTokenIsOneHop(t *testing.T) {
	r := Nord()
	defs := NordDefinitions()

	for _, name := range r.Names() {
		hops, err := r.Hops(name)
		require.NoError(t, err)
		if _, alias := defs.Aliases[name]; alias {
			assert.Equal(t, 1, hops, name)
			tok, _ := r.Resolve(name)
			target, err := r.Resolve(tok.Alias)
			require.NoError(t, err)
			assert.Equal(t, LayerRaw, target.Layer, name)
		} else {
			assert.Equal(t, 0, hops, name)
		}
	}
}

func TestUnknownTokenNamesTheToken(t *testing.T) {
	r := Nord()

	_, err := r.Resolve("nord16")
	require.ErrorIs(t, err, storyerrors.ErrUnknownToken)
	assert.Equal(t, "nord16", storyerrors.KeyOf(err))

	_, err = r.Var("brand")
	require.ErrorIs(t, err, storyerrors.ErrUnknownToken)
}

func TestVarReferencesCustomProperty(t *testing.T) {
	r := Nord()

	ref, err := r.Var("space-4")
	require.NoError(t, err)
	assert.Equal(t, "var(--space-4)", ref)
}

func TestFontStacksJoinInOrder(t *testing.T) {
	value, err := Nord().Value("font-mono")
	require.NoError(t, err)
	assert.Equal(t, `"Fira Code", "SF Mono", Monaco, Consolas, monospace`, value)
}

func TestNewResolverRejectsAliasChains(t *testing.T) {
	cases := []struct {
		name    string
		aliases map[string]string
		key     string
	}{
		{name: "alias of alias", aliases: map[string]string{"brand": "primary"}, key: "brand"},
		{name: "unknown target", aliases: map[string]string{"brand": "nord99"}, key: "brand"},
		{name: "shadows raw token", aliases: map[string]string{"nord1": "nord2"}, key: "nord1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defs := NordDefinitions().Merge(Definitions{Aliases: tc.aliases})
			_, err := NewResolver(defs)
			require.ErrorIs(t, err, storyerrors.ErrAliasChain)
			assert.Equal(t, tc.key, storyerrors.KeyOf(err))
		})
	}
}

func TestNewResolverRejectsBadPaletteValues(t *testing.T) {
	defs := NordDefinitions().Merge(Definitions{Palette: map[string]string{"nord3": "grey-ish"}})

	_, err := NewResolver(defs)
	var validationErr *storyerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "tokens.nord3", validationErr.Field)
}

func TestNewResolverRejectsDuplicateAcrossScales(t *testing.T) {
	defs := NordDefinitions().Merge(Definitions{Radii: map[string]string{"space-4": "2px"}})

	_, err := NewResolver(defs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "space-4")
}

func TestStylesheetIsSortedAndKeepsAliases(t *testing.T) {
	css := Nord().Stylesheet()

	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.Contains(t, css, "  --nord10: #5E81AC;\n")
	assert.Contains(t, css, "  --primary: var(--nord10);\n")
	assert.Less(t, strings.Index(css, "--background:"), strings.Index(css, "--border:"))
	assert.Equal(t, css, Nord().Stylesheet())
}

func TestLoadFileMergesYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("palette:\n  nord10: \"#112233\"\naliases:\n  accent: nord15\n"), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)

	value, err := r.Value("primary")
	require.NoError(t, err)
	assert.Equal(t, "#112233", value)

	accent, err := r.Value("accent")
	require.NoError(t, err)
	assert.Equal(t, "#B48EAD", accent)
}

func TestLoadFileMergesTOMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.toml")
	contents := "[spacing]\nspace-8 = \"2rem\"\n\n[fonts]\nfont-serif = [\"Georgia\", \"serif\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)

	value, err := r.Value("space-8")
	require.NoError(t, err)
	assert.Equal(t, "2rem", value)

	serif, err := r.Value("font-serif")
	require.NoError(t, err)
	assert.Equal(t, "Georgia, serif", serif)
}

func TestLoadFileReportsTOMLSyntaxLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.toml")
	require.NoError(t, os.WriteFile(path, []byte("[palette]\nnord0 = \n"), 0o644))

	_, err := LoadFile(path)
	var parseErr *storyerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Greater(t, parseErr.Line, 0)
}

func TestLoadFileRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err := LoadFile(path)
	var parseErr *storyerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestColorChecksTokenReferences(t *testing.T) {
	r := Nord()

	got, err := r.Color("var(--primary)")
	require.NoError(t, err)
	assert.Equal(t, "var(--primary)", got)

	got, err = r.Color("#88C0D0")
	require.NoError(t, err)
	assert.Equal(t, "#88C0D0", got)

	_, err = r.Color("var(--nord42)")
	require.ErrorIs(t, err, storyerrors.ErrUnknownToken)
	assert.Equal(t, "nord42", storyerrors.KeyOf(err))

	_, err = r.Color("var(--radius-md)")
	require.ErrorIs(t, err, storyerrors.ErrInvalidValue)
}

func TestRefName(t *testing.T) {
	name, ok := RefName("var(--nord10)")
	assert.True(t, ok)
	assert.Equal(t, "nord10", name)

	_, ok = RefName("#fff")
	assert.False(t, ok)
	_, ok = RefName("var(--)")
	assert.False(t, ok)
}
