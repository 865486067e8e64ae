package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storyshelf/internal/argtypes"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/presentation"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
	"github.com/alexisbeaulieu97/storyshelf/internal/tokens"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

const buttonTitle = "Components/Button"

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	lib := components.MustNewLibrary(tokens.Nord())
	reg := story.NewRegistry(nil)

	require.NoError(t, reg.Register(story.Group{
		Title:  buttonTitle,
		Tags:   []string{"autodocs"},
		Schema: components.ButtonSchema(),
		Binder: lib.ButtonBinder(),
	}))
	require.NoError(t, reg.AddVariant(buttonTitle, story.Variant{Name: "Primary", Args: argtypes.Args{"variant": "primary", "label": "Primary Button"}}))
	require.NoError(t, reg.AddVariant(buttonTitle, story.Variant{Name: "Secondary", Args: argtypes.Args{"variant": "secondary", "label": "Secondary Button"}}))
	require.NoError(t, reg.AddVariant(buttonTitle, story.Variant{Name: "AllVariants", Render: func() (components.Fragment, error) {
		return lib.ButtonRow(components.ButtonProps{Variant: "primary", Label: "Primary"}, components.ButtonProps{Variant: "danger", Label: "Danger"})
	}}))

	pres := presentation.New(nil)
	require.NoError(t, pres.Configure([]presentation.Background{{Name: "nord", Value: "#ECEFF4"}}, "nord", presentation.BackgroundFill()))
	return New(reg, pres, nil)
}

func TestRenderPrimaryButton(t *testing.T) {
	r := newRenderer(t)

	res, err := r.RenderStory(buttonTitle, "Primary")
	require.NoError(t, err)

	assert.Contains(t, string(res.Fragment), `class="btn btn--primary"`)
	assert.Contains(t, string(res.Fragment), "Primary Button")
	assert.Equal(t, "components-button--primary", res.Ref.ID)
	assert.Equal(t, []string{"variant", "label", "type"}, res.Schema.Names())
	assert.False(t, res.Explicit)
}

func TestRenderResolvesBinderDefaults(t *testing.T) {
	r := newRenderer(t)

	res, err := r.RenderStory(buttonTitle, "Secondary")
	require.NoError(t, err)

	assert.Equal(t, "button", res.Args["type"])
	assert.Equal(t, "secondary", res.Args["variant"])
	assert.Contains(t, string(res.Fragment), `type="button"`)
}

func TestRenderRejectsValueOutsideSelectDomain(t *testing.T) {
	r := newRenderer(t)

	_, err := r.RenderWithArgs(buttonTitle, "Primary", argtypes.Args{"variant": "huge"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, storyerrors.ErrInvalidOption))

	var cerr *storyerrors.CatalogError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "variant", cerr.Key)
	assert.Equal(t, []string{"primary", "secondary", "success", "danger"}, cerr.Domain)
}

func TestRenderUnknownStory(t *testing.T) {
	r := newRenderer(t)

	_, err := r.RenderStory(buttonTitle, "Nonexistent")
	assert.True(t, errors.Is(err, storyerrors.ErrNotFound))

	_, err = r.RenderID("components-button--nonexistent", nil)
	assert.True(t, errors.Is(err, storyerrors.ErrNotFound))
}

func TestRenderIsIdempotent(t *testing.T) {
	r := newRenderer(t)

	for _, ref := range r.Registry().Stories() {
		first, err := r.RenderStory(ref.Title, ref.Variant)
		require.NoError(t, err)
		second, err := r.RenderStory(ref.Title, ref.Variant)
		require.NoError(t, err)
		assert.Equal(t, first.Fragment, second.Fragment, ref.ID)
	}
}

func TestRenderWithArgsDoesNotTouchRegistry(t *testing.T) {
	r := newRenderer(t)

	edited, err := r.RenderWithArgs(buttonTitle, "Primary", argtypes.Args{"label": "Edited", "type": "submit"})
	require.NoError(t, err)
	assert.Contains(t, string(edited.Fragment), "Edited")
	assert.Contains(t, string(edited.Fragment), `type="submit"`)

	original, err := r.RenderStory(buttonTitle, "Primary")
	require.NoError(t, err)
	assert.Contains(t, string(original.Fragment), "Primary Button")
}

func TestExplicitStoryReturnsEmptyArgs(t *testing.T) {
	r := newRenderer(t)

	res, err := r.RenderStory(buttonTitle, "AllVariants")
	require.NoError(t, err)
	assert.True(t, res.Explicit)
	assert.Empty(t, res.Args)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(res.Fragment)))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find("button.btn").Length())

	_, err = r.RenderWithArgs(buttonTitle, "AllVariants", argtypes.Args{"label": "x"})
	assert.True(t, errors.Is(err, storyerrors.ErrUnknownArgument))
}

func TestPreviewAppliesDecorators(t *testing.T) {
	r := newRenderer(t)

	res, err := r.Preview(buttonTitle, "Primary", nil)
	require.NoError(t, err)
	assert.Contains(t, string(res.Fragment), `data-background="nord"`)

	plain, err := r.RenderStory(buttonTitle, "Primary")
	require.NoError(t, err)
	assert.NotContains(t, string(plain.Fragment), "data-background")

	byID, err := r.PreviewID("components-button--primary", nil)
	require.NoError(t, err)
	assert.Equal(t, res.Fragment, byID.Fragment)
}

func TestRenderAllIsolatesFailures(t *testing.T) {
	r := newRenderer(t)
	reg := r.Registry()
	require.NoError(t, reg.Register(story.Group{Title: "Broken"}))
	require.NoError(t, reg.AddVariant("Broken", story.Variant{Name: "Fails", Render: func() (components.Fragment, error) {
		return "", storyerrors.New(storyerrors.CodeUnknownToken, "nord99", "token is not registered")
	}}))
	require.NoError(t, reg.AddVariant("Broken", story.Variant{Name: "Panics", Render: func() (components.Fragment, error) {
		panic("boom")
	}}))

	outcomes := r.RenderAll()
	require.Len(t, outcomes, 5)

	failed := map[string]error{}
	for _, o := range outcomes {
		if o.Err != nil {
			failed[o.Ref.ID] = o.Err
			assert.Nil(t, o.Result)
			continue
		}
		require.NotNil(t, o.Result)
		assert.NotEmpty(t, o.Result.Fragment)
	}

	require.Len(t, failed, 2)
	assert.True(t, errors.Is(failed["broken--fails"], storyerrors.ErrUnknownToken))
	assert.Equal(t, "nord99", storyerrors.KeyOf(failed["broken--fails"]))
	assert.True(t, errors.Is(failed["broken--panics"], storyerrors.ErrRenderFailed))
}

func TestRenderFilesPlainErrorsAsRenderFailed(t *testing.T) {
	r := newRenderer(t)
	reg := r.Registry()
	require.NoError(t, reg.AddVariant(buttonTitle, story.Variant{Name: "Broken", Render: func() (components.Fragment, error) {
		return "", errors.New("boom")
	}}))

	_, err := r.RenderStory(buttonTitle, "Broken")
	require.Error(t, err)
	assert.True(t, errors.Is(err, storyerrors.ErrRenderFailed))
	assert.Equal(t, "components-button--broken", storyerrors.KeyOf(err))
	assert.Contains(t, err.Error(), "boom")

	failed := 0
	for _, o := range r.RenderAll() {
		if o.Err == nil {
			continue
		}
		failed++
		assert.Equal(t, "components-button--broken", o.Ref.ID)
		assert.Equal(t, storyerrors.CodeRenderFailed, storyerrors.CodeOf(o.Err))
	}
	assert.Equal(t, 1, failed)
}

func TestRenderRejectsAccentNamingMissingToken(t *testing.T) {
	r := newRenderer(t)
	lib := components.MustNewLibrary(tokens.Nord())
	require.NoError(t, r.Registry().Register(story.Group{Title: "Components/Card", Schema: components.CardSchema(), Binder: lib.CardBinder()}))
	require.NoError(t, r.Registry().AddVariant("Components/Card", story.Variant{Name: "Basic"}))

	_, err := r.RenderWithArgs("Components/Card", "Basic", argtypes.Args{"accent": "var(--no-such-token)"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, storyerrors.ErrUnknownToken))
	assert.Equal(t, "no-such-token", storyerrors.KeyOf(err))

	res, err := r.RenderWithArgs("Components/Card", "Basic", argtypes.Args{"accent": "var(--nord11)"})
	require.NoError(t, err)
	assert.Contains(t, string(res.Fragment), "border-left: 4px solid var(--nord11)")
}
