package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storyshelf/internal/catalog"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/presentation"
	"github.com/alexisbeaulieu97/storyshelf/internal/stories"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
	"github.com/alexisbeaulieu97/storyshelf/internal/tokens"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

func TestFragmentReportsUnknownClasses(t *testing.T) {
	a := New()

	findings, err := a.Fragment("demo", `<div class="card shadow-xl"><button class="btn btn--huge">x</button></div>`)
	require.NoError(t, err)

	require.Len(t, findings, 2)
	assert.Equal(t, Finding{StoryID: "demo", Kind: KindClass, Value: "shadow-xl", Element: "div"}, findings[0])
	assert.Equal(t, "btn--huge", findings[1].Value)
	assert.Equal(t, "button", findings[1].Element)
}

func TestFragmentReportsColourLiterals(t *testing.T) {
	findings, err := New().Fragment("demo", `<div style="color: #BF616A; border: 1px solid var(--border);"></div><p style="background: rgb(0,0,0)"></p>`)
	require.NoError(t, err)

	require.Len(t, findings, 2)
	assert.Equal(t, KindLiteral, findings[0].Kind)
	assert.Equal(t, "#BF616A", findings[0].Value)
	assert.Equal(t, "rgb(", findings[1].Value)
}

func TestExtraClassesAreAccepted(t *testing.T) {
	findings, err := New("shadow-xl").Fragment("demo", `<div class="card shadow-xl"></div>`)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCatalogFollowsHostConventions(t *testing.T) {
	reg, err := stories.Build(components.MustNewLibrary(tokens.Nord()), nil)
	require.NoError(t, err)
	r := catalog.New(reg, presentation.New(nil), nil)

	report := New().Run(r.RenderAll())

	assert.True(t, report.Clean(), "%+v", report)
	assert.Equal(t, reg.Len(), report.Stories)
}

func TestRunRecordsFailedStories(t *testing.T) {
	reg := story.NewRegistry(nil)
	require.NoError(t, reg.Register(story.Group{Title: "Broken"}))
	require.NoError(t, reg.AddVariant("Broken", story.Variant{Name: "Missing", Render: func() (components.Fragment, error) {
		return "", storyerrors.New(storyerrors.CodeUnknownToken, "nord42", "token is not registered")
	}}))

	report := New().Run(catalog.New(reg, presentation.New(nil), nil).RenderAll())

	assert.False(t, report.Clean())
	assert.Equal(t, []Failure{{StoryID: "broken--missing", Code: "UnknownToken", Key: "nord42"}}, report.Failures)
}

func TestClassesAreSortedAndDistinct(t *testing.T) {
	classes, err := Classes(`<nav class="nav nav--dark"><a class="nav__link"></a><a class="nav__link nav__link--active"></a></nav>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"nav", "nav--dark", "nav__link", "nav__link--active"}, classes)
}
