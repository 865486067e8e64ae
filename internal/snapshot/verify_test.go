package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storyshelf/internal/catalog"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/presentation"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
	"github.com/alexisbeaulieu97/storyshelf/internal/tokens"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

func buildInto(t *testing.T, b *Builder, decorate bool) string {
	t.Helper()
	dir := t.TempDir()
	_, err := b.Build(context.Background(), Options{OutputDir: dir, SourceDir: t.TempDir(), Decorate: decorate})
	require.NoError(t, err)
	return dir
}

func TestVerifyFreshBuildIsClean(t *testing.T) {
	b := newBuilder(t)

	for _, decorate := range []bool{false, true} {
		report, err := b.Verify(context.Background(), buildInto(t, b, decorate))
		require.NoError(t, err)
		assert.True(t, report.Clean(), "decorate=%v: %+v", decorate, report.Drift)
		assert.Equal(t, 29, report.Checked)
	}
}

func TestVerifyReportsChangedMarkup(t *testing.T) {
	b := newBuilder(t)
	dir := buildInto(t, b, false)

	path := filepath.Join(dir, "stories", "components-button--primary.html")
	page, err := os.ReadFile(path)
	require.NoError(t, err)
	edited := strings.Replace(string(page), "btn--primary", "btn--danger", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	report, err := b.Verify(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, report.Drift, 1)

	drift := report.Drift[0]
	assert.Equal(t, "components-button--primary", drift.ID)
	assert.Equal(t, DriftChanged, drift.Status)
	assert.Equal(t, 2, drift.Changed)
	assert.Contains(t, drift.Diff, "-<button type=\"button\" class=\"btn btn--danger\">Primary Button</button>")
	assert.Contains(t, drift.Diff, "+<button type=\"button\" class=\"btn btn--primary\">Primary Button</button>")
}

func TestVerifyReportsAddedAndRemovedStories(t *testing.T) {
	b := newBuilder(t)
	dir := buildInto(t, b, false)

	require.NoError(t, os.Remove(filepath.Join(dir, "stories", "components-alert--info.html")))

	m, err := ReadManifest(dir)
	require.NoError(t, err)
	m.Stories = append(m.Stories, Entry{ID: "components-tooltip--default", File: "stories/components-tooltip--default.html"})
	data, err := json.Marshal(m)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, IndexFile), data, 0o644))

	report, err := b.Verify(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, report.Drift, 2)
	assert.Equal(t, Drift{ID: "components-alert--info", Status: DriftAdded}, report.Drift[0])
	assert.Equal(t, Drift{ID: "components-tooltip--default", Status: DriftRemoved}, report.Drift[1])
}

func TestVerifyKeepsKnownFailuresQuiet(t *testing.T) {
	lib := components.MustNewLibrary(tokens.Nord())
	reg := story.NewRegistry(nil)
	require.NoError(t, reg.Register(story.Group{Title: "Broken"}))
	require.NoError(t, reg.AddVariant("Broken", story.Variant{Name: "Missing", Render: func() (components.Fragment, error) {
		return "", storyerrors.New(storyerrors.CodeUnknownToken, "nord42", "token is not registered")
	}}))
	b := NewBuilder(catalog.New(reg, presentation.New(nil), nil), lib, nil)

	report, err := b.Verify(context.Background(), buildInto(t, b, false))
	require.NoError(t, err)
	assert.True(t, report.Clean())
}

func TestVerifyRequiresManifest(t *testing.T) {
	_, err := newBuilder(t).Verify(context.Background(), t.TempDir())
	require.Error(t, err)
}
