package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
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

func newBuilder(t *testing.T) *Builder {
	t.Helper()
	lib := components.MustNewLibrary(tokens.Nord())
	reg, err := stories.Build(lib, nil)
	require.NoError(t, err)

	pres := presentation.New(nil)
	require.NoError(t, pres.Configure([]presentation.Background{{Name: "nord", Value: "#ECEFF4"}}, "nord", presentation.Padded()))
	return NewBuilder(catalog.New(reg, pres, nil), lib, nil)
}

func TestBuildWritesManifestAndPages(t *testing.T) {
	b := newBuilder(t)
	out := t.TempDir()

	m, err := b.Build(context.Background(), Options{OutputDir: out, SourceDir: t.TempDir()})
	require.NoError(t, err)

	assert.NotEmpty(t, m.BuildID)
	assert.Equal(t, Revision{}, m.Revision)
	assert.Len(t, m.Stories, 29)
	assert.Empty(t, m.Failed())

	first := m.Stories[0]
	assert.Equal(t, "components-alert--success", first.ID)
	assert.Equal(t, "stories/components-alert--success.html", first.File)
	assert.Equal(t, map[string]string{"variant": "success", "message": "Your changes have been saved successfully!"}, first.Args)

	page, err := os.ReadFile(filepath.Join(out, first.File))
	require.NoError(t, err)
	assert.Contains(t, string(page), `<div class="alert alert--success">`)
	assert.Contains(t, string(page), `href="../tokens.css"`)

	css, err := os.ReadFile(filepath.Join(out, StylesheetFile))
	require.NoError(t, err)
	assert.Contains(t, string(css), "--primary: var(--nord10);")

	loaded, err := ReadManifest(out)
	require.NoError(t, err)
	assert.Equal(t, m.BuildID, loaded.BuildID)
	assert.Equal(t, m.Stories, loaded.Stories)
}

func TestBuildsAreByteIdentical(t *testing.T) {
	b := newBuilder(t)
	ids := []string{"build-1", "build-2"}
	b.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	b.now = func() time.Time { return time.Date(2025, 11, 24, 14, 30, 0, 0, time.UTC) }

	dirA, dirB := t.TempDir(), t.TempDir()
	ma, err := b.Build(context.Background(), Options{OutputDir: dirA, SourceDir: t.TempDir()})
	require.NoError(t, err)
	mb, err := b.Build(context.Background(), Options{OutputDir: dirB, SourceDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "build-1", ma.BuildID)
	assert.Equal(t, "build-2", mb.BuildID)
	for _, e := range ma.Stories {
		a, err := os.ReadFile(filepath.Join(dirA, e.File))
		require.NoError(t, err)
		bb, err := os.ReadFile(filepath.Join(dirB, e.File))
		require.NoError(t, err)
		assert.Equal(t, a, bb, e.ID)
	}
}

func TestBuildDecoratedPages(t *testing.T) {
	b := newBuilder(t)
	out := t.TempDir()

	m, err := b.Build(context.Background(), Options{OutputDir: out, SourceDir: t.TempDir(), Decorate: true})
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(out, m.Stories[0].File))
	require.NoError(t, err)
	assert.Contains(t, string(page), "padding: var(--space-4);")
}

func TestBuildRecordsFailedStories(t *testing.T) {
	lib := components.MustNewLibrary(tokens.Nord())
	reg := story.NewRegistry(nil)
	require.NoError(t, reg.Register(story.Group{Title: "Broken"}))
	require.NoError(t, reg.AddVariant("Broken", story.Variant{Name: "Missing", Render: func() (components.Fragment, error) {
		return "", storyerrors.New(storyerrors.CodeUnknownToken, "nord42", "token is not registered")
	}}))
	require.NoError(t, reg.AddVariant("Broken", story.Variant{Name: "Fine", Render: func() (components.Fragment, error) {
		return "<p>ok</p>", nil
	}}))
	b := NewBuilder(catalog.New(reg, presentation.New(nil), nil), lib, nil)
	out := t.TempDir()

	m, err := b.Build(context.Background(), Options{OutputDir: out, SourceDir: t.TempDir()})
	require.NoError(t, err)

	failed := m.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "UnknownToken", failed[0].Error.Code)
	assert.Equal(t, "nord42", failed[0].Error.Key)
	assert.Empty(t, failed[0].File)
	assert.FileExists(t, filepath.Join(out, "stories", "broken--fine.html"))
}

func TestBuildRecordsPlainRenderErrors(t *testing.T) {
	lib := components.MustNewLibrary(tokens.Nord())
	reg := story.NewRegistry(nil)
	require.NoError(t, reg.Register(story.Group{Title: "Broken"}))
	require.NoError(t, reg.AddVariant("Broken", story.Variant{Name: "Plain", Render: func() (components.Fragment, error) {
		return "", errors.New("boom")
	}}))
	require.NoError(t, reg.AddVariant("Broken", story.Variant{Name: "Fine", Render: func() (components.Fragment, error) {
		return "<p>ok</p>", nil
	}}))
	b := NewBuilder(catalog.New(reg, presentation.New(nil), nil), lib, nil)
	out := t.TempDir()

	m, err := b.Build(context.Background(), Options{OutputDir: out, SourceDir: t.TempDir()})
	require.NoError(t, err)
	require.Len(t, m.Stories, 2)

	failed := m.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "broken--plain", failed[0].ID)
	assert.Equal(t, "RenderFailed", failed[0].Error.Code)
	assert.Equal(t, "broken--plain", failed[0].Error.Key)
	assert.FileExists(t, filepath.Join(out, "stories", "broken--fine.html"))
}

func TestBuildHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newBuilder(t).Build(ctx, Options{OutputDir: t.TempDir(), SourceDir: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildRequiresOutputDir(t *testing.T) {
	_, err := newBuilder(t).Build(context.Background(), Options{})
	var verr *storyerrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestReadRevisionFromRepository(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	rev, err := ReadRevision(dir)
	require.NoError(t, err)
	assert.Equal(t, Revision{}, rev)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "storyshelf.yaml"), []byte("log_level: info\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("storyshelf.yaml")
	require.NoError(t, err)
	hash, err := wt.Commit("initial catalog", &git.CommitOptions{
		Author: &object.Signature{Name: "Catalog", Email: "catalog@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	sub := filepath.Join(dir, "stories")
	require.NoError(t, os.Mkdir(sub, 0o755))
	rev, err = ReadRevision(sub)
	require.NoError(t, err)
	assert.Equal(t, hash.String(), rev.Commit)
	assert.Equal(t, "master", rev.Branch)
}
