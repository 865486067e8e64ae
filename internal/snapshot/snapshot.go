// Package snapshot writes a static build of the catalog: an index.json
// manifest plus one standalone HTML page per story.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/storyshelf/internal/catalog"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/logger"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

const (
	IndexFile      = "index.json"
	StylesheetFile = "tokens.css"
	StoriesDir     = "stories"
)

// Manifest is the content of index.json.
type Manifest struct {
	BuildID   string    `json:"buildId"`
	CreatedAt time.Time `json:"createdAt"`
	Revision  Revision  `json:"revision"`
	Decorated bool      `json:"decorated"`
	Stories   []Entry   `json:"stories"`
}

// Entry describes one story of the build.
type Entry struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Variant  string            `json:"variant"`
	Name     string            `json:"name"`
	File     string            `json:"file,omitempty"`
	Explicit bool              `json:"explicit"`
	Args     map[string]string `json:"args,omitempty"`
	Error    *EntryError       `json:"error,omitempty"`
}

// EntryError records why a story is missing from the build.
type EntryError struct {
	Code    string `json:"code"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

// Options controls a build.
type Options struct {
	OutputDir string
	// SourceDir locates the git checkout whose revision is recorded.
	SourceDir string
	// Decorate applies the presentation decorators to every page.
	Decorate bool
}

// Builder renders the catalog to disk.
type Builder struct {
	renderer *catalog.Renderer
	library  *components.Library
	logger   *logger.Logger
	newID    func() string
	now      func() time.Time
}

// NewBuilder returns a builder for r's catalog.
func NewBuilder(r *catalog.Renderer, lib *components.Library, log *logger.Logger) *Builder {
	if log == nil {
		log = logger.Nop()
	}
	return &Builder{
		renderer: r,
		library:  lib,
		logger:   log,
		newID:    func() string { return uuid.New().String() },
		now:      time.Now,
	}
}

// Build writes the catalog into opts.OutputDir. Stories that fail to render
// are recorded in the manifest; story pages are byte-identical across builds
// of the same catalog.
func (b *Builder) Build(ctx context.Context, opts Options) (*Manifest, error) {
	if opts.OutputDir == "" {
		return nil, storyerrors.NewValidationError("output_dir", "output directory is required", nil)
	}
	storiesDir := filepath.Join(opts.OutputDir, StoriesDir)
	if err := os.MkdirAll(storiesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	sourceDir := opts.SourceDir
	if sourceDir == "" {
		sourceDir = "."
	}
	rev, err := ReadRevision(sourceDir)
	if err != nil {
		b.logger.Warn("could not read source revision", "dir", sourceDir, "error", err.Error())
	}

	manifest := &Manifest{
		BuildID:   b.newID(),
		CreatedAt: b.now().UTC(),
		Revision:  rev,
		Decorated: opts.Decorate,
	}
	log := b.logger.With("build_id", manifest.BuildID)

	css := b.library.Tokens().Stylesheet() + "\n"
	if err := os.WriteFile(filepath.Join(opts.OutputDir, StylesheetFile), []byte(css), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", StylesheetFile, err)
	}

	for _, ref := range b.renderer.Registry().Stories() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry := Entry{ID: ref.ID, Title: ref.Title, Variant: ref.Variant, Name: ref.Name}

		page, res, err := b.page(ref, opts.Decorate)
		if err != nil {
			if storyerrors.CodeOf(err) == "" {
				return nil, err
			}
			entry.Error = &EntryError{Code: string(storyerrors.CodeOf(err)), Key: storyerrors.KeyOf(err), Message: err.Error()}
			manifest.Stories = append(manifest.Stories, entry)
			log.Warn("story skipped", "id", ref.ID, "code", entry.Error.Code, "key", entry.Error.Key)
			continue
		}

		entry.File = StoriesDir + "/" + ref.ID + ".html"
		entry.Explicit = res.Explicit
		if len(res.Args) > 0 {
			entry.Args = make(map[string]string, len(res.Args))
			for _, k := range res.Args.Keys() {
				entry.Args[k] = res.Args.String(k)
			}
		}
		if err := os.WriteFile(filepath.Join(opts.OutputDir, filepath.FromSlash(entry.File)), page, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", entry.File, err)
		}
		manifest.Stories = append(manifest.Stories, entry)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(opts.OutputDir, IndexFile), append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", IndexFile, err)
	}

	log.Info("catalog build written", "dir", opts.OutputDir, "stories", len(manifest.Stories), "commit", rev.Commit)
	return manifest, nil
}

// page renders the standalone HTML file of one story. Catalog errors are
// returned as is so callers can record them per story.
func (b *Builder) page(ref story.Ref, decorate bool) ([]byte, catalog.Result, error) {
	var (
		res catalog.Result
		err error
	)
	if decorate {
		res, err = b.renderer.Preview(ref.Title, ref.Variant, nil)
	} else {
		res, err = b.renderer.RenderStory(ref.Title, ref.Variant)
	}
	if err != nil {
		return nil, res, err
	}

	doc, err := b.library.Document(components.DocumentProps{
		Title:      ref.Title + " · " + ref.Name,
		Stylesheet: "../" + StylesheetFile,
		Body:       res.Fragment.HTML(),
	})
	if err != nil {
		return nil, res, fmt.Errorf("render page for %s: %w", ref.ID, err)
	}
	return []byte(doc.String() + "\n"), res, nil
}

// ReadManifest loads index.json from a build directory.
func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, IndexFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, storyerrors.NewParseError(path, 0, err)
	}
	return &m, nil
}

// Failed returns the entries that could not be rendered.
func (m *Manifest) Failed() []Entry {
	var out []Entry
	for _, e := range m.Stories {
		if e.Error != nil {
			out = append(out, e)
		}
	}
	return out
}
