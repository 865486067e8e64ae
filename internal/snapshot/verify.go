package snapshot

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/storyshelf/internal/story"
	"github.com/alexisbeaulieu97/storyshelf/pkg/diff"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// DriftStatus classifies how a story differs from a previous build.
type DriftStatus string

const (
	DriftChanged DriftStatus = "changed"
	DriftAdded   DriftStatus = "added"
	DriftRemoved DriftStatus = "removed"
	DriftFailed  DriftStatus = "failed"
)

// Drift is one story whose current markup no longer matches the build.
type Drift struct {
	ID      string      `json:"id"`
	Status  DriftStatus `json:"status"`
	Changed int         `json:"changedLines,omitempty"`
	Diff    string      `json:"diff,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// VerifyReport compares the catalog with a build directory.
type VerifyReport struct {
	BuildID  string  `json:"buildId"`
	Checked  int     `json:"checked"`
	Drift    []Drift `json:"drift"`
	Baseline string  `json:"baseline"`
}

// Clean reports whether every story renders byte-identical to the build.
func (r VerifyReport) Clean() bool {
	return len(r.Drift) == 0
}

// Verify re-renders every story and compares it with the pages stored in dir
// by an earlier Build. The build's decoration setting is reused.
func (b *Builder) Verify(ctx context.Context, dir string) (*VerifyReport, error) {
	manifest, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}

	report := &VerifyReport{BuildID: manifest.BuildID, Baseline: dir}
	built := make(map[string]Entry, len(manifest.Stories))
	for _, e := range manifest.Stories {
		built[e.ID] = e
	}

	seen := make(map[string]struct{})
	for _, ref := range b.renderer.Registry().Stories() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seen[ref.ID] = struct{}{}
		report.Checked++

		drift, err := b.compare(dir, ref, built[ref.ID], manifest.Decorated)
		if err != nil {
			return nil, err
		}
		if drift != nil {
			report.Drift = append(report.Drift, *drift)
		}
	}

	for _, e := range manifest.Stories {
		if _, ok := seen[e.ID]; !ok {
			report.Drift = append(report.Drift, Drift{ID: e.ID, Status: DriftRemoved})
		}
	}

	b.logger.Info("catalog verified", "dir", dir, "build_id", manifest.BuildID, "checked", report.Checked, "drift", len(report.Drift))
	return report, nil
}

func (b *Builder) compare(dir string, ref story.Ref, entry Entry, decorate bool) (*Drift, error) {
	page, _, err := b.page(ref, decorate)
	if err != nil {
		if storyerrors.CodeOf(err) == "" {
			return nil, err
		}
		if entry.Error != nil && entry.Error.Code == string(storyerrors.CodeOf(err)) {
			return nil, nil
		}
		return &Drift{ID: ref.ID, Status: DriftFailed, Code: string(storyerrors.CodeOf(err))}, nil
	}

	if entry.ID == "" || entry.File == "" {
		return &Drift{ID: ref.ID, Status: DriftAdded}, nil
	}

	path := filepath.Join(dir, filepath.FromSlash(entry.File))
	stored, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Drift{ID: ref.ID, Status: DriftAdded}, nil
	}
	if err != nil {
		return nil, err
	}

	if n := diff.Changed(stored, page); n > 0 {
		return &Drift{
			ID:      ref.ID,
			Status:  DriftChanged,
			Changed: n,
			Diff:    diff.Unified(stored, page, entry.File, ref.ID),
		}, nil
	}
	return nil, nil
}
