package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnified_IdenticalContent(t *testing.T) {
	content := []byte("<div>\n  <p>same</p>\n</div>\n")
	assert.Empty(t, Unified(content, content, "expected", "actual"))
	assert.Zero(t, Changed(content, content))
}

func TestUnified_SingleLineChange(t *testing.T) {
	expected := []byte("<div>\n<button class=\"btn btn--primary\">Save</button>\n</div>\n")
	actual := []byte("<div>\n<button class=\"btn btn--danger\">Save</button>\n</div>\n")

	result := Unified(expected, actual, "build/a.html", "render/a.html")

	assert.True(t, strings.HasPrefix(result, "--- build/a.html\n+++ render/a.html\n@@ -1,3 +1,3 @@\n"))
	assert.Contains(t, result, " <div>\n")
	assert.Contains(t, result, "-<button class=\"btn btn--primary\">Save</button>\n")
	assert.Contains(t, result, "+<button class=\"btn btn--danger\">Save</button>\n")
	assert.Contains(t, result, " </div>\n")
	assert.Equal(t, 2, Changed(expected, actual))
}

func TestUnified_IsDeterministic(t *testing.T) {
	expected := []byte("a\nb\nc\n")
	actual := []byte("a\nB\nc\nd\n")
	assert.Equal(t, Unified(expected, actual, "x", "y"), Unified(expected, actual, "x", "y"))
}

func TestUnified_AddedAndRemovedLines(t *testing.T) {
	result := Unified([]byte("one\ntwo\n"), []byte("one\n"), "old", "new")
	assert.Contains(t, result, "-two\n")
	assert.Contains(t, result, " one\n")
	assert.NotContains(t, result, "+one")

	result = Unified([]byte(""), []byte("fresh\n"), "old", "new")
	assert.Contains(t, result, "@@ -1,0 +1,1 @@")
	assert.Contains(t, result, "+fresh\n")
}

func TestUnified_TruncatesLargeDiffs(t *testing.T) {
	var b strings.Builder
	for i := 0; i < maxDiffLines+50; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}

	result := Unified(nil, []byte(b.String()), "empty", "large")
	require.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
	assert.LessOrEqual(t, strings.Count(result, "\n"), maxDiffLines+1)
}
